package game

import "errors"

// Size is the side length of the board.
const Size = 8

// Cell is the state of a single square.
type Cell int8

const (
	Empty Cell = iota
	Black
	White
)

var (
	ErrInvalidCell   = errors.New("invalid cell value")
	ErrInvalidColors = errors.New("invalid color pair")
	ErrBoardSize     = errors.New("board must be 8x8")
)

func (c Cell) Valid() bool {
	return c == Empty || c == Black || c == White
}

// Opponent returns the other color. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "invalid"
	}
}

// ValidateColors checks that mover and opponent are two distinct player colors.
func ValidateColors(mover, opponent Cell) error {
	if mover == Empty || opponent == Empty || !mover.Valid() || !opponent.Valid() || mover == opponent {
		return ErrInvalidColors
	}
	return nil
}

// State is an immutable view of a game in progress - Play always returns a new copy
type State interface {
	Player() Cell
	Board() Board
	LegalMoves() []Move
	Play(Move) State
	Hash() StateHash
	Winner() Cell
	IsOver() bool
}

type StateHash uint64

// Evaluate scores a leaf board from mover's perspective. last is the root move whose
// subtree is being scored and w is the weight table owned by the agent.
type Evaluate func(b Board, mover, opponent Cell, last Move, w *Weights) int
