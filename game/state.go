package game

import (
	"hash/fnv"
)

// GameState is a board together with the side to move. The side to move always has a
// legal move unless the game is over: Play hands the turn back to the same player when
// the opponent must pass.
type GameState struct {
	board  Board
	player Cell
	passed bool // the previous turn was passed
}

// NewGameState returns the opening position with first to move.
func NewGameState(first Cell) *GameState {
	return &GameState{board: NewBoard(), player: first}
}

// NewGameStateFrom starts from an arbitrary board, passing immediately if player has
// no move.
func NewGameStateFrom(b Board, player Cell) (*GameState, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateColors(player, player.Opponent()); err != nil {
		return nil, err
	}
	gs := &GameState{board: b, player: player}
	if !HasMove(b, player, player.Opponent()) && HasMove(b, player.Opponent(), player) {
		gs.player = player.Opponent()
		gs.passed = true
	}
	return gs, nil
}

func (gs GameState) Player() Cell { return gs.player }
func (gs GameState) Board() Board { return gs.board }

// Passed reports whether the player before the current one had to pass.
func (gs GameState) Passed() bool { return gs.passed }

func (gs GameState) LegalMoves() []Move {
	return LegalMoves(gs.board, gs.player, gs.player.Opponent())
}

// Play applies a legal move and returns the following state.
func (gs GameState) Play(m Move) State {
	next := &GameState{
		board:  ApplyMove(gs.board, m, gs.player, gs.player.Opponent()),
		player: gs.player.Opponent(),
	}
	if !HasMove(next.board, next.player, gs.player) && HasMove(next.board, gs.player, next.player) {
		next.player = gs.player
		next.passed = true
	}
	return next
}

// IsOver reports whether neither side can move.
func (gs GameState) IsOver() bool {
	return !HasMove(gs.board, gs.player, gs.player.Opponent()) &&
		!HasMove(gs.board, gs.player.Opponent(), gs.player)
}

// Winner returns the color with more discs once the game is over, Empty for a draw or
// a game still in progress.
func (gs GameState) Winner() Cell {
	if !gs.IsOver() {
		return Empty
	}
	black, white := gs.board.Count(Black), gs.board.Count(White)
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	default:
		return Empty
	}
}

// Hash identifies the position and the side to move.
func (gs GameState) Hash() StateHash {
	h := fnv.New64a()
	var buf [Size*Size + 1]byte
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			buf[r*Size+c] = byte(gs.board[r][c])
		}
	}
	buf[Size*Size] = byte(gs.player)
	h.Write(buf[:])
	return StateHash(h.Sum64())
}
