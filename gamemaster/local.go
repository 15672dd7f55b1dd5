package gamemaster

import (
	"errors"
	"fmt"

	"reversi/game"

	"golang.org/x/exp/slices"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)

// UpdateGetter returns the next move played and the state it led to, or game.NoMove and
// nil when there is no pending update. After the game is over and every update has been
// consumed it keeps returning game.NoMove and nil.
type UpdateGetter func() (game.Move, game.State)

type Referee interface {
	Init() (game.State, UpdateGetter)
	Play(game.Move) error
}

type update struct {
	move  game.Move
	state game.State
}

// A game never has more moves than empty cells at the start.
const maxUpdates = game.Size * game.Size

type localReferee struct {
	start    *game.GameState
	state    *game.GameState
	updateCh chan update
	gameOver bool
}

// NewLocalReferee returns a referee for a game started from the opening position with
// first to move.
func NewLocalReferee(first game.Cell) (*localReferee, error) {
	return NewLocalRefereeFrom(game.NewBoard(), first)
}

// NewLocalRefereeFrom returns a referee for a game started from b with first to move.
func NewLocalRefereeFrom(b game.Board, first game.Cell) (*localReferee, error) {
	start, err := game.NewGameStateFrom(b, first)
	if err != nil {
		return nil, fmt.Errorf("new referee with %v to move: %w", first, err)
	}
	return &localReferee{start: start}, nil
}

func (r *localReferee) Init() (game.State, UpdateGetter) {
	r.state = r.start
	r.gameOver = r.state.IsOver()
	r.updateCh = make(chan update, maxUpdates)
	if r.gameOver {
		close(r.updateCh)
	}

	ch := r.updateCh
	return r.state, func() (game.Move, game.State) {
		select {
		case u, ok := <-ch:
			if !ok {
				return game.NoMove, nil
			}
			return u.move, u.state
		default:
			return game.NoMove, nil
		}
	}
}

// State returns the authoritative state.
func (r *localReferee) State() *game.GameState {
	return r.state
}

// Play applies move for the side to move. Passes are applied by the referee itself, so
// game.NoMove is always illegal: the side to move has a legal move whenever the game is
// not over.
func (r *localReferee) Play(move game.Move) error {
	if r.state == nil {
		return fmt.Errorf("play %v: referee not initialized", move)
	}
	if r.gameOver {
		return fmt.Errorf("play %v: %w", move, ErrGameOver)
	}

	player := r.state.Player()
	if move == game.NoMove {
		return fmt.Errorf("%v returned no move while able to play: %w", player, ErrIllegalMove)
	}
	if !slices.Contains(r.state.LegalMoves(), move) {
		return fmt.Errorf("%v played %v: %w", player, move, ErrIllegalMove)
	}

	r.state = r.state.Play(move).(*game.GameState)
	r.updateCh <- update{move: move, state: r.state}
	if r.state.IsOver() {
		r.gameOver = true
		close(r.updateCh)
	}
	return nil
}
