package game

import (
	"golang.org/x/exp/rand"
)

// playout plays random legal moves from the opening and returns every position seen
// together with the color to move in it.
func playout(seed uint64) ([]Board, []Cell) {
	r := rand.New(rand.NewSource(seed))
	var state State = NewGameState(Black)
	boards := []Board{state.Board()}
	players := []Cell{state.Player()}
	for !state.IsOver() {
		moves := state.LegalMoves()
		state = state.Play(moves[r.Intn(len(moves))])
		boards = append(boards, state.Board())
		players = append(players, state.Player())
	}
	return boards, players
}

func mustParse(s string) Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return b
}
