package searcher

import "reversi/game"

// Search depth by game phase. Deeper searches become affordable as the board fills up
// and the branching factor shrinks.
const (
	BaseDepth        = 4
	LateMidgameDepth = 5
	PreEndgameDepth  = 6
	EndgameDepth     = 8

	LateMidgameDiscs = 48
	PreEndgameDiscs  = 52
	EndgameDiscs     = 56
)

// The safety shortcut is only tried while fewer discs than this are on the board.
const ShortcutDiscLimit = 50

// Scores for positions where one side cannot move below the root. They are added to
// the mover's disc count.
const (
	ForfeitBonus = 1000  // opponent has to pass
	StuckPenalty = -1001 // mover has to pass
)

// Inf bounds every reachable score.
const Inf = 10000

// DepthFor returns the search depth for the phase of the game b is in.
func DepthFor(b game.Board) int {
	discs := b.Discs()
	switch {
	case discs >= EndgameDiscs:
		return EndgameDepth
	case discs >= PreEndgameDiscs:
		return PreEndgameDepth
	case discs >= LateMidgameDiscs:
		return LateMidgameDepth
	default:
		return BaseDepth
	}
}

// UseOrdering reports whether region ordered move generation pays off for mover on b:
// always from the pre-endgame on, and earlier once mover holds more discs than there
// are empty cells left.
func UseOrdering(b game.Board, mover game.Cell) bool {
	return b.Discs() >= PreEndgameDiscs || b.Empties() < b.Count(mover)
}
