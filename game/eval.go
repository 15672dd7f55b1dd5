package game

// SafeEdgeWeight is the value given to the cells around a corner once the mover owns it.
const SafeEdgeWeight = 80

// Weights scores how desirable each cell is for the mover. The values are hand-tuned
// and can be changed freely: corners are worth the most, the cells that hand a corner
// to the opponent are penalised, the centre is slightly preferred.
type Weights [Size][Size]int

var template = Weights{
	{1000, -300, 100, 80, 80, 100, -300, 1000},
	{-300, -500, -45, -50, -50, -45, -500, -300},
	{100, -45, 3, 1, 1, 3, -45, 100},
	{80, -50, 1, 5, 5, 1, -50, 80},
	{80, -50, 1, 5, 5, 1, -50, 80},
	{100, -45, 3, 1, 1, 3, -45, 100},
	{-300, -500, -45, -50, -50, -45, -500, -300},
	{1000, -300, 100, 80, 80, 100, -300, 1000},
}

// DefaultWeights returns a fresh copy of the starting table.
func DefaultWeights() Weights {
	return template
}

func (w *Weights) At(m Move) int {
	return w[m.Row][m.Col]
}

// Secure marks the neighbourhood of a captured corner as safe: the two adjacent edge
// cells, the next two along each edge and the diagonal neighbour. Calling it again for
// the same corner changes nothing; non-corner moves are ignored.
func (w *Weights) Secure(corner Move) {
	if !corner.IsCorner() {
		return
	}
	dr, dc := 1, 1
	if corner.Row != 0 {
		dr = -1
	}
	if corner.Col != 0 {
		dc = -1
	}
	r, c := corner.Row, corner.Col
	w[r+dr][c] = SafeEdgeWeight
	w[r][c+dc] = SafeEdgeWeight
	w[r+2*dr][c] = SafeEdgeWeight
	w[r][c+2*dc] = SafeEdgeWeight
	w[r+dr][c+dc] = SafeEdgeWeight
}

// EvaluateWeighted is the disc differential plus the weight of the root move.
func EvaluateWeighted(b Board, mover, opponent Cell, last Move, w *Weights) int {
	return b.Count(mover) - b.Count(opponent) + w.At(last)
}

// EvaluateCount only counts the mover's discs.
func EvaluateCount(b Board, mover, _ Cell, _ Move, _ *Weights) int {
	return b.Count(mover)
}
