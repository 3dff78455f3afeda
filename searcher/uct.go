package searcher

import "math"

// DefaultExploration is the tuned UCT exploration constant. The value
// depends on the reward convention in backpropagate: every node on the
// path accumulates the playout result signed by the searching agent's
// tile, not by the color to move at that node.
const DefaultExploration = 1.5

// uct scores a child for selection: exploitation (win rate) plus the
// exploration bonus c*sqrt(ln(parentVisits)/visits). A child only enters
// UCT comparison once its parent is fully expanded, at which point it has
// at least one visit from its own expansion playout.
func uct(wins, visits, parentVisits int, c float64) float64 {
	if visits == 0 {
		panic("cannot compute UCT: 0 visits")
	}

	winRate := float64(wins) / float64(visits)
	return winRate + c*math.Sqrt(math.Log(float64(parentVisits))/float64(visits))
}
