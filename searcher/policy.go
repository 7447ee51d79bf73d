package searcher

import "math"

// DefaultExploration is the canonical sqrt(2) approximation balancing
// exploitation of high win-rate children against exploration of
// less-visited ones.
const DefaultExploration = 1.41

// Win-share rewards accumulated per node during backpropagation.
const (
	Win  = 1.0
	Draw = 0.5
	Loss = 0.0
)

type ucb1 struct {
	numerator float64
}

func newUCB1(exploration float64, parentVisits int) ucb1 {
	if parentVisits == 0 {
		panic("ucb1: parent node has 0 visits")
	}
	// UCB1 = w/n + sqrt(c^2*ln(N)/n)
	return ucb1{numerator: exploration * exploration * math.Log(float64(parentVisits))}
}

func (u ucb1) evaluate(wins float64, visits int) float64 {
	if visits == 0 {
		panic("ucb1: cannot score a child with 0 visits")
	}
	return wins/float64(visits) + math.Sqrt(u.numerator/float64(visits))
}
