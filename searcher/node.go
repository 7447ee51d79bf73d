package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/DBuild-23/mcts-algorithm-structure-SigmaGo/game"
)

// node is one explored position in the search tree. It owns an
// independent state snapshot and its children; parent is a non-owning
// back-reference used only by selection and backpropagation.
//
// moves holds the legal moves of state in a fixed order. The first
// len(children) entries are the tried moves, aligned index-for-index
// with children, so move membership is tracked directly instead of being
// inferred from child states.
type node struct {
	parent   *node
	state    game.State
	mover    string // player who made the move leading into this node; "" at the root
	moves    []game.Move
	children []*node
	wins     float64
	visits   int
}

func newNode(parent *node, state game.State, mover string) *node {
	return &node{
		parent: parent,
		state:  state,
		mover:  mover,
		moves:  state.LegalMoves(),
	}
}

func (n *node) terminal() bool { return len(n.moves) == 0 }

func (n *node) fullyExpanded() bool { return len(n.children) == len(n.moves) }

// selectOrExpand descends one level. Expansion of an untried move always
// wins over selection, which guarantees UCB1 never scores a zero-visit
// child. Terminal nodes return themselves.
func (n *node) selectOrExpand(exploration float64, randomExpand bool, rng *rand.Rand) (child *node, expanded bool) {
	if n.terminal() {
		return n, false
	}
	if !n.fullyExpanded() {
		return n.expand(randomExpand, rng), true
	}
	return n.bestChild(exploration), false
}

// expand materializes one untried move as a new child: the next move in
// enumeration order, or a uniformly random untried move when randomExpand
// is set. Expanding a fully expanded node is a no-op.
func (n *node) expand(randomExpand bool, rng *rand.Rand) *node {
	if n.fullyExpanded() {
		return n
	}
	i := len(n.children)
	if randomExpand {
		j := i + rng.Intn(len(n.moves)-i)
		n.moves[i], n.moves[j] = n.moves[j], n.moves[i]
	}
	child := newNode(n, n.state.Play(n.moves[i]), n.state.Player())
	n.children = append(n.children, child)
	return child
}

func (n *node) bestChild(exploration float64) *node {
	policy := newUCB1(exploration, n.visits)

	best := -1
	maxScore := math.Inf(-1)
	for i, child := range n.children {
		if score := policy.evaluate(child.wins, child.visits); score > maxScore {
			maxScore = score
			best = i
		}
	}
	return n.children[best]
}

// backup walks the parent chain to the root inclusive, counting the visit
// and crediting each node whose incoming move was made by the winner.
// Player() names who moves next, so the credit goes to the opponent of a
// node's own current player.
func (n *node) backup(outcome game.Outcome) {
	for current := n; current != nil; current = current.parent {
		current.visits++
		current.wins += reward(outcome, current.mover)
	}
}

func reward(outcome game.Outcome, mover string) float64 {
	switch {
	case outcome.Draw():
		return Draw
	case outcome.Winner == mover:
		return Win
	default:
		return Loss
	}
}
