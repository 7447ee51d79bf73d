package searcher

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/DBuild-23/mcts-algorithm-structure-SigmaGo/game"
)

// Policy picks one of the legal moves during a rollout. It is the only
// place randomness enters the search; rng is the engine's injected,
// seedable source.
type Policy func(state game.State, moves []game.Move, rng *rand.Rand) game.Move

// RandomPolicy is the default rollout policy: a uniformly random legal move.
func RandomPolicy(_ game.State, moves []game.Move, rng *rand.Rand) game.Move {
	return moves[rng.Intn(len(moves))]
}

// ErrRolloutCutoff reports a rollout that exceeded the configured move
// cap before reaching a terminal position.
var ErrRolloutCutoff = errors.New("rollout exceeded move cutoff")

// rollout plays state to completion under policy and resolves the
// outcome. A positive cutoff bounds the playout length for games whose
// terminal condition cannot be trusted to be reachable; exceeding it is
// an error, not a result.
func rollout(state game.State, policy Policy, rng *rand.Rand, cutoff int) (game.Outcome, int, error) {
	depth := 0
	for !state.IsTerminal() {
		if cutoff > 0 && depth >= cutoff {
			return game.Outcome{}, depth, fmt.Errorf("%w after %d moves", ErrRolloutCutoff, depth)
		}
		moves := state.LegalMoves()
		state = state.Play(policy(state, moves, rng))
		depth++
	}
	return state.Result(), depth, nil
}
