package searcher

import (
	"github.com/DBuild-23/mcts-algorithm-structure-SigmaGo/game"
)

type mockMove struct {
	id int
}

// mockState is a hand-wired position: next maps each legal move to its
// successor. Successors are shared read-only, which matches the
// immutability the engine expects from states.
type mockState struct {
	player  string
	moves   []game.Move
	next    map[mockMove]*mockState
	outcome game.Outcome
}

func (s *mockState) Player() string { return s.player }

func (s *mockState) LegalMoves() []game.Move {
	return append([]game.Move(nil), s.moves...)
}

func (s *mockState) Play(move game.Move) game.State {
	next, ok := s.next[move.(mockMove)]
	if !ok {
		panic("mockState: no successor wired for move")
	}
	return next
}

func (s *mockState) IsTerminal() bool { return len(s.moves) == 0 }

func (s *mockState) Result() game.Outcome { return s.outcome }

// takeawayState is a deterministic two-player game used for end-to-end
// tests: players alternately take 1 or 2 stones and whoever takes the
// last stone wins.
type takeawayState struct {
	stones int
	player string
}

func (s takeawayState) Player() string { return s.player }

func (s takeawayState) LegalMoves() []game.Move {
	switch {
	case s.stones >= 2:
		return []game.Move{1, 2}
	case s.stones == 1:
		return []game.Move{1}
	default:
		return nil
	}
}

func (s takeawayState) Play(move game.Move) game.State {
	return takeawayState{
		stones: s.stones - move.(int),
		player: otherPlayer(s.player),
	}
}

func (s takeawayState) IsTerminal() bool { return s.stones == 0 }

func (s takeawayState) Result() game.Outcome {
	// The player who took the last stone is the opponent of whoever is
	// to move in the empty position.
	return game.Outcome{Winner: otherPlayer(s.player)}
}

func otherPlayer(player string) string {
	if player == "p1" {
		return "p2"
	}
	return "p1"
}

// loopState never terminates: its single move leads back to itself.
type loopState struct{}

func (s loopState) Player() string              { return "p1" }
func (s loopState) LegalMoves() []game.Move     { return []game.Move{0} }
func (s loopState) Play(move game.Move) game.State { return s }
func (s loopState) IsTerminal() bool            { return false }
func (s loopState) Result() game.Outcome        { return game.Outcome{} }
