package game

// Move is an opaque move value supplied by a game implementation. Move
// values must be comparable: the engine keys move membership and child
// statistics by move identity, never by comparing successor states.
type Move interface{}

// Outcome is the result of a finished game: the winning player's
// identifier, or a draw when no player won.
type Outcome struct {
	Winner string
}

// Draw reports whether the game ended without a winner.
func (o Outcome) Draw() bool { return o.Winner == "" }

// State is the capability a game must provide to be searchable. A State
// value is an immutable snapshot of one position, including whose turn it
// is; Play returns a successor and must leave the receiver untouched so
// that sibling tree branches never share mutable state.
type State interface {
	// Player identifies who moves next in this position.
	Player() string
	// LegalMoves enumerates the moves available to Player. The sequence is
	// empty only in terminal positions and must be deterministic for a
	// fixed state value.
	LegalMoves() []Move
	// Play returns the position after move without mutating the receiver.
	Play(move Move) State
	// IsTerminal reports whether the game is over in this position.
	IsTerminal() bool
	// Result resolves the outcome of a terminal position. It is defined
	// only when IsTerminal returns true.
	Result() Outcome
}
