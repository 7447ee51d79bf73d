package searcher

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/DBuild-23/mcts-algorithm-structure-SigmaGo/game"
)

var (
	// ErrInvalidStartState reports a search on an already terminal state.
	ErrInvalidStartState = errors.New("search: start state is terminal")
	// ErrInvalidConfiguration reports an unusable search configuration.
	ErrInvalidConfiguration = errors.New("search: invalid configuration")
)

// ChildStat is the visit/win statistic of one root child, exposed for
// diagnostics after a search.
type ChildStat struct {
	Move   game.Move
	Visits int
	Wins   float64
}

func (s ChildStat) WinRate() float64 {
	return s.Wins / float64(s.Visits)
}

type Option func(m *MCTS)

// MCTS runs Monte Carlo tree search over any game.State. A single value
// is reusable across searches but not safe for concurrent Search calls:
// each call owns an independent tree, discarded when the call returns,
// and the root statistics of the last search are retained for diagnostics.
type MCTS struct {
	exploration  float64
	episodes     int
	duration     time.Duration
	goroutines   int
	cutoff       int
	seed         uint64
	policy       Policy
	randomExpand bool
	metrics      Collector

	stats  []ChildStat
	metric SearchMetric
}

// WithExploration sets the UCB1 exploration weight.
func WithExploration(weight float64) Option {
	return func(m *MCTS) {
		m.exploration = weight
	}
}

// WithEpisodes fixes the number of select-expand-simulate-backpropagate
// iterations per search.
func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		m.episodes = episodes
	}
}

// WithDuration sets a wall-clock budget as an alternative stopping rule.
// The deadline is checked between episodes, never inside one.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		m.duration = duration
	}
}

// WithGoroutines enables root parallelism: each goroutine searches an
// independent tree over a share of the episode budget and the root
// statistics are merged once all workers complete.
func WithGoroutines(goroutines int) Option {
	return func(m *MCTS) {
		m.goroutines = goroutines
	}
}

// WithCutoff caps rollout length. Exceeding the cap fails the search
// with ErrRolloutCutoff.
func WithCutoff(moves int) Option {
	return func(m *MCTS) {
		m.cutoff = moves
	}
}

// WithSeed seeds the rollout random source for reproducible searches.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

// WithPolicy replaces the uniform random rollout policy.
func WithPolicy(policy Policy) Option {
	return func(m *MCTS) {
		if policy != nil {
			m.policy = policy
		}
	}
}

// WithRandomExpansion expands a uniformly random untried move instead of
// following enumeration order.
func WithRandomExpansion() Option {
	return func(m *MCTS) {
		m.randomExpand = true
	}
}

// WithMetrics records search metrics, retrievable via LastMetric.
func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

func New(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		exploration: DefaultExploration,
		goroutines:  1,
		seed:        uint64(time.Now().UnixNano()),
		policy:      RandomPolicy,
		metrics:     NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Search estimates the best next move from state by building a partial
// game tree over the configured episode or time budget, then picking the
// root child with the highest observed win rate (ties by first index).
func (m *MCTS) Search(state game.State) (game.Move, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	if state.IsTerminal() {
		return nil, fmt.Errorf("%w: no legal moves", ErrInvalidStartState)
	}

	m.metrics.Start(m.goroutines)
	roots, err := m.buildTrees(state)
	if err != nil {
		return nil, err
	}
	m.metric = m.metrics.Complete()

	m.stats = mergeStats(roots)
	if len(m.stats) == 0 {
		return nil, fmt.Errorf("%w: budget allowed no episodes", ErrInvalidConfiguration)
	}
	move := bestStat(m.stats).Move
	log.Debug().Msgf("search complete: %d root moves explored by %d goroutines", len(m.stats), m.goroutines)
	return move, nil
}

// RootStats returns the per-move statistics of the root's children from
// the most recent search, in first-explored order.
func (m *MCTS) RootStats() []ChildStat {
	stats := make([]ChildStat, len(m.stats))
	copy(stats, m.stats)
	return stats
}

// LastMetric returns the metrics of the most recent search. It is zero
// unless the searcher was built with WithMetrics.
func (m *MCTS) LastMetric() SearchMetric {
	return m.metric
}

func (m *MCTS) validate() error {
	if m.exploration < 0 {
		return fmt.Errorf("%w: exploration weight %v is negative", ErrInvalidConfiguration, m.exploration)
	}
	if m.episodes < 0 {
		return fmt.Errorf("%w: episodes %d is not positive", ErrInvalidConfiguration, m.episodes)
	}
	if m.episodes == 0 && m.duration <= 0 {
		return fmt.Errorf("%w: must specify a positive episode count or duration", ErrInvalidConfiguration)
	}
	if m.goroutines < 1 {
		return fmt.Errorf("%w: goroutines %d is not positive", ErrInvalidConfiguration, m.goroutines)
	}
	if m.cutoff < 0 {
		return fmt.Errorf("%w: cutoff %d is negative", ErrInvalidConfiguration, m.cutoff)
	}
	return nil
}

// buildTrees searches one independent tree per goroutine and returns all
// roots. Workers share nothing but the immutable start state; merging is
// a reduction performed after every worker completes.
func (m *MCTS) buildTrees(state game.State) ([]*node, error) {
	roots := make([]*node, m.goroutines)
	errs := make([]error, m.goroutines)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			rng := rand.New(rand.NewSource(m.seed + uint64(i)))
			roots[i], errs[i] = m.buildTree(state, rng, m.share(i))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return roots, nil
}

// share splits the episode budget across workers, distributing the
// remainder to the first workers. Zero means time-bounded only.
func (m *MCTS) share(worker int) int {
	if m.episodes == 0 {
		return 0
	}
	share := m.episodes / m.goroutines
	if worker < m.episodes%m.goroutines {
		share++
	}
	return share
}

func (m *MCTS) buildTree(state game.State, rng *rand.Rand, episodes int) (*node, error) {
	root := newNode(nil, state, "")

	var deadline time.Time
	if m.duration > 0 {
		deadline = time.Now().Add(m.duration)
	}

	for i := 0; ; i++ {
		if episodes > 0 && i >= episodes {
			break
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			break
		}
		if err := m.episode(root, rng); err != nil {
			return nil, err
		}
		m.metrics.AddEpisode()
	}
	return root, nil
}

// episode runs one select-expand-simulate-backpropagate iteration.
func (m *MCTS) episode(root *node, rng *rand.Rand) error {
	current := root
	for {
		next, expanded := current.selectOrExpand(m.exploration, m.randomExpand, rng)
		if expanded || next == current {
			current = next
			break
		}
		current = next
	}

	outcome, moves, err := rollout(current.state, m.policy, rng, m.cutoff)
	if err != nil {
		return err
	}
	m.metrics.AddRolloutMoves(moves)

	current.backup(outcome)
	return nil
}

// mergeStats folds the root children of all trees into per-move
// statistics, ordered by first appearance across workers.
func mergeStats(roots []*node) []ChildStat {
	index := make(map[game.Move]int)
	var stats []ChildStat
	for _, root := range roots {
		for i, child := range root.children {
			move := root.moves[i]
			j, ok := index[move]
			if !ok {
				j = len(stats)
				index[move] = j
				stats = append(stats, ChildStat{Move: move})
			}
			stats[j].Visits += child.visits
			stats[j].Wins += child.wins
		}
	}
	return stats
}

func bestStat(stats []ChildStat) ChildStat {
	best := 0
	maxRate := math.Inf(-1)
	for i, stat := range stats {
		if rate := stat.WinRate(); rate > maxRate {
			maxRate = rate
			best = i
		}
	}
	return stats[best]
}
