package collatz

import (
	"fmt"
	"math"

	"github.com/henderiw/collatzsearch/pkg/intervalset"
)

// DefaultReportInterval is the number of steps between two checkpoints.
const DefaultReportInterval = 10000

// firstBase is the first base under test; 1 through 4 are seeded as
// validated.
const firstBase = 4

type State int

const (
	Running State = iota
	CycleDetected
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case CycleDetected:
		return "CycleDetected"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type Option func(*Searcher)

func WithObserver(o Observer) Option {
	return func(s *Searcher) {
		s.observer = o
	}
}

// WithReportInterval sets the checkpoint cadence. 0 disables checkpoints.
func WithReportInterval(n uint64) Option {
	return func(s *Searcher) {
		s.reportInterval = n
	}
}

func WithMergeMode(m intervalset.MergeMode) Option {
	return func(s *Searcher) {
		s.mergeMode = m
	}
}

// Searcher walks successive bases through the Collatz step. validated
// holds every value known to reach the trivial cycle; unvalidated holds
// the values of the trajectory being traced.
type Searcher struct {
	current uint64
	base    uint64
	steps   uint64
	state   State
	cycleAt uint64

	reportInterval uint64
	mergeMode      intervalset.MergeMode
	observer       Observer

	unvalidated *intervalset.Set[uint64]
	validated   *intervalset.Set[uint64]
}

// New returns a Searcher starting its first trajectory at seed, with 1
// through 4 seeded as validated.
func New(seed uint64, opts ...Option) *Searcher {
	s := NewEmpty(seed, opts...)
	for v := uint64(1); v <= firstBase; v++ {
		s.validated.Insert(v)
	}
	return s
}

// NewEmpty returns a Searcher with nothing validated. Without seeding the
// validated set no base can ever be proven.
func NewEmpty(seed uint64, opts ...Option) *Searcher {
	s := &Searcher{
		current:        seed,
		base:           firstBase,
		reportInterval: DefaultReportInterval,
		observer:       NopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.unvalidated = intervalset.New[uint64](intervalset.WithMergeMode(s.mergeMode))
	s.validated = intervalset.New[uint64](intervalset.WithMergeMode(s.mergeMode))
	return s
}

// Step advances the search by one Collatz step. It returns CycleDetected
// once a trajectory revisits a value without reaching validated territory;
// after that Step does nothing. An overflow of the step or of the base
// counter leaves the searcher unchanged and is returned as an error
// wrapping ErrOverflow.
func (s *Searcher) Step() (State, error) {
	if s.state == CycleDetected {
		return s.state, nil
	}

	if s.reportInterval != 0 && s.steps%s.reportInterval == 0 {
		s.validated.Sort()
		s.observer.Checkpoint(s.steps, s.validated.Intervals())
	}

	next, err := Next(s.current)
	if err != nil {
		return s.state, err
	}

	revisit := s.unvalidated.Contains(next)
	proven := !revisit && s.validated.Contains(next)
	if proven && s.base == math.MaxUint64 {
		return s.state, fmt.Errorf("advancing base %d: %w", s.base, ErrOverflow)
	}

	if s.unvalidated.Insert(next) {
		s.current = next
		s.cycleAt = next
		s.state = CycleDetected
		s.steps++
		s.observer.CycleFound(next)
		return s.state, nil
	}

	if proven {
		base := s.base
		s.validated.Insert(base)
		s.validated.UnionFrom(s.unvalidated)
		s.unvalidated.Clear()
		s.base++
		s.current = s.base
		s.steps++
		s.observer.Proven(base, next)
		return s.state, nil
	}

	s.current = next
	s.steps++
	return s.state, nil
}

func (s *Searcher) Current() uint64 { return s.current }

// Base returns the starting value of the trajectory being traced.
func (s *Searcher) Base() uint64 { return s.base }

// Steps returns the number of Collatz steps taken so far.
func (s *Searcher) Steps() uint64 { return s.steps }

func (s *Searcher) State() State { return s.state }

// CycleValue returns the value the cycle was detected at.
func (s *Searcher) CycleValue() (uint64, bool) {
	return s.cycleAt, s.state == CycleDetected
}

func (s *Searcher) IsValidated(v uint64) bool { return s.validated.Contains(v) }

func (s *Searcher) Validated() []intervalset.Interval[uint64] { return s.validated.Intervals() }

func (s *Searcher) Unvalidated() []intervalset.Interval[uint64] { return s.unvalidated.Intervals() }
