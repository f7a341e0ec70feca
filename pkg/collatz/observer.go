package collatz

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/henderiw/collatzsearch/pkg/intervalset"
)

// Observer receives the progress of a Searcher. Calls happen synchronously
// from Step.
type Observer interface {
	// Checkpoint is called every report interval with the sorted
	// validated intervals.
	Checkpoint(step uint64, validated []intervalset.Interval[uint64])
	// Proven is called when base reached the validated value at.
	Proven(base, at uint64)
	// CycleFound is called once, with the value that was visited twice.
	CycleFound(at uint64)
}

type NopObserver struct{}

func (NopObserver) Checkpoint(uint64, []intervalset.Interval[uint64]) {}
func (NopObserver) Proven(uint64, uint64)                             {}
func (NopObserver) CycleFound(uint64)                                 {}

// Observers fans every event out to each of its members in order.
type Observers []Observer

func (oo Observers) Checkpoint(step uint64, validated []intervalset.Interval[uint64]) {
	for _, o := range oo {
		o.Checkpoint(step, validated)
	}
}

func (oo Observers) Proven(base, at uint64) {
	for _, o := range oo {
		o.Proven(base, at)
	}
}

func (oo Observers) CycleFound(at uint64) {
	for _, o := range oo {
		o.CycleFound(at)
	}
}

// TextObserver writes one line per event to W.
type TextObserver struct {
	W io.Writer
}

func (r *TextObserver) Checkpoint(step uint64, validated []intervalset.Interval[uint64]) {
	fmt.Fprintf(r.W, "step %d validated %s\n", step, intervalset.Of(validated))
}

func (r *TextObserver) Proven(base, at uint64) {
	fmt.Fprintf(r.W, "conjecture validated for %d at %d\n", base, at)
}

func (r *TextObserver) CycleFound(at uint64) {
	fmt.Fprintf(r.W, "cycle found at %d\n", at)
}

// LogObserver reports checkpoints and cycles at verbosity 0 and every
// proven base at ProvenVerbosity.
type LogObserver struct {
	Log             logr.Logger
	ProvenVerbosity int
}

func (r *LogObserver) Checkpoint(step uint64, validated []intervalset.Interval[uint64]) {
	r.Log.Info("checkpoint", "step", step, "intervals", len(validated), "validated", intervalset.Of(validated).String())
}

func (r *LogObserver) Proven(base, at uint64) {
	r.Log.V(r.ProvenVerbosity).Info("conjecture validated", "base", base, "at", at)
}

func (r *LogObserver) CycleFound(at uint64) {
	r.Log.Info("cycle found", "at", at)
}
