package collatz

import (
	"context"

	"k8s.io/klog/v2"
)

// Run steps s until a cycle is found and returns the value it was found
// at. It stops early with the step error or with ctx.Err().
func Run(ctx context.Context, s *Searcher) (uint64, error) {
	log := klog.FromContext(ctx)
	log.V(1).Info("search started", "current", s.Current(), "base", s.Base(), "steps", s.Steps())

	for {
		select {
		case <-ctx.Done():
			log.V(1).Info("search stopped", "base", s.Base(), "steps", s.Steps(), "reason", ctx.Err())
			return 0, ctx.Err()
		default:
		}

		state, err := s.Step()
		if err != nil {
			log.Error(err, "search failed", "current", s.Current(), "base", s.Base(), "steps", s.Steps())
			return 0, err
		}
		if state == CycleDetected {
			at, _ := s.CycleValue()
			log.V(1).Info("search finished", "cycle", at, "steps", s.Steps())
			return at, nil
		}
	}
}
