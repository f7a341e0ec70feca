package intervalset

import "fmt"

// MergeMode controls how far a merge cascades through a set.
type MergeMode int

const (
	// MergeCoalesce keeps absorbing intervals that touch a merged result
	// until none is left.
	MergeCoalesce MergeMode = iota
	// MergeSingle merges a new point with at most two intervals and never
	// re-scans after a union merge. A point bridging three or more
	// mutually adjacent intervals is left partially merged.
	MergeSingle
)

func (m MergeMode) String() string {
	switch m {
	case MergeCoalesce:
		return "coalesce"
	case MergeSingle:
		return "single"
	default:
		return fmt.Sprintf("MergeMode(%d)", int(m))
	}
}

func ParseMergeMode(s string) (MergeMode, error) {
	switch s {
	case "coalesce", "":
		return MergeCoalesce, nil
	case "single":
		return MergeSingle, nil
	}
	return 0, fmt.Errorf("unknown merge mode %q, expected coalesce or single", s)
}

type options struct {
	mode MergeMode
}

type Option func(*options)

func WithMergeMode(m MergeMode) Option {
	return func(o *options) {
		o.mode = m
	}
}
