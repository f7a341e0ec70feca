package collatz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"
	"k8s.io/klog/v2/ktesting"
)

func TestRun(t *testing.T) {
	cases := map[string]struct {
		searcher    func() *Searcher
		cancel      bool
		want        uint64
		expectedErr error
	}{
		"Cycle": {
			searcher: func() *Searcher {
				s := NewEmpty(4)
				s.unvalidated.Insert(2)
				return s
			},
			want: 2,
		},
		"FixedPoint": {
			searcher: func() *Searcher { return New(0) },
			want:     0,
		},
		"Overflow": {
			searcher:    func() *Searcher { return New(maxOdd + 1) },
			expectedErr: ErrOverflow,
		},
		"Canceled": {
			searcher:    func() *Searcher { return New(5) },
			cancel:      true,
			expectedErr: context.Canceled,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, ctx := ktesting.NewTestContext(t)
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()
			if tc.cancel {
				cancel()
			}

			s := tc.searcher()
			got, err := Run(ctx, s)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, CycleDetected, s.State())
		})
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(klog.NewContext(context.Background(), klog.Background()))
	defer cancel()
	rec := &recorder{}
	s := New(5, WithObserver(Observers{rec, provenHook(func(base, _ uint64) {
		if base == 100 {
			cancel()
		}
	})}))

	_, err := Run(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uint64(101), s.Base())
	assert.Equal(t, Running, s.State())
	assert.Len(t, rec.events, 97)
}

// provenHook calls the function on every proven base.
type provenHook func(base, at uint64)

func (provenHook) Checkpoint(uint64, []r64)  {}
func (h provenHook) Proven(base, at uint64) { h(base, at) }
func (provenHook) CycleFound(uint64)         {}
