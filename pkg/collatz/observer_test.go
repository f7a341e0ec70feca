package collatz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepUntilBase(t *testing.T, s *Searcher, base uint64) {
	t.Helper()
	for i := 0; i < 1000 && s.Base() < base; i++ {
		_, err := s.Step()
		require.NoError(t, err)
	}
	require.Equal(t, base, s.Base())
}

func TestTextObserver(t *testing.T) {
	var buf bytes.Buffer
	s := New(5, WithObserver(&TextObserver{W: &buf}))
	stepUntilBase(t, s, 6)

	s.observer.CycleFound(7)

	want := "step 0 validated [(1, 4)]\n" +
		"conjecture validated for 4 at 4\n" +
		"conjecture validated for 5 at 16\n" +
		"cycle found at 7\n"
	assert.Equal(t, want, buf.String())
}

func TestLogObserver(t *testing.T) {
	cases := map[string]struct {
		verbosity  int
		wantProven bool
	}{
		"Default": {
			verbosity: 0,
		},
		"Verbose": {
			verbosity:  2,
			wantProven: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var lines []string
			log := funcr.New(func(prefix, args string) {
				lines = append(lines, args)
			}, funcr.Options{Verbosity: tc.verbosity})

			s := New(5, WithObserver(&LogObserver{Log: log, ProvenVerbosity: 2}))
			stepUntilBase(t, s, 6)
			s.observer.CycleFound(7)

			out := strings.Join(lines, "\n")
			assert.Contains(t, out, `"msg"="checkpoint"`)
			assert.Contains(t, out, `"validated"="[(1, 4)]"`)
			assert.Contains(t, out, `"msg"="cycle found"`)
			assert.Contains(t, out, `"at"=7`)
			if tc.wantProven {
				assert.Contains(t, out, `"msg"="conjecture validated" "base"=5 "at"=16`)
				assert.Len(t, lines, 4)
			} else {
				assert.NotContains(t, out, "conjecture validated")
				assert.Len(t, lines, 2)
			}
		})
	}
}

func TestObservers(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	oo := Observers{a, NopObserver{}, b}

	oo.Checkpoint(3, []r64{{Low: 1, High: 4}})
	oo.Proven(9, 28)
	oo.CycleFound(11)

	for _, rec := range []*recorder{a, b} {
		assert.Equal(t, []uint64{3}, rec.checkpoints)
		assert.Equal(t, []string{"proven 9 at 28", "cycle at 11"}, rec.events)
	}
}
