package observ

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func fakeClock(step time.Duration) func() time.Time {
	cur := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		cur = cur.Add(step)
		return cur
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(2 * time.Millisecond)

	idx := tm.Begin(PhaseRead)
	tm.End(idx, "12 curves")
	if err := tm.Measure(PhaseNormalize, func() (string, error) { return "", nil }); err != nil {
		t.Fatal(err)
	}
	boom := errors.New("boom")
	if err := tm.Measure(PhaseWrite, func() (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Fatalf("Measure must return fn error, got %v", err)
	}

	r := tm.Report()
	if len(r.Phases) != 3 {
		t.Fatalf("got %d phases", len(r.Phases))
	}
	if r.Phases[0].DurationMS != 2 || r.Phases[0].Note != "12 curves" {
		t.Fatalf("unexpected read phase %+v", r.Phases[0])
	}
	if r.Phases[2].Note != "failed" {
		t.Fatalf("failed phase note = %q", r.Phases[2].Note)
	}
	if r.TotalMS != 6 {
		t.Fatalf("total = %v", r.TotalMS)
	}

	s := tm.Summary()
	for _, want := range []string{"timings:", "read", "// 12 curves", "total"} {
		if !strings.Contains(s, want) {
			t.Fatalf("summary missing %q:\n%s", want, s)
		}
	}
}

func TestTimerEndOutOfRange(t *testing.T) {
	tm := NewTimer()
	tm.End(3, "ignored")
	if len(tm.Report().Phases) != 0 {
		t.Fatalf("expected empty report")
	}
}
