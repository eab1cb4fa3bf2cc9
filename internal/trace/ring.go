package trace

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// RingTracer holds the most recent events of a run in memory. The CLI uses
// it at level error and dumps it only when the run fails.
type RingTracer struct {
	mu    sync.Mutex
	buf   []Event
	total uint64 // events stored since creation
	level Level
	start time.Time
}

// NewRingTracer returns a ring holding up to capacity events (4096 if
// capacity is not positive).
func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = 4096
	}
	return &RingTracer{
		buf:   make([]Event, capacity),
		level: level,
		start: time.Now(),
	}
}

func (t *RingTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	stored := *ev
	stored.Seq = NextSeq()

	t.mu.Lock()
	t.buf[t.total%uint64(len(t.buf))] = stored
	t.total++
	t.mu.Unlock()
}

// Snapshot returns the held events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	size := uint64(len(t.buf))
	if t.total <= size {
		return append([]Event(nil), t.buf[:t.total]...)
	}
	head := t.total % size
	out := make([]Event, 0, size)
	out = append(out, t.buf[head:]...)
	return append(out, t.buf[:head]...)
}

// Overwritten reports how many events were lost to wrap-around.
func (t *RingTracer) Overwritten() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n := uint64(len(t.buf)); t.total > n {
		return t.total - n
	}
	return 0
}

// Dump writes the held events to w. The text format starts with a note when
// earlier events were overwritten; NDJSON output stays one event per line.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	if n := t.Overwritten(); n > 0 && format != FormatNDJSON {
		if _, err := fmt.Fprintf(w, "... %d earlier event(s) overwritten\n", n); err != nil {
			return err
		}
	}
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format, t.start)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error { return nil }
func (t *RingTracer) Close() error { return nil }
func (t *RingTracer) Level() Level { return t.level }

func (t *RingTracer) Enabled() bool {
	return t.level > LevelOff
}
