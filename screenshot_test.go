package pageflip

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"turned", "turned"},
		{"drag-start", "drag-start"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSnapshotQueueAppend(t *testing.T) {
	b, _ := newTestBook(t, 1, nil)
	b.Snapshot("a")
	b.Snapshot("b")
	b.Snapshot("c")
	if diff := cmp.Diff([]string{"a", "b", "c"}, b.snapshotQueue); diff != "" {
		t.Errorf("queue mismatch (-want +got):\n%s", diff)
	}
}

// failingSnapRecorder refuses every snapshot.
type failingSnapRecorder struct {
	Recorder
	calls int
}

func (s *failingSnapRecorder) Snapshot(string) error {
	s.calls++
	return errors.New("disk full")
}

func TestSnapshotFlushedAfterPaint(t *testing.T) {
	b, _ := newTestBook(t, 2, nil)
	b.Flip(0).Target = 0

	var surf snapRecorder
	b.Snapshot("mid")
	b.Frame(&surf)

	if diff := cmp.Diff([]string{"mid"}, surf.labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	if len(b.snapshotQueue) != 0 {
		t.Errorf("queue not drained: %v", b.snapshotQueue)
	}

	b.Frame(&surf)
	if len(surf.labels) != 1 {
		t.Errorf("snapshot taken again on the next frame: %v", surf.labels)
	}
}

func TestSnapshotErrorsAreDropped(t *testing.T) {
	b, _ := newTestBook(t, 1, nil)
	var surf failingSnapRecorder
	b.Snapshot("x")
	b.Snapshot("y")
	b.Frame(&surf)

	if surf.calls != 2 {
		t.Errorf("Snapshot called %d times, want 2", surf.calls)
	}
	if len(b.snapshotQueue) != 0 {
		t.Errorf("queue not drained: %v", b.snapshotQueue)
	}
}

func TestSnapshotIgnoredBySurfaceWithout(t *testing.T) {
	b, _ := newTestBook(t, 1, nil)
	var r Recorder
	b.Snapshot("x")
	b.Frame(&r)
	if len(b.snapshotQueue) != 0 {
		t.Errorf("queue not drained: %v", b.snapshotQueue)
	}
}
