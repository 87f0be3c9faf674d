package pageflip

import "strings"

// Snapshotter is implemented by drawing surfaces that can save what they
// currently show.
type Snapshotter interface {
	Snapshot(label string) error
}

// Snapshot queues a labeled capture of the drawing surface, taken at the
// end of the next Frame once every fold is painted. Surfaces that do not
// implement Snapshotter ignore it.
func (b *Book) Snapshot(label string) {
	b.snapshotQueue = append(b.snapshotQueue, label)
}

// flushSnapshots hands every queued label to s. Called at the end of Frame.
func (b *Book) flushSnapshots(s DrawingSurface) {
	if len(b.snapshotQueue) == 0 {
		return
	}
	sn, ok := s.(Snapshotter)
	if !ok {
		Logger().Debug("pageflip: surface cannot snapshot", "dropped", len(b.snapshotQueue))
		b.snapshotQueue = b.snapshotQueue[:0]
		return
	}
	for _, label := range b.snapshotQueue {
		if err := sn.Snapshot(label); err != nil {
			Logger().Warn("pageflip: snapshot", "label", label, "err", err)
		}
	}
	b.snapshotQueue = b.snapshotQueue[:0]
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
