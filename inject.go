package pageflip

// syntheticPointerEvent is one queued pointer sample in screen coordinates.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
}

// InjectPress queues a pointer press at the given screen coordinates. Queued
// events are consumed one per Frame, ahead of the tick.
func (b *Book) InjectPress(x, y float64) {
	b.injectQueue = append(b.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (b *Book) InjectMove(x, y float64) {
	b.injectQueue = append(b.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (b *Book) InjectRelease(x, y float64) {
	b.injectQueue = append(b.injectQueue, syntheticPointerEvent{screenX: x, screenY: y})
}

// InjectDrag queues a full drag: a press at (fromX, fromY), frames-2
// linearly interpolated moves, and a release at (toX, toY). The sequence
// consumes frames frames; the minimum is 2.
func (b *Book) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	b.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		b.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	b.InjectRelease(toX, toY)
}

// PendingInput returns the number of queued synthetic events.
func (b *Book) PendingInput() int {
	return len(b.injectQueue)
}

// processInjectedInput pops one queued event and feeds it through
// HandlePointer. It reports whether an event was consumed.
func (b *Book) processInjectedInput() bool {
	if len(b.injectQueue) == 0 {
		return false
	}
	evt := b.injectQueue[0]
	copy(b.injectQueue, b.injectQueue[1:])
	b.injectQueue = b.injectQueue[:len(b.injectQueue)-1]

	b.HandlePointer(evt.screenX, evt.screenY, evt.pressed)
	return true
}
