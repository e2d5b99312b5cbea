package buttonnode

type injectKind uint8

const (
	injectPress injectKind = iota
	injectMove
	injectRelease
	injectCancel
)

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates (identical to world coordinates in this scene graph).
type syntheticPointerEvent struct {
	x, y float64
	kind injectKind
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next frame's input pass and replaces real mouse
// and touch polling for that frame. The injected pointer stays down until an
// injected release or cancel; real mouse polling is suspended meanwhile.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, kind: injectPress})
}

// InjectMove queues a pointer move with the button held down. Use it between
// InjectPress and InjectRelease.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, kind: injectMove})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, kind: injectRelease})
}

// InjectCancel queues a system cancellation of every in-flight gesture,
// followed by the pointer coming up where it was.
func (s *Scene) InjectCancel() {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{kind: injectCancel})
}

// InjectTap is a convenience that queues a press followed by a release at the
// same screen coordinates. Consumes two frames.
func (s *Scene) InjectTap(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), linearly interpolated moves
// over frames-2 intermediate frames, and a release at (toX, toY).
// Minimum frames is 2 (press + release).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// PendingInjections returns the number of queued synthetic events.
func (s *Scene) PendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the pointer state machine as pointer 0. Returns true if an event
// was consumed (real input is skipped this frame).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case injectPress:
		s.syntheticHold = true
		s.processPointer(0, evt.x, evt.y, true)
	case injectMove:
		ps := &s.pointers[0]
		if !ps.down {
			// A move without a press is a hover; nothing to deliver.
			ps.lastX, ps.lastY = evt.x, evt.y
			return true
		}
		s.processPointer(0, evt.x, evt.y, true)
	case injectRelease:
		s.syntheticHold = false
		s.processPointer(0, evt.x, evt.y, false)
	case injectCancel:
		s.syntheticHold = false
		s.cancelPointers(&s.batch)
		ps := &s.pointers[0]
		if ps.down {
			s.processPointer(0, ps.lastX, ps.lastY, false)
		}
	}
	return true
}
