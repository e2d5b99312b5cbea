package buttonnode

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Touches ---

// Touch is one pointer contact inside a TouchEvent. Coordinates are in
// world space; use LocationIn to express them relative to a node.
type Touch struct {
	ID     int
	X, Y   float64
	StartX float64
	StartY float64
}

// LocationIn returns the touch position in n's local coordinate space.
// A nil node yields world coordinates.
func (t Touch) LocationIn(n *Node) (float64, float64) {
	if n == nil {
		return t.X, t.Y
	}
	return n.WorldToLocal(t.X, t.Y)
}

// TouchEvent is a batch of touches in the same phase delivered to the same
// node within one frame. Node is nil for touches that began over nothing.
type TouchEvent struct {
	Phase   TouchPhase
	Node    *Node
	Touches []Touch
}

// First returns the first touch in the batch.
func (e TouchEvent) First() (Touch, bool) {
	if len(e.Touches) == 0 {
		return Touch{}, false
	}
	return e.Touches[0], true
}

// --- Per-pointer state ---

type pointerState struct {
	down      bool
	cancelled bool // gesture aborted; ignore until release
	startX    float64
	startY    float64
	lastX     float64
	lastY     float64
	target    *Node // node that received TouchBegan (implicit capture)
}

func (ps *pointerState) touch(id int) Touch {
	return Touch{ID: id, X: ps.lastX, Y: ps.lastY, StartX: ps.startX, StartY: ps.startY}
}

// --- Handler registry ---

type touchHandler struct {
	id uint32
	fn func(TouchEvent)
}

type handlerRegistry struct {
	touch  []touchHandler
	nextID uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.touch
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = touchHandler{}
			h.reg.touch = s[:len(s)-1]
			return
		}
	}
}

// OnTouch registers a scene-level callback that sees every touch event,
// including touches that began over no node. Scene-level handlers run before
// the per-node callback. This is the hook for custom hit testing on buttons
// that use a custom action.
func (s *Scene) OnTouch(fn func(TouchEvent)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.touch = append(s.handlers.touch, touchHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers}
}

// --- Hit testing ---

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending hit-testable nodes to buf. Skips Visible=false or
// Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Type == NodeTypeSprite {
		buf = append(buf, n)
	}
	for _, child := range n.sorted() {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if containsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// deliverable reports whether a captured node may still receive touches:
// not disposed, attached to this scene, and visible and interactable all
// the way up to the root.
func (s *Scene) deliverable(n *Node) bool {
	if n.disposed {
		return false
	}
	p := n
	for ; p.Parent != nil; p = p.Parent {
		if !p.Visible || !p.Interactable {
			return false
		}
	}
	return p == s.root && p.Visible && p.Interactable
}

// --- Input processing ---

// processInput is called from Scene.Update to handle all mouse and touch input.
// World transforms must be refreshed before calling it.
func (s *Scene) processInput() {
	s.batch = s.batch[:0]
	if !s.processInjectedInput() {
		if !s.syntheticHold {
			s.processMousePointer()
		}
		s.processTouchPointers()
	}
	s.dispatch(s.batch)
}

// processMousePointer handles the left mouse button as pointer 0.
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the touch-phase state machine for a single pointer.
// The node hit at press time captures the pointer until release or cancel.
func (s *Scene) processPointer(pointerID int, wx, wy float64, pressed bool) {
	ps := &s.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.cancelled = false
		ps.startX, ps.startY = wx, wy
		ps.lastX, ps.lastY = wx, wy
		ps.target = s.hitTest(wx, wy)
		s.queueTouch(&s.batch, TouchBegan, pointerID)

	case pressed && ps.down:
		if wx == ps.lastX && wy == ps.lastY {
			return
		}
		ps.lastX, ps.lastY = wx, wy
		if !ps.cancelled {
			s.queueTouch(&s.batch, TouchMoved, pointerID)
		}

	case !pressed && ps.down:
		ps.lastX, ps.lastY = wx, wy
		if !ps.cancelled {
			s.queueTouch(&s.batch, TouchEnded, pointerID)
		}
		*ps = pointerState{lastX: wx, lastY: wy}
	}
}

// queueTouch appends pointerID's current touch to the batch for its
// (target, phase) pair. A target that can no longer receive touches is
// released; the touch still reaches scene-level handlers with a nil node.
func (s *Scene) queueTouch(batch *[]TouchEvent, phase TouchPhase, pointerID int) {
	ps := &s.pointers[pointerID]
	if ps.target != nil && !s.deliverable(ps.target) {
		ps.target = nil
	}
	t := ps.touch(pointerID)
	b := *batch
	for i := range b {
		if b[i].Phase == phase && b[i].Node == ps.target {
			b[i].Touches = append(b[i].Touches, t)
			return
		}
	}
	*batch = append(b, TouchEvent{Phase: phase, Node: ps.target, Touches: []Touch{t}})
}

// CancelTouches aborts every in-flight gesture. Captured nodes receive
// TouchCancelled immediately; the pointers are ignored until released.
func (s *Scene) CancelTouches() {
	var batch []TouchEvent
	s.cancelPointers(&batch)
	s.dispatch(batch)
}

func (s *Scene) cancelPointers(batch *[]TouchEvent) {
	for i := range s.pointers {
		ps := &s.pointers[i]
		if !ps.down || ps.cancelled {
			continue
		}
		s.queueTouch(batch, TouchCancelled, i)
		ps.cancelled = true
		ps.target = nil
	}
}

// activeTouches reports whether any pointer is down and not cancelled.
func (s *Scene) activeTouches() bool {
	for i := range s.pointers {
		if s.pointers[i].down && !s.pointers[i].cancelled {
			return true
		}
	}
	return false
}

// --- Event dispatch ---

// dispatch delivers batched events in phase order: began, moved, ended,
// cancelled. Scene-level handlers first, then the node callback, then the
// ECS bridge.
func (s *Scene) dispatch(batch []TouchEvent) {
	if len(batch) == 0 {
		return
	}
	slices.SortStableFunc(batch, func(a, b TouchEvent) int {
		return int(a.Phase) - int(b.Phase)
	})
	for _, ev := range batch {
		for _, h := range s.handlers.touch {
			h.fn(ev)
		}
		if n := ev.Node; n != nil {
			var fn func(TouchEvent)
			switch ev.Phase {
			case TouchBegan:
				fn = n.OnTouchBegan
			case TouchMoved:
				fn = n.OnTouchMoved
			case TouchEnded:
				fn = n.OnTouchEnded
			case TouchCancelled:
				fn = n.OnTouchCancelled
			}
			if fn != nil {
				fn(ev)
			}
		}
		s.emitInteractionEvents(ev)
	}
}

// --- ECS bridge ---

func (s *Scene) emitInteractionEvents(ev TouchEvent) {
	if s.store == nil || ev.Node == nil || ev.Node.EntityID == 0 {
		return
	}
	for _, t := range ev.Touches {
		var lx, ly float64
		var inside bool
		if !ev.Node.disposed {
			lx, ly = ev.Node.WorldToLocal(t.X, t.Y)
			inside = containsLocal(ev.Node, lx, ly)
		}
		s.store.EmitEvent(InteractionEvent{
			Phase:     ev.Phase,
			EntityID:  ev.Node.EntityID,
			PointerID: t.ID,
			GlobalX:   t.X,
			GlobalY:   t.Y,
			LocalX:    lx,
			LocalY:    ly,
			Inside:    inside,
		})
	}
}
