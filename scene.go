package buttonnode

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, touch events on nodes with a non-zero EntityID are
// forwarded to the store, one InteractionEvent per touch.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries touch data for the ECS bridge.
type InteractionEvent struct {
	Phase     TouchPhase
	EntityID  uint32
	PointerID int
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	// Inside reports whether the touch is within the node's hit region.
	Inside bool
}

const defaultCommandCap = 256

// Scene is the top-level object that owns the node tree, input state and
// draw buffers.
type Scene struct {
	root  *Node
	store EntityStore
	debug bool

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes. Empty means
	// DefaultScreenshotDir.
	ScreenshotDir string

	commands []drawCommand

	handlers     handlerRegistry
	pointers     [maxPointers]pointerState
	hitBuf       []*Node
	batch        []TouchEvent
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string
	// syntheticHold is set while an injected press is down, so waiting
	// frames do not poll the real mouse or cancel on focus loss.
	syntheticHold bool

	updateFunc func() error
}

// NewScene creates a new scene with a pre-created, interactable root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:     root,
		commands: make([]drawCommand, 0, defaultCommandCap),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// AddChild attaches n to the scene root.
func (s *Scene) AddChild(n *Node) {
	s.root.AddChild(n)
}

// Update refreshes world transforms, advances an attached test runner and
// processes input. Gestures in flight are cancelled when the window loses
// focus.
func (s *Scene) Update() {
	s.refreshTransforms()
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	if len(s.injectQueue) == 0 && !s.syntheticHold && s.activeTouches() && !ebiten.IsFocused() {
		s.CancelTouches()
	}
	s.processInput()
}

// refreshTransforms brings every world transform up to date so hit testing
// sees this frame's positions.
func (s *Scene) refreshTransforms() {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
}

// Draw traverses the scene tree and draws it onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.RGBA())
	}
	s.commands = s.commands[:0]
	s.traverse(s.root, identityTransform, 1.0, false)
	s.submit(screen)
	s.flushScreenshots(screen)
	if s.debug {
		debugLogFrame(len(s.commands))
	}
}

// SetUpdateFunc sets a callback that Run calls once per frame before the
// scene updates. Returning an error stops the loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetTestRunner attaches a TestRunner to the scene. The runner steps once
// per Update, before input is processed.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, deep trees and font or texture fallbacks are reported, and
// per-frame command counts are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// and resource operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
