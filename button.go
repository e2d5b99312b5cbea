package buttonnode

import (
	"errors"
	"log"

	"gopkg.in/yaml.v3"
)

// ButtonState is the visual state of a button. It selects which of the
// three background slots is displayed.
type ButtonState uint8

const (
	StateNormal      ButtonState = iota // enabled, not pressed
	StateHighlighted                    // a touch is down on the button
	StateDisabled                       // presses have no effect
)

// String returns the state name.
func (s ButtonState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateHighlighted:
		return "highlighted"
	case StateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

const (
	// DefaultFontName is the font a new button title asks for. Register a
	// face under this name with RegisterFont to replace the fallback.
	DefaultFontName = "Chalkduster"
	// DefaultFontSize is the point size of a new button title.
	DefaultFontSize = 50.0

	// titleBaselineRatio places the title baseline this fraction of the
	// font size below the button center, which centers cap height.
	titleBaselineRatio = 0.4
	titleZIndex        = 10
)

// ErrDecodeUnsupported is returned when a ButtonNode is asked to construct
// itself from serialized data. Buttons are only built in code.
var ErrDecodeUnsupported = errors.New("buttonnode: decoding a ButtonNode is not supported")

// PressFunc is called after a successful press with the pressed button.
type PressFunc func(b *ButtonNode)

// Sounds names the sound ids a button plays. An empty id means no sound.
type Sounds struct {
	Normal   string // played on a successful release
	Disabled string // played when a disabled button is touched
}

// ButtonConfig gathers every optional constructor input. Zero fields fall
// back to defaults: no title, the empty texture, StateNormal, no sounds.
type ButtonConfig struct {
	Name       string
	Title      string
	Background Texture
	State      ButtonState
	Sounds     Sounds
	Player     SoundPlayer
	Action     PressFunc
}

// ButtonNode is a pressable widget made of a background sprite and a title
// label. Add Node() to a scene to display it.
//
// The button reacts to touch phases delivered by the Scene: touching an
// enabled button highlights it, dragging out of its bounds aborts the
// gesture, and releasing inside runs Action. Touching a disabled button
// plays its disabled sound.
type ButtonNode struct {
	// CanChangeState gates visual state changes caused by touches and by
	// disabling. Defaults to true.
	CanChangeState bool
	// CanPlaySounds gates every sound the button plays. Defaults to true.
	CanPlaySounds bool

	NormalSound   string
	DisabledSound string

	// Action runs after a press that began and ended inside the button.
	Action PressFunc

	state           ButtonState
	enabled         bool
	useCustomAction bool
	aborted         bool // the in-flight gesture left the bounds

	normal      Texture
	highlighted Texture
	disabled    Texture

	player SoundPlayer

	root       *Node
	background *Node
	label      *Node
}

// NewButton creates a button showing bg in the normal state.
func NewButton(bg Texture, action PressFunc) *ButtonNode {
	return NewButtonWithConfig(ButtonConfig{Background: bg, Action: action})
}

// NewButtonWithState creates a button with bg stored in the slot for state
// and displayed. A Disabled state also disables the button.
func NewButtonWithState(bg Texture, state ButtonState, action PressFunc) *ButtonNode {
	return NewButtonWithConfig(ButtonConfig{Background: bg, State: state, Action: action})
}

// NewTitledButton creates a button with a title and no backgrounds. Set the
// backgrounds later with SetBackground or SetBackgroundsNamed.
func NewTitledButton(title string, state ButtonState, action PressFunc) *ButtonNode {
	return NewButtonWithConfig(ButtonConfig{Title: title, State: state, Action: action})
}

// NewTitledButtonWithBackground creates a normal-state button with a title
// over bg.
func NewTitledButtonWithBackground(title string, bg Texture, action PressFunc) *ButtonNode {
	return NewButtonWithConfig(ButtonConfig{Title: title, Background: bg, Action: action})
}

// NewButtonNamed creates a button whose background is the image res
// resolves for name. Unknown names give the placeholder texture.
func NewButtonNamed(res *Resources, name string, state ButtonState, action PressFunc) *ButtonNode {
	return NewButtonWithConfig(ButtonConfig{
		Name:       name,
		Background: res.Texture(name),
		State:      state,
		Action:     action,
	})
}

// NewButtonWithConfig creates a button from cfg. Every other constructor
// goes through here.
func NewButtonWithConfig(cfg ButtonConfig) *ButtonNode {
	name := cfg.Name
	if name == "" {
		name = "button"
	}
	b := &ButtonNode{
		CanChangeState: true,
		CanPlaySounds:  true,
		NormalSound:    cfg.Sounds.Normal,
		DisabledSound:  cfg.Sounds.Disabled,
		Action:         cfg.Action,
		enabled:        true,
		player:         cfg.Player,
		root:           NewContainer(name),
		background:     NewSprite(name+".background", Texture{}),
		label:          NewText(name+".label", cfg.Title, DefaultFontName, DefaultFontSize),
	}
	b.root.UserData = b
	b.root.AddChild(b.background)
	b.SetSize(cfg.Background.Size())

	b.root.OnTouchBegan = b.touchBegan
	b.root.OnTouchMoved = b.touchMoved
	b.root.OnTouchEnded = b.touchEnded
	b.root.OnTouchCancelled = b.touchCancelled

	b.finalize(cfg.State, cfg.Background)
	return b
}

// finalize applies the initial state and background, styles and attaches
// the label, and turns on touch delivery.
func (b *ButtonNode) finalize(state ButtonState, bg Texture) {
	switch {
	case bg.IsEmpty():
		b.applyState(state)
		if state == StateDisabled {
			b.enabled = false
		}
	case state == StateDisabled:
		b.DisableWithBackground(bg)
	default:
		b.SetBackground(state, bg)
		b.applyState(state)
	}

	b.label.TextBlock.Color = ColorBlack
	b.label.TextBlock.Align = TextAlignCenter
	b.placeLabel()
	b.label.SetZIndex(titleZIndex)
	b.root.AddChild(b.label)
	b.root.Interactable = true
}

// UnmarshalYAML always fails with ErrDecodeUnsupported.
func (b *ButtonNode) UnmarshalYAML(*yaml.Node) error {
	return ErrDecodeUnsupported
}

// --- State ---

// State returns the current visual state.
func (b *ButtonNode) State() ButtonState { return b.state }

// Enabled reports whether the button accepts presses.
func (b *ButtonNode) Enabled() bool { return b.enabled }

// SetEnabled enables or disables the button. Enabling always returns it to
// the normal state. Disabling shows the disabled state when CanChangeState
// is set and the normal state otherwise.
func (b *ButtonNode) SetEnabled(enabled bool) {
	b.enabled = enabled
	switch {
	case enabled:
		b.applyState(StateNormal)
	case b.CanChangeState:
		b.applyState(StateDisabled)
	default:
		b.applyState(StateNormal)
	}
}

// SetState shows the background for state without changing any stored
// background. StateDisabled also disables the button; the other states
// leave the enabled flag alone.
func (b *ButtonNode) SetState(state ButtonState) {
	if state == StateDisabled {
		b.enabled = false
	}
	b.applyState(state)
}

func (b *ButtonNode) applyState(state ButtonState) {
	b.state = state
	b.background.SetTexture(b.slot(state))
}

func (b *ButtonNode) slot(state ButtonState) Texture {
	switch state {
	case StateHighlighted:
		return b.highlighted
	case StateDisabled:
		return b.disabled
	default:
		return b.normal
	}
}

// UseCustomAction reports whether built-in touch handling is switched off.
func (b *ButtonNode) UseCustomAction() bool { return b.useCustomAction }

// SetUseCustomAction switches built-in touch handling off (true) or on.
// While off the button receives no touches; a scene-level OnTouch handler
// can call ContainsPoint to react to touches itself.
func (b *ButtonNode) SetUseCustomAction(custom bool) {
	b.useCustomAction = custom
	b.root.Interactable = !custom
}

// SetProperties sets the enabled flag, the sound and state gates and both
// sound ids at once. The gates are stored before enabled is applied, so the
// resulting state reflects the new canChangeState.
func (b *ButtonNode) SetProperties(enabled, canPlaySound, canChangeState bool, sounds Sounds) {
	b.CanPlaySounds = canPlaySound
	b.CanChangeState = canChangeState
	b.NormalSound = sounds.Normal
	b.DisabledSound = sounds.Disabled
	b.SetEnabled(enabled)
}

// SetSounds sets the release and disabled-touch sound ids.
func (b *ButtonNode) SetSounds(normal, disabled string) {
	b.NormalSound = normal
	b.DisabledSound = disabled
}

// SetSoundPlayer sets where sound requests go. With no player the button
// stays silent.
func (b *ButtonNode) SetSoundPlayer(p SoundPlayer) {
	b.player = p
}

// --- Backgrounds ---

// SetBackground stores tex in the slot for state. If that state is showing,
// the new texture is displayed at once.
func (b *ButtonNode) SetBackground(state ButtonState, tex Texture) {
	switch state {
	case StateHighlighted:
		b.highlighted = tex
	case StateDisabled:
		b.disabled = tex
	default:
		b.normal = tex
	}
	if b.state == state {
		b.background.SetTexture(tex)
	}
}

// DisableWithBackground stores tex as the disabled background and disables
// the button.
func (b *ButtonNode) DisableWithBackground(tex Texture) {
	b.disabled = tex
	b.SetEnabled(false)
}

// SetBackgroundsNamed resolves the three image names through res, resizes
// the button to the normal image and re-applies the current state. An empty
// name clears that slot.
func (b *ButtonNode) SetBackgroundsNamed(res *Resources, normal, highlighted, disabled string) {
	b.normal = res.Texture(normal)
	b.highlighted = res.Texture(highlighted)
	b.disabled = res.Texture(disabled)
	b.SetSize(b.normal.Size())
	b.applyState(b.state)
}

// Background returns the texture currently displayed.
func (b *ButtonNode) Background() Texture {
	return b.background.Texture
}

// --- Title ---

// SetTitle replaces the label text. It does nothing after Dispose.
func (b *ButtonNode) SetTitle(title string) {
	if tb := b.label.TextBlock; tb != nil {
		tb.Content = title
	}
}

// Title returns the label text, or "" after Dispose.
func (b *ButtonNode) Title() string {
	if tb := b.label.TextBlock; tb != nil {
		return tb.Content
	}
	return ""
}

// SetTitleProperties restyles the label and re-centers it for the new size.
// It does nothing after Dispose.
func (b *ButtonNode) SetTitleProperties(fontName string, size float64, c Color) {
	tb := b.label.TextBlock
	if tb == nil {
		return
	}
	tb.FontName = fontName
	tb.FontSize = size
	tb.Color = c
	b.placeLabel()
}

// Label returns the title node. It belongs to the button for the button's
// whole life; restyle it, never detach it.
func (b *ButtonNode) Label() *Node {
	return b.label
}

func (b *ButtonNode) placeLabel() {
	if b.label.TextBlock == nil {
		return
	}
	b.label.SetPosition(0, b.label.TextBlock.FontSize*titleBaselineRatio)
}

// --- Geometry ---

// Node returns the button's root node, for adding it to a scene.
func (b *ButtonNode) Node() *Node {
	return b.root
}

// Size returns the button's display size.
func (b *ButtonNode) Size() (w, h float64) {
	return b.background.Width, b.background.Height
}

// SetSize sets the display size. The button stays centered on its position.
func (b *ButtonNode) SetSize(w, h float64) {
	b.background.SetSize(w, h)
	b.background.SetPivot(w/2, h/2)
	b.root.HitShape = HitRect{X: -w / 2, Y: -h / 2, Width: w, Height: h}
}

// Position returns the button center in its parent's space.
func (b *ButtonNode) Position() (x, y float64) {
	return b.root.X, b.root.Y
}

// SetPosition moves the button center in its parent's space.
func (b *ButtonNode) SetPosition(x, y float64) {
	b.root.SetPosition(x, y)
}

// Frame returns the button's bounds in its parent's space, including the
// root node's scale but not its rotation.
func (b *ButtonNode) Frame() Rect {
	w, h := b.Size()
	w *= b.root.ScaleX
	h *= b.root.ScaleY
	return Rect{X: b.root.X - w/2, Y: b.root.Y - h/2, Width: w, Height: h}
}

// ContainsPoint reports whether (x, y), in the parent's space, is inside
// the button.
func (b *ButtonNode) ContainsPoint(x, y float64) bool {
	return b.root.ContainsPoint(x, y)
}

// Dispose detaches the button and releases its nodes.
func (b *ButtonNode) Dispose() {
	b.root.Dispose()
}

// --- Touch handling ---

func (b *ButtonNode) touchBegan(TouchEvent) {
	if b.useCustomAction {
		return
	}
	b.aborted = false
	if b.enabled {
		if b.CanChangeState {
			b.applyState(StateHighlighted)
		}
		return
	}
	if b.CanPlaySounds {
		b.play(b.DisabledSound)
	}
}

// touchMoved highlights while the first touch is inside and shows normal
// while it is outside. Leaving the bounds once marks the gesture aborted,
// so the release never fires even if the touch comes back.
func (b *ButtonNode) touchMoved(ev TouchEvent) {
	if b.useCustomAction || !b.enabled {
		return
	}
	t, ok := ev.First()
	if ok && !b.containsTouch(t) {
		b.applyState(StateNormal)
		b.aborted = true
		return
	}
	if b.CanChangeState {
		b.applyState(StateHighlighted)
	}
}

func (b *ButtonNode) touchEnded(ev TouchEvent) {
	if b.useCustomAction || !b.enabled {
		return
	}
	b.applyState(StateNormal)
	aborted := b.aborted
	b.aborted = false
	if aborted || b.Action == nil {
		return
	}
	t, ok := ev.First()
	if !ok || !b.containsTouch(t) {
		return
	}
	if b.CanPlaySounds {
		b.play(b.NormalSound)
	}
	b.Action(b)
}

func (b *ButtonNode) touchCancelled(TouchEvent) {
	if b.useCustomAction {
		return
	}
	b.aborted = false
	if b.enabled {
		b.applyState(StateNormal)
	}
}

// containsTouch tests a touch against the button in its parent's space.
func (b *ButtonNode) containsTouch(t Touch) bool {
	x, y := t.LocationIn(b.root.Parent)
	return b.root.ContainsPoint(x, y)
}

// play requests sound id. An empty id is never sent to the player.
func (b *ButtonNode) play(id string) {
	if id == "" {
		log.Printf("buttonnode: %s: sound not set, nothing played", b.root.Name)
		return
	}
	if b.player == nil {
		if globalDebug {
			log.Printf("buttonnode: %s: no sound player for %q", b.root.Name, id)
		}
		return
	}
	b.player.PlaySound(id)
}
