package buttonnode

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// --- helpers ---

type recordingPlayer struct {
	played []string
}

func (p *recordingPlayer) PlaySound(id string) bool {
	p.played = append(p.played, id)
	return true
}

func testTexture(name string, w, h int) Texture {
	return NewTexture(name, ebiten.NewImage(w, h))
}

// captureLog redirects the standard logger for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

// buttonFixture is a 200x100 button centered at (300, 200) in a scene, so
// its bounds are x 200..400, y 150..250.
type buttonFixture struct {
	scene   *Scene
	button  *ButtonNode
	player  *recordingPlayer
	normal  Texture
	high    Texture
	disable Texture
	presses []*ButtonNode
}

func newButtonFixture(t *testing.T, state ButtonState) *buttonFixture {
	t.Helper()
	f := &buttonFixture{
		scene:   NewScene(),
		player:  &recordingPlayer{},
		normal:  testTexture("normal", 200, 100),
		high:    testTexture("highlighted", 200, 100),
		disable: testTexture("disabled", 200, 100),
	}
	f.button = NewButtonWithConfig(ButtonConfig{
		Title:      "Press me!",
		Background: f.normal,
		Sounds:     Sounds{Normal: "click.wav", Disabled: "buzz.wav"},
		Player:     f.player,
		Action:     func(b *ButtonNode) { f.presses = append(f.presses, b) },
	})
	f.button.SetBackground(StateHighlighted, f.high)
	f.button.SetBackground(StateDisabled, f.disable)
	f.button.SetState(state)
	f.button.SetPosition(300, 200)
	f.scene.AddChild(f.button.Node())
	return f
}

// drain runs input frames until every injected event has been consumed.
func drain(s *Scene) {
	for s.PendingInjections() > 0 {
		s.refreshTransforms()
		s.processInput()
	}
}

// frame runs exactly one input frame.
func frame(s *Scene) {
	s.refreshTransforms()
	s.processInput()
}

// --- state names ---

func TestButtonStateString(t *testing.T) {
	tests := []struct {
		s    ButtonState
		want string
	}{
		{StateNormal, "normal"},
		{StateHighlighted, "highlighted"},
		{StateDisabled, "disabled"},
		{ButtonState(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("ButtonState(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

// --- construction ---

func TestButtonConstructorsFinalize(t *testing.T) {
	bg := testTexture("bg", 120, 40)

	tests := []struct {
		name        string
		build       func() *ButtonNode
		wantState   ButtonState
		wantEnabled bool
		wantBG      Texture
		wantTitle   string
		wantW       float64
	}{
		{"background", func() *ButtonNode { return NewButton(bg, nil) }, StateNormal, true, bg, "", 120},
		{"background highlighted", func() *ButtonNode { return NewButtonWithState(bg, StateHighlighted, nil) }, StateHighlighted, true, bg, "", 120},
		{"background disabled", func() *ButtonNode { return NewButtonWithState(bg, StateDisabled, nil) }, StateDisabled, false, bg, "", 120},
		{"title", func() *ButtonNode { return NewTitledButton("Go", StateNormal, nil) }, StateNormal, true, Texture{}, "Go", 0},
		{"title disabled", func() *ButtonNode { return NewTitledButton("Go", StateDisabled, nil) }, StateDisabled, false, Texture{}, "Go", 0},
		{"title background", func() *ButtonNode { return NewTitledButtonWithBackground("Go", bg, nil) }, StateNormal, true, bg, "Go", 120},
		{"config", func() *ButtonNode {
			return NewButtonWithConfig(ButtonConfig{Title: "Go", Background: bg, State: StateHighlighted})
		}, StateHighlighted, true, bg, "Go", 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.build()
			if b.State() != tt.wantState {
				t.Errorf("State() = %v, want %v", b.State(), tt.wantState)
			}
			if b.Enabled() != tt.wantEnabled {
				t.Errorf("Enabled() = %v, want %v", b.Enabled(), tt.wantEnabled)
			}
			if b.Background() != tt.wantBG {
				t.Errorf("Background() = %+v, want %+v", b.Background(), tt.wantBG)
			}
			if b.Background() != b.slot(b.State()) {
				t.Error("displayed background does not match the slot for the state")
			}
			if b.Title() != tt.wantTitle {
				t.Errorf("Title() = %q, want %q", b.Title(), tt.wantTitle)
			}
			if w, _ := b.Size(); w != tt.wantW {
				t.Errorf("width = %v, want %v", w, tt.wantW)
			}
			if !b.Node().Interactable {
				t.Error("root should be interactable after construction")
			}
			if !b.CanChangeState || !b.CanPlaySounds {
				t.Error("CanChangeState and CanPlaySounds should default to true")
			}
		})
	}
}

func TestButtonLabelDefaults(t *testing.T) {
	b := NewTitledButton("Play", StateNormal, nil)
	label := b.Label()

	if label.Parent != b.Node() {
		t.Fatal("label should be a child of the button root")
	}
	tb := label.TextBlock
	if tb.FontName != DefaultFontName {
		t.Errorf("FontName = %q, want %q", tb.FontName, DefaultFontName)
	}
	if tb.FontSize != 50 {
		t.Errorf("FontSize = %v, want 50", tb.FontSize)
	}
	if tb.Color != ColorBlack {
		t.Errorf("Color = %+v, want black", tb.Color)
	}
	if label.ZIndex != 10 {
		t.Errorf("ZIndex = %d, want 10", label.ZIndex)
	}
	if label.Y != 20 {
		t.Errorf("label Y = %v, want 20 (0.4 * font size below center)", label.Y)
	}
	sorted := b.Node().sorted()
	if sorted[len(sorted)-1] != label {
		t.Error("label should draw above the background")
	}
}

func TestButtonEquivalentConstructionsMatch(t *testing.T) {
	bg := testTexture("bg", 64, 32)
	a := NewTitledButtonWithBackground("Same", bg, nil)
	b := NewButtonWithConfig(ButtonConfig{Title: "Same", Background: bg})

	if a.State() != b.State() || a.Enabled() != b.Enabled() || a.Background() != b.Background() {
		t.Error("equivalent constructors produced different state")
	}
	aw, ah := a.Size()
	bw, bh := b.Size()
	if aw != bw || ah != bh {
		t.Errorf("sizes differ: %vx%v vs %vx%v", aw, ah, bw, bh)
	}
	if a.Label().Y != b.Label().Y || a.Title() != b.Title() {
		t.Error("labels differ")
	}
}

func TestButtonUnmarshalUnsupported(t *testing.T) {
	var b ButtonNode
	err := yaml.Unmarshal([]byte("title: nope\n"), &b)
	if !errors.Is(err, ErrDecodeUnsupported) {
		t.Errorf("yaml.Unmarshal error = %v, want ErrDecodeUnsupported", err)
	}
}

// --- enabled transitions ---

func TestButtonSetEnabled(t *testing.T) {
	tests := []struct {
		name           string
		canChangeState bool
		enabled        bool
		want           ButtonState
	}{
		{"enable", true, true, StateNormal},
		{"disable", true, false, StateDisabled},
		{"enable locked", false, true, StateNormal},
		{"disable locked", false, false, StateNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newButtonFixture(t, StateHighlighted)
			f.button.CanChangeState = tt.canChangeState
			f.button.SetEnabled(tt.enabled)

			if got := f.button.State(); got != tt.want {
				t.Errorf("State() = %v, want %v", got, tt.want)
			}
			if f.button.Enabled() != tt.enabled {
				t.Errorf("Enabled() = %v, want %v", f.button.Enabled(), tt.enabled)
			}
			wantBG := f.normal
			if tt.want == StateDisabled {
				wantBG = f.disable
			}
			if f.button.Background() != wantBG {
				t.Errorf("Background() = %q, want %q", f.button.Background().Name, wantBG.Name)
			}
		})
	}
}

func TestButtonDisableWithBackground(t *testing.T) {
	b := NewButton(testTexture("n", 10, 10), nil)
	off := testTexture("off", 10, 10)
	b.DisableWithBackground(off)

	if b.Enabled() {
		t.Error("button should be disabled")
	}
	if b.State() != StateDisabled {
		t.Errorf("State() = %v, want disabled", b.State())
	}
	if b.Background() != off {
		t.Error("disabled background should be displayed")
	}
}

func TestButtonSetBackgroundOnlyRedrawsCurrentState(t *testing.T) {
	normal := testTexture("n", 10, 10)
	b := NewButton(normal, nil)

	b.SetBackground(StateHighlighted, testTexture("h", 10, 10))
	if b.Background() != normal {
		t.Error("setting another state's background should not change the display")
	}
	if !b.Enabled() {
		t.Error("SetBackground should never change enabled")
	}

	b.SetBackground(StateDisabled, testTexture("d", 10, 10))
	if !b.Enabled() || b.State() != StateNormal {
		t.Error("storing the disabled background should not disable the button")
	}

	replaced := testTexture("n2", 10, 10)
	b.SetBackground(StateNormal, replaced)
	if b.Background() != replaced {
		t.Error("replacing the current state's background should display it")
	}
}

func TestButtonSetPropertiesAppliesGatesFirst(t *testing.T) {
	f := newButtonFixture(t, StateNormal)
	f.button.SetProperties(false, false, false, Sounds{Normal: "a", Disabled: "b"})

	if f.button.State() != StateNormal {
		t.Errorf("State() = %v, want normal (canChangeState false applies before enabled)", f.button.State())
	}
	if f.button.Enabled() {
		t.Error("button should be disabled")
	}
	if f.button.CanPlaySounds || f.button.CanChangeState {
		t.Error("gates not applied")
	}
	if f.button.NormalSound != "a" || f.button.DisabledSound != "b" {
		t.Errorf("sounds = %q/%q", f.button.NormalSound, f.button.DisabledSound)
	}

	f.button.SetProperties(false, true, true, Sounds{})
	if f.button.State() != StateDisabled {
		t.Errorf("State() = %v, want disabled", f.button.State())
	}
}

func TestButtonSetBackgroundsNamed(t *testing.T) {
	res := NewResources(nil)
	res.RegisterImage("On", ebiten.NewImage(80, 30))
	res.RegisterImage("OnHi", ebiten.NewImage(80, 30))
	_ = captureLog(t)

	b := NewTitledButton("x", StateHighlighted, nil)
	b.SetBackgroundsNamed(res, "On", "OnHi", "")

	if w, h := b.Size(); w != 80 || h != 30 {
		t.Errorf("Size() = %vx%v, want 80x30", w, h)
	}
	if b.Background().Name != "OnHi" {
		t.Errorf("Background() = %q, want OnHi", b.Background().Name)
	}
	if !b.slot(StateDisabled).IsEmpty() {
		t.Error("empty name should leave the disabled slot empty")
	}
	if !b.ContainsPoint(39, 14) || b.ContainsPoint(41, 0) {
		t.Error("hit region should follow the normal image size")
	}

	b.SetBackgroundsNamed(res, "On", "Missing", "")
	if !b.slot(StateHighlighted).IsPlaceholder() {
		t.Error("unknown name should resolve to the placeholder")
	}
}

func TestButtonSetTitleProperties(t *testing.T) {
	b := NewTitledButton("x", StateNormal, nil)
	red := Color{R: 1, A: 1}
	b.SetTitleProperties("Mono", 20, red)

	tb := b.Label().TextBlock
	if tb.FontName != "Mono" || tb.FontSize != 20 || tb.Color != red {
		t.Errorf("TextBlock = %+v", *tb)
	}
	if b.Label().Y != 8 {
		t.Errorf("label Y = %v, want 8", b.Label().Y)
	}

	b.SetTitle("PUSH HERE")
	if b.Title() != "PUSH HERE" {
		t.Errorf("Title() = %q", b.Title())
	}
}

// --- touches ---

func TestButtonFullGesture(t *testing.T) {
	f := newButtonFixture(t, StateNormal)

	f.scene.InjectPress(300, 200)
	frame(f.scene)
	if f.button.State() != StateHighlighted {
		t.Fatalf("after press State() = %v, want highlighted", f.button.State())
	}
	if f.button.Background() != f.high {
		t.Error("highlighted background should be displayed")
	}

	f.scene.InjectMove(320, 210)
	frame(f.scene)
	if f.button.State() != StateHighlighted {
		t.Errorf("after inside move State() = %v, want highlighted", f.button.State())
	}

	f.scene.InjectRelease(320, 210)
	frame(f.scene)
	if f.button.State() != StateNormal {
		t.Errorf("after release State() = %v, want normal", f.button.State())
	}
	if len(f.presses) != 1 || f.presses[0] != f.button {
		t.Errorf("Action calls = %d, want 1 with the button", len(f.presses))
	}
	if len(f.player.played) != 1 || f.player.played[0] != "click.wav" {
		t.Errorf("played = %v, want [click.wav]", f.player.played)
	}
}

// Leaving the bounds shows normal; coming back highlights again, but the
// release still does not fire.
func TestButtonGestureLeavingBoundsNeverFires(t *testing.T) {
	tests := []struct {
		name     string
		releaseX float64
	}{
		{"release outside", 500},
		{"release back inside", 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newButtonFixture(t, StateNormal)
			f.scene.InjectPress(300, 200)
			f.scene.InjectMove(450, 200)
			f.scene.InjectMove(300, 200)
			f.scene.InjectRelease(tt.releaseX, 200)

			f.scene.refreshTransforms()
			f.scene.processInput() // press
			f.scene.processInput() // move out
			if f.button.State() != StateNormal {
				t.Errorf("after leaving State() = %v, want normal", f.button.State())
			}
			f.scene.processInput() // move back
			if f.button.State() != StateHighlighted {
				t.Errorf("after moving back State() = %v, want highlighted", f.button.State())
			}
			f.scene.processInput() // release

			if len(f.presses) != 0 {
				t.Errorf("Action called %d times, want 0", len(f.presses))
			}
			if len(f.player.played) != 0 {
				t.Errorf("played = %v, want none", f.player.played)
			}
		})
	}
}

func TestButtonReleaseOutsideWithoutMove(t *testing.T) {
	f := newButtonFixture(t, StateNormal)
	f.scene.InjectPress(300, 200)
	f.scene.InjectRelease(10, 10)
	drain(f.scene)

	if len(f.presses) != 0 {
		t.Error("release outside the bounds should not press")
	}
	if f.button.State() != StateNormal {
		t.Errorf("State() = %v, want normal", f.button.State())
	}
}

func TestButtonCancel(t *testing.T) {
	f := newButtonFixture(t, StateNormal)
	f.scene.InjectPress(300, 200)
	frame(f.scene)
	f.scene.InjectCancel()
	frame(f.scene)

	if f.button.State() != StateNormal {
		t.Errorf("State() = %v, want normal", f.button.State())
	}
	if len(f.presses) != 0 || len(f.player.played) != 0 {
		t.Errorf("cancel produced presses=%d sounds=%v", len(f.presses), f.player.played)
	}

	// The next gesture works normally.
	f.scene.InjectTap(300, 200)
	drain(f.scene)
	if len(f.presses) != 1 {
		t.Errorf("Action calls after cancel = %d, want 1", len(f.presses))
	}
}

func TestButtonDisabledTouch(t *testing.T) {
	f := newButtonFixture(t, StateDisabled)
	f.scene.InjectTap(300, 200)
	drain(f.scene)

	if f.button.State() != StateDisabled {
		t.Errorf("State() = %v, want disabled", f.button.State())
	}
	if len(f.player.played) != 1 || f.player.played[0] != "buzz.wav" {
		t.Errorf("played = %v, want [buzz.wav]", f.player.played)
	}
	if len(f.presses) != 0 {
		t.Error("disabled button should not press")
	}
}

func TestButtonDisabledTouchEmptySound(t *testing.T) {
	logs := captureLog(t)
	f := newButtonFixture(t, StateDisabled)
	f.button.DisabledSound = ""
	f.scene.InjectPress(300, 200)
	frame(f.scene)

	if len(f.player.played) != 0 {
		t.Errorf("played = %v, want none", f.player.played)
	}
	if !strings.Contains(logs.String(), "sound not set") {
		t.Errorf("expected a diagnostic, got %q", logs.String())
	}
}

func TestButtonSoundGates(t *testing.T) {
	f := newButtonFixture(t, StateNormal)
	f.button.CanPlaySounds = false
	f.scene.InjectTap(300, 200)
	drain(f.scene)

	if len(f.presses) != 1 {
		t.Errorf("Action calls = %d, want 1", len(f.presses))
	}
	if len(f.player.played) != 0 {
		t.Errorf("played = %v with CanPlaySounds off", f.player.played)
	}
}

func TestButtonNoActionPlaysNoSound(t *testing.T) {
	f := newButtonFixture(t, StateNormal)
	f.button.Action = nil
	f.scene.InjectTap(300, 200)
	drain(f.scene)

	if len(f.player.played) != 0 {
		t.Errorf("played = %v, want none without an action", f.player.played)
	}
}

func TestButtonCanChangeStateOff(t *testing.T) {
	f := newButtonFixture(t, StateNormal)
	f.button.CanChangeState = false

	f.scene.InjectPress(300, 200)
	frame(f.scene)
	if f.button.State() != StateNormal {
		t.Errorf("State() = %v, want normal", f.button.State())
	}
	f.scene.InjectMove(310, 200)
	frame(f.scene)
	if f.button.State() != StateNormal {
		t.Errorf("State() after move = %v, want normal", f.button.State())
	}
	f.scene.InjectRelease(310, 200)
	frame(f.scene)
	if len(f.presses) != 1 {
		t.Errorf("Action calls = %d, want 1", len(f.presses))
	}
}

func TestButtonUseCustomAction(t *testing.T) {
	f := newButtonFixture(t, StateNormal)
	f.button.SetUseCustomAction(true)

	var custom int
	f.scene.OnTouch(func(ev TouchEvent) {
		if ev.Phase != TouchBegan {
			return
		}
		touch, _ := ev.First()
		if f.button.ContainsPoint(touch.LocationIn(f.scene.Root())) {
			custom++
		}
	})

	f.scene.InjectTap(300, 200)
	drain(f.scene)

	if f.button.State() != StateNormal {
		t.Errorf("State() = %v, want normal", f.button.State())
	}
	if len(f.presses) != 0 || len(f.player.played) != 0 {
		t.Error("built-in handling should be off")
	}
	if custom != 1 {
		t.Errorf("custom hit count = %d, want 1", custom)
	}

	f.button.SetUseCustomAction(false)
	f.scene.InjectTap(300, 200)
	drain(f.scene)
	if len(f.presses) != 1 {
		t.Errorf("Action calls after re-enabling = %d, want 1", len(f.presses))
	}
}

func TestButtonInsideTransformedParent(t *testing.T) {
	s := NewScene()
	panel := NewContainer("panel")
	panel.Interactable = true
	panel.SetPosition(100, 100)
	panel.SetScale(2, 2)
	s.AddChild(panel)

	var pressed int
	b := NewButton(testTexture("bg", 50, 20), func(*ButtonNode) { pressed++ })
	b.SetPosition(50, 50) // world center (200, 200), world size 100x40
	panel.AddChild(b.Node())

	s.InjectPress(245, 215)
	s.InjectMove(240, 210)
	s.InjectRelease(240, 210)
	drain(s)
	if pressed != 1 {
		t.Errorf("pressed = %d, want 1", pressed)
	}

	// The world-space button spans x 150..250, so 140 is outside.
	s.InjectPress(200, 200)
	s.InjectMove(140, 200)
	s.InjectRelease(200, 200)
	drain(s)
	if pressed != 1 {
		t.Errorf("pressed = %d after leaving bounds, want 1", pressed)
	}
}

func TestButtonDisposedMidGesture(t *testing.T) {
	f := newButtonFixture(t, StateNormal)
	f.scene.InjectPress(300, 200)
	frame(f.scene)
	f.button.Dispose()

	f.scene.InjectRelease(300, 200)
	frame(f.scene)
	if len(f.presses) != 0 {
		t.Error("disposed button should not receive the release")
	}
	if !f.button.Node().IsDisposed() {
		t.Error("root should be disposed")
	}
}

func TestButtonSetStateDisabledDisables(t *testing.T) {
	f := newButtonFixture(t, StateNormal)
	f.button.SetState(StateDisabled)

	if f.button.Enabled() {
		t.Fatal("SetState(StateDisabled) should disable the button")
	}
	if f.button.Background() != f.disable {
		t.Error("disabled background should be shown")
	}

	f.scene.InjectTap(300, 200)
	drain(f.scene)
	if f.button.State() != StateDisabled {
		t.Errorf("State() after tap = %v, want disabled", f.button.State())
	}
	if len(f.presses) != 0 {
		t.Errorf("Action calls = %d, want 0", len(f.presses))
	}
	if len(f.player.played) != 1 || f.player.played[0] != "buzz.wav" {
		t.Errorf("played = %v, want [buzz.wav]", f.player.played)
	}

	f.button.SetState(StateHighlighted)
	if f.button.Enabled() {
		t.Error("other states should leave the enabled flag alone")
	}
}

func TestButtonTitleAfterDispose(t *testing.T) {
	b := NewTitledButton("Play", StateNormal, nil)
	b.Dispose()

	b.SetTitle("Again")
	b.SetTitleProperties("Mono", 20, ColorWhite)
	if got := b.Title(); got != "" {
		t.Errorf("Title() after Dispose = %q, want empty", got)
	}
}

func TestButtonNoPlayerStaysSilent(t *testing.T) {
	var pressed int
	b := NewButton(testTexture("bg", 20, 20), func(*ButtonNode) { pressed++ })
	b.NormalSound = "click"
	s := NewScene()
	b.SetPosition(50, 50)
	s.AddChild(b.Node())

	s.InjectTap(50, 50)
	drain(s)
	if pressed != 1 {
		t.Errorf("pressed = %d, want 1", pressed)
	}
}

// --- worked examples ---

func TestButtonExamplePressMe(t *testing.T) {
	player := &recordingPlayer{}
	var calls []*ButtonNode
	b := NewTitledButton("Press me!", StateNormal, func(b *ButtonNode) { calls = append(calls, b) })
	b.SetSize(200, 80)
	b.SetSoundPlayer(player)
	b.SetSounds("click.wav", "")
	b.SetPosition(100, 100)
	s := NewScene()
	s.AddChild(b.Node())

	s.InjectPress(100, 100)
	frame(s)
	if b.State() != StateHighlighted {
		t.Fatalf("State() = %v, want highlighted", b.State())
	}
	s.InjectRelease(110, 105)
	frame(s)
	if b.State() != StateNormal {
		t.Errorf("State() = %v, want normal", b.State())
	}
	if len(player.played) != 1 || player.played[0] != "click.wav" {
		t.Errorf("played = %v, want [click.wav]", player.played)
	}
	if len(calls) != 1 || calls[0] != b {
		t.Errorf("Action calls = %d, want 1", len(calls))
	}
}

func TestButtonExampleDisabledBuzz(t *testing.T) {
	player := &recordingPlayer{}
	var calls int
	b := NewButtonWithConfig(ButtonConfig{
		Background: testTexture("off", 100, 40),
		State:      StateDisabled,
		Sounds:     Sounds{Disabled: "buzz.wav"},
		Player:     player,
		Action:     func(*ButtonNode) { calls++ },
	})
	b.SetPosition(100, 100)
	s := NewScene()
	s.AddChild(b.Node())

	s.InjectTap(90, 110)
	drain(s)
	if b.State() != StateDisabled {
		t.Errorf("State() = %v, want disabled", b.State())
	}
	if len(player.played) != 1 || player.played[0] != "buzz.wav" {
		t.Errorf("played = %v, want [buzz.wav]", player.played)
	}
	if calls != 0 {
		t.Errorf("Action calls = %d, want 0", calls)
	}
}

func TestButtonFrame(t *testing.T) {
	b := NewButton(testTexture("bg", 200, 100), nil)
	b.SetPosition(300, 200)
	if got, want := b.Frame(), (Rect{X: 200, Y: 150, Width: 200, Height: 100}); got != want {
		t.Errorf("Frame() = %+v, want %+v", got, want)
	}
	b.Node().SetScale(2, 1)
	if got := b.Frame(); got.Width != 400 || got.X != 100 {
		t.Errorf("scaled Frame() = %+v", got)
	}
	if !b.Frame().Contains(300, 200) {
		t.Error("frame should contain the button center")
	}
}
