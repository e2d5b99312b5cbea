package main

import (
	"log"
	"math/rand/v2"

	"github.com/tanema/gween/ease"

	"github.com/jozemiteapps/buttonnode"
)

const tick = 1.0 / 60

var captions = []string{"I'm a button.", "Press me!", "Press me again!", "Hello World!", "Enter text.", "Hi!"}

// musicControl is the part of the audio manager the music button drives.
type musicControl interface {
	PlayMusic(id string) bool
	StopMusic()
}

type demo struct {
	scene    *buttonnode.Scene
	res      *buttonnode.Resources
	music    musicControl
	settings *buttonnode.SettingsStore
	rng      *rand.Rand

	playButton     *buttonnode.ButtonNode
	continueButton *buttonnode.ButtonNode
	textButton     *buttonnode.ButtonNode
	musicButton    *buttonnode.ButtonNode

	pulse *buttonnode.TweenGroup
}

// newDemo lays out the four demo buttons inside the playable area.
func newDemo(cfg DemoConfig, res *buttonnode.Resources, player buttonnode.SoundPlayer,
	music musicControl, settings *buttonnode.SettingsStore, rng *rand.Rand) *demo {
	d := &demo{
		scene:    buttonnode.NewScene(),
		res:      res,
		music:    music,
		settings: settings,
		rng:      rng,
	}
	d.scene.ClearColor = buttonnode.ColorBlack
	area := PlayableArea(cfg)

	d.playButton = buttonnode.NewButtonNamed(res, "PlayButtonNormal", buttonnode.StateNormal, d.playAction)
	d.playButton.SetBackgroundsNamed(res, "PlayButtonNormal", "PlayButtonHighlighted", "")
	d.playButton.SetSounds(normalSound, disabledSound)
	d.playButton.SetSoundPlayer(player)
	d.playButton.SetPosition(area.MidX()-200, area.MidY())

	d.continueButton = buttonnode.NewButtonNamed(res, "ContinueButtonDisabled", buttonnode.StateDisabled, d.continueAction)
	d.continueButton.DisabledSound = disabledSound
	d.continueButton.SetSoundPlayer(player)
	d.continueButton.SetPosition(area.MidX()+200, area.MidY())

	d.textButton = buttonnode.NewTitledButton("Press me!", buttonnode.StateNormal, d.textAction)
	d.textButton.SetBackgroundsNamed(res, "TextButtonNormal", "TextButtonHighlighted", "")
	d.textButton.SetTitle("PUSH HERE")
	d.textButton.SetSounds(normalSound, disabledSound)
	d.textButton.SetSoundPlayer(player)
	d.textButton.SetPosition(area.MidX(), area.MidY()+240)

	d.musicButton = buttonnode.NewButtonNamed(res, d.musicTexture(), buttonnode.StateNormal, d.musicAction)
	d.musicButton.SetProperties(true, false, false, buttonnode.Sounds{})
	w, h := d.musicButton.Size()
	d.musicButton.SetPosition(area.X+w*1.2, area.Y+h*1.2)

	for _, b := range []*buttonnode.ButtonNode{d.playButton, d.continueButton, d.textButton, d.musicButton} {
		d.scene.AddChild(b.Node())
	}
	d.scene.SetUpdateFunc(d.update)
	return d
}

func (d *demo) update() error {
	if d.pulse != nil {
		d.pulse.Update(tick)
		if d.pulse.Done {
			d.pulse = nil
		}
	}
	return nil
}

func (d *demo) playAction(*buttonnode.ButtonNode) {
	log.Printf("[Demo] The play button has been pressed.")
}

// Never runs while the continue button stays disabled.
func (d *demo) continueAction(*buttonnode.ButtonNode) {
	log.Printf("[Demo] The continue button has been pressed.")
}

func (d *demo) textAction(b *buttonnode.ButtonNode) {
	words := append([]string(nil), captions...)
	d.rng.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })
	b.SetTitle(words[0])
}

func (d *demo) musicAction(b *buttonnode.ButtonNode) {
	on := !d.settings.Settings().MusicEnabled
	d.settings.SetMusicEnabled(on)
	if err := d.settings.Save(); err != nil {
		log.Printf("[Demo] Warning: %v", err)
	}
	b.SetBackground(buttonnode.StateNormal, d.res.Texture(d.musicTexture()))
	if on {
		d.music.PlayMusic(musicTrack)
	} else {
		d.music.StopMusic()
	}
	// Restart from the base scale so a tap mid-pulse does not grow the button.
	b.Node().SetScale(1, 1)
	d.pulse = buttonnode.TweenPulse(b.Node(), 1.15, 0.25, ease.InOutQuad)
}

func (d *demo) musicTexture() string {
	if d.settings.Settings().MusicEnabled {
		return musicOn
	}
	return musicOff
}
