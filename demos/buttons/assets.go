package main

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/jozemiteapps/buttonnode"
)

const (
	normalSound   = "NormalButtonSound"
	disabledSound = "DisabledButtonSound"
	musicTrack    = "BackgroundMusic"

	musicOn  = "MusicButtonOn"
	musicOff = "MusicButtonOff"
)

type buttonImage struct {
	id     string
	w, h   int
	fill   color.RGBA
	border color.RGBA
}

var buttonImages = []buttonImage{
	{"PlayButtonNormal", 240, 100, color.RGBA{80, 180, 90, 255}, color.RGBA{30, 90, 40, 255}},
	{"PlayButtonHighlighted", 240, 100, color.RGBA{130, 220, 140, 255}, color.RGBA{30, 90, 40, 255}},
	{"ContinueButtonDisabled", 240, 100, color.RGBA{110, 110, 110, 255}, color.RGBA{60, 60, 60, 255}},
	{"TextButtonNormal", 420, 110, color.RGBA{240, 200, 90, 255}, color.RGBA{140, 100, 20, 255}},
	{"TextButtonHighlighted", 420, 110, color.RGBA{255, 230, 150, 255}, color.RGBA{140, 100, 20, 255}},
	{musicOn, 80, 80, color.RGBA{80, 160, 240, 255}, color.RGBA{20, 60, 120, 255}},
	{musicOff, 80, 80, color.RGBA{70, 80, 100, 255}, color.RGBA{20, 30, 50, 255}},
}

// newDemoResources generates every image and sound the demo uses, so it
// runs without an asset directory.
func newDemoResources() *buttonnode.Resources {
	res := buttonnode.NewResources(nil)
	for _, bi := range buttonImages {
		res.RegisterImage(bi.id, drawButtonImage(bi))
	}
	res.RegisterSound(normalSound, buttonnode.SoundWAV, buttonnode.ToneWAV(880, 80*time.Millisecond))
	res.RegisterSound(disabledSound, buttonnode.SoundWAV, buttonnode.ToneWAV(196, 150*time.Millisecond))
	res.RegisterSound(musicTrack, buttonnode.SoundWAV, buttonnode.ToneWAV(110, 4*time.Second))
	return res
}

func drawButtonImage(bi buttonImage) *ebiten.Image {
	img := ebiten.NewImage(bi.w, bi.h)
	w, h := float32(bi.w), float32(bi.h)
	vector.DrawFilledRect(img, 0, 0, w, h, bi.fill, false)
	vector.StrokeRect(img, 2, 2, w-4, h-4, 4, bi.border, false)
	return img
}
