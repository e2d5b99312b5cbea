// buttons recreates the classic button demo: a play button, a disabled
// continue button, a titled button that changes its caption and a music
// toggle that remembers its setting between runs. All images and sounds
// are generated at startup.
package main

import (
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"

	"github.com/jozemiteapps/buttonnode"
)

const (
	appName    = "buttonnode_demo"
	sampleRate = 48000
)

func main() {
	cfg, err := parseConfig(defaultConfig)
	if err != nil {
		log.Fatal(err)
	}

	data, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Demo] Warning: settings will not persist: %v", err)
		data = nil
	}
	settings := buttonnode.NewSettingsStore(data)

	res := newDemoResources()
	am := buttonnode.NewAudioManager(audio.NewContext(sampleRate), res, settings)
	am.Preload(normalSound, disabledSound)

	d := newDemo(cfg, res, am, am, settings, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	if settings.Settings().MusicEnabled {
		am.PlayMusic(musicTrack)
	}

	if err := buttonnode.Run(d.scene, buttonnode.RunConfig{
		Title:       cfg.Title,
		Width:       int(cfg.SceneWidth),
		Height:      int(cfg.SceneHeight),
		ShowFPS:     cfg.ShowFPS,
		WindowScale: cfg.WindowScale,
	}); err != nil {
		log.Fatal(err)
	}
}
