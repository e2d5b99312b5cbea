package main

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jozemiteapps/buttonnode"
)

//go:embed scene.yaml
var defaultConfig []byte

// DemoConfig sizes the demo window and scene.
type DemoConfig struct {
	Title        string  `yaml:"title"`
	DeviceWidth  float64 `yaml:"deviceWidth"`
	DeviceHeight float64 `yaml:"deviceHeight"`
	SceneWidth   float64 `yaml:"sceneWidth"`
	SceneHeight  float64 `yaml:"sceneHeight"`
	WindowScale  float64 `yaml:"windowScale"`
	ShowFPS      bool    `yaml:"showFPS"`
}

func parseConfig(data []byte) (DemoConfig, error) {
	cfg := DemoConfig{WindowScale: 1}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DemoConfig{}, fmt.Errorf("parse demo config: %w", err)
	}
	if cfg.DeviceWidth <= 0 || cfg.DeviceHeight <= 0 {
		return DemoConfig{}, errors.New("parse demo config: device size must be positive")
	}
	if cfg.SceneWidth <= 0 || cfg.SceneHeight <= 0 {
		return DemoConfig{}, errors.New("parse demo config: scene size must be positive")
	}
	if cfg.WindowScale <= 0 {
		cfg.WindowScale = 1
	}
	return cfg, nil
}

// PlayableArea is the band of the scene visible on the configured device
// when the scene is scaled to fill it. It spans the full scene width and is
// centered vertically.
func PlayableArea(cfg DemoConfig) buttonnode.Rect {
	maxAspect := cfg.DeviceWidth / cfg.DeviceHeight
	playableHeight := cfg.SceneWidth / maxAspect
	margin := (cfg.SceneHeight - playableHeight) / 2
	return buttonnode.Rect{X: 0, Y: margin, Width: cfg.SceneWidth, Height: playableHeight}
}
