package main

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// --- Window & Zoom ---
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768
	DefaultMinZoom      = 1.0
	DefaultMaxZoom      = 5.0
	ZoomSpeed           = 0.1 // wheel zoom: factor = (1+ZoomSpeed)^dy
	KeyZoomStep         = 0.1 // wheel-equivalent per frame for +/- keys

	// --- Content ---
	MaxContentSize  = 2048 // loaded images are fitted into this square
	PlaceholderSize = 480
	PlaceholderCell = 60

	// --- Backdrop ---
	GridSize        = 50.0
	OriginCrossSize = 15.0

	// --- Content frame ---
	ShadowOffset    = 5.0
	BorderThickness = 3.0

	// --- Overlay & HUD ---
	HUDMarginX         = 10
	HUDMarginY         = 10
	ButtonWidth        = 46.0
	ButtonHeight       = 30.0
	ButtonMargin       = 10.0
	VelocityArrowScale = 0.15 // arrow px per px/s of release velocity
	ArrowHeadSize      = 8.0
)

var (
	// --- Colors ---
	ColorBackground       = color.RGBA{30, 30, 35, 255}
	ColorGrid             = color.RGBA{255, 255, 255, 20}
	ColorOriginCross      = color.RGBA{255, 100, 100, 150}
	ColorShadow           = color.RGBA{0, 0, 0, 100}
	ColorContentBorder    = color.RGBA{0, 120, 255, 255}
	ColorHUDText          = color.RGBA{220, 220, 220, 255}
	ColorButtonBackground = color.RGBA{60, 60, 70, 200}
	ColorButtonActive     = color.RGBA{80, 160, 240, 255}
	ColorVelocityArrow    = color.RGBA{255, 255, 100, 180}
	ColorPlaceholderBody  = color.RGBA{45, 45, 50, 255}
	ColorPlaceholderGrid  = color.RGBA{100, 149, 237, 90}
	ColorPlaceholderCross = color.RGBA{255, 105, 180, 200}
)

// Config is the optional yaml-backed configuration for the demo binary.
// Everything has a sensible default so the config file is never required.
type Config struct {
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
	MinZoom      float64 `yaml:"min_zoom"`
	MaxZoom      float64 `yaml:"max_zoom"`
	Image        string  `yaml:"image"`
}

// DefaultConfig returns the compiled-in defaults.
func DefaultConfig() Config {
	return Config{
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		MinZoom:      DefaultMinZoom,
		MaxZoom:      DefaultMaxZoom,
	}
}

// LoadConfig reads a yaml config file over the defaults. Zero-valued fields
// keep their defaults, so partial files work. maxZoom > minZoom is a
// documented precondition of the engine and is checked here, at the edge,
// rather than inside it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if file.WindowWidth > 0 {
		cfg.WindowWidth = file.WindowWidth
	}
	if file.WindowHeight > 0 {
		cfg.WindowHeight = file.WindowHeight
	}
	if file.MinZoom > 0 {
		cfg.MinZoom = file.MinZoom
	}
	if file.MaxZoom > 0 {
		cfg.MaxZoom = file.MaxZoom
	}
	if file.Image != "" {
		cfg.Image = file.Image
	}

	if cfg.MaxZoom <= cfg.MinZoom {
		return cfg, fmt.Errorf("config: max_zoom (%g) must be greater than min_zoom (%g)", cfg.MaxZoom, cfg.MinZoom)
	}
	return cfg, nil
}
