package renderer

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// RenderConfig contains everything the renderer needs besides the scene
type RenderConfig struct {
	Width           int    `json:"width"`           // Image width in pixels
	Height          int    `json:"height"`          // Image height in pixels
	SamplesPerPixel int    `json:"samplesPerPixel"` // Number of rays per pixel
	MaxDepth        int    `json:"maxDepth"`        // Maximum scatter bounces
	NumWorkers      int    `json:"threads"`         // Number of parallel workers
	Seed            uint64 `json:"seed"`            // Global RNG seed
	TileSize        int    `json:"tileSize"`        // Edge length of a square work tile
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      runtime.NumCPU(),
		Seed:            42,
		TileSize:        32,
	}
}

// AspectRatio returns width / height
func (c RenderConfig) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Validate rejects configurations that cannot be rendered
func (c RenderConfig) Validate() error {
	switch {
	case c.Width <= 0:
		return &ConfigError{Field: "width", Reason: fmt.Sprintf("must be positive, got %d", c.Width)}
	case c.Height <= 0:
		return &ConfigError{Field: "height", Reason: fmt.Sprintf("must be positive, got %d", c.Height)}
	case c.SamplesPerPixel <= 0:
		return &ConfigError{Field: "samplesPerPixel", Reason: fmt.Sprintf("must be positive, got %d", c.SamplesPerPixel)}
	case c.MaxDepth < 0:
		return &ConfigError{Field: "maxDepth", Reason: fmt.Sprintf("must not be negative, got %d", c.MaxDepth)}
	case c.NumWorkers < 1:
		return &ConfigError{Field: "threads", Reason: fmt.Sprintf("must be at least 1, got %d", c.NumWorkers)}
	case c.TileSize <= 0:
		return &ConfigError{Field: "tileSize", Reason: fmt.Sprintf("must be positive, got %d", c.TileSize)}
	}
	return nil
}

// LoadRenderConfig reads a JSON config file. Fields missing from the file keep their defaults.
func LoadRenderConfig(path string) (RenderConfig, error) {
	config := DefaultRenderConfig()

	file, err := os.Open(path)
	if err != nil {
		return config, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return config, nil
}
