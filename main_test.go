package main

import (
	"bytes"
	"flag"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
	"github.com/df07/go-stochastic-raytracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		texture     string
		accel       scene.Accelerator
		expectError bool
	}{
		{"red sphere", "red-sphere", "", scene.AccelBVH, false},
		{"random spheres", "random-spheres", "", scene.AccelBVH, false},
		{"motion blur", "motion-blur", "", scene.AccelBVH, false},
		{"cornell box", "cornell-box", "", scene.AccelBVH, false},
		{"cornell smoke", "cornell-smoke", "", scene.AccelBVH, false},
		{"simple light", "simple-light", "", scene.AccelBVH, false},
		{"dielectric as list", "dielectric", "", scene.AccelList, false},
		{"empty cornell box as list", "empty-cornell-box", "", scene.AccelList, false},

		// Invalid scenes
		{"unknown scene", "nonexistent", "", scene.AccelBVH, true},
		{"empty scene name", "", "", scene.AccelBVH, true},
		{"earth without texture", "earth", "", scene.AccelBVH, true},
		{"missing texture file", "earth", "no-such-earth.png", scene.AccelBVH, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType, 1.5, tt.texture, tt.accel)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, s)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if s == nil || s.Camera == nil || s.World == nil {
				t.Errorf("Expected a complete scene for '%s', got %+v", tt.sceneType, s)
			}
		})
	}
}

func TestParseFlags(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "render.json")
	if err := os.WriteFile(configPath, []byte(`{"width": 320, "height": 240, "samplesPerPixel": 8, "seed": 5}`), 0o644); err != nil {
		t.Fatal(err)
	}

	defaults := renderer.DefaultRenderConfig()
	tests := []struct {
		name     string
		args     []string
		expected func(c renderer.RenderConfig) renderer.RenderConfig
	}{
		{
			name:     "defaults",
			args:     nil,
			expected: func(c renderer.RenderConfig) renderer.RenderConfig { return c },
		},
		{
			name: "flags override defaults",
			args: []string{"-width", "64", "-spp", "3", "-depth", "0", "-threads", "2", "-tile-size", "16"},
			expected: func(c renderer.RenderConfig) renderer.RenderConfig {
				c.Width, c.SamplesPerPixel, c.MaxDepth, c.NumWorkers, c.TileSize = 64, 3, 0, 2, 16
				return c
			},
		},
		{
			name: "flags override config file",
			args: []string{"-config", configPath, "-height", "100"},
			expected: func(c renderer.RenderConfig) renderer.RenderConfig {
				c.Width, c.Height, c.SamplesPerPixel, c.Seed = 320, 100, 8, 5
				return c
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			opts, err := parseFlags(fs, tt.args)
			if err != nil {
				t.Fatalf("parseFlags failed: %v", err)
			}
			want := tt.expected(defaults)
			if opts.config != want {
				t.Errorf("Expected %+v, got %+v", want, opts.config)
			}
		})
	}
}

func TestParseFlags_MissingConfigFile(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := parseFlags(fs, []string{"-config", "does-not-exist.json"}); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestRun_List(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-list"}, &out); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"red-sphere", "cornell-box", "earth"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("Expected scene list to contain %q, got:\n%s", name, out.String())
		}
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-scene", "red-sphere", "-spp", "0"}, &out)
	if err == nil {
		t.Fatal("Expected error for zero samples per pixel")
	}
}

func TestRun_RendersPNG(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "nested", "red.png")
	var out bytes.Buffer
	args := []string{"-scene", "red-sphere", "-width", "16", "-height", "8", "-spp", "2", "-depth", "2", "-threads", "2", "-out", outPath}
	if err := run(args, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("Expected 16x8 image, got %v", b)
	}
}

func TestWritePPM(t *testing.T) {
	img := renderer.NewImage(2, 1)
	img.SetPixel(0, 0, [3]uint8{1, 2, 3})
	img.SetPixel(1, 0, [3]uint8{4, 5, 6})

	var buf bytes.Buffer
	if err := writePPM(&buf, img); err != nil {
		t.Fatal(err)
	}
	expected := append([]byte("P6\n2 1\n255\n"), 1, 2, 3, 4, 5, 6)
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Errorf("Expected %q, got %q", expected, buf.Bytes())
	}
}

func TestRun_LinearScanMatchesBVH(t *testing.T) {
	dir := t.TempDir()
	renderTo := func(name string, extra ...string) []byte {
		t.Helper()
		outPath := filepath.Join(dir, name)
		args := append([]string{"-scene", "dielectric", "-width", "12", "-height", "8", "-spp", "2", "-depth", "4", "-threads", "2", "-out", outPath}, extra...)
		var out bytes.Buffer
		if err := run(args, &out); err != nil {
			t.Fatalf("run %v failed: %v", extra, err)
		}
		data, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatal(err)
		}
		return data
	}

	withBVH := renderTo("bvh.ppm")
	withList := renderTo("list.ppm", "-bvh=false")
	if !bytes.Equal(withBVH, withList) {
		t.Error("Expected identical images with and without the BVH")
	}
}
