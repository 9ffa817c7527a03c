package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/df07/go-stochastic-raytracer/pkg/loaders"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
	"github.com/df07/go-stochastic-raytracer/pkg/scene"
)

// options holds everything parsed from the command line
type options struct {
	sceneName   string
	configPath  string
	texturePath string
	outPath     string
	list        bool
	help        bool
	bvh         bool
	config      renderer.RenderConfig
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	opts, err := parseFlags(fs, args)
	if err != nil {
		return err
	}

	if opts.help {
		fmt.Fprintln(stdout, "Stochastic Raytracer")
		fmt.Fprintln(stdout, "Usage: raytracer [options]")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Options:")
		fs.SetOutput(stdout)
		fs.PrintDefaults()
		fmt.Fprintln(stdout)
		printScenes(stdout)
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Output defaults to output/<scene>/render_<timestamp>.png; use a .ppm extension for PPM")
		return nil
	}
	if opts.list {
		printScenes(stdout)
		return nil
	}

	if err := opts.config.Validate(); err != nil {
		return err
	}

	accel := scene.AccelBVH
	if !opts.bvh {
		accel = scene.AccelList
	}
	selectedScene, err := createScene(opts.sceneName, opts.config.AspectRatio(), opts.texturePath, accel)
	if err != nil {
		return err
	}

	logger := renderer.NewDefaultLogger()
	logger.Printf("Scene %s: %d objects, %s\n", opts.sceneName, selectedScene.ObjectCount(), selectedScene.AcceleratorStats())

	raytracer, err := renderer.NewRaytracer(selectedScene, opts.config, logger)
	if err != nil {
		return err
	}
	img, _, err := raytracer.Render()
	if err != nil {
		return err
	}

	outPath := opts.outPath
	if outPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outPath = filepath.Join("output", opts.sceneName, fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := writeImage(outPath, img); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Render saved as %s\n", outPath)
	return nil
}

// parseFlags layers explicit flags over the JSON config file, which is layered over defaults
func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var opts options
	defaults := renderer.DefaultRenderConfig()

	fs.StringVar(&opts.sceneName, "scene", "random-spheres", "Scene preset (see -list)")
	fs.StringVar(&opts.configPath, "config", "", "JSON render config file")
	fs.StringVar(&opts.texturePath, "texture", "", "PNG or JPEG image for the earth scene")
	fs.StringVar(&opts.outPath, "out", "", "Output file (.png or .ppm)")
	fs.BoolVar(&opts.list, "list", false, "List available scenes")
	fs.BoolVar(&opts.help, "help", false, "Show help information")
	fs.BoolVar(&opts.bvh, "bvh", true, "Use a bounding volume hierarchy (-bvh=false tests every object per ray)")

	width := fs.Int("width", defaults.Width, "Image width in pixels")
	height := fs.Int("height", defaults.Height, "Image height in pixels")
	spp := fs.Int("spp", defaults.SamplesPerPixel, "Samples per pixel")
	depth := fs.Int("depth", defaults.MaxDepth, "Maximum scatter bounces")
	threads := fs.Int("threads", runtime.NumCPU(), "Number of render workers")
	seed := fs.Uint64("seed", defaults.Seed, "Random seed")
	tileSize := fs.Int("tile-size", defaults.TileSize, "Tile edge length in pixels")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.config = defaults
	if opts.configPath != "" {
		loaded, err := renderer.LoadRenderConfig(opts.configPath)
		if err != nil {
			return opts, err
		}
		opts.config = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			opts.config.Width = *width
		case "height":
			opts.config.Height = *height
		case "spp":
			opts.config.SamplesPerPixel = *spp
		case "depth":
			opts.config.MaxDepth = *depth
		case "threads":
			opts.config.NumWorkers = *threads
		case "seed":
			opts.config.Seed = *seed
		case "tile-size":
			opts.config.TileSize = *tileSize
		}
	})

	return opts, nil
}

func printScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-18s %s\n", info.ID, info.Description)
	}
}

// createScene builds the named preset, loading the texture file when one is given
func createScene(name string, aspectRatio float64, texturePath string, accel scene.Accelerator) (*scene.Scene, error) {
	opts := scene.Options{Accelerator: accel}
	if texturePath != "" {
		texture, err := loaders.LoadImageTexture(texturePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load texture: %w", err)
		}
		opts.EarthTexture = texture
	}
	return scene.Build(name, aspectRatio, opts)
}

// writeImage encodes img by file extension, creating parent directories as needed
func writeImage(path string, img *renderer.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		err = writePPM(file, img)
	default:
		err = png.Encode(file, img)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}

// writePPM writes a binary (P6) PPM
func writePPM(w io.Writer, img *renderer.Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}
	if _, err := bw.Write(img.Pix); err != nil {
		return err
	}
	return bw.Flush()
}
