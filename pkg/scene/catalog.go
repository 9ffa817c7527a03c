package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// ErrUnknownScene is returned when a preset name is not in the catalog
var ErrUnknownScene = errors.New("unknown scene")

// Options carries inputs some presets need beyond the aspect ratio
type Options struct {
	EarthTexture material.Texture // Required by the earth preset
	Accelerator  Accelerator      // World root, BVH by default
}

// newScene builds a preset with the accelerator chosen in o
func (o Options) newScene(camera *geometry.Camera, objects, lights []geometry.Hittable, background Background, seed uint64) (*Scene, error) {
	return NewWithAccelerator(camera, objects, lights, background, seed, o.Accelerator)
}

// SceneInfo describes a preset scene
type SceneInfo struct {
	ID          string
	Name        string
	Description string
	Group       string
}

// BuildFunc constructs a preset scene for the given image aspect ratio
type BuildFunc func(aspectRatio float64, opts Options) (*Scene, error)

type preset struct {
	info  SceneInfo
	build BuildFunc
}

var presets = map[string]preset{
	"red-sphere": {
		info:  SceneInfo{ID: "red-sphere", Name: "Red Sphere", Description: "Single diffuse sphere under a sky gradient", Group: "Basics"},
		build: NewRedSphereScene,
	},
	"lambertian-diffuse": {
		info:  SceneInfo{ID: "lambertian-diffuse", Name: "Lambertian Diffuse", Description: "Grey diffuse sphere on a grey ground", Group: "Basics"},
		build: NewLambertianDiffuseScene,
	},
	"metal": {
		info:  SceneInfo{ID: "metal", Name: "Metal", Description: "Diffuse sphere between rough and polished metal spheres", Group: "Materials"},
		build: NewMetalScene,
	},
	"dielectric": {
		info:  SceneInfo{ID: "dielectric", Name: "Dielectric", Description: "Diffuse, metal and hollow glass spheres", Group: "Materials"},
		build: NewDielectricScene,
	},
	"wide-angle": {
		info:  SceneInfo{ID: "wide-angle", Name: "Wide Angle", Description: "Dielectric scene from above with a 90 degree field of view", Group: "Camera"},
		build: NewWideAngleScene,
	},
	"telephoto": {
		info:  SceneInfo{ID: "telephoto", Name: "Telephoto", Description: "Dielectric scene from above with a 20 degree field of view", Group: "Camera"},
		build: NewTelephotoScene,
	},
	"defocus-blur": {
		info:  SceneInfo{ID: "defocus-blur", Name: "Defocus Blur", Description: "Dielectric scene through a wide aperture", Group: "Camera"},
		build: NewDefocusBlurScene,
	},
	"random-spheres": {
		info:  SceneInfo{ID: "random-spheres", Name: "Random Spheres", Description: "Grid of random diffuse, metal and glass spheres with defocus blur", Group: "Basics"},
		build: NewRandomSpheresScene,
	},
	"motion-blur": {
		info:  SceneInfo{ID: "motion-blur", Name: "Motion Blur", Description: "Random spheres with bouncing diffuse spheres", Group: "Basics"},
		build: NewMotionBlurScene,
	},
	"checkered-floor": {
		info:  SceneInfo{ID: "checkered-floor", Name: "Checkered Floor", Description: "Motion blur scene on a checkered ground", Group: "Textures"},
		build: NewCheckeredFloorScene,
	},
	"checkered-spheres": {
		info:  SceneInfo{ID: "checkered-spheres", Name: "Checkered Spheres", Description: "Two large checker textured spheres", Group: "Textures"},
		build: NewCheckeredSpheresScene,
	},
	"perlin-spheres": {
		info:  SceneInfo{ID: "perlin-spheres", Name: "Perlin Spheres", Description: "Marble noise on a ground sphere and a small sphere", Group: "Textures"},
		build: NewPerlinSpheresScene,
	},
	"earth": {
		info:  SceneInfo{ID: "earth", Name: "Earth", Description: "Image textured globe (needs -texture)", Group: "Textures"},
		build: NewEarthScene,
	},
	"simple-light": {
		info:  SceneInfo{ID: "simple-light", Name: "Simple Light", Description: "Perlin spheres lit by a rectangle and a sphere light", Group: "Lights"},
		build: NewSimpleLightScene,
	},
	"empty-cornell-box": {
		info:  SceneInfo{ID: "empty-cornell-box", Name: "Empty Cornell Box", Description: "Cornell box walls and light with nothing inside", Group: "Lights"},
		build: NewEmptyCornellScene,
	},
	"cornell-box": {
		info:  SceneInfo{ID: "cornell-box", Name: "Cornell Box", Description: "Cornell box with two rotated boxes", Group: "Lights"},
		build: NewCornellScene,
	},
	"cornell-smoke": {
		info:  SceneInfo{ID: "cornell-smoke", Name: "Cornell Smoke", Description: "Cornell box with boxes of black and white smoke", Group: "Lights"},
		build: NewCornellSmokeScene,
	},
}

// ListScenes returns every preset sorted by group then ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(presets))
	for _, p := range presets {
		scenes = append(scenes, p.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		if scenes[i].Group != scenes[j].Group {
			return scenes[i].Group < scenes[j].Group
		}
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Build constructs the named preset
func Build(name string, aspectRatio float64, opts Options) (*Scene, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	if aspectRatio <= 0 {
		return nil, fmt.Errorf("invalid aspect ratio %v for scene %q", aspectRatio, name)
	}
	s, err := p.build(aspectRatio, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %q: %w", name, err)
	}
	return s, nil
}
