package scene

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// ErrUnknownScene is returned when a scene ID is not registered
var ErrUnknownScene = errors.New("unknown scene")

// Builder constructs a scene. Procedural textures draw their permutation
// tables from random.
type Builder func(random *rand.Rand) (*Scene, error)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Unique identifier used on the command line
	DisplayName string // Human readable name
	Description string // One line description
}

type registration struct {
	info  SceneInfo
	build Builder
}

var builtIn = map[string]registration{}

func register(id, description string, build Builder) {
	builtIn[id] = registration{
		info:  SceneInfo{ID: id, DisplayName: titleCase(id), Description: description},
		build: build,
	}
}

func init() {
	register("default", "Spheres, a noise box and a wood cone lit by a glowing wall", NewDefaultScene)
	register("cornell-box", "Cornell box with two blocks and two spheres", NewCornellScene)
	register("sphere-grid", "Grid of rainbow-colored metallic spheres", NewSphereGridScene)
	register("cones", "Capped and open cones on a checkered floor", NewConeScene)
	register("textures", "Procedural textures on spheres and boxes", NewTextureScene)
}

// ListScenes returns every built-in scene sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtIn))
	for _, reg := range builtIn {
		scenes = append(scenes, reg.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Build constructs the built-in scene with the given ID
func Build(id string, random *rand.Rand) (*Scene, error) {
	reg, ok := builtIn[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	s, err := reg.build(random)
	if err != nil {
		return nil, fmt.Errorf("building scene %q: %w", id, err)
	}
	return s, nil
}

// titleCase converts an ID-style string to title case
// e.g., "cornell-box" -> "Cornell Box"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
