package scene

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownScene is returned when a built-in scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

type builtinScene struct {
	info  SceneInfo
	build func(opts Options) (*Scene, error)
}

var builtins = []builtinScene{
	{builtinInfo("material-spheres", "Material Spheres", "Diffuse, glass, hollow glass and fuzzy metal spheres"), NewMaterialSpheresScene},
	{builtinInfo("checkered-spheres", "Checkered Spheres", "Two large spheres with a solid checker texture"), NewCheckeredSpheresScene},
	{builtinInfo("earth", "Earth", "Image-textured globe; pass --texture for an equirectangular map"), NewEarthScene},
	{builtinInfo("quads", "Quads", "Five colored parallelograms"), NewQuadsScene},
	{builtinInfo("planars", "Planars", "A parallelogram surrounded by four triangles"), NewPlanarsScene},
	{builtinInfo("simple-light", "Simple Light", "Two spheres lit by an emissive parallelogram"), NewSimpleLightScene},
	{builtinInfo("cornell-box", "Cornell Box", "Classic Cornell box with two rotated boxes"), NewCornellBoxScene},
	{builtinInfo("cornell-smoke", "Cornell Smoke", "Cornell box with boxes of black and white smoke"), NewCornellSmokeScene},
	{builtinInfo("three-spheres", "Three Spheres", "Ground, diffuse and metal spheres under a sky"), NewThreeSpheresScene},
	{builtinInfo("mesh", "Triangle Mesh", "OBJ or PLY mesh; pass --mesh, defaults to an icosahedron"), NewMeshScene},
}

func builtinInfo(id, name, description string) SceneInfo {
	return SceneInfo{
		ID:          id,
		Name:        name,
		DisplayName: name,
		Description: description,
		Group:       builtinGroup,
		Type:        "builtin",
	}
}

// Names returns the built-in scene names in registration order
func Names() []string {
	names := make([]string, len(builtins))
	for i, b := range builtins {
		names[i] = b.info.ID
	}
	return names
}

// Builtin builds a registered scene by name
func Builtin(name string, opts Options) (*Scene, error) {
	i := slices.IndexFunc(builtins, func(b builtinScene) bool { return b.info.ID == name })
	if i < 0 {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownScene, name, Names())
	}
	return builtins[i].build(opts)
}
