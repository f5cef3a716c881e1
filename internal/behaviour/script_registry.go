package behaviour

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// ScriptParams are the tunables every camera script receives.
type ScriptParams struct {
	Speed  float32    // radians per second for orbits, cycles scale for bobbing
	Radius float32    // orbit radius or bob amplitude, 0 keeps the start value
	Target mgl32.Vec3 // point the camera keeps looking at
}

type ScriptConstructor func(params ScriptParams) CameraBehaviour

var scriptRegistry = make(map[string]ScriptConstructor)

func RegisterScript(name string, constructor ScriptConstructor) {
	scriptRegistry[name] = constructor
}

func GetAvailableScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateScript returns nil for unknown names.
func CreateScript(name string, params ScriptParams) CameraBehaviour {
	if constructor, exists := scriptRegistry[name]; exists {
		return constructor(params)
	}
	return nil
}
