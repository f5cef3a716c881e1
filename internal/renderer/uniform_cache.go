package renderer

import (
	"sort"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// UniformCache resolves uniform locations once per program. A parameter table
// may carry keys a shader never declares (or the driver optimised away); those
// resolve to -1, are remembered, and every setter skips them.
type UniformCache struct {
	program   uint32
	locations map[string]int32
	lookup    func(program uint32, name string) int32
}

func NewUniformCache(program uint32) *UniformCache {
	return &UniformCache{
		program:   program,
		locations: make(map[string]int32),
		lookup:    glUniformLocation,
	}
}

func glUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// Location returns the uniform location and whether the program uses it.
func (uc *UniformCache) Location(name string) (int32, bool) {
	loc, ok := uc.locations[name]
	if !ok {
		loc = uc.lookup(uc.program, name)
		uc.locations[name] = loc
	}
	return loc, loc != -1
}

// Inactive lists, sorted, the names looked up so far that the program ignores.
func (uc *UniformCache) Inactive() []string {
	var names []string
	for name, loc := range uc.locations {
		if loc == -1 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (uc *UniformCache) SetFloat(name string, value float32) {
	if loc, ok := uc.Location(name); ok {
		gl.Uniform1f(loc, value)
	}
}

func (uc *UniformCache) SetInt(name string, value int32) {
	if loc, ok := uc.Location(name); ok {
		gl.Uniform1i(loc, value)
	}
}

func (uc *UniformCache) SetVec2(name string, v mgl32.Vec2) {
	if loc, ok := uc.Location(name); ok {
		gl.Uniform2f(loc, v[0], v[1])
	}
}

func (uc *UniformCache) SetVec3(name string, v mgl32.Vec3) {
	if loc, ok := uc.Location(name); ok {
		gl.Uniform3f(loc, v[0], v[1], v[2])
	}
}

func (uc *UniformCache) SetVec4(name string, v mgl32.Vec4) {
	if loc, ok := uc.Location(name); ok {
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}

// Clear forgets every location; call it when the program is relinked or deleted.
func (uc *UniformCache) Clear() {
	uc.locations = make(map[string]int32)
}
