package renderer

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"GopherFX/internal/effects"
	"GopherFX/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Texture units below firstParameterUnit are reserved for the blitter's
// built-in samplers.
const (
	mainTexUnit        = 0
	depthTexUnit       = 1
	firstParameterUnit = 2
)

// fullscreenVertexSource draws one oversized triangle from gl_VertexID and
// hands uv in [0,1] to the fragment stage.
var fullscreenVertexSource = `#version 410 core

out vec2 uv;

void main() {
    vec2 pos = vec2((gl_VertexID << 1) & 2, gl_VertexID & 2);
    uv = pos;
    gl_Position = vec4(pos * 2.0 - 1.0, 0.0, 1.0);
}
` + "\x00"

// backdropFragmentSource samples an image texture, flipping rows so image
// files appear upright.
var backdropFragmentSource = `#version 410 core

in vec2 uv;
uniform sampler2D MainTex;
out vec4 FragColor;

void main() {
    FragColor = texture(MainTex, vec2(uv.x, 1.0 - uv.y));
}
` + "\x00"

// ShaderProgram is a linked full-screen program: the built-in vertex stage
// plus one fragment stage.
type ShaderProgram struct {
	name     string
	program  uint32
	uniforms *UniformCache
	reported bool
}

func (p *ShaderProgram) Name() string { return p.name }

// LoadShaderProgram reads a fragment stage from path and links it.
func LoadShaderProgram(path string) (*ShaderProgram, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fragment stage: %w", err)
	}
	return NewShaderProgram(path, string(source))
}

// NewShaderProgram compiles fragmentSource against the full-screen vertex
// stage.
func NewShaderProgram(name, fragmentSource string) (*ShaderProgram, error) {
	if !strings.HasSuffix(fragmentSource, "\x00") {
		fragmentSource += "\x00"
	}

	var cleanup Unwind
	defer cleanup.Unwind()

	vs, err := GenShader(fullscreenVertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	cleanup.Add(func() { gl.DeleteShader(vs) })

	fs, err := GenShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	cleanup.Add(func() { gl.DeleteShader(fs) })

	program, err := GenShaderProgram(vs, fs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	logger.Log.Info("Shader program linked", zap.String("name", name), zap.Uint32("program", program))
	return &ShaderProgram{
		name:     name,
		program:  program,
		uniforms: NewUniformCache(program),
	}, nil
}

func (p *ShaderProgram) Use() {
	gl.UseProgram(p.program)
}

// Apply uploads params. Textures are bound to consecutive units starting at
// firstUnit, in name order.
func (p *ShaderProgram) Apply(params effects.ParameterTable, firstUnit uint32) {
	for _, u := range planUniforms(params, firstUnit) {
		switch v := u.value.(type) {
		case float32:
			p.uniforms.SetFloat(u.name, v)
		case int32:
			p.uniforms.SetInt(u.name, v)
		case mgl32.Vec2:
			p.uniforms.SetVec2(u.name, v)
		case mgl32.Vec3:
			p.uniforms.SetVec3(u.name, v)
		case mgl32.Vec4:
			p.uniforms.SetVec4(u.name, v)
		case effects.TextureRef:
			gl.ActiveTexture(gl.TEXTURE0 + u.unit)
			gl.BindTexture(gl.TEXTURE_2D, v.ID)
			p.uniforms.SetInt(u.name, int32(u.unit))
		}
	}

	if !p.reported {
		p.reported = true
		if unused := p.uniforms.Inactive(); len(unused) > 0 {
			logger.Log.Debug("Program ignores parameters",
				zap.String("name", p.name), zap.Strings("uniforms", unused))
		}
	}
}

// Delete frees the GL program.
func (p *ShaderProgram) Delete() {
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
		p.uniforms.Clear()
	}
}

type uniformUpload struct {
	name  string
	value interface{}
	unit  uint32 // texture unit, textures only
}

// planUniforms orders params by name, normalizes colors to vec4 and assigns
// texture units. Values of unsupported types are dropped.
func planUniforms(params effects.ParameterTable, firstUnit uint32) []uniformUpload {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	plan := make([]uniformUpload, 0, len(names))
	unit := firstUnit
	for _, name := range names {
		switch v := params[name].(type) {
		case float32, int32, mgl32.Vec2, mgl32.Vec3, mgl32.Vec4:
			plan = append(plan, uniformUpload{name: name, value: v})
		case effects.Color:
			plan = append(plan, uniformUpload{name: name, value: v.Vec4()})
		case effects.TextureRef:
			plan = append(plan, uniformUpload{name: name, value: v, unit: unit})
			unit++
		default:
			logger.Log.Debug("Skipping parameter of unsupported type",
				zap.String("name", name), zap.String("type", fmt.Sprintf("%T", v)))
		}
	}
	return plan
}

// GenShader compiles one stage. Compile errors carry the GL info log.
func GenShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("compile %s stage: %s", stageName(shaderType), strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

// GenShaderProgram links the two stages. The stages are detached on success;
// deleting them stays with the caller.
func GenShaderProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("link program: %s", strings.TrimRight(log, "\x00"))
	}
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	return program, nil
}

func stageName(shaderType uint32) string {
	if shaderType == gl.FRAGMENT_SHADER {
		return "fragment"
	}
	return "vertex"
}
