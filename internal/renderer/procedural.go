package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"GopherFX/internal/config"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
)

// Fixed seeds keep generated textures identical between runs.
const (
	noiseSeed int64 = 0x6f70
	paperSeed int64 = 0x7061
)

// GenerateNoiseImage renders a size x size Perlin map for the water effect's
// NoiseMap. Values are mapped from [-1, 1] into the full gray range.
func GenerateNoiseImage(size int) *image.Gray {
	p := perlin.NewPerlin(2, 2, 3, noiseSeed)
	img := image.NewGray(image.Rect(0, 0, size, size))

	const frequency = 8.0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			n := p.Noise2D(float64(x)/float64(size)*frequency, float64(y)/float64(size)*frequency)
			img.SetGray(x, y, color.Gray{Y: toByte((n + 1) / 2)})
		}
	}
	return img
}

// GeneratePaperImage renders a size x size drawing paper grain: a bright
// base with stretched low frequency fibres and fine speckle.
func GeneratePaperImage(size int) *image.Gray {
	fibres := perlin.NewPerlin(2, 2, 4, paperSeed)
	speckle := perlin.NewPerlin(2, 2, 1, paperSeed+1)
	img := image.NewGray(image.Rect(0, 0, size, size))

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			u, v := float64(x)/float64(size), float64(y)/float64(size)
			value := 0.86 + 0.08*fibres.Noise2D(u*6, v*24) + 0.04*speckle.Noise2D(u*180, v*180)
			img.SetGray(x, y, color.Gray{Y: toByte(value)})
		}
	}
	return img
}

// GenerateProcedural builds the image behind a config.ProceduralPath.
func GenerateProcedural(path string) (image.Image, error) {
	kind, size, ok := config.ParseProceduralPath(path)
	if !ok {
		return nil, fmt.Errorf("not a procedural texture: %q", path)
	}
	switch kind {
	case "noise":
		return GenerateNoiseImage(size), nil
	case "paper":
		return GeneratePaperImage(size), nil
	}
	return nil, fmt.Errorf("unknown procedural texture kind %q", kind)
}

func toByte(v float64) uint8 {
	v = float64(mgl32.Clamp(float32(v), 0, 1))
	return uint8(math.Round(v * 255))
}
