//go:build !windows

package engine

import (
	"GopherFX/internal/effects"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func applyWindowStyle(*glfw.Window, effects.Color) {}
