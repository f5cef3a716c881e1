//go:build windows

package engine

import (
	"syscall"
	"unsafe"

	"GopherFX/internal/effects"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	dwmapi                    = syscall.NewLazyDLL("dwmapi.dll")
	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
)

const (
	dwmwaUseImmersiveDarkMode = 20
	dwmwaBorderColor          = 34
	dwmwaCaptionColor         = 35
)

// applyWindowStyle darkens the title bar and tints caption and border with
// the scene clear color. DWM ignores attributes older Windows versions lack.
func applyWindowStyle(window *glfw.Window, clear effects.Color) {
	hwnd := window.GetWin32Window()
	if hwnd == nil {
		return
	}

	handle := unsafe.Pointer(hwnd)
	setDwmAttribute(handle, dwmwaUseImmersiveDarkMode, 1)
	tint := colorRef(clear)
	setDwmAttribute(handle, dwmwaCaptionColor, tint)
	setDwmAttribute(handle, dwmwaBorderColor, tint)
}

func setDwmAttribute(hwnd unsafe.Pointer, attribute uintptr, value uint32) {
	procDwmSetWindowAttribute.Call(
		uintptr(hwnd),
		attribute,
		uintptr(unsafe.Pointer(&value)),
		unsafe.Sizeof(value),
	)
}
