package game

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func initWindow() (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Decorated, glfw.True)

	window, err := glfw.CreateWindow(WindowWidth, WindowHeight, WindowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if glfw.RawMouseMotionSupported() {
		window.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}
	return window, nil
}

// captureCursor hides and locks the cursor for mouse look, or releases it.
func captureCursor(window *glfw.Window, captured bool) {
	if captured {
		window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		return
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
}

// cursorScale maps window coordinates to framebuffer pixels.
func cursorScale(window *glfw.Window, fbW, fbH int) (float64, float64) {
	winW, winH := window.GetSize()
	if winW <= 0 || winH <= 0 {
		return 1, 1
	}
	return float64(fbW) / float64(winW), float64(fbH) / float64(winH)
}
