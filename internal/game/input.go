package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/kamstrup/intmap"
)

// inputSource is the slice of *glfw.Window that input polling reads.
type inputSource interface {
	GetKey(key glfw.Key) glfw.Action
	GetMouseButton(button glfw.MouseButton) glfw.Action
	GetCursorPos() (x, y float64)
}

type Input struct {
	prevMouse *intmap.Map[glfw.MouseButton, bool]
	prevKeys  *intmap.Map[glfw.Key, bool]

	// Mouse-look state. The first sample after (re)capture only primes
	// the previous position so a recentred cursor does not jerk the view.
	lookPrimed  bool
	prevCursorX float64
	prevCursorY float64
}

func NewInput() *Input {
	return &Input{
		prevMouse: intmap.New[glfw.MouseButton, bool](8),
		prevKeys:  intmap.New[glfw.Key, bool](16),
	}
}

func (in *Input) JustPressed(src inputSource, key glfw.Key) bool {
	down := src.GetKey(key) == glfw.Press
	was, _ := in.prevKeys.Get(key)
	in.prevKeys.Put(key, down)
	return down && !was
}

func (in *Input) JustClicked(src inputSource, btn glfw.MouseButton) bool {
	down := src.GetMouseButton(btn) == glfw.Press
	was, _ := in.prevMouse.Get(btn)
	in.prevMouse.Put(btn, down)
	return down && !was
}

// MouseDelta returns cursor movement since the previous call.
func (in *Input) MouseDelta(src inputSource) (dx, dy float64) {
	x, y := src.GetCursorPos()
	if in.lookPrimed {
		dx, dy = x-in.prevCursorX, y-in.prevCursorY
	}
	in.prevCursorX, in.prevCursorY = x, y
	in.lookPrimed = true
	return dx, dy
}

// ResetLook makes the next MouseDelta return zero.
func (in *Input) ResetLook() {
	in.lookPrimed = false
}

// MoveIntentFrom reads the held WASD keys.
func MoveIntentFrom(src inputSource) MoveIntent {
	return MoveIntent{
		Forward: src.GetKey(glfw.KeyW) == glfw.Press,
		Back:    src.GetKey(glfw.KeyS) == glfw.Press,
		Left:    src.GetKey(glfw.KeyA) == glfw.Press,
		Right:   src.GetKey(glfw.KeyD) == glfw.Press,
	}
}

// Poll builds the frame input for the given state. scaleX/scaleY convert
// window cursor coordinates to framebuffer pixels, where buttons live.
func (in *Input) Poll(src inputSource, state GameState, fbW, fbH int, scaleX, scaleY float64) FrameInput {
	var f FrameInput
	clicked := in.JustClicked(src, glfw.MouseButtonLeft)
	enter := in.JustPressed(src, glfw.KeyEnter)
	space := in.JustPressed(src, glfw.KeySpace)
	f.ToggleDebug = in.JustPressed(src, glfw.KeyF1)

	if state == StateGameplay {
		f.Move = MoveIntentFrom(src)
		f.MouseDX, f.MouseDY = in.MouseDelta(src)
		f.Interact = clicked
		return f
	}

	in.ResetLook()
	if label := ScreenButtonLabel(state); label != "" {
		cx, cy := src.GetCursorPos()
		b := MenuButton(label, fbW, fbH)
		f.Confirm = b.Clicked(cx*scaleX, cy*scaleY, clicked)
	}
	f.Confirm = f.Confirm || enter || space
	return f
}
