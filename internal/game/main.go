package game

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// RunDesktop opens the window and runs the game until it is closed.
func RunDesktop(ctx context.Context, settings Settings, log *slog.Logger) error {
	runtime.LockOSThread()

	level, err := LoadLevel(ctx, settings.LevelPath)
	if err != nil {
		return fmt.Errorf("level: %w", err)
	}
	log.Info("level loaded",
		"name", level.Name,
		"walls", len(level.Walls),
		"eggs", len(level.Eggs),
		"path", settings.LevelPath,
	)

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Debug("gl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	bus := NewEventBus()
	LogEvents(bus, Component(log, "events"))

	audio, err := InitAudio(settings.MusicVolume, settings.SFXVolume, Component(log, "audio"))
	if err != nil {
		log.Warn("audio init failed, continuing without sound", "err", err)
	}
	defer audio.Close()
	AttachAudio(bus, audio)

	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer(level)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	session := NewGameSession(level, settings, bus)
	input := NewInput()
	cam := NewCamera3D()
	baseLight := DefaultSceneLighting()

	captured := false
	last := glfw.GetTime()
	for !window.ShouldClose() {
		if err := ctx.Err(); err != nil {
			log.Info("shutting down", "reason", err)
			break
		}
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameTime {
			dt = MaxFrameTime
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		if want := session.State == StateGameplay; want != captured {
			captureCursor(window, want)
			input.ResetLook()
			captured = want
		}

		sx, sy := cursorScale(window, fbW, fbH)
		frame := input.Poll(window, session.State, fbW, fbH, sx, sy)
		prev := session.State
		session.Update(frame, dt)
		if session.State != prev {
			log.Debug("state change", "from", prev.String(), "to", session.State.String())
		}

		switch session.State {
		case StateGameplay:
			SceneCamera(&cam, session.Player, fbW, fbH)
			RenderWorld(rend, session, cam, SceneLight(baseLight, cam), now, fbW, fbH)
			RenderHUD(rend, session, fbW, fbH)
		default:
			cx, cy := window.GetCursorPos()
			RenderScreen(rend, session, cx*sx, cy*sy, fbW, fbH)
		}

		window.SwapBuffers()
	}

	log.Info("session over",
		"attempts", session.Attempts,
		"catches", session.Catches,
		"clears", session.Clears,
	)
	return nil
}
