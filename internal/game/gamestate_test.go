package game

import (
	"context"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arenaYAML is a flat room: egg "near" is within reach of the spawn, egg
// "far" is not, and the spider starts well away from the player.
const arenaYAML = `
name: arena
player_spawn: [0, 2, 0]
spider:
  spawn: [50, 0, 50]
  min: [-1, 0, -1]
  max: [1, 2, 1]
floor:
  name: ground
  min: [-100, -1, -100]
  max: [100, 0, 100]
walls:
  - {name: pillar, kind: block, min: [20, 0, 20], max: [22, 4, 22]}
eggs:
  - {name: near, min: [0.2, 0, -0.6], max: [1.4, 1.8, 0.6]}
  - {name: far, min: [10, 0, -10.6], max: [11.2, 1.8, -9.4]}
`

func newArenaSession(t *testing.T) (*GameSession, *[]EventType) {
	t.Helper()
	lvl, err := ParseLevel(context.Background(), []byte(arenaYAML), "")
	require.NoError(t, err)

	bus := NewEventBus()
	var got []EventType
	bus.SubscribeAll(func(e Event) { got = append(got, e.Type) })
	return NewGameSession(lvl, DefaultSettings(), bus), &got
}

func TestSessionStartsOnTitle(t *testing.T) {
	s, _ := newArenaSession(t)
	assert.Equal(t, StateTitle, s.State)
	assert.Equal(t, mgl64.Vec3{0, 2, 0}, s.Player.Eye)
	assert.Equal(t, mgl64.Vec3{50, 0, 50}, s.Spider.Pos)
	assert.Equal(t, -1, s.EggInReach(), "nothing is in reach outside gameplay")
}

func TestSessionTitleToGameplay(t *testing.T) {
	s, events := newArenaSession(t)

	s.Update(FrameInput{}, 0.016)
	assert.Equal(t, StateTitle, s.State)

	s.Update(FrameInput{Confirm: true}, 0.016)
	assert.Equal(t, StateGameplay, s.State)
	assert.Equal(t, 1, s.Attempts)
	assert.Equal(t, []EventType{EventGameStarted}, *events)
}

func TestSessionBurnAllEggsClears(t *testing.T) {
	s, events := newArenaSession(t)
	s.Update(FrameInput{Confirm: true}, 0.016)

	assert.Equal(t, 0, s.EggInReach())
	s.Update(FrameInput{Interact: true}, 0.016)
	assert.Equal(t, 1, s.Eggs.BurnedCount())
	assert.Equal(t, StateGameplay, s.State)

	// Burn the far egg directly and let the next frame notice the win.
	s.Eggs.Eggs[1].Burned = true
	s.Update(FrameInput{}, 0.016)
	assert.Equal(t, StateGameClear, s.State)
	assert.Equal(t, 1, s.Clears)
	assert.Contains(t, *events, EventEggBurned)
	assert.Contains(t, *events, EventCleared)

	s.Update(FrameInput{Confirm: true}, 0.016)
	assert.Equal(t, StateTitle, s.State)
	assert.Zero(t, s.Eggs.BurnedCount())
	assert.Equal(t, EventReturnedToTitle, (*events)[len(*events)-1])
}

func TestSessionWinCheckRunsBeforeMovement(t *testing.T) {
	s, _ := newArenaSession(t)
	s.Update(FrameInput{Confirm: true}, 0.016)
	for i := range s.Eggs.Eggs {
		s.Eggs.Eggs[i].Burned = true
	}
	s.Update(FrameInput{Move: MoveIntent{Forward: true}}, 0.5)
	assert.Equal(t, StateGameClear, s.State)
	assert.Equal(t, mgl64.Vec3{0, 2, 0}, s.Player.Eye)
}

func TestSessionCaughtResetsEverything(t *testing.T) {
	s, events := newArenaSession(t)
	s.Update(FrameInput{Confirm: true}, 0.016)
	s.Update(FrameInput{Interact: true}, 0.016)
	require.Equal(t, 1, s.Eggs.BurnedCount())

	s.Player.HandleMouse(100, 0)
	s.Spider.Pos = mgl64.Vec3{s.Player.Eye.X(), 0, s.Player.Eye.Z()}
	s.Update(FrameInput{}, 0.016)

	assert.Equal(t, StateGameOver, s.State)
	assert.Equal(t, 1, s.Catches)
	assert.Zero(t, s.Eggs.BurnedCount())
	assert.Equal(t, mgl64.Vec3{0, 2, 0}, s.Player.Eye)
	assert.Zero(t, s.Player.Angle)
	assert.Equal(t, mgl64.Vec3{50, 0, 50}, s.Spider.Pos)
	assert.Contains(t, *events, EventCaught)

	s.Update(FrameInput{Confirm: true}, 0.016)
	assert.Equal(t, StateGameplay, s.State)
	assert.Equal(t, 2, s.Attempts)
}

func TestSessionBurnAndCatchSameFrame(t *testing.T) {
	s, events := newArenaSession(t)
	s.Update(FrameInput{Confirm: true}, 0.016)
	require.Equal(t, 0, s.EggInReach())

	s.Spider.Pos = mgl64.Vec3{s.Player.Eye.X(), 0, s.Player.Eye.Z()}
	s.Update(FrameInput{Interact: true}, 0.016)

	assert.Equal(t, StateGameOver, s.State)
	assert.Zero(t, s.Eggs.BurnedCount(), "the catch clears the burn from the same frame")
	assert.Equal(t, 1, s.Catches)

	burned, caught := -1, -1
	for i, e := range *events {
		switch e {
		case EventEggBurned:
			burned = i
		case EventCaught:
			caught = i
		}
	}
	require.GreaterOrEqual(t, burned, 0)
	require.GreaterOrEqual(t, caught, 0)
	assert.Less(t, burned, caught)
}

func TestSessionGameOverWaitsForConfirm(t *testing.T) {
	s, _ := newArenaSession(t)
	s.State = StateGameOver
	s.Update(FrameInput{Interact: true, Move: MoveIntent{Forward: true}}, 0.016)
	assert.Equal(t, StateGameOver, s.State)
}

func TestSessionSpiderChasesDuringGameplay(t *testing.T) {
	s, _ := newArenaSession(t)
	before := s.Spider.DistanceTo(s.Player.Eye)

	s.Update(FrameInput{}, 1)
	assert.Equal(t, before, s.Spider.DistanceTo(s.Player.Eye), "spider waits on the title screen")

	s.Update(FrameInput{Confirm: true}, 0.016)
	s.Update(FrameInput{}, 1)
	assert.InDelta(t, before-SpiderSpeed, s.Spider.DistanceTo(s.Player.Eye), 1e-9)
}

func TestSessionElapsedOnlyInGameplay(t *testing.T) {
	s, _ := newArenaSession(t)
	s.Update(FrameInput{}, 1)
	assert.Zero(t, s.Elapsed)

	s.Update(FrameInput{Confirm: true}, 1)
	s.Update(FrameInput{}, 0.25)
	s.Update(FrameInput{}, 0.25)
	assert.InDelta(t, 0.5, s.Elapsed, 1e-12)
}

func TestSessionToggleDebug(t *testing.T) {
	s, _ := newArenaSession(t)
	assert.False(t, s.Debug)
	s.Update(FrameInput{ToggleDebug: true}, 0.016)
	assert.True(t, s.Debug)
	s.Update(FrameInput{ToggleDebug: true}, 0.016)
	assert.False(t, s.Debug)
}

func TestTitlePulse(t *testing.T) {
	p := TitlePulse{Alpha: TitleAlphaStart}

	p.Update(20)
	assert.Zero(t, p.Alpha)
	assert.True(t, p.increasing)

	p.Update(10)
	assert.InDelta(t, 10*TitleAlphaRate, p.Alpha, 1e-12)
	assert.InDelta(t, 30*TitleWebSpin, p.Rotation, 1e-12)

	p.Update(100)
	assert.Equal(t, TitleAlphaMax, p.Alpha)
	assert.False(t, p.increasing)
}

func TestGameStateString(t *testing.T) {
	assert.Equal(t, "title", StateTitle.String())
	assert.Equal(t, "gameplay", StateGameplay.String())
	assert.Equal(t, "game_over", StateGameOver.String())
	assert.Equal(t, "game_clear", StateGameClear.String())
	assert.Equal(t, "unknown", GameState(42).String())
}
