package game

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestEventBusDispatch(t *testing.T) {
	eb := NewEventBus()
	var burned []int
	var all []EventType
	eb.Subscribe(EventEggBurned, func(e Event) { burned = append(burned, e.Data) })
	eb.SubscribeAll(func(e Event) { all = append(all, e.Type) })

	eb.Emit(Event{Type: EventGameStarted})
	eb.Emit(Event{Type: EventEggBurned, Data: 3})
	eb.Emit(Event{Type: EventCaught})

	assert.Equal(t, []int{3}, burned)
	assert.Equal(t, []EventType{EventGameStarted, EventEggBurned, EventCaught}, all)
}

func TestEventTypeString(t *testing.T) {
	for et := EventGameStarted; et <= EventReturnedToTitle; et++ {
		assert.NotEqual(t, "unknown", et.String())
	}
	assert.Equal(t, "unknown", EventType(99).String())
}

func TestLogEvents(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, slog.LevelInfo)
	eb := NewEventBus()
	LogEvents(eb, Component(log, "events"))

	eb.Emit(Event{Type: EventEggBurned, Pos: mgl64.Vec3{1, 2, 3}, Data: 4})

	out := buf.String()
	assert.Contains(t, out, `msg="game event"`)
	assert.Contains(t, out, "event=egg_burned")
	assert.Contains(t, out, "component=events")
	assert.Contains(t, out, "data=4")
	assert.Contains(t, out, "run=")
}

func TestLoggerLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, slog.LevelWarn)
	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
