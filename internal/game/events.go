package game

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
)

type EventType int

const (
	EventGameStarted EventType = iota
	EventEggBurned
	EventSpiderNear
	EventCaught
	EventCleared
	EventReturnedToTitle
)

func (t EventType) String() string {
	switch t {
	case EventGameStarted:
		return "game_started"
	case EventEggBurned:
		return "egg_burned"
	case EventSpiderNear:
		return "spider_near"
	case EventCaught:
		return "caught"
	case EventCleared:
		return "cleared"
	case EventReturnedToTitle:
		return "returned_to_title"
	}
	return "unknown"
}

type Event struct {
	Type EventType
	Pos  mgl64.Vec3
	Data int // Generic payload (e.g. egg index).
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventGameStarted; t <= EventReturnedToTitle; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

// LogEvents writes every game event to the logger.
func LogEvents(eb *EventBus, log *slog.Logger) {
	eb.SubscribeAll(func(e Event) {
		log.Info("game event",
			"event", e.Type.String(),
			"x", e.Pos.X(), "y", e.Pos.Y(), "z", e.Pos.Z(),
			"data", e.Data,
		)
	})
}
