package game

type GameState int

const (
	StateTitle     GameState = iota
	StateGameplay            // maze, spider, eggs
	StateGameOver            // caught by the spider
	StateGameClear           // every egg burned
)

func (s GameState) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateGameplay:
		return "gameplay"
	case StateGameOver:
		return "game_over"
	case StateGameClear:
		return "game_clear"
	}
	return "unknown"
}

// FrameInput is the polled input for one frame.
type FrameInput struct {
	Move        MoveIntent
	MouseDX     float64
	MouseDY     float64
	Interact    bool // left click, just pressed
	Confirm     bool // screen button or Enter/Space, just pressed
	ToggleDebug bool
}

// TitlePulse animates the title-screen web: slow spin and a ping-pong alpha.
type TitlePulse struct {
	Rotation   float64
	Alpha      float64
	increasing bool
}

func (t *TitlePulse) Update(dt float64) {
	t.Rotation += TitleWebSpin * dt
	if t.increasing {
		t.Alpha = approach(t.Alpha, TitleAlphaMax, TitleAlphaRate*dt)
		if t.Alpha >= TitleAlphaMax {
			t.increasing = false
		}
		return
	}
	t.Alpha = approach(t.Alpha, 0, TitleAlphaRate*dt)
	if t.Alpha <= 0 {
		t.increasing = true
	}
}

type GameSession struct {
	State  GameState
	Level  *Level
	Player *PlayerController
	Spider *Spider
	Eggs   *EggSet
	Title  TitlePulse
	Debug  bool

	// Gameplay clock for the current attempt.
	Elapsed float64

	Attempts int
	Catches  int
	Clears   int

	bus       *EventBus
	colliders []Box
}

func NewGameSession(level *Level, settings Settings, bus *EventBus) *GameSession {
	if bus == nil {
		bus = NewEventBus()
	}
	s := &GameSession{
		State:     StateTitle,
		Level:     level,
		Player:    NewPlayerController(level.PlayerSpawn, settings.MouseSensitivity, settings.InvertY),
		Spider:    NewSpider(level.SpiderSpawn, level.Spider.Box),
		Eggs:      NewEggSet(level.Eggs),
		Title:     TitlePulse{Alpha: TitleAlphaStart},
		Debug:     settings.Debug,
		bus:       bus,
		colliders: level.Colliders(),
	}
	return s
}

// Reset puts both actors back on their spawns and clears every egg.
func (s *GameSession) Reset() {
	s.Player.Place(s.Level.PlayerSpawn)
	s.Spider.Place(s.Level.SpiderSpawn)
	s.Eggs.Reset()
	s.Elapsed = 0
}

// Update advances the session by one frame.
func (s *GameSession) Update(in FrameInput, dt float64) {
	if in.ToggleDebug {
		s.Debug = !s.Debug
	}
	switch s.State {
	case StateTitle:
		s.Title.Update(dt)
		if in.Confirm {
			s.startGameplay()
		}

	case StateGameOver:
		if in.Confirm {
			s.startGameplay()
		}

	case StateGameClear:
		if in.Confirm {
			s.Reset()
			s.State = StateTitle
			s.bus.Emit(Event{Type: EventReturnedToTitle})
		}

	case StateGameplay:
		s.updateGameplay(in, dt)
	}
}

func (s *GameSession) startGameplay() {
	s.State = StateGameplay
	s.Elapsed = 0
	s.Attempts++
	s.bus.Emit(Event{Type: EventGameStarted, Pos: s.Player.Eye, Data: s.Attempts})
}

func (s *GameSession) updateGameplay(in FrameInput, dt float64) {
	if s.Eggs.AllBurned() {
		s.State = StateGameClear
		s.Clears++
		s.bus.Emit(Event{Type: EventCleared, Pos: s.Player.Eye, Data: s.Eggs.BurnedCount()})
		return
	}
	s.Elapsed += dt

	s.Player.HandleMouse(in.MouseDX, in.MouseDY)
	s.Player.UpdatePosition(in.Move, dt, s.colliders)

	eye := s.Player.Eye
	s.Spider.Update(eye, dt)
	if s.Spider.Warn(eye, dt) {
		s.bus.Emit(Event{Type: EventSpiderNear, Pos: s.Spider.Pos})
	}

	body := s.Player.Sphere()
	for _, i := range s.Eggs.TryBurn(body, in.Interact) {
		s.bus.Emit(Event{Type: EventEggBurned, Pos: s.Eggs.Eggs[i].Box.Center(), Data: i})
	}

	if body.Intersects(s.Spider.Bounds()) {
		caughtAt := s.Spider.Pos
		s.Reset()
		s.State = StateGameOver
		s.Catches++
		s.bus.Emit(Event{Type: EventCaught, Pos: caughtAt, Data: s.Attempts})
	}
}

// EggInReach is the egg the player could burn right now, or -1.
func (s *GameSession) EggInReach() int {
	if s.State != StateGameplay {
		return -1
	}
	return s.Eggs.InReach(s.Player.Sphere())
}
