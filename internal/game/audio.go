package game

import (
	"bytes"
	"encoding/binary"
	"log/slog"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundFire        SoundKind = iota // egg set alight
	SoundSpiderClose                  // spider within warning range
	SoundCaught
	SoundClear
	SoundMenuSelect
)

// AudioSystem plays procedural sound effects and the looping background track.
// A nil *AudioSystem is valid and silent.
type AudioSystem struct {
	ctx         *oto.Context
	ready       chan struct{}
	musicPlayer oto.Player

	musicVolume float64
	sfxVolume   float64
	log         *slog.Logger
}

// InitAudio opens the output device. Callers treat an error as "no sound".
func InitAudio(musicVolume, sfxVolume float64, log *slog.Logger) (*AudioSystem, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &AudioSystem{
		ctx:         ctx,
		ready:       ready,
		musicVolume: clampF(musicVolume, 0, 1),
		sfxVolume:   clampF(sfxVolume, 0, 1),
		log:         log,
	}, nil
}

func (a *AudioSystem) isReady() bool {
	if a == nil {
		return false
	}
	select {
	case <-a.ready:
		return true
	default:
		return false
	}
}

// PlaySound plays a procedurally generated sound effect.
func (a *AudioSystem) PlaySound(kind SoundKind) {
	if !a.isReady() {
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		player := a.ctx.NewPlayer(bytes.NewReader(samples))
		player.SetVolume(a.sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil && a.log != nil {
			a.log.Debug("close sfx player", "err", err)
		}
	}()
}

// StartMusic begins the looping background track. Calling it again while
// the track is playing does nothing.
func (a *AudioSystem) StartMusic() {
	if !a.isReady() || a.musicPlayer != nil {
		return
	}
	reader := newMusicReader(uint64(time.Now().UnixNano()))
	player := a.ctx.NewPlayer(reader)
	player.SetVolume(a.musicVolume)
	a.musicPlayer = player
	player.Play()
}

// Close stops the background track.
func (a *AudioSystem) Close() {
	if a == nil || a.musicPlayer == nil {
		return
	}
	if err := a.musicPlayer.Close(); err != nil && a.log != nil {
		a.log.Warn("close music player", "err", err)
	}
	a.musicPlayer = nil
}

// AttachAudio maps game events to sounds.
func AttachAudio(eb *EventBus, a *AudioSystem) {
	eb.Subscribe(EventGameStarted, func(Event) {
		a.PlaySound(SoundMenuSelect)
		a.StartMusic()
	})
	eb.Subscribe(EventEggBurned, func(Event) { a.PlaySound(SoundFire) })
	eb.Subscribe(EventSpiderNear, func(Event) { a.PlaySound(SoundSpiderClose) })
	eb.Subscribe(EventCaught, func(Event) { a.PlaySound(SoundCaught) })
	eb.Subscribe(EventCleared, func(Event) { a.PlaySound(SoundClear) })
	eb.Subscribe(EventReturnedToTitle, func(Event) { a.PlaySound(SoundMenuSelect) })
}

// putFrame writes sample to both channels of stereo frame i.
func putFrame(buf []byte, i int, sample float64) {
	bits := math.Float32bits(float32(sample))
	binary.LittleEndian.PutUint32(buf[i*8:], bits)
	binary.LittleEndian.PutUint32(buf[i*8+4:], bits)
}

// saturate folds any input into (-1, 1), staying close to linear near zero.
func saturate(x float64) float64 {
	return x / (1 + math.Abs(x))
}

// envelope is an attack/decay/sustain/release shape. Stage lengths are
// fractions of the whole sound.
type envelope struct {
	attack, decay, sustain, release float64
}

func (e envelope) at(p float64) float64 {
	if p < e.attack {
		return p / e.attack
	}
	if p -= e.attack; p < e.decay {
		return 1 - (1-e.sustain)*p/e.decay
	}
	tail := 1 - e.attack - e.decay - e.release
	if p -= e.decay; p < tail {
		return e.sustain
	}
	return e.sustain * math.Max(0, 1-(p-tail)/e.release)
}

// fmTone is a sine carrier phase-modulated by a sine at ratio*carrier.
func fmTone(t, carrier, ratio, depth float64) float64 {
	phase := 2 * math.Pi * carrier * t
	return math.Sin(phase + depth*math.Sin(phase*ratio))
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundFire:
		return genFire()
	case SoundSpiderClose:
		return genSpiderClose()
	case SoundCaught:
		return genCaught()
	case SoundClear:
		return genClear()
	case SoundMenuSelect:
		return genMenuSelect()
	}
	return nil
}

// genFire: a whoosh of filtered noise that crackles as it dies away.
func genFire() []byte {
	n := int(0.9 * SampleRate)
	buf := makeBuf(n)
	rng := NewRand(33333)
	lp := 0.0
	crackle := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		raw := rng.RangeF(-1, 1)
		lp = lp*0.82 + raw*0.18
		if rng.Float64() < 0.0015 {
			crackle = rng.RangeF(0.4, 0.9)
		}
		crackle *= 0.93
		env := envelope{0.08, 0.3, 0.5, 0.5}.at(p)
		flutter := 0.7 + 0.3*math.Sin(2*math.Pi*9*t)
		s := (lp*0.9*flutter + raw*crackle*0.6) * env * 0.6
		putFrame(buf, i, saturate(s))
	}
	return buf
}

// genSpiderClose: low skittering clicks over a rising sub tone.
func genSpiderClose() []byte {
	n := int(1.1 * SampleRate)
	buf := makeBuf(n)
	rng := NewRand(0x5EED)
	click := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		// Eight legs, irregular taps.
		if i%int(SampleRate/22) == 0 && rng.Float64() < 0.8 {
			click = 1
		}
		click *= 0.985
		tap := fmTone(t, 1800, 0.5, 2.5) * click * 0.25
		env := envelope{0.25, 0.4, 0.6, 0.3}.at(p)
		freq := 48 + 30*p
		sub := math.Sin(2*math.Pi*freq*t) * env * 0.45
		putFrame(buf, i, saturate(tap+sub))
	}
	return buf
}

// genCaught: a hissing strike followed by a falling minor chord.
func genCaught() []byte {
	dur := 1.2
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{311.13, 0.10}, // Eb4
		{246.94, 0.22}, // B3
		{207.65, 0.34}, // Ab3
	}
	mix := make([]float64, n)
	rng := NewRand(0xBADBEEF)
	for i := 0; i < int(0.18*SampleRate); i++ {
		p := float64(i) / (0.18 * SampleRate)
		mix[i] += rng.RangeF(-1, 1) * (1 - p) * 0.5
	}
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := envelope{0.008, 0.25, 0.3, 0.45}.at(np)
			freq := note.freq * (1 - np*0.06)
			s := fmTone(t, freq, 2.0, 2.4*env) * env * 0.3
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putFrame(buf, i, saturate(s))
	}
	return buf
}

// genClear: ascending FM bell staircase, each note ringing over the next.
func genClear() []byte {
	notes := []float64{440, 554.37, 659.25, 880, 1108.73}
	noteStep := int(0.12 * SampleRate)
	total := len(notes)*noteStep + int(0.6*SampleRate)
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := envelope{0.003, 0.65, 0.04, 0.28}.at(np)
			s := fmTone(t, freq, 3.5, 5.5*env) * env * 0.28
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putFrame(buf, i, saturate(s))
	}
	return buf
}

// genMenuSelect: crisp click + brief high tone.
func genMenuSelect() []byte {
	n := SampleRate * 65 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := envelope{0.004, 0.55, 0.0, 0.1}.at(p)
		freq := 1400 - 700*p
		s := fmTone(t, freq, 1.0, 0.6) * env * 0.38
		putFrame(buf, i, saturate(s))
	}
	return buf
}

// ---- Background music ----------------------------------------------------

// musicReader streams an endless dark drone with a heartbeat pulse. It never
// returns io.EOF, so the track loops for as long as the player is open.
type musicReader struct {
	t   float64
	rng *Rand
	lp  float64 // lowpass state for the wind layer
}

func newMusicReader(seed uint64) *musicReader {
	return &musicReader{rng: NewRand(seed)}
}

// Drone chord, A minor with a flat second for unease.
var droneChord = [...]float64{55.0, 58.27, 82.41, 110.0}

const (
	heartbeatPeriod = 1.1 // seconds per "lub-dub"
	droneSwell      = 0.07
)

// heartbeat returns the double thump at time-in-beat tb.
func heartbeat(tb float64) float64 {
	thump := func(trig float64) float64 {
		if trig < 0 || trig > 0.25 {
			return 0
		}
		phase := 2 * math.Pi * 70 / 14 * (1 - math.Exp(-trig*14))
		return math.Sin(phase) * math.Exp(-trig*20)
	}
	return thump(tb)*0.8 + thump(tb-0.22)*0.55
}

func (m *musicReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	if samples == 0 {
		return 0, nil
	}
	const dt = 1.0 / SampleRate
	for i := 0; i < samples; i++ {
		t := m.t
		swell := 0.6 + 0.4*math.Sin(2*math.Pi*droneSwell*t)
		s := 0.0
		for k, f := range droneChord {
			vib := 1 + 0.002*math.Sin(2*math.Pi*(0.13+0.05*float64(k))*t)
			s += fmTone(t, f*vib, 0.5, 0.8*swell) * 0.11
		}
		s *= swell

		m.lp = m.lp*0.995 + m.rng.RangeF(-1, 1)*0.005
		s += m.lp * 2.2 * (0.5 + 0.5*math.Sin(2*math.Pi*0.05*t+1))

		s += heartbeat(math.Mod(t, heartbeatPeriod)) * 0.5

		putFrame(p, i, saturate(s))
		m.t += dt
	}
	return samples * 8, nil
}
