// internal/assets/audio.go
package assets

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"go-gravitar/internal/config"
)

const sampleRate = beep.SampleRate(44100)

type TrackID int

const (
	TrackNone TrackID = iota
	TrackMainTheme
	TrackGameOver
)

func (t TrackID) String() string {
	switch t {
	case TrackMainTheme:
		return "main-theme"
	case TrackGameOver:
		return "game-over"
	}
	return "none"
}

// AudioManager loops one soundtrack at a time. The speaker pulls samples on
// its own goroutine, so every mixer change happens under speaker.Lock.
type AudioManager struct {
	mu          sync.Mutex
	log         *zap.Logger
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	enabled     bool

	current TrackID
	ctrl    *beep.Ctrl
}

func NewAudioManager(cfg config.AudioConfig, log *zap.Logger) *AudioManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &AudioManager{
		log:     log,
		mixer:   &beep.Mixer{},
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
	}
}

// Initialize opens the audio device. On failure the manager keeps tracking
// the requested soundtrack but stays silent.
func (m *AudioManager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Play switches to track unless it is already the current one.
func (m *AudioManager) Play(track TrackID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == track {
		return
	}
	m.log.Debug("soundtrack", zap.Stringer("from", m.current), zap.Stringer("to", track))

	ctrl := &beep.Ctrl{Streamer: m.withVolume(newTrack(track)), Paused: !m.enabled}
	m.locked(func() {
		m.mixer.Clear()
		m.mixer.Add(ctrl)
	})
	m.ctrl = ctrl
	m.current = track
}

// IsPlaying reports whether track is current and audible.
func (m *AudioManager) IsPlaying(track TrackID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled && m.current == track && track != TrackNone
}

func (m *AudioManager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}

// Toggle mutes or unmutes the soundtrack and reports the new state.
func (m *AudioManager) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.enabled = !m.enabled
	if m.ctrl != nil {
		m.locked(func() { m.ctrl.Paused = !m.enabled })
	}
	m.log.Info("audio toggled", zap.Bool("enabled", m.enabled))
	return m.enabled
}

// Close silences the mixer. The speaker itself stays open for the process.
func (m *AudioManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.locked(func() { m.mixer.Clear() })
	m.ctrl = nil
	m.current = TrackNone
}

func (m *AudioManager) locked(fn func()) {
	if m.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

func (m *AudioManager) withVolume(s beep.Streamer) beep.Streamer {
	if m.volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(m.volume)}
}

func newTrack(track TrackID) beep.Streamer {
	switch track {
	case TrackMainTheme:
		return NewArpeggio(sampleRate, mainTheme, 180*time.Millisecond, true)
	case TrackGameOver:
		return NewArpeggio(sampleRate, gameOverTheme, 420*time.Millisecond, true)
	}
	return beep.Silence(-1)
}

// Notes in Hz.
var (
	mainTheme     = []float64{220, 277.18, 329.63, 440, 329.63, 277.18, 196, 246.94, 293.66, 392, 293.66, 246.94}
	gameOverTheme = []float64{392, 349.23, 311.13, 261.63, 0, 196}
)

// Arpeggio plays a sequence of plucked notes, once or forever. A zero
// frequency is a rest.
type Arpeggio struct {
	sr      beep.SampleRate
	notes   []float64
	perNote int
	loop    bool
	pos     int
}

func NewArpeggio(sr beep.SampleRate, notes []float64, noteLength time.Duration, loop bool) *Arpeggio {
	return &Arpeggio{sr: sr, notes: notes, perNote: sr.N(noteLength), loop: loop}
}

func (a *Arpeggio) Stream(samples [][2]float64) (n int, ok bool) {
	total := a.perNote * len(a.notes)
	for i := range samples {
		if a.pos >= total {
			if !a.loop || total == 0 {
				return i, i > 0
			}
			a.pos = 0
		}
		note := a.notes[a.pos/a.perNote]
		inNote := a.pos % a.perNote
		t := float64(inNote) / float64(a.sr)

		sample := 0.0
		if note > 0 {
			// Short attack, exponential release.
			env := math.Min(float64(inNote)/float64(a.sr)/0.01, 1) * math.Exp(-t*4)
			sample = env * (0.2*math.Sin(2*math.Pi*note*t) + 0.06*math.Sin(2*math.Pi*note*3*t))
		}
		samples[i][0] = sample
		samples[i][1] = sample
		a.pos++
	}
	return len(samples), true
}

func (a *Arpeggio) Err() error { return nil }
