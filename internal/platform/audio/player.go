// Package audio plays game sound cues through the system speaker.
//
// Sounds are WAV files under <assets>/sounds/<name>.wav, decoded once and
// kept in memory. A missing or unreadable file yields no sound; the game
// keeps running silently.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/blitz-arcade/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)

	// resampleQuality trades CPU for fidelity when a file's rate differs.
	resampleQuality = 4
)

// sound is a decoded cue held in memory.
type sound struct {
	name string
	buf  *beep.Buffer
}

// Name returns the cue name.
func (s *sound) Name() string {
	return s.name
}

var _ core.Audio = (*Player)(nil)

// Player implements core.Audio on top of a beep mixer.
type Player struct {
	mu        sync.Mutex
	assetsDir string
	mixer     *beep.Mixer
	music     *beep.Ctrl
	live      bool // Speaker initialized and draining the mixer
}

// Open initializes the speaker and starts mixing.
func Open(assetsDir string) (*Player, error) {
	p := newPlayer(assetsDir)
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot initialize speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.live = true
	return p, nil
}

// newPlayer creates a player whose mixer is not attached to a device.
func newPlayer(assetsDir string) *Player {
	return &Player{
		assetsDir: assetsDir,
		mixer:     &beep.Mixer{},
	}
}

// withMixer runs fn while the speaker is not reading the mixer.
func (p *Player) withMixer(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.live {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// LoadSound decodes <assets>/sounds/<name>.wav. Returns nil when the file
// is missing or cannot be decoded.
func (p *Player) LoadSound(name string) core.Sound {
	s, err := p.load(name)
	if err != nil {
		log.Debug("sound unavailable", "name", name, "err", err)
		return nil
	}
	return s
}

func (p *Player) load(name string) (*sound, error) {
	path := filepath.Join(p.assetsDir, "sounds", name+".wav")
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("audio: %s: %w", path, core.ErrAssetMissing)
		}
		return nil, fmt.Errorf("audio: %s: %w: %w", path, core.ErrAssetMissing, err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w: %w", path, core.ErrAssetMissing, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		src = beep.Resample(resampleQuality, format.SampleRate, sampleRate, streamer)
	}

	format.SampleRate = sampleRate
	buf := beep.NewBuffer(format)
	buf.Append(src)
	return &sound{name: name, buf: buf}, nil
}

// Play starts a one-shot cue. A nil sound is ignored.
func (p *Player) Play(s core.Sound) {
	snd, ok := s.(*sound)
	if !ok || snd == nil {
		return
	}
	p.withMixer(func() {
		p.mixer.Add(snd.buf.Streamer(0, snd.buf.Len()))
	})
}

// PlayMusicLoop replaces the background track with s, repeating forever.
func (p *Player) PlayMusicLoop(s core.Sound) {
	snd, ok := s.(*sound)
	if !ok || snd == nil {
		return
	}
	p.withMixer(func() {
		p.stopMusicLocked()
		p.music = &beep.Ctrl{Streamer: beep.Loop(-1, snd.buf.Streamer(0, snd.buf.Len()))}
		p.mixer.Add(p.music)
	})
}

// StopMusic ends the background track, if any.
func (p *Player) StopMusic() {
	p.withMixer(p.stopMusicLocked)
}

func (p *Player) stopMusicLocked() {
	if p.music == nil {
		return
	}
	// A Ctrl without a streamer drains, so the mixer drops it.
	p.music.Paused = false
	p.music.Streamer = nil
	p.music = nil
}

// Close silences everything and releases the audio device.
func (p *Player) Close() {
	p.withMixer(func() {
		p.stopMusicLocked()
		p.mixer.Clear()
	})

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.live {
		speaker.Clear()
		speaker.Close()
		p.live = false
	}
}
