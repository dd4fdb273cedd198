package window

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/ghostbrawl/internal/core"
)

const (
	sampleRate  = 44100
	sfxVolume   = 0.5
	musicVolume = 0.25
)

// An ebiten process may only ever own one audio context.
var (
	audioContext *audio.Context
	audioOnce    sync.Once
)

func sharedContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(sampleRate)
	})
	return audioContext
}

// Audio plays cues and the looping music track through ebiten's mixer.
// Sounds found under <dir>/sounds (<cue>.wav or <cue>.ogg, music.ogg)
// replace the synthesized defaults.
type Audio struct {
	ctx   *audio.Context
	log   *log.Logger
	cues  map[core.Cue][]byte
	music *audio.Player
	muted bool
}

// NewAudio prepares every cue up front so playback never decodes.
func NewAudio(dir string, muted bool, logger *log.Logger) *Audio {
	a := &Audio{
		ctx:   sharedContext(),
		log:   logger,
		cues:  make(map[core.Cue][]byte),
		muted: muted,
	}
	for cue, notes := range cueNotes {
		pcm, err := loadSound(a.ctx, soundPath(dir, string(cue)))
		if err != nil {
			a.log.Debug("synthesizing cue", "cue", cue, "reason", err)
			pcm = synth(notes, 0.6)
		}
		a.cues[cue] = pcm
	}

	pcm, err := loadSound(a.ctx, soundPath(dir, "music"))
	if err != nil {
		pcm = synth(musicNotes, 0.35)
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	if a.music, err = a.ctx.NewPlayer(loop); err != nil {
		a.log.Warn("music disabled", "err", err)
		a.music = nil
	} else {
		a.music.SetVolume(musicVolume)
	}
	return a
}

// PlayCue starts a one-shot player. It never blocks.
func (a *Audio) PlayCue(c core.Cue) {
	pcm, ok := a.cues[c]
	if !ok || a.muted {
		return
	}
	p := a.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(sfxVolume)
	p.Play()
}

func (a *Audio) Music(cmd core.MusicCommand) {
	if a.music == nil || a.muted {
		return
	}
	switch cmd {
	case core.MusicStart:
		a.rewind()
		a.music.Play()
	case core.MusicPause:
		a.music.Pause()
	case core.MusicResume:
		a.music.Play()
	case core.MusicStop:
		a.music.Pause()
		a.rewind()
	}
}

func (a *Audio) rewind() {
	if err := a.music.Rewind(); err != nil {
		a.log.Warn("rewind music", "err", err)
	}
}

// soundPath returns the first existing <dir>/sounds/<name>.{wav,ogg}, or ""
// when there is none.
func soundPath(dir, name string) string {
	if dir == "" {
		return ""
	}
	for _, ext := range []string{".wav", ".ogg"} {
		p := filepath.Join(dir, "sounds", name+ext)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// loadSound decodes a wav or ogg file to the context's PCM format.
func loadSound(ctx *audio.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("window: no sound file")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("window: read sound %s: %w", path, err)
	}

	var stream io.Reader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(data))
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("window: unsupported sound format %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("window: decode sound %s: %w", path, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("window: read decoded sound %s: %w", path, err)
	}
	return pcm, nil
}

// note is one synthesized segment: a frequency sweep with optional noise.
type note struct {
	from, to float64 // Hz; 0 is silence
	dur      float64 // seconds
	noise    float64 // 0..1 mix of white noise
	square   bool
}

var cueNotes = map[core.Cue][]note{
	core.CueLaser:      {{from: 1400, to: 300, dur: 0.15, square: true}},
	core.CuePunch:      {{from: 140, to: 60, dur: 0.12, noise: 0.6}},
	core.CueGhostDeath: {{from: 700, to: 90, dur: 0.45, noise: 0.15}},
	core.CueHurt:       {{from: 220, to: 150, dur: 0.18, square: true}},
	core.CueLevelUp: {
		{from: 523, to: 523, dur: 0.1},
		{from: 659, to: 659, dur: 0.1},
		{from: 784, to: 784, dur: 0.2},
	},
}

// A slow minor bass line, two seconds per loop.
var musicNotes = []note{
	{from: 110, to: 110, dur: 0.25},
	{from: 0, to: 0, dur: 0.25},
	{from: 131, to: 131, dur: 0.25},
	{from: 110, to: 110, dur: 0.25},
	{from: 98, to: 98, dur: 0.25},
	{from: 0, to: 0, dur: 0.25},
	{from: 82, to: 82, dur: 0.25},
	{from: 98, to: 98, dur: 0.25},
}

// synth renders notes to 16-bit little-endian stereo PCM at sampleRate.
// Each note fades out linearly so segments do not click.
func synth(notes []note, volume float64) []byte {
	rng := rand.New(rand.NewSource(1)) //#nosec G404 -- noise timbre, not security
	var buf bytes.Buffer
	phase := 0.0
	for _, n := range notes {
		samples := int(n.dur * sampleRate)
		for i := range samples {
			t := float64(i) / float64(samples)
			freq := n.from + (n.to-n.from)*t
			phase += 2 * math.Pi * freq / sampleRate

			v := 0.0
			if freq > 0 {
				v = math.Sin(phase)
				if n.square {
					v = math.Copysign(0.6, v)
				}
			}
			v = v*(1-n.noise) + (rng.Float64()*2-1)*n.noise
			v *= volume * (1 - t)

			s := int16(core.ClampF(v, -1, 1) * math.MaxInt16)
			_ = binary.Write(&buf, binary.LittleEndian, [2]int16{s, s})
		}
	}
	return buf.Bytes()
}
