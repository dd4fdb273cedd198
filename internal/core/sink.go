package core

// Canvas is the render sink. Coordinates are playfield pixels; how shapes
// are rasterized is up to the implementation.
type Canvas interface {
	// FillRect fills r rotated by rotation degrees around its center.
	FillRect(r Rect, rotation float64, c Color)
	StrokeRect(r Rect, width float64, c Color)
	FillCircle(center Vec2, radius float64, c Color)
	StrokeCircle(center Vec2, radius, width float64, c Color)
	// Text draws s with its top-left corner at pos. A nil font selects the
	// canvas fallback face.
	Text(f Font, pos Vec2, size float64, s string, c Color)
	// DrawTexture stretches t over dst.
	DrawTexture(t Texture, dst Rect)
}

// Texture is an opaque drawable handle from an Assets provider.
type Texture interface {
	Size() (w, h int)
}

// Font is an opaque font handle from an Assets provider.
type Font interface {
	Name() string
}

// Assets resolves logical names to drawable handles.
// ok is false when the asset is unavailable.
type Assets interface {
	Texture(name string) (Texture, bool)
	Font(name string) (Font, bool)
}

// NoAssets is an Assets provider with nothing in it.
type NoAssets struct{}

func (NoAssets) Texture(string) (Texture, bool) { return nil, false }
func (NoAssets) Font(string) (Font, bool) { return nil, false }

// Cue names a one-shot sound effect.
type Cue string

const (
	CueLaser      Cue = "laser"
	CuePunch      Cue = "punch"
	CueGhostDeath Cue = "ghost_death"
	CueHurt       Cue = "hurt"
	CueLevelUp    Cue = "level_up"
)

// MusicCommand controls the looped background track.
type MusicCommand int

const (
	MusicStart MusicCommand = iota
	MusicPause
	MusicResume
	MusicStop
)

// Audio is the fire-and-forget audio sink. Implementations must not block.
type Audio interface {
	PlayCue(c Cue)
	Music(cmd MusicCommand)
}

// NopAudio discards every request.
type NopAudio struct{}

func (NopAudio) PlayCue(Cue) {}
func (NopAudio) Music(MusicCommand) {}
