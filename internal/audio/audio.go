package audio

import (
	"encoding/binary"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const sampleRate = 44100

// Listener represents the audio listener position and orientation
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// Source is a loaded sound that can be played at a world position.
type Source struct {
	ID          uint64
	Position    rl.Vector3
	Sound       rl.Sound
	Volume      float32
	MaxDistance float32
	Spatial     bool
	playing     bool
}

// Manager handles audio playback. It is only touched from the frame loop.
type Manager struct {
	listener Listener
	sources  map[uint64]*Source
	nextID   uint64
}

var globalManager *Manager

// Init opens the audio device. Every other call is a no-op until Init.
func Init() {
	rl.InitAudioDevice()
	globalManager = &Manager{
		sources: make(map[uint64]*Source),
	}
}

// Close shuts down the audio system
func Close() {
	if globalManager == nil {
		return
	}
	for _, src := range globalManager.sources {
		rl.UnloadSound(src.Sound)
	}
	globalManager.sources = nil
	globalManager = nil
	rl.CloseAudioDevice()
}

// SetListener updates the listener position and orientation
func SetListener(pos, forward, up rl.Vector3) {
	if globalManager == nil {
		return
	}
	globalManager.listener = NewListener(pos, forward, up)
}

// NewListener normalizes forward and derives the right vector.
func NewListener(pos, forward, up rl.Vector3) Listener {
	l := Listener{Position: pos}

	// Normalize forward, default to -Z if zero
	fwdLen := rl.Vector3Length(forward)
	if fwdLen > 0.001 {
		l.Forward = rl.Vector3Scale(forward, 1.0/fwdLen)
	} else {
		l.Forward = rl.Vector3{X: 0, Y: 0, Z: -1}
	}

	// up × forward
	right := rl.Vector3CrossProduct(up, l.Forward)
	rightLen := rl.Vector3Length(right)
	if rightLen > 0.001 {
		l.Right = rl.Vector3Scale(right, 1.0/rightLen)
	} else {
		l.Right = rl.Vector3{X: 1, Y: 0, Z: 0}
	}
	return l
}

// LoadChime synthesizes a chime from the given notes and returns a source ID.
func LoadChime(notes []float64, noteSeconds float64) (uint64, bool) {
	if globalManager == nil {
		return 0, false
	}

	samples := Chime(notes, noteSeconds, sampleRate)
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}
	wave := rl.NewWave(uint32(len(samples)), sampleRate, 16, 1, data)
	sound := rl.LoadSoundFromWave(wave)
	if !rl.IsSoundValid(sound) {
		return 0, false
	}

	id := globalManager.nextID
	globalManager.nextID++

	globalManager.sources[id] = &Source{
		ID:          id,
		Sound:       sound,
		Volume:      0.6,
		MaxDistance: 150.0,
		Spatial:     true,
	}

	return id, true
}

// PlayAt moves a source to pos and starts it.
func PlayAt(id uint64, pos rl.Vector3) {
	if globalManager == nil {
		return
	}
	src, ok := globalManager.sources[id]
	if !ok {
		return
	}
	src.Position = pos
	src.playing = true
	src.apply(globalManager.listener)
	rl.PlaySound(src.Sound)
}

// SetSourceSpatial sets whether a source uses 3D spatialization
func SetSourceSpatial(id uint64, spatial bool) {
	if globalManager == nil {
		return
	}
	if src, ok := globalManager.sources[id]; ok {
		src.Spatial = spatial
	}
}

// Update re-applies spatial parameters to every playing source.
func Update() {
	if globalManager == nil {
		return
	}
	for _, src := range globalManager.sources {
		if !src.playing {
			continue
		}
		if !rl.IsSoundPlaying(src.Sound) {
			src.playing = false
			continue
		}
		src.apply(globalManager.listener)
	}
}

func (src *Source) apply(listener Listener) {
	volume, pan := src.Volume, float32(0.5)
	if src.Spatial {
		volume, pan = Spatialize(listener, src.Position, src.Volume, src.MaxDistance)
	}
	rl.SetSoundVolume(src.Sound, volume)
	rl.SetSoundPan(src.Sound, pan)
}

// Spatialize returns volume and pan (0 left, 0.5 center, 1 right) for a
// source at pos heard by listener.
func Spatialize(listener Listener, pos rl.Vector3, baseVolume, maxDistance float32) (float32, float32) {
	toSource := rl.Vector3Subtract(pos, listener.Position)
	distance := rl.Vector3Length(toSource)

	// Linear falloff
	var volume float32
	if distance < maxDistance {
		volume = baseVolume * (1.0 - distance/maxDistance)
	}

	pan := float32(0.5)
	if distance > 0.001 {
		direction := rl.Vector3Scale(toSource, 1.0/distance)
		rightDot := rl.Vector3DotProduct(direction, listener.Right)
		pan = 0.5 + rightDot*0.5

		if pan < 0.0 {
			pan = 0.0
		} else if pan > 1.0 {
			pan = 1.0
		}

		// sounds behind are slightly quieter
		frontDot := rl.Vector3DotProduct(direction, listener.Forward)
		if frontDot < 0 {
			volume *= 0.7 + 0.3*float32(math.Abs(float64(frontDot)))
		}
	}
	return volume, pan
}

// Chime renders notes (Hz) back to back as 16-bit mono PCM with a short
// attack and exponential decay per note.
func Chime(notes []float64, noteSeconds float64, rate int) []int16 {
	perNote := int(noteSeconds * float64(rate))
	if perNote <= 0 {
		return nil
	}
	attack := perNote / 50
	out := make([]int16, 0, perNote*len(notes))
	for _, freq := range notes {
		for i := 0; i < perNote; i++ {
			t := float64(i) / float64(rate)
			env := math.Exp(-4 * float64(i) / float64(perNote))
			if i < attack {
				env *= float64(i) / float64(attack)
			}
			s := math.Sin(2*math.Pi*freq*t) * env * 0.8
			out = append(out, int16(s*math.MaxInt16))
		}
	}
	return out
}
