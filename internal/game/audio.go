package game

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

type SoundData struct {
	raw []byte
}

// AudioManager plays the game's sound cues. Every cue falls back to a
// synthesized beep when its file is missing.
type AudioManager struct {
	ctx        *audio.Context
	point      *SoundData
	weakness   *SoundData
	ghostEaten *SoundData
	death      *SoundData
}

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

// getAudioContext returns nil unless MAZECHASE_ENABLE_AUDIO=1.
// MAZECHASE_DISABLE_AUDIO=1 wins over it.
func getAudioContext() *audio.Context {
	if os.Getenv("MAZECHASE_DISABLE_AUDIO") == "1" {
		return nil
	}
	if os.Getenv("MAZECHASE_ENABLE_AUDIO") != "1" {
		return nil
	}
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(sampleRate)
	})
	return audioCtx
}

func NewAudioManager(soundsDir string) *AudioManager {
	if soundsDir == "" {
		soundsDir = "assets/sounds"
	}
	return &AudioManager{
		ctx:        getAudioContext(),
		point:      loadOrBeep(soundsDir, "point.wav", 60, 880),
		weakness:   loadOrBeep(soundsDir, "weakness.wav", 150, 660),
		ghostEaten: loadOrBeep(soundsDir, "ghost.wav", 200, 440),
		death:      loadOrBeep(soundsDir, "death.wav", 400, 220),
	}
}

func loadOrBeep(dir, file string, durationMs int, freq float64) *SoundData {
	b, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil || len(b) == 0 {
		return &SoundData{raw: synthBeepWAV(sampleRate, durationMs, freq)}
	}
	return &SoundData{raw: b}
}

func (am *AudioManager) play(sd *SoundData) {
	if am == nil || am.ctx == nil || sd == nil || len(sd.raw) == 0 {
		return
	}
	// Decode per play so cues can overlap.
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(sd.raw))
	if err != nil {
		return
	}
	p, err := am.ctx.NewPlayer(stream)
	if err != nil {
		return
	}
	p.Play()
}

func (am *AudioManager) PlayPoint()      { am.play(am.point) }
func (am *AudioManager) PlayWeakness()   { am.play(am.weakness) }
func (am *AudioManager) PlayGhostEaten() { am.play(am.ghostEaten) }
func (am *AudioManager) PlayDeath()      { am.play(am.death) }

// synthBeepWAV returns a minimal 16-bit PCM mono WAV of a sine beep.
func synthBeepWAV(rate int, durationMs int, freq float64) []byte {
	numSamples := int(float64(rate) * float64(durationMs) / 1000.0)
	dataSize := numSamples * 2
	totalSize := 44 + dataSize
	buf := make([]byte, totalSize)

	copy(buf[0:4], "RIFF")
	putLE32(buf[4:8], uint32(totalSize-8))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	putLE32(buf[16:20], 16) // PCM chunk size
	putLE16(buf[20:22], 1)  // PCM format
	putLE16(buf[22:24], 1)  // channels
	putLE32(buf[24:28], uint32(rate))
	putLE32(buf[28:32], uint32(rate*2))
	putLE16(buf[32:34], 2)
	putLE16(buf[34:36], 16) // bits per sample
	copy(buf[36:40], "data")
	putLE32(buf[40:44], uint32(dataSize))

	amp := 0.25
	for i := 0; i < numSamples; i++ {
		t := float64(i) / float64(rate)
		v := int16(math.Sin(2*math.Pi*freq*t) * 32767.0 * amp)
		off := 44 + i*2
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
	}
	return buf
}

func putLE16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
