package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazechase/internal/geom"
)

func TestDefaultIsValid(t *testing.T) {
	d := Default()
	require.NoError(t, d.Validate())

	roster, err := d.Roster()
	require.NoError(t, err)
	require.Len(t, roster, 4)
	delays := []float64{roster[0].PenDelay, roster[1].PenDelay, roster[2].PenDelay, roster[3].PenDelay}
	assert.Equal(t, []float64{1, 5, 9, 13}, delays)
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, roster[0].Color)
}

func TestDefaultRosterStarts(t *testing.T) {
	roster, err := Default().Roster()
	require.NoError(t, err)
	want := []geom.Vec2{
		{X: 11.1667, Y: 13},
		{X: 12.5, Y: 12.6667},
		{X: 13.8333, Y: 13.3333},
		{X: 15.1667, Y: 12.3333},
	}
	for i, w := range want {
		assert.InDelta(t, w.X, roster[i].Start.X, 1e-3, roster[i].Name)
		assert.InDelta(t, w.Y, roster[i].Start.Y, 1e-3, roster[i].Name)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	body := "player_speed: 5.5\nlives: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5.5, got.PlayerSpeed)
	assert.Equal(t, 5, got.Lives)
	// untouched fields keep their defaults
	assert.Equal(t, Default().GhostRunningHome, got.GhostRunningHome)
	assert.Len(t, got.Ghosts, 4)
}

func TestLoadReplacesRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	body := `ghosts:
  - name: Solo
    color: "#123456"
    pen_delay: 2
    speed: 3
    start_x: 12.5
    start_y: 13
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got.Ghosts, 1)
	roster, err := got.Roster()
	require.NoError(t, err)
	assert.Equal(t, "Solo", roster[0].Name)
	assert.Equal(t, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}, roster[0].Color)
	assert.Equal(t, 12.5, roster[0].Start.X)
}

func TestLoadEmptyPath(t *testing.T) {
	got, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("player_speed: [1, 2"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)

	neg := filepath.Join(dir, "neg.yaml")
	require.NoError(t, os.WriteFile(neg, []byte("pen_speed: -1\n"), 0o644))
	_, err = Load(neg)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
		want   error
	}{
		{"zero player speed", func(t *Tuning) { t.PlayerSpeed = 0 }, ErrOutOfRange},
		{"frame delta too large", func(t *Tuning) { t.MaxFrameDelta = 0.1 }, ErrOutOfRange},
		{"chance above one", func(t *Tuning) { t.MaxRandomChance = 1.5 }, ErrOutOfRange},
		{"no lives", func(t *Tuning) { t.Lives = 0 }, ErrOutOfRange},
		{"empty roster", func(t *Tuning) { t.Ghosts = nil }, ErrNoGhosts},
		{"bad color", func(t *Tuning) { t.Ghosts[0].Color = "red" }, ErrBadColor},
		{"duplicate name", func(t *Tuning) { t.Ghosts[1].Name = t.Ghosts[0].Name }, ErrDuplicateKey},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tun := Default()
			tc.mutate(&tun)
			assert.ErrorIs(t, tun.Validate(), tc.want)
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#15246180")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x15, G: 0x24, B: 0x61, A: 0x80}, c)

	_, err = ParseColor("#zzzzzz")
	assert.ErrorIs(t, err, ErrBadColor)
}

func TestDirUsesEnv(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested")
	t.Setenv("MAZECHASE_CONFIG_DIR", want)

	got, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	info, err := os.Stat(got)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
