package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
trace:
  name: bench
  frameRate: 60
  frames: 10
  pretty: false
  translationTolerance: 0.05
  distinctEllipsoid: true
mqtt:
  url: tcp://localhost:1883
  username: user
  qos: 1
  topics:
    trace: lab/trace
scene:
  - name: floor
    shape: box
    size: [10, 0.1, 10]
    color: "#336699"
    alpha: 0.5
  - name: post
    shape: cylinder
    radius: 0.2
    height: 2
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "bench", c.Trace.Name)
	assert.InDelta(t, 1.0/60, c.Trace.TimeStep(), 1e-12)
	assert.Equal(t, 10, c.Trace.Frames)
	assert.False(t, c.Trace.PrettyOutput())
	translation, rotation := c.Trace.Tolerances()
	assert.Equal(t, 0.05, translation)
	assert.Equal(t, 0.01, rotation)
	assert.True(t, c.Trace.DistinctEllipsoid)

	assert.True(t, c.Mqtt.Enabled())
	assert.Equal(t, "user", c.Mqtt.Username)
	assert.Equal(t, byte(1), c.Mqtt.QoS)
	assert.Equal(t, "lab/trace", c.Mqtt.Topics.Trace)
	assert.Equal(t, "posetrace", c.Mqtt.ClientID)

	require.Len(t, c.Scene, 2)
	assert.Equal(t, []float64{10, 0.1, 10}, c.Scene[0].Size)
	assert.Equal(t, 0.5, c.Scene[0].Opacity())
	assert.Equal(t, "#336699", c.Scene[0].Color)
	assert.Equal(t, 1.0, c.Scene[1].Opacity())
	assert.Equal(t, 2.0, c.Scene[1].Height)
}

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, 30.0, c.Trace.FrameRate)
	assert.Equal(t, 300, c.Trace.Frames)
	assert.True(t, c.Trace.PrettyOutput())
	translation, rotation := c.Trace.Tolerances()
	assert.Equal(t, 0.01, translation)
	assert.Equal(t, 0.01, rotation)
	assert.False(t, c.Mqtt.Enabled())
	assert.Equal(t, "posetrace/trace", c.Mqtt.Topics.Trace)
	assert.Equal(t, ":3000", c.Api.Listen)
	assert.Equal(t, "client/dist", c.Api.StaticDir)
}

// TestLoad_ZeroTolerance tests that an explicit zero is kept rather than defaulted.
func TestLoad_ZeroTolerance(t *testing.T) {
	c, err := Load(writeConfig(t, "trace:\n  translationTolerance: 0\n  rotationTolerance: 0\n"))
	require.NoError(t, err)

	translation, rotation := c.Trace.Tolerances()
	assert.Equal(t, 0.0, translation)
	assert.Equal(t, 0.0, rotation)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "trace: [not, a, map]"))
	assert.Error(t, err)
}
