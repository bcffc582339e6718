// Package config loads the YAML configuration for the posetrace command.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the root of the configuration file.
type Config struct {
	Trace Trace    `yaml:"trace"`
	Mqtt  Mqtt     `yaml:"mqtt"`
	Api   Api      `yaml:"api"`
	Scene []Object `yaml:"scene"`
}

// Trace controls the recorder and the demo animations feeding it.
type Trace struct {
	Name                 string   `yaml:"name"`
	FrameRate            float64  `yaml:"frameRate"`
	Frames               int      `yaml:"frames"`
	Pretty               *bool    `yaml:"pretty"`
	Output               string   `yaml:"output"`
	TranslationTolerance *float64 `yaml:"translationTolerance"`
	RotationTolerance    *float64 `yaml:"rotationTolerance"`
	DistinctEllipsoid    bool     `yaml:"distinctEllipsoid"`
	PublishEvery         int      `yaml:"publishEvery"`
	Orbiters             int      `yaml:"orbiters"`
}

// Mqtt configures the broker connection. An empty URL disables publishing.
type Mqtt struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	ClientID string `yaml:"clientID"`
	QoS      byte   `yaml:"qos"`
	Retained bool   `yaml:"retained"`
	Topics   struct {
		Trace string `yaml:"trace"`
	} `yaml:"topics"`
}

// Api configures the HTTP server used by the serve command.
type Api struct {
	Listen    string `yaml:"listen"`
	StaticDir string `yaml:"staticDir"`
}

// Object declares a static scene object. Which dimensions apply depends on Shape:
// sphere uses Radius, cylinder uses Radius and Height, box and ellipsoid use Size.
type Object struct {
	Name   string    `yaml:"name"`
	Shape  string    `yaml:"shape"`
	Radius float64   `yaml:"radius"`
	Height float64   `yaml:"height"`
	Size   []float64 `yaml:"size"`
	Color  string    `yaml:"color"`
	Alpha  *float64  `yaml:"alpha"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var c Config
	c.applyDefaults()
	return c
}

// Load reads and decodes the YAML file at path, filling unset fields with defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var c Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	c.applyDefaults()
	return c, nil
}

// TimeStep is the frame spacing in seconds.
func (t Trace) TimeStep() float64 {
	return 1 / t.FrameRate
}

// PrettyOutput reports whether documents should be indented.
func (t Trace) PrettyOutput() bool {
	return t.Pretty == nil || *t.Pretty
}

// Tolerances returns the translation and rotation thresholds. A zero
// threshold records every change.
func (t Trace) Tolerances() (translation, rotation float64) {
	if t.TranslationTolerance != nil {
		translation = *t.TranslationTolerance
	}
	if t.RotationTolerance != nil {
		rotation = *t.RotationTolerance
	}
	return translation, rotation
}

// Enabled reports whether a broker is configured.
func (m Mqtt) Enabled() bool {
	return m.URL != ""
}

// Opacity returns the configured alpha, opaque if unset.
func (o Object) Opacity() float64 {
	if o.Alpha == nil {
		return 1
	}
	return *o.Alpha
}

func (c *Config) applyDefaults() {
	if c.Trace.FrameRate <= 0 {
		c.Trace.FrameRate = 30
	}
	if c.Trace.Frames <= 0 {
		c.Trace.Frames = 300
	}
	if c.Trace.TranslationTolerance == nil {
		c.Trace.TranslationTolerance = float(0.01)
	}
	if c.Trace.RotationTolerance == nil {
		c.Trace.RotationTolerance = float(0.01)
	}
	if c.Trace.PublishEvery <= 0 {
		c.Trace.PublishEvery = 30
	}
	if c.Trace.Orbiters <= 0 {
		c.Trace.Orbiters = 6
	}
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = "posetrace"
	}
	if c.Mqtt.Topics.Trace == "" {
		c.Mqtt.Topics.Trace = "posetrace/trace"
	}
	if c.Api.Listen == "" {
		c.Api.Listen = ":3000"
	}
	if c.Api.StaticDir == "" {
		c.Api.StaticDir = "client/dist"
	}
}

func float(v float64) *float64 {
	return &v
}
