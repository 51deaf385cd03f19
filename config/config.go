// Package config loads the YAML tuning file layered over compiled-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/keelpoint/sitemotion/parallax"
	"github.com/keelpoint/sitemotion/parameter"
	"github.com/keelpoint/sitemotion/rotation"
	"github.com/keelpoint/sitemotion/stepper"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the full tuning surface
type Config struct {
	Parallax ParallaxConfig `yaml:"parallax"`
	Scroll   ScrollConfig   `yaml:"scroll"`
	Stepper  StepperConfig  `yaml:"stepper"`
	Rotation RotationConfig `yaml:"rotation"`
	Showcase ShowcaseConfig `yaml:"showcase"`
	Log      LogConfig      `yaml:"log"`
}

type ParallaxConfig struct {
	Strength         float64 `yaml:"strength"`
	Depth            float64 `yaml:"depth"`
	MinViewportWidth float64 `yaml:"min_viewport_width"`
	Frequency        float64 `yaml:"frequency"`
	Damping          float64 `yaml:"damping"`
}

type ScrollConfig struct {
	// ScreensPerPhase is the pinned scroll distance per phase, in viewport heights
	ScreensPerPhase float64 `yaml:"screens_per_phase"`
}

type StepperConfig struct {
	BaseDelay  time.Duration `yaml:"base_delay"`
	Interval   time.Duration `yaml:"interval"`
	EnterRatio float64       `yaml:"enter_ratio"`
}

type RotationConfig struct {
	Count  int    `yaml:"count"`
	Scorer string `yaml:"scorer"` // "sine" or "xorshift"
}

type ShowcaseConfig struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
	Audio         bool          `yaml:"audio"`
	ScrollStep    int           `yaml:"scroll_step"` // rows per wheel notch
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the compiled-in configuration
func Default() Config {
	return Config{
		Parallax: ParallaxConfig{
			Strength:         parameter.ParallaxStrength,
			Depth:            parameter.ParallaxDepth,
			MinViewportWidth: parameter.ParallaxMinViewportWidth,
			Frequency:        parameter.ParallaxFrequency,
			Damping:          parameter.ParallaxDamping,
		},
		Scroll: ScrollConfig{
			ScreensPerPhase: 1,
		},
		Stepper: StepperConfig{
			BaseDelay:  parameter.StepBaseDelay,
			Interval:   parameter.StepInterval,
			EnterRatio: parameter.StepEnterRatio,
		},
		Rotation: RotationConfig{
			Count:  parameter.RotationCount,
			Scorer: "sine",
		},
		Showcase: ShowcaseConfig{
			FrameInterval: parameter.FrameUpdateInterval,
			Audio:         true,
			ScrollStep:    2,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults, an empty path returns the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the engines cannot run with
func (c Config) Validate() error {
	switch {
	case c.Parallax.Strength < 0:
		return fmt.Errorf("%w: parallax.strength must be >= 0", ErrInvalidConfig)
	case c.Parallax.Frequency <= 0:
		return fmt.Errorf("%w: parallax.frequency must be > 0", ErrInvalidConfig)
	case c.Parallax.Damping <= 0:
		return fmt.Errorf("%w: parallax.damping must be > 0", ErrInvalidConfig)
	case c.Scroll.ScreensPerPhase <= 0:
		return fmt.Errorf("%w: scroll.screens_per_phase must be > 0", ErrInvalidConfig)
	case c.Stepper.BaseDelay < 0 || c.Stepper.Interval < 0:
		return fmt.Errorf("%w: stepper delays must be >= 0", ErrInvalidConfig)
	case c.Stepper.EnterRatio <= 0 || c.Stepper.EnterRatio > 1:
		return fmt.Errorf("%w: stepper.enter_ratio must be in (0, 1]", ErrInvalidConfig)
	case c.Rotation.Count < 0:
		return fmt.Errorf("%w: rotation.count must be >= 0", ErrInvalidConfig)
	case c.Showcase.FrameInterval <= 0:
		return fmt.Errorf("%w: showcase.frame_interval must be > 0", ErrInvalidConfig)
	case c.Showcase.ScrollStep <= 0:
		return fmt.Errorf("%w: showcase.scroll_step must be > 0", ErrInvalidConfig)
	}
	if _, err := scorerByName(c.Rotation.Scorer); err != nil {
		return err
	}
	return nil
}

// ParallaxEngine converts the parallax section to an engine config
func (c Config) ParallaxEngine() parallax.Config {
	pc := parallax.DefaultConfig()
	pc.Strength = c.Parallax.Strength
	pc.Depth = c.Parallax.Depth
	pc.MinViewportWidth = c.Parallax.MinViewportWidth
	pc.Frequency = c.Parallax.Frequency
	pc.Damping = c.Parallax.Damping
	if c.Showcase.FrameInterval > 0 {
		if fps := int(time.Second / c.Showcase.FrameInterval); fps > 0 {
			pc.FPS = fps
		}
	}
	return pc
}

// StepDelay returns the stepper stagger
func (c Config) StepDelay() stepper.DelayFunc {
	return stepper.Staggered(c.Stepper.BaseDelay, c.Stepper.Interval)
}

// Selector builds the weekly rotation selector
func (c Config) Selector() *rotation.Selector {
	scorer, err := scorerByName(c.Rotation.Scorer)
	if err != nil {
		scorer = rotation.SineScorer
	}
	return rotation.NewSelector(c.Rotation.Count, rotation.WithScorer(scorer))
}

func scorerByName(name string) (rotation.Scorer, error) {
	switch name {
	case "", "sine":
		return rotation.SineScorer, nil
	case "xorshift":
		return rotation.XorShiftScorer, nil
	default:
		return nil, fmt.Errorf("%w: unknown rotation.scorer %q", ErrInvalidConfig, name)
	}
}
