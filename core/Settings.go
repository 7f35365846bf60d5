package core

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	DefaultWorldSize     = 600.0
	DefaultFrameInterval = 16 * time.Millisecond
	DefaultKeyHold       = 150 * time.Millisecond

	// Terminals wait up to about half a second before auto-repeating a held key.
	DefaultKeyRepeatDelay = 500 * time.Millisecond
)

// Settings is everything read from properties/<env>.properties.
type Settings struct {
	WorldWidth, WorldHeight float64

	BallDiameter float64
	BallSpeed    float64
	BeginDelay   time.Duration
	ResetDelay   time.Duration

	PaddleWidth       float64
	PaddleHeight      float64
	PaddleMargin      float64
	PaddleSpeedFactor float64

	FrameInterval  time.Duration
	KeyHold        time.Duration
	KeyRepeatDelay time.Duration

	LeftUpKey, LeftDownKey   string
	RightUpKey, RightDownKey string

	Sound bool
}

var propertyDefaults = map[string]interface{}{
	"WORLD_WIDTH":         DefaultWorldSize,
	"WORLD_HEIGHT":        DefaultWorldSize,
	"BALL_DIAMETER":       DefaultBallDiameter,
	"BALL_SPEED":          DefaultBallSpeed,
	"BEGIN_DELAY":         DefaultBallBeginDelay.String(),
	"RESET_DELAY":         DefaultBallResetDelay.String(),
	"PADDLE_WIDTH":        DefaultPaddleWidth,
	"PADDLE_HEIGHT":       DefaultPaddleHeight,
	"PADDLE_MARGIN":       DefaultPaddleMargin,
	"PADDLE_SPEED_FACTOR": DefaultPaddleSpeedFactor,
	"FRAME_INTERVAL":      DefaultFrameInterval.String(),
	"KEY_HOLD":            DefaultKeyHold.String(),
	"KEY_REPEAT_DELAY":    DefaultKeyRepeatDelay.String(),
	"LEFT_UP_KEY":         "Rune[w]",
	"LEFT_DOWN_KEY":       "Rune[s]",
	"RIGHT_UP_KEY":        "Up",
	"RIGHT_DOWN_KEY":      "Down",
	"SOUND":               false,
}

// DefaultSettings is the reference 600x600 build.
func DefaultSettings() *Settings {
	v := viper.New()
	setDefaults(v)
	s, err := settingsFrom(v)
	if err != nil {
		panic(err)
	}
	return s
}

func setDefaults(v *viper.Viper) {
	for key, value := range propertyDefaults {
		v.SetDefault(key, value)
	}
}

// ReadProperties loads <dir>/properties/<env>.properties into v. A missing
// file is not an error: every key falls back to its default.
func ReadProperties(v *viper.Viper, dir, env string) (*Settings, error) {
	setDefaults(v)
	v.SetConfigName(env)
	v.SetConfigType("properties")
	v.AddConfigPath(filepath.Join(dir, "properties"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read properties %s: %w", env, err)
		}
	}
	s, err := settingsFrom(v)
	if err != nil {
		return nil, fmt.Errorf("read properties %s: %w", env, err)
	}
	return s, nil
}

// settingsReader converts viper values one key at a time and keeps the first
// failure, so settingsFrom can read the whole struct before checking.
type settingsReader struct {
	v   *viper.Viper
	err error
}

func (r *settingsReader) float(key string) float64 {
	f, err := cast.ToFloat64E(r.v.Get(key))
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("%s: %w", key, err)
	}
	return f
}

func (r *settingsReader) positive(key string) float64 {
	f := r.float(key)
	if f <= 0 && r.err == nil {
		r.err = fmt.Errorf("%s: must be positive, got %v", key, f)
	}
	return f
}

func (r *settingsReader) duration(key string) time.Duration {
	d, err := cast.ToDurationE(r.v.Get(key))
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("%s: %w", key, err)
	}
	return d
}

func (r *settingsReader) positiveDuration(key string) time.Duration {
	d := r.duration(key)
	if d <= 0 && r.err == nil {
		r.err = fmt.Errorf("%s: must be positive, got %v", key, d)
	}
	return d
}

func (r *settingsReader) str(key string) string {
	s, err := cast.ToStringE(r.v.Get(key))
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("%s: %w", key, err)
	}
	return s
}

func (r *settingsReader) boolean(key string) bool {
	b, err := cast.ToBoolE(r.v.Get(key))
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("%s: %w", key, err)
	}
	return b
}

func settingsFrom(v *viper.Viper) (*Settings, error) {
	r := &settingsReader{v: v}
	s := &Settings{
		WorldWidth:        r.positive("WORLD_WIDTH"),
		WorldHeight:       r.positive("WORLD_HEIGHT"),
		BallDiameter:      r.positive("BALL_DIAMETER"),
		BallSpeed:         r.positive("BALL_SPEED"),
		BeginDelay:        r.duration("BEGIN_DELAY"),
		ResetDelay:        r.duration("RESET_DELAY"),
		PaddleWidth:       r.positive("PADDLE_WIDTH"),
		PaddleHeight:      r.positive("PADDLE_HEIGHT"),
		PaddleMargin:      r.float("PADDLE_MARGIN"),
		PaddleSpeedFactor: r.float("PADDLE_SPEED_FACTOR"),
		FrameInterval:     r.positiveDuration("FRAME_INTERVAL"),
		KeyHold:           r.positiveDuration("KEY_HOLD"),
		KeyRepeatDelay:    r.positiveDuration("KEY_REPEAT_DELAY"),
		LeftUpKey:         r.str("LEFT_UP_KEY"),
		LeftDownKey:       r.str("LEFT_DOWN_KEY"),
		RightUpKey:        r.str("RIGHT_UP_KEY"),
		RightDownKey:      r.str("RIGHT_DOWN_KEY"),
		Sound:             r.boolean("SOUND"),
	}
	if r.err != nil {
		return nil, r.err
	}
	return s, nil
}

func (s *Settings) BallOptions() BallOptions {
	return BallOptions{
		Diameter:   s.BallDiameter,
		Speed:      s.BallSpeed,
		BeginDelay: s.BeginDelay,
		ResetDelay: s.ResetDelay,
	}
}
