package job

import (
	"fmt"
	"strings"
	"time"

	"github.com/philipparndt/ringseg/pkg/annotate"
	"github.com/philipparndt/ringseg/pkg/geometry"
	"github.com/philipparndt/ringseg/pkg/sheet"
	"github.com/spf13/viper"
)

// Config holds the drawing settings that may come from a config file
type Config struct {
	Style   annotate.Style          `mapstructure:"style"`
	Outline geometry.OutlineOptions `mapstructure:"outline"`
	Palette map[string]string       `mapstructure:"palette"`
}

// DefaultConfig returns the built-in drawing settings
func DefaultConfig() Config {
	return Config{
		Style:   annotate.DefaultStyle(),
		Outline: geometry.DefaultOutlineOptions(),
	}
}

// LoadConfig reads drawing settings from path. An empty path yields the
// defaults, still subject to environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, cfg)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.Outline.TessellationMin < 1 || cfg.Outline.TessellationStepDeg <= 0 {
		return Config{}, fmt.Errorf("invalid outline tessellation %d / %g°",
			cfg.Outline.TessellationMin, cfg.Outline.TessellationStepDeg)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	s := cfg.Style
	for key, value := range map[string]float64{
		"style.clearance":        s.Clearance,
		"style.overshoot":        s.Overshoot,
		"style.arc_offset":       s.ArcOffset,
		"style.chord_offset":     s.ChordOffset,
		"style.depth_offset":     s.DepthOffset,
		"style.angle_inset":      s.AngleInset,
		"style.leader_length":    s.LeaderLength,
		"style.arrow_length":     s.ArrowLength,
		"style.arrow_half_angle": s.ArrowHalfAngle,
		"style.text_size":        s.TextSize,
		"style.id_text_size":     s.IDTextSize,
	} {
		v.SetDefault(key, value)
	}
	v.SetDefault("outline.tessellation_min", cfg.Outline.TessellationMin)
	v.SetDefault("outline.tessellation_step_deg", cfg.Outline.TessellationStepDeg)
}

// SheetOptions converts the config to renderer options dated now
func (c Config) SheetOptions(now time.Time) (sheet.Options, error) {
	palette, err := sheet.ParsePalette(c.Palette)
	if err != nil {
		return sheet.Options{}, err
	}
	return sheet.Options{
		Now:     now,
		Style:   c.Style,
		Outline: c.Outline,
		Palette: palette,
	}, nil
}
