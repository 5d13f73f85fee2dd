package layout

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/cbegin/synthpanel-go/internal/wave"
)

// Kind names a control type in the panel description.
type Kind string

const (
	KindKnob   Kind = "knob"
	KindToggle Kind = "toggle"
	KindWave   Kind = "wave"
)

// EnvPrefix is prepended to settings overrides, e.g. SYNTHPANEL_SETTINGS_SENSITIVITY.
const EnvPrefix = "SYNTHPANEL"

// Settings holds panel-wide knob and icon constants.
type Settings struct {
	Sensitivity  float64 `mapstructure:"sensitivity"`
	MaxRotation  float64 `mapstructure:"max_rotation"`
	GaugeGap     float64 `mapstructure:"gauge_gap"`
	IconBase     string  `mapstructure:"icon_base"`
	IconExt      string  `mapstructure:"icon_ext"`
	IconFragment string  `mapstructure:"icon_fragment"`
}

// Param is one control in a group.
type Param struct {
	Name         string   `mapstructure:"name"`
	Label        string   `mapstructure:"label"`
	Kind         Kind     `mapstructure:"kind"`
	Min          float64  `mapstructure:"min"`
	Max          float64  `mapstructure:"max"`
	Step         float64  `mapstructure:"step"`
	Default      float64  `mapstructure:"default"`
	ZeroCentered bool     `mapstructure:"zero_centered"`
	Checked      bool     `mapstructure:"checked"`
	Options      []string `mapstructure:"options"`
	Value        string   `mapstructure:"value"` // initial waveform
}

// DisplayLabel falls back to the name when no label is set.
func (p Param) DisplayLabel() string {
	if p.Label != "" {
		return p.Label
	}
	return p.Name
}

// Group is a named block of params.
type Group struct {
	Name   string  `mapstructure:"name"`
	Label  string  `mapstructure:"label"`
	Params []Param `mapstructure:"params"`
}

// DisplayLabel falls back to the name when no label is set.
func (g Group) DisplayLabel() string {
	if g.Label != "" {
		return g.Label
	}
	return g.Name
}

// Description is the declarative panel: settings plus parameter groups.
type Description struct {
	Settings Settings `mapstructure:"settings"`
	Groups   []Group  `mapstructure:"groups"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("settings.sensitivity", 3.0)
	v.SetDefault("settings.max_rotation", 140.0)
	v.SetDefault("settings.gauge_gap", 3.0)
	icon := wave.DefaultIcon()
	v.SetDefault("settings.icon_base", icon.Base)
	v.SetDefault("settings.icon_ext", icon.Ext)
	v.SetDefault("settings.icon_fragment", icon.Fragment)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads a panel description from path. The format follows the file
// extension (toml, yaml, json). An empty path loads the built-in panel.
func Load(path string) (Description, error) {
	if path == "" {
		return Default()
	}
	if _, err := os.Stat(path); err != nil {
		return Description{}, fmt.Errorf("panel description: %w", err)
	}
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Description{}, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return decode(v)
}

// Parse reads a panel description from data in the given format.
func Parse(data []byte, format string) (Description, error) {
	v := newViper()
	v.SetConfigType(format)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return Description{}, fmt.Errorf("parse panel description: %w", err)
	}
	return decode(v)
}

// Default returns the built-in synth panel.
func Default() (Description, error) {
	return Parse([]byte(defaultPanelTOML), "toml")
}

func decode(v *viper.Viper) (Description, error) {
	var d Description
	if err := v.Unmarshal(&d); err != nil {
		return Description{}, fmt.Errorf("unmarshal panel description: %w", err)
	}
	for gi := range d.Groups {
		for pi := range d.Groups[gi].Params {
			p := &d.Groups[gi].Params[pi]
			p.Kind = Kind(strings.ToLower(strings.TrimSpace(string(p.Kind))))
		}
	}
	if err := d.Validate(); err != nil {
		return Description{}, err
	}
	return d, nil
}

var ErrInvalid = errors.New("invalid panel description")

// Validate checks the description for problems that would leave a control
// without a usable range or options.
func (d Description) Validate() error {
	if len(d.Groups) == 0 {
		return fmt.Errorf("%w: no groups", ErrInvalid)
	}
	if d.Settings.MaxRotation <= 0 || d.Settings.MaxRotation > 180 {
		return fmt.Errorf("%w: max_rotation %v outside (0, 180]", ErrInvalid, d.Settings.MaxRotation)
	}
	groups := make(map[string]bool, len(d.Groups))
	for gi, g := range d.Groups {
		if g.Name == "" {
			return fmt.Errorf("%w: group[%d]: name is required", ErrInvalid, gi)
		}
		if groups[g.Name] {
			return fmt.Errorf("%w: duplicate group %q", ErrInvalid, g.Name)
		}
		groups[g.Name] = true
		names := make(map[string]bool, len(g.Params))
		for pi, p := range g.Params {
			if p.Name == "" {
				return fmt.Errorf("%w: %s.params[%d]: name is required", ErrInvalid, g.Name, pi)
			}
			if names[p.Name] {
				return fmt.Errorf("%w: duplicate param %s/%s", ErrInvalid, g.Name, p.Name)
			}
			names[p.Name] = true
			if err := p.validate(); err != nil {
				return fmt.Errorf("%w: %s/%s: %v", ErrInvalid, g.Name, p.Name, err)
			}
		}
	}
	return nil
}

func (p Param) validate() error {
	switch p.Kind {
	case KindKnob:
		if p.Min >= p.Max {
			return fmt.Errorf("min %v must be below max %v", p.Min, p.Max)
		}
		if p.Step < 0 {
			return fmt.Errorf("negative step %v", p.Step)
		}
		if p.Default < p.Min || p.Default > p.Max {
			return fmt.Errorf("default %v outside [%v, %v]", p.Default, p.Min, p.Max)
		}
	case KindToggle:
	case KindWave:
		if len(p.Options) == 0 {
			return errors.New("wave needs options")
		}
	default:
		return fmt.Errorf("unknown kind %q", p.Kind)
	}
	return nil
}

// ControlID returns a stable id for a control, derived from its group and name
// so that the same description always yields the same ids.
func ControlID(group, name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("synthpanel:"+group+"/"+name)).String()
}

// Path is the human-readable control address, "group/name".
func Path(group, name string) string {
	return group + "/" + name
}
