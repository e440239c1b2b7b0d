package config

import (
	"sort"
	"strings"

	"github.com/kpfaulkner/ocio-go/util"
)

// Standard role names. A role is a config-defined alias pointing at one of
// the config's own color spaces.
const (
	RoleSceneLinear     = "scene_linear"
	RoleDefault         = "default"
	RoleColorPicking    = "color_picking"
	RoleTexturePaint    = "texture_paint"
	RoleDataRole        = "data"
	RoleACESInterchange = "aces_interchange"
)

// TransformStep is one primitive stage of a color space or look transform
// as declared in the profile. Supported types are "matrix" (9 or 16 values
// row major plus optional 4 value offset), "exponent" (4 per channel
// exponents) and "srgb_encode"/"srgb_decode".
type TransformStep struct {
	Type   string    `yaml:"type"`
	Matrix []float32 `yaml:"matrix,omitempty"`
	Offset []float32 `yaml:"offset,omitempty"`
	Value  []float32 `yaml:"value,omitempty"`
}

const (
	StepMatrix     = "matrix"
	StepExponent   = "exponent"
	StepSrgbEncode = "srgb_encode"
	StepSrgbDecode = "srgb_decode"
)

// ColorSpace describes a named space and how it maps to the profile's
// reference space. A space with neither direction declared sits in the
// reference space itself (or carries non-color data when IsData is set).
type ColorSpace struct {
	Name          string          `yaml:"name"`
	Family        string          `yaml:"family"`
	Description   string          `yaml:"description"`
	IsData        bool            `yaml:"isdata"`
	ToReference   []TransformStep `yaml:"to_reference,omitempty"`
	FromReference []TransformStep `yaml:"from_reference,omitempty"`
}

type View struct {
	Name       string `yaml:"name"`
	ColorSpace string `yaml:"colorspace"`
	Look       string `yaml:"look,omitempty"`
}

type Display struct {
	DefaultView string `yaml:"default_view,omitempty"`
	Views       []View `yaml:"views"`
}

// Look is a creative transform applied in its declared process space.
type Look struct {
	Name         string          `yaml:"name"`
	ProcessSpace string          `yaml:"process_space"`
	Transform    []TransformStep `yaml:"transform"`
}

// Config is an immutable profile. Loaded once, read concurrently by any
// number of goroutines, never mutated afterwards.
type Config struct {
	Version        int                `yaml:"ocio_profile_version"`
	Description    string             `yaml:"description,omitempty"`
	Roles          map[string]string  `yaml:"roles"`
	ActiveDisplays string             `yaml:"active_displays,omitempty"`
	ActiveViews    string             `yaml:"active_views,omitempty"`
	Displays       map[string]Display `yaml:"displays"`
	Looks          []Look             `yaml:"looks,omitempty"`
	ColorSpaces    []ColorSpace       `yaml:"colorspaces"`
	Luma           []float32          `yaml:"luma,omitempty"`

	// populated by finalize after unmarshalling
	spaceIndex   map[string]int
	displayNames []string
}

func (cfg *Config) finalize() {
	cfg.spaceIndex = make(map[string]int, len(cfg.ColorSpaces))
	for i, cs := range cfg.ColorSpaces {
		cfg.spaceIndex[cs.Name] = i
	}
	cfg.displayNames = make([]string, 0, len(cfg.Displays))
	for name := range cfg.Displays {
		cfg.displayNames = append(cfg.displayNames, name)
	}
	sort.Strings(cfg.displayNames)
}

func (cfg *Config) NumColorSpaces() int {
	return len(cfg.ColorSpaces)
}

func (cfg *Config) ColorSpaceNameByIndex(index int) string {
	if index < 0 || index >= len(cfg.ColorSpaces) {
		return ""
	}
	return cfg.ColorSpaces[index].Name
}

// ColorSpace looks up a space by name or role. Returns nil on a miss.
func (cfg *Config) ColorSpace(name string) *ColorSpace {
	if target, ok := cfg.Roles[name]; ok {
		name = target
	}
	if i, ok := cfg.spaceIndex[name]; ok {
		return &cfg.ColorSpaces[i]
	}
	return nil
}

// IndexForColorSpace returns -1 when the name (or role) is unknown.
func (cfg *Config) IndexForColorSpace(name string) int {
	if target, ok := cfg.Roles[name]; ok {
		name = target
	}
	if i, ok := cfg.spaceIndex[name]; ok {
		return i
	}
	return -1
}

func (cfg *Config) HasRole(role string) bool {
	_, ok := cfg.Roles[role]
	return ok
}

// activeDisplayNames filters the declared displays by the active_displays
// list (or an override string), preserving declaration-order semantics of
// the list itself.
func (cfg *Config) activeDisplayNames(override string) []string {
	active := override
	if active == "" {
		active = cfg.ActiveDisplays
	}
	if active == "" {
		return cfg.displayNames
	}
	var names []string
	for _, token := range util.SplitEnvStyle(active) {
		if _, ok := cfg.Displays[token]; ok {
			names = append(names, token)
		}
	}
	if len(names) == 0 {
		return cfg.displayNames
	}
	return names
}

func (cfg *Config) NumDisplays() int {
	return len(cfg.activeDisplayNames(""))
}

func (cfg *Config) DisplayByIndex(index int) string {
	names := cfg.activeDisplayNames("")
	if index < 0 || index >= len(names) {
		return ""
	}
	return names[index]
}

// DefaultDisplay resolves the default the way the profile itself would: the
// alphabetically first active display. An environment override
// (OCIO_ACTIVE_DISPLAYS) replaces the profile's active list. Callers that
// want the first listed entry of the profile's active list should go
// through the catalog instead.
func (cfg *Config) DefaultDisplay() string {
	names := cfg.activeDisplayNames(activeDisplaysOverride())
	if len(names) == 0 {
		return ""
	}
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)
	return sorted[0]
}

func (cfg *Config) NumViews(display string) int {
	d, ok := cfg.Displays[display]
	if !ok {
		return 0
	}
	return len(d.Views)
}

func (cfg *Config) ViewByIndex(display string, index int) string {
	d, ok := cfg.Displays[display]
	if !ok || index < 0 || index >= len(d.Views) {
		return ""
	}
	return d.Views[index].Name
}

// View returns the named view of a display, matching case-insensitively.
func (cfg *Config) View(display string, view string) *View {
	d, ok := cfg.Displays[display]
	if !ok {
		return nil
	}
	for i := range d.Views {
		if strings.EqualFold(d.Views[i].Name, view) {
			return &d.Views[i]
		}
	}
	return nil
}

// DefaultView resolves the default the way the profile itself would: the
// display's declared default_view, else the alphabetically first view that
// is active. An environment override (OCIO_ACTIVE_VIEWS) replaces the
// profile's active list.
func (cfg *Config) DefaultView(display string) string {
	d, ok := cfg.Displays[display]
	if !ok || len(d.Views) == 0 {
		return ""
	}
	if d.DefaultView != "" {
		return d.DefaultView
	}
	active := activeViewsOverride()
	if active == "" {
		active = cfg.ActiveViews
	}
	names := make([]string, 0, len(d.Views))
	if active != "" {
		activeTokens := util.SplitEnvStyle(active)
		for _, v := range d.Views {
			for _, token := range activeTokens {
				if strings.EqualFold(v.Name, token) {
					names = append(names, v.Name)
					break
				}
			}
		}
	}
	if len(names) == 0 {
		for _, v := range d.Views {
			names = append(names, v.Name)
		}
	}
	sort.Strings(names)
	return names[0]
}

// DisplayColorSpaceName returns the target space of a display/view pair, or
// "" when either name is unknown.
func (cfg *Config) DisplayColorSpaceName(display string, view string) string {
	v := cfg.View(display, view)
	if v == nil {
		return ""
	}
	return v.ColorSpace
}

func (cfg *Config) NumLooks() int {
	return len(cfg.Looks)
}

func (cfg *Config) LookNameByIndex(index int) string {
	if index < 0 || index >= len(cfg.Looks) {
		return ""
	}
	return cfg.Looks[index].Name
}

func (cfg *Config) Look(name string) *Look {
	for i := range cfg.Looks {
		if cfg.Looks[i].Name == name {
			return &cfg.Looks[i]
		}
	}
	return nil
}

// DefaultLumaCoefs returns the profile's luma weights, failing closed to
// the Rec.709 weights when the profile declares none.
func (cfg *Config) DefaultLumaCoefs() [3]float32 {
	if len(cfg.Luma) == 3 {
		return [3]float32{cfg.Luma[0], cfg.Luma[1], cfg.Luma[2]}
	}
	return [3]float32{0.2126, 0.7152, 0.0722}
}
