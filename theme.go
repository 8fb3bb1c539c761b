package cosmic

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Color is an RGBA color packed as 0xAABBGGRR.
type Color uint32

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// UnpackRGBA extracts RGBA components from a packed color.
func (c Color) UnpackRGBA() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// Theme is the COSMIC-style palette applied to a text input. Colors beyond
// the input surface live with the host framework; only what the widget's
// own drawing collaborator needs is carried here.
type Theme struct {
	Name string

	TextColor         Color
	PlaceholderColor  Color
	DisabledTextColor Color

	InputBgColor        Color
	InputFocusedBgColor Color
	InputBorderColor    Color
	FocusRingColor      Color

	SelectedBgColor   Color
	SelectedTextColor Color
	CaretColor        Color

	InputPadding float32
	BorderSize   float32
	Rounding     float32
}

// DarkTheme returns the built-in COSMIC dark palette.
func DarkTheme() Theme {
	return Theme{
		Name: "cosmic-dark",

		TextColor:         RGBA(255, 255, 255, 255),
		PlaceholderColor:  RGBA(160, 160, 160, 255),
		DisabledTextColor: RGBA(110, 110, 110, 255),

		InputBgColor:        RGBA(39, 39, 44, 255),
		InputFocusedBgColor: RGBA(48, 48, 55, 255),
		InputBorderColor:    RGBA(90, 90, 100, 255),
		FocusRingColor:      RGBA(99, 208, 223, 255),

		SelectedBgColor:   RGBA(0, 114, 143, 255),
		SelectedTextColor: RGBA(255, 255, 255, 255),
		CaretColor:        RGBA(255, 255, 255, 255),

		InputPadding: 8,
		BorderSize:   1,
		Rounding:     8,
	}
}

// LightTheme returns the built-in COSMIC light palette.
func LightTheme() Theme {
	return Theme{
		Name: "cosmic-light",

		TextColor:         RGBA(30, 30, 30, 255),
		PlaceholderColor:  RGBA(120, 120, 120, 255),
		DisabledTextColor: RGBA(160, 160, 160, 255),

		InputBgColor:        RGBA(237, 237, 240, 255),
		InputFocusedBgColor: RGBA(255, 255, 255, 255),
		InputBorderColor:    RGBA(180, 180, 188, 255),
		FocusRingColor:      RGBA(0, 120, 170, 255),

		SelectedBgColor:   RGBA(120, 200, 220, 255),
		SelectedTextColor: RGBA(30, 30, 30, 255),
		CaretColor:        RGBA(30, 30, 30, 255),

		InputPadding: 8,
		BorderSize:   1,
		Rounding:     8,
	}
}

// themeFile is the TOML shape of a theme file. Colors are "#RRGGBB" or
// "#RRGGBBAA" strings; unset fields keep the base theme's value.
type themeFile struct {
	Name string `toml:"name"`
	Base string `toml:"base"`

	Colors struct {
		Text          string `toml:"text"`
		Placeholder   string `toml:"placeholder"`
		DisabledText  string `toml:"disabled_text"`
		InputBg       string `toml:"input_bg"`
		InputFocused  string `toml:"input_focused_bg"`
		InputBorder   string `toml:"input_border"`
		FocusRing     string `toml:"focus_ring"`
		SelectionBg   string `toml:"selection_bg"`
		SelectionText string `toml:"selection_text"`
		Caret         string `toml:"caret"`
	} `toml:"colors"`

	Metrics struct {
		InputPadding *float32 `toml:"input_padding"`
		BorderSize   *float32 `toml:"border_size"`
		Rounding     *float32 `toml:"rounding"`
	} `toml:"metrics"`
}

// LoadTheme reads a TOML theme file, overlaying it on its declared base
// theme ("dark" by default, or "light").
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme: %w", err)
	}
	return ParseTheme(data)
}

// ParseTheme parses TOML theme data. See LoadTheme.
func ParseTheme(data []byte) (Theme, error) {
	var file themeFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return Theme{}, fmt.Errorf("parsing theme: %w", err)
	}

	theme := DarkTheme()
	if file.Base == "light" {
		theme = LightTheme()
	}
	if file.Name != "" {
		theme.Name = file.Name
	}

	overlay := []struct {
		hex string
		dst *Color
	}{
		{file.Colors.Text, &theme.TextColor},
		{file.Colors.Placeholder, &theme.PlaceholderColor},
		{file.Colors.DisabledText, &theme.DisabledTextColor},
		{file.Colors.InputBg, &theme.InputBgColor},
		{file.Colors.InputFocused, &theme.InputFocusedBgColor},
		{file.Colors.InputBorder, &theme.InputBorderColor},
		{file.Colors.FocusRing, &theme.FocusRingColor},
		{file.Colors.SelectionBg, &theme.SelectedBgColor},
		{file.Colors.SelectionText, &theme.SelectedTextColor},
		{file.Colors.Caret, &theme.CaretColor},
	}
	for _, o := range overlay {
		if o.hex == "" {
			continue
		}
		c, err := parseHexColor(o.hex)
		if err != nil {
			return Theme{}, err
		}
		*o.dst = c
	}

	if file.Metrics.InputPadding != nil {
		theme.InputPadding = *file.Metrics.InputPadding
	}
	if file.Metrics.BorderSize != nil {
		theme.BorderSize = *file.Metrics.BorderSize
	}
	if file.Metrics.Rounding != nil {
		theme.Rounding = *file.Metrics.Rounding
	}

	return theme, nil
}

// parseHexColor parses "#RRGGBB" or "#RRGGBBAA".
func parseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}

	if len(hex) == 6 {
		return RGBA(uint8(v>>16), uint8(v>>8), uint8(v), 255), nil
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
