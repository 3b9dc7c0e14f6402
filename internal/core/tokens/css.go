package tokens

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shubhamsWEB/uifinityai/internal/figma"
)

// CSS-like value formatting shared by the category extractors.

func cssColor(c figma.Color) string {
	r := int(math.Round(c.R * 255))
	g := int(math.Round(c.G * 255))
	b := int(math.Round(c.B * 255))
	if c.A >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatNumber(c.A))
}

// formatNumber renders a float without a trailing ".0" for whole values.
func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func cssPx(v float64) string {
	return formatNumber(v) + "px"
}

// cssLineHeight maps the typed line-height to CSS: absolute units become px,
// percentage units become a unitless ratio (percent / 100), absence is
// "normal".
func cssLineHeight(ts figma.TypeStyle) string {
	switch ts.LineHeightUnit {
	case "PIXELS":
		return cssPx(ts.LineHeightPx)
	case "FONT_SIZE_%":
		if ts.LineHeightPercentFontSize > 0 {
			return formatNumber(ts.LineHeightPercentFontSize / 100)
		}
	case "INTRINSIC_%":
		if ts.LineHeightPercent > 0 {
			return formatNumber(ts.LineHeightPercent / 100)
		}
	}
	return "normal"
}

// cssLetterSpacing maps letter spacing to px for absolute units, else em
// (percent / 100). Zero spacing renders as "normal".
func cssLetterSpacing(ts figma.TypeStyle) string {
	switch ts.LetterSpacingUnit {
	case "PERCENT":
		if ts.LetterSpacingPercent != 0 {
			return formatNumber(ts.LetterSpacingPercent/100) + "em"
		}
	default:
		if ts.LetterSpacing != 0 {
			return cssPx(ts.LetterSpacing)
		}
	}
	return "normal"
}

func cssTextCase(figmaCase string) string {
	switch figmaCase {
	case "UPPER":
		return "uppercase"
	case "LOWER":
		return "lowercase"
	case "TITLE":
		return "capitalize"
	default:
		return "none"
	}
}

// cssFont renders the CSS font shorthand: "<weight> <size>/<line-height>
// <family>".
func cssFont(family string, weight, size float64, lineHeight string) string {
	if lineHeight == "" {
		lineHeight = "normal"
	}
	return fmt.Sprintf("%s %s/%s %s", formatNumber(weight), cssPx(size), lineHeight, family)
}

// cssShadow renders the CSS box-shadow value for one effect.
func cssShadow(e figma.Effect) string {
	var parts []string
	if e.Type == "INNER_SHADOW" {
		parts = append(parts, "inset")
	}
	var x, y float64
	if e.Offset != nil {
		x, y = e.Offset.X, e.Offset.Y
	}
	parts = append(parts, cssPx(x), cssPx(y), cssPx(e.Radius))
	if e.Spread != nil && *e.Spread != 0 {
		parts = append(parts, cssPx(*e.Spread))
	}
	color := figma.Color{A: 0.25} // transparent black default
	if e.Color != nil {
		color = *e.Color
	}
	parts = append(parts, cssColor(color))
	return strings.Join(parts, " ")
}

// cssBorder renders a CSS border shorthand from stroke attributes.
func cssBorder(weight float64, dashed bool, color string) string {
	style := "solid"
	if dashed {
		style = "dashed"
	}
	return fmt.Sprintf("%s %s %s", cssPx(weight), style, color)
}
