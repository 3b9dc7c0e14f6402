package components

import "strings"

// sizeKeywords marks Material-style path segments that denote a size rather
// than a state.
var sizeKeywords = map[string]bool{
	"xs": true, "sm": true, "md": true, "lg": true, "xl": true, "xxl": true,
	"small": true, "medium": true, "large": true,
	"tiny": true, "mini": true, "huge": true, "compact": true,
}

// ParseVariantName infers variant dimensions from a component display name.
// Four naming conventions are tried in order, stopping at the first match:
//
//  1. "Key=Value, Key=Value"            (comma-separated pairs)
//  2. "Base/Key=Value/Key=Value"        (slash paths with pairs)
//  3. "Base/Variant/Size/State"         (Material-style positional paths)
//  4. "Base: v1--v2--v3"                (colon then double-dash)
//
// Unrecognized names yield an empty map.
func ParseVariantName(name string) map[string]string {
	name = strings.TrimSpace(name)
	if name == "" {
		return map[string]string{}
	}

	if !strings.Contains(name, "/") && strings.Contains(name, "=") {
		if props := parsePairs(strings.Split(name, ",")); len(props) > 0 {
			return props
		}
	}

	if strings.Contains(name, "/") {
		segs := strings.Split(name, "/")
		if strings.Contains(name, "=") {
			// First segment is the base name; only pair segments count.
			if props := parsePairs(segs[1:]); len(props) > 0 {
				return props
			}
		}
		return parsePositional(segs)
	}

	if base, rest, ok := strings.Cut(name, ":"); ok && base != "" && strings.Contains(rest, "--") {
		return parseDoubleDash(rest)
	}

	return map[string]string{}
}

func parsePairs(segs []string) map[string]string {
	props := map[string]string{}
	for _, seg := range segs {
		key, value, ok := strings.Cut(strings.TrimSpace(seg), "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key != "" && value != "" {
			props[key] = value
		}
	}
	return props
}

// parsePositional handles Material-style paths: segment 2 is the variant,
// segment 3 a size when it reads like one (otherwise a state), segment 4 a
// state.
func parsePositional(segs []string) map[string]string {
	props := map[string]string{}
	if len(segs) >= 2 && strings.TrimSpace(segs[1]) != "" {
		props["Variant"] = strings.TrimSpace(segs[1])
	}
	if len(segs) >= 3 && strings.TrimSpace(segs[2]) != "" {
		seg := strings.TrimSpace(segs[2])
		if sizeKeywords[strings.ToLower(seg)] {
			props["Size"] = seg
		} else {
			props["State"] = seg
		}
	}
	if len(segs) >= 4 && strings.TrimSpace(segs[3]) != "" {
		props["State"] = strings.TrimSpace(segs[3])
	}
	return props
}

func parseDoubleDash(rest string) map[string]string {
	props := map[string]string{}
	keys := []string{"Variant", "Size", "State"}
	for i, part := range strings.Split(strings.TrimSpace(rest), "--") {
		if i >= len(keys) {
			break
		}
		if part = strings.TrimSpace(part); part != "" {
			props[keys[i]] = part
		}
	}
	return props
}
