package region

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StyleMap maps a state label to the TikZ options prepended to its draw command.
// It is read-only once loaded.
type StyleMap map[string]string

// DefaultStyles returns the built-in style set.
func DefaultStyles() StyleMap {
	s := StyleMap{
		"ExistsSat":      "",
		"AllSat":         "pattern=crosshatch dots,pattern color=green,preaction={fill,green!30},",
		"ExistsViolated": "",
		"AllViolated":    "pattern=crosshatch,pattern color=red,preaction={fill,red!30},",
		"Unknown":        "",
	}
	s["CenterSat"] = s["ExistsSat"]
	s["CenterViolated"] = s["ExistsViolated"]
	return s
}

// LoadStyles reads a style file holding a JSON or YAML object of state label to style string.
func LoadStyles(path string) (StyleMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseStyles(data)
}

// ParseStyles decodes style file content. Non-string values are rejected.
func ParseStyles(data []byte) (StyleMap, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding styles: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("decoding styles: no entries")
	}
	styles := make(StyleMap, len(raw))
	for k, v := range raw {
		switch v := v.(type) {
		case string:
			styles[k] = v
		case nil:
			styles[k] = ""
		default:
			return nil, fmt.Errorf("style %q: expected string, got %T", k, v)
		}
	}
	return styles, nil
}
