package eval

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v3"
)

// LoadValues reads variable bindings from a YAML mapping such as
//
//	x: 2
//	rate: 0.25
func LoadValues(fs billy.Filesystem, path string) (Values, error) {
	blob, err := util.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(blob, &raw); err != nil {
		return nil, fmt.Errorf("bindings file '%s': %w", path, err)
	}

	values := make(Values, len(raw))
	for name, v := range raw {
		switch n := v.(type) {
		case int:
			values[name] = float64(n)
		case int64:
			values[name] = float64(n)
		case uint64:
			values[name] = float64(n)
		case float64:
			values[name] = n
		default:
			return nil, fmt.Errorf("binding '%s' in '%s' is not a number", name, path)
		}
	}

	return values, nil
}
