package labels

import (
	"embed"
	"fmt"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

// Default is the label set used when none is configured
const Default = "ja"

//go:embed sets/*.yaml
var setsFS embed.FS

// builtinSets maps set names to their parsed contents
var builtinSets = map[string]*Set{}

// loadErr records the first embedded set that failed to load
var loadErr error

func init() {
	entries, err := setsFS.ReadDir("sets")
	if err != nil {
		loadErr = err
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := setsFS.ReadFile(path.Join("sets", entry.Name()))
		if err != nil {
			loadErr = err
			continue
		}

		set, err := parse(data)
		if err != nil {
			loadErr = fmt.Errorf("%s: %w", entry.Name(), err)
			continue
		}

		builtinSets[set.Name] = set
	}
}

func parse(data []byte) (*Set, error) {
	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, err
	}
	if err := set.validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

// Load returns a built-in label set by name
func Load(name string) (*Set, error) {
	if set, ok := builtinSets[name]; ok {
		return set, nil
	}
	if loadErr != nil {
		return nil, fmt.Errorf("unknown label set %s (embedded sets failed to load: %w)", name, loadErr)
	}
	return nil, fmt.Errorf("unknown label set: %s", name)
}

// Available returns the names of all built-in label sets
func Available() []string {
	names := make([]string, 0, len(builtinSets))
	for name := range builtinSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
