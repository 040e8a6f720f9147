// Package preset loads named, predefined date sequences from YAML
// definitions, either packaged with the binary or supplied by the user.
package preset

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/almanac/internal/sequence"
)

//go:embed presets/*.yaml
var presetFS embed.FS

// EnvPath is the environment variable holding extra preset directories,
// separated by the OS path list separator.
const EnvPath = "ALMANAC_SEQ_PATH"

// ErrNotFound is returned when no preset matches the requested name.
var ErrNotFound = errors.New("sequence preset not found")

// Load resolves a named sequence preset. The name is tried in order as a
// path to a YAML file, as a "<name>.yaml" file in each directory listed in
// the ALMANAC_SEQ_PATH environment variable, and as a packaged preset.
func Load(name string) (sequence.Sequence, error) {
	data, err := find(name)
	if err != nil {
		return nil, err
	}
	var cfg sequence.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing sequence preset %q: %w", name, err)
	}
	seq, err := sequence.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("sequence preset %q: %w", name, err)
	}
	return seq, nil
}

func find(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	base := filepath.Base(name) + ".yaml"
	if path := os.Getenv(EnvPath); path != "" {
		for _, dir := range filepath.SplitList(path) {
			if data, err := os.ReadFile(filepath.Join(dir, base)); err == nil {
				return data, nil
			}
		}
	}
	if data, err := presetFS.ReadFile("presets/" + name + ".yaml"); err == nil {
		return data, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Names lists the packaged presets in lexical order.
func Names() []string {
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}
