package preset

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

// Built-in preset names
const GAUGE = "gauge"
const GMM = "gmm"

// Preset holds the per-job launch parameters. Runner and DefaultArgsFile
// are resolved relative to the working directory at launch time and are not
// checked for existence: a missing path surfaces as the child's own failure.
type Preset struct {
	Name            string `toml:"-"`
	Runner          string `toml:"runner"`
	DefaultArgsFile string `toml:"args_file"`
	NumThreads      int    `toml:"num_threads"`
	Affinity        string `toml:"affinity"`
}

var builtins = map[string]Preset{
	GAUGE: {
		Name:            GAUGE,
		Runner:          "l2hmc-qcd/main.py",
		DefaultArgsFile: "args/args.txt",
		NumThreads:      62,
		Affinity:        "granularity=fine,verbose,compact,1,0",
	},
	GMM: {
		Name:            GMM,
		Runner:          "l2hmc-qcd/gmm_main.py",
		DefaultArgsFile: "args/gmm_args.txt",
		NumThreads:      32,
		Affinity:        "granularity=fine,compact,1,0",
	},
}

// Structure to bind the preset overrides file
type presetFile struct {
	Presets map[string]Preset `toml:"presets"`
}

// Resolve returns the preset with the given name. When overridesFilePath is
// not empty the TOML file is decoded and its entries replace or extend the
// built-in table before the lookup.
func Resolve(name string, overridesFilePath string) (entry Preset, err error) {
	table := make(map[string]Preset, len(builtins))
	for presetName, presetEntry := range builtins {
		table[presetName] = presetEntry
	}

	if overridesFilePath != "" {
		var overrides presetFile
		if _, err = toml.DecodeFile(overridesFilePath, &overrides); err != nil {
			return
		}
		for presetName, presetEntry := range overrides.Presets {
			presetEntry.Name = presetName
			table[presetName] = presetEntry
		}
	}

	entry, ok := table[name]
	if !ok {
		err = fmt.Errorf("unknown launch preset %q", name)
	}
	return
}

// Names returns the built-in preset names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for presetName := range builtins {
		names = append(names, presetName)
	}
	sort.Strings(names)
	return names
}
