package launchenv

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"hmcrun.dev/launcher/internal/preset"
)

// Backend threading and compilation knobs. The numerical backend reads them
// once at process start, so the full set must be in place before the child
// is spawned.
const BLOCKTIME_VARIABLE = "KMP_BLOCKTIME"
const NUM_THREADS_VARIABLE = "OMP_NUM_THREADS"
const SETTINGS_VARIABLE = "KMP_SETTINGS"
const AFFINITY_VARIABLE = "KMP_AFFINITY"
const JIT_FLAGS_VARIABLE = "TF_XLA_FLAGS"

// Values shared by every preset
const BLOCKTIME_VALUE = "0"
const SETTINGS_VALUE = "TRUE"
const JIT_FLAGS_VALUE = "--tf_xla_cpu_global_jit"

// Overrides returns the fixed variable set for a preset as KEY=VALUE
// entries, in a stable order.
func Overrides(launchPreset preset.Preset) []string {
	return []string{
		BLOCKTIME_VARIABLE + "=" + BLOCKTIME_VALUE,
		NUM_THREADS_VARIABLE + "=" + strconv.Itoa(launchPreset.NumThreads),
		SETTINGS_VARIABLE + "=" + SETTINGS_VALUE,
		AFFINITY_VARIABLE + "=" + launchPreset.Affinity,
		JIT_FLAGS_VARIABLE + "=" + JIT_FLAGS_VALUE,
	}
}

// Merge applies the overrides on top of the base environment. Base entries
// whose name collides with an override are dropped, every other entry
// passes through unchanged.
func Merge(base []string, overrides []string) []string {
	overridden := make(map[string]bool, len(overrides))
	for _, entry := range overrides {
		overridden[variableName(entry)] = true
	}

	merged := make([]string, 0, len(base)+len(overrides))
	for _, entry := range base {
		if !overridden[variableName(entry)] {
			merged = append(merged, entry)
		}
	}
	return append(merged, overrides...)
}

// Base returns the inherited process environment, optionally extended by a
// dotenv file. File entries never replace an already-set variable and are
// appended in name order.
func Base(environ []string, envFilePath string) ([]string, error) {
	if envFilePath == "" {
		return environ, nil
	}

	fileVariables, err := godotenv.Read(envFilePath)
	if err != nil {
		return nil, fmt.Errorf("cannot read environment file %s: %w", envFilePath, err)
	}

	present := make(map[string]bool, len(environ))
	for _, entry := range environ {
		present[variableName(entry)] = true
	}

	missingNames := make([]string, 0, len(fileVariables))
	for fileVariableName := range fileVariables {
		if !present[fileVariableName] {
			missingNames = append(missingNames, fileVariableName)
		}
	}
	sort.Strings(missingNames)

	base := environ
	for _, missingName := range missingNames {
		base = append(base, missingName+"="+fileVariables[missingName])
	}
	return base, nil
}

func variableName(entry string) string {
	if separatorIndex := strings.IndexByte(entry, '='); separatorIndex >= 0 {
		return entry[:separatorIndex]
	}
	return entry
}
