package launchenv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"hmcrun.dev/launcher/internal/launchenv"
	"hmcrun.dev/launcher/internal/preset"
)

func testPreset() preset.Preset {
	return preset.Preset{
		Name:            "test",
		Runner:          "test_main.py",
		DefaultArgsFile: "args/test_args.txt",
		NumThreads:      4,
		Affinity:        "granularity=fine,compact,1,0",
	}
}

func TestOverridesFixedVariableSet(t *testing.T) {
	overrides := launchenv.Overrides(testPreset())
	assert.Equal(t, []string{
		"KMP_BLOCKTIME=0",
		"OMP_NUM_THREADS=4",
		"KMP_SETTINGS=TRUE",
		"KMP_AFFINITY=granularity=fine,compact,1,0",
		"TF_XLA_FLAGS=--tf_xla_cpu_global_jit",
	}, overrides)
}

func TestMergeReplacesCollidingEntries(t *testing.T) {
	base := []string{
		"KMP_BLOCKTIME=200",
		"HOME=/home/user",
		"KMP_AFFINITY=scatter",
	}
	merged := launchenv.Merge(base, launchenv.Overrides(testPreset()))

	assert.Len(t, merged, 6)
	assert.Contains(t, merged, "HOME=/home/user")
	assert.Contains(t, merged, "KMP_BLOCKTIME=0")
	assert.Contains(t, merged, "KMP_AFFINITY=granularity=fine,compact,1,0")
	assert.NotContains(t, merged, "KMP_BLOCKTIME=200")
	assert.NotContains(t, merged, "KMP_AFFINITY=scatter")
}

func TestMergePassesThroughUnrelatedEntries(t *testing.T) {
	base := []string{
		"PATH=/usr/bin",
		"LANG=C.UTF-8",
	}
	merged := launchenv.Merge(base, launchenv.Overrides(testPreset()))

	assert.Len(t, merged, 7)
	assert.Equal(t, "PATH=/usr/bin", merged[0])
	assert.Equal(t, "LANG=C.UTF-8", merged[1])
}

func TestBaseWithoutEnvFile(t *testing.T) {
	environ := []string{"PATH=/usr/bin"}
	base, err := launchenv.Base(environ, "")
	assert.Nil(t, err)
	assert.Equal(t, environ, base)
}

func TestBaseWithEnvFile(t *testing.T) {
	envFilePath := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFilePath, []byte("DATA_FOLDER=/data\nHOME=/elsewhere\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base, err := launchenv.Base([]string{"HOME=/home/user"}, envFilePath)
	assert.Nil(t, err)
	assert.Contains(t, base, "DATA_FOLDER=/data")
	assert.Contains(t, base, "HOME=/home/user")
	assert.NotContains(t, base, "HOME=/elsewhere")
}

func TestBaseWithMissingEnvFile(t *testing.T) {
	_, err := launchenv.Base([]string{}, filepath.Join(t.TempDir(), "unexistent.env"))
	assert.NotNil(t, err)
}
