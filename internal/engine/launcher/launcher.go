package launcher

import (
	"errors"
	"os"
	"os/exec"
	"syscall"

	log "github.com/sirupsen/logrus"

	"hmcrun.dev/launcher/internal/configloader"
	"hmcrun.dev/launcher/internal/launchenv"
	"hmcrun.dev/launcher/internal/preset"
	"hmcrun.dev/launcher/pkg/eventemitter"
)

// Prefix telling the runner's argument parser to expand the contents of the
// following path into command-line tokens. The file is never read by the
// launcher itself.
const ARGS_FILE_PREFIX = "@"

// Exit codes following the shell convention for a process that could not be
// started or was terminated by a signal.
const STARTUP_FAILURE_EXIT_CODE = 127
const SIGNAL_EXIT_CODE_OFFSET = 128

type LauncherEngine struct {
	launchPreset  preset.Preset
	configuration configloader.Config

	// Event emitters
	BootedEventEmitter  *eventemitter.EventEmitter[bool]
	StartedEventEmitter *eventemitter.EventEmitter[int]
}

func NewLauncherEngine(launchPreset preset.Preset, configuration configloader.Config) (instance *LauncherEngine, err error) {
	instance = &LauncherEngine{
		launchPreset:        launchPreset,
		configuration:       configuration,
		BootedEventEmitter:  &eventemitter.EventEmitter[bool]{},
		StartedEventEmitter: &eventemitter.EventEmitter[int]{},
	}
	return
}

// Arguments builds the child argument vector: the debugger invocation
// wrapping the runner script, the argument file indirection token, then any
// remaining caller tokens forwarded verbatim. The first caller token, when
// present, replaces the preset's default argument file path.
func (launcherEngine *LauncherEngine) Arguments(callerArguments []string) []string {
	argsFilePath := launcherEngine.launchPreset.DefaultArgsFile
	forwarded := []string{}
	if len(callerArguments) > 0 {
		argsFilePath = callerArguments[0]
		forwarded = callerArguments[1:]
	}

	arguments := []string{
		"-m", launcherEngine.configuration.Debugger,
		launcherEngine.launchPreset.Runner,
		ARGS_FILE_PREFIX + argsFilePath,
	}
	return append(arguments, forwarded...)
}

// Environment builds the full child environment: the inherited variables
// plus the optional dotenv file, with the preset's fixed overrides applied
// on top.
func (launcherEngine *LauncherEngine) Environment() ([]string, error) {
	base, err := launchenv.Base(os.Environ(), launcherEngine.configuration.EnvFile)
	if err != nil {
		return nil, err
	}
	return launchenv.Merge(base, launchenv.Overrides(launcherEngine.launchPreset)), nil
}

// Run spawns the training job in the foreground and blocks until it exits.
// The returned code is the child's own exit code; a process killed by a
// signal maps to 128 plus the signal number. The runner script, the
// argument file and the debugger module are not checked for existence:
// those failures belong to the child and surface through its exit code.
func (launcherEngine *LauncherEngine) Run(callerArguments []string) (exitCode int, err error) {
	launcherEngine.BootedEventEmitter.Emit(true)

	var environment []string
	if environment, err = launcherEngine.Environment(); err != nil {
		log.Error("Cannot build the training process environment")
		log.Error(err)
		return STARTUP_FAILURE_EXIT_CODE, err
	}

	process := exec.Command(launcherEngine.configuration.Python, launcherEngine.Arguments(callerArguments)...)
	process.Env = environment
	process.Stdin = os.Stdin
	process.Stdout = os.Stdout
	process.Stderr = os.Stderr

	log.Debug("Launching ", process.String())
	if err = process.Start(); err != nil {
		log.Error("Cannot start the training process")
		log.Error(err)
		return STARTUP_FAILURE_EXIT_CODE, err
	}
	launcherEngine.StartedEventEmitter.Emit(process.Process.Pid)

	if err = process.Wait(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok && status.Signaled() {
				return SIGNAL_EXIT_CODE_OFFSET + int(status.Signal()), err
			}
			return exitError.ExitCode(), err
		}
		return STARTUP_FAILURE_EXIT_CODE, err
	}
	return 0, nil
}
