package main

import (
	"flag"
	"os"
	"runtime/debug"
	"strings"

	"github.com/sirupsen/logrus"

	"hmcrun.dev/launcher/internal/configloader"
	"hmcrun.dev/launcher/internal/engine/launcher"
	"hmcrun.dev/launcher/internal/preset"
)

// Name of the current application. Used to load the configuration.
const APPLICATION_NAME = "hmcrun"

func main() {
	// Parsing the command line arguments to change settings file location and launch preset
	configurationFilePath := flag.String("config", "", "Configuration file path")
	presetName := flag.String("preset", preset.GAUGE, "Launch preset ("+strings.Join(preset.Names(), ", ")+")")
	flag.Parse()
	// Loading application configuration
	configuration, err := configloader.LoadConfiguration(APPLICATION_NAME, *configurationFilePath)
	if err != nil {
		logrus.Errorf("%+v", err)
		os.Exit(1)
	}
	level, err := logrus.ParseLevel(configuration.LogLevel)
	if err != nil {
		logrus.Errorf("%+v", err)
		os.Exit(1)
	}

	// Set log level
	logrus.SetLevel(level)
	if *configurationFilePath != "" {
		logrus.Infof("Loaded config file %s", *configurationFilePath)
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		panic("Failed to read build information")
	}
	logrus.Debug("Launching hmcrun v.", bi.Main.Version)

	launchPreset, err := preset.Resolve(*presetName, configuration.PresetFile)
	if err != nil {
		logrus.Errorf("%+v", err)
		os.Exit(1)
	}

	launcherEngine, err := launcher.NewLauncherEngine(launchPreset, configuration)
	if err != nil {
		logrus.Errorf("%+v", err)
		os.Exit(1)
	}
	launcherEngine.StartedEventEmitter.Subscribe(func(pid int) {
		logrus.Debugf("Training process started with PID %d", pid)
	})

	// The trailing tokens select the argument file and extra runner arguments
	exitCode, _ := launcherEngine.Run(flag.Args())
	os.Exit(exitCode)
}
