package main

import (
	"errors"
	"testing"

	"mercator-hq/ganymede/pkg/cli"
)

// resetRunFlags restores the run command's flag state after a test
// mutates the package-level globals.
func resetRunFlags(t *testing.T) {
	t.Helper()
	saved := runFlags
	savedCfg := cfgFile
	t.Cleanup(func() {
		runFlags = saved
		cfgFile = savedCfg
	})
	cfgFile = ""
	runFlags.listenAddress = ""
	runFlags.logLevel = ""
	runFlags.wordlistPath = ""
	runFlags.dryRun = true
}

func TestRunServer_DryRunDefaults(t *testing.T) {
	resetRunFlags(t)

	if err := runServer(runCmd, nil); err != nil {
		t.Fatalf("dry run with default config failed: %v", err)
	}
}

func TestRunServer_DryRunRejectsInvalidListenAddress(t *testing.T) {
	resetRunFlags(t)
	runFlags.listenAddress = "no-port-here"

	err := runServer(runCmd, nil)
	if err == nil {
		t.Fatal("expected validation error for listen address without port")
	}
	var cfgErr *cli.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *cli.ConfigError, got %T: %v", err, err)
	}
}

func TestRunServer_DryRunRejectsInvalidLogLevel(t *testing.T) {
	resetRunFlags(t)
	runFlags.logLevel = "screaming"

	if err := runServer(runCmd, nil); err == nil {
		t.Fatal("expected validation error for unknown log level")
	}
}
