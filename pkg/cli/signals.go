package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// interruptExitCode is the shell convention for death by SIGINT (128+2).
const interruptExitCode = 130

// SetupSignalHandler returns a context that is canceled on the first
// SIGINT or SIGTERM, which lets the server drain in-flight moderation
// requests before exiting. A second signal terminates the process
// immediately, so a stuck shutdown can be cut short from the terminal.
func SetupSignalHandler() context.Context {
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	return handleSignals(sigChan, os.Exit)
}

// handleSignals implements the cancel-then-exit protocol for a signal
// channel. The exit function is injectable for tests.
func handleSignals(sigChan <-chan os.Signal, exit func(int)) context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		<-sigChan
		cancel()
		<-sigChan
		exit(interruptExitCode)
	}()

	return ctx
}
