/*
Package cli provides command-line interface utilities for Ganymede.

The cli package includes output formatters, progress reporters, and common
CLI helpers used by the ganymede command.

Output Formatting:

The cli package supports text and JSON output for displaying command
results:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

Progress Reporting:

Batch commands that check many lines of content use the progress reporter,
which tracks how many lines were flagged along the way:

	progress := cli.NewProgressReporter(os.Stderr)
	progress.Start(totalLines)
	for i, line := range lines {
		// Check the line
		progress.Update(int64(i+1), flagged)
	}
	progress.Finish()

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown

A second signal while shutdown is draining terminates the process
immediately.
*/
package cli
