package main

import (
	"context"
	"os"

	"github.com/Phazertron/concour-bench/internal/app"
)

func main() {
	// Worker re-invocations bypass the regular CLI entirely: the parent
	// spawned this process with a descriptor, not user flags.
	if app.IsWorkerInvocation(os.Args[1:]) {
		os.Exit(app.RunWorker(os.Args[1:]))
	}

	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(0)
		}
		os.Exit(app.ExitCodeFor(err))
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}
