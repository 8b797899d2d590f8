package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"subtext/internal/services"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			reportError(err)
		}
		os.Exit(1)
	}
}

// reportError prints a failed command's error, suffixed with its
// classification label when the error carries one of the service
// sentinels.
func reportError(err error) {
	switch class := services.Classify(err); class {
	case "", "transient":
		fmt.Fprintln(os.Stderr, err)
	default:
		fmt.Fprintf(os.Stderr, "%v [%s]\n", err, class)
	}
}
