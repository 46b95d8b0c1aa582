package main

import (
	"fmt"
	"os"

	"github.com/tuck-sh/tuck/pkg/errors"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", renderError(err))
		os.Exit(errors.ExitCode(err))
	}
}
