package main

import (
	"fmt"
	"os"

	perrors "paper/internal/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps structured errors to distinct exit statuses so scripts can
// tell a bad argument from a broken catalog.
func exitCode(err error) int {
	switch perrors.CodeOf(err) {
	case perrors.CodeInvalidArgument, perrors.CodeInvalidColor, perrors.CodeUnknownTheme, perrors.CodeUnknownToken,
		perrors.CodeUnknownComponent, perrors.CodeInvalidTheme, perrors.CodeNotFound:
		return 2
	case perrors.CodeCatalogFailed, perrors.CodeConfigurationError:
		return 3
	}
	return 1
}
