// Command storeman is a console for the stores and products of a remote
// retail REST API. It serves a web console and offers the same operations
// on the command line.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	domproduct "example.com/storeman/internal/domain/product"
	domstore "example.com/storeman/internal/domain/store"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

var errUsage = errors.New("usage error")

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode separates mistakes the user can fix from upstream and system
// failures.
func exitCode(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, errUsage),
		errors.Is(err, domstore.ErrStoreNotFound),
		errors.Is(err, domstore.ErrStoreInvalid),
		errors.Is(err, domproduct.ErrProductNotFound),
		errors.Is(err, domproduct.ErrProductInvalid),
		errors.Is(err, domproduct.ErrInvalidStatus),
		errors.As(err, &validationErrs):
		return exitUserError
	default:
		return exitSysError
	}
}
