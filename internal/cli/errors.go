package cli

import (
	"fmt"
	"os"

	"github.com/randalmurphal/todui/internal/errors"
)

// printError prints an error to stderr with appropriate formatting.
// A UserError gets the what/why/fix format; anything else prints as a
// plain error line.
func printError(err error) {
	if uerr := errors.AsUserError(err); uerr != nil {
		fmt.Fprintln(os.Stderr, uerr.UserMessage())
		if verbose {
			fmt.Fprintf(os.Stderr, "\nCode: %s\n", uerr.Code)
			if uerr.Cause != nil {
				fmt.Fprintf(os.Stderr, "Cause: %v\n", uerr.Cause)
			}
		}
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
