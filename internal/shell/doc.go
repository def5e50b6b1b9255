// SPDX-License-Identifier: MIT

// Package shell is the interactive front end of the calculator.
//
// It reads menu choices, matrix shapes and whitespace-separated element lines
// from an io.Reader, invokes the matrix package and writes styled results to
// an io.Writer. Malformed input never terminates the session: a wrong element
// count (ErrInputSize) or an unparsable number re-prompts up to the configured
// retry budget, after which only the current operation is abandoned.
//
// The parsing and rendering helpers are exported so that one-shot commands
// share the exact input and output formats of the interactive shell.
package shell
