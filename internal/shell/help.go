// SPDX-License-Identifier: MIT

package shell

import "github.com/charmbracelet/glamour"

// helpMarkdown is the help screen source.
const helpMarkdown = `# linalg

A calculator for small dense matrices.

## Entering matrices

1. Give the number of **rows**, then the number of **cols**.
2. Type all elements on one line, left to right and top to bottom,
   separated by spaces: ` + "`1 2 3 4`" + ` is the 2×2 matrix [1 2; 3 4].

A line with the wrong number of values is rejected and asked again.

## Operations

| Operation | Notes |
|-----------|-------|
| Property identification | square, triangular, diagonal, identity, null, symmetric, antisymmetric, idempotent, nilpotent, invertible |
| Multiplication | A·B needs cols(A) = rows(B) |
| System of linear equations | one line per equation: coefficients then the resultant; reports NONE, ONE or INFINITE |
| Determinant, inverse, adjugate | square matrices only; a singular matrix has no inverse |
| Row echelon forms | Gauss and Gauss–Jordan elimination, with the determinant factor alpha |

## Numerics

Pivots are compared with zero exactly unless ` + "`numeric.epsilon`" + ` is set in
the configuration file or through ` + "`LINALG_NUMERIC_EPSILON`" + `.
`

// RenderHelp renders the help screen with the named glamour style
// ("auto" picks one from the terminal background).
func RenderHelp(style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}

	return r.Render(helpMarkdown)
}

// HelpMarkdown returns the unrendered help source.
func HelpMarkdown() string { return helpMarkdown }
