// SPDX-License-Identifier: MIT

package shell

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

// Property is the outcome of one structural check.
type Property struct {
	Name  string
	Holds bool
}

type propertyCheck struct {
	name  string
	check func(m matrix.Matrix, level int, opts []matrix.Option) bool
}

// propertyChecks lists the predicates in menu order.
var propertyChecks = []propertyCheck{
	{"Square", func(m matrix.Matrix, _ int, _ []matrix.Option) bool { return matrix.IsSquare(m) }},
	{"Upper triangular", func(m matrix.Matrix, _ int, _ []matrix.Option) bool { return matrix.IsUpperTriangular(m) }},
	{"Lower triangular", func(m matrix.Matrix, _ int, _ []matrix.Option) bool { return matrix.IsLowerTriangular(m) }},
	{"Diagonal", func(m matrix.Matrix, _ int, _ []matrix.Option) bool { return matrix.IsDiagonal(m) }},
	{"Identity", func(m matrix.Matrix, _ int, _ []matrix.Option) bool { return matrix.IsIdentity(m) }},
	{"Strict identity", func(m matrix.Matrix, _ int, _ []matrix.Option) bool { return matrix.IsStrictIdentity(m) }},
	{"Null", func(m matrix.Matrix, _ int, _ []matrix.Option) bool { return matrix.IsNull(m) }},
	{"Symmetric", func(m matrix.Matrix, _ int, _ []matrix.Option) bool { return matrix.IsSymmetric(m) }},
	{"Antisymmetric", func(m matrix.Matrix, _ int, _ []matrix.Option) bool { return matrix.IsAntisymmetric(m) }},
	{"Idempotent", func(m matrix.Matrix, _ int, _ []matrix.Option) bool { return matrix.IsIdempotent(m) }},
	{"Nilpotent", func(m matrix.Matrix, level int, _ []matrix.Option) bool { return matrix.IsNilpotent(m, level) }},
	{"Invertible", func(m matrix.Matrix, _ int, opts []matrix.Option) bool { return matrix.IsInvertible(m, opts...) }},
}

// nilpotentIndex is the position of the level-dependent check.
const nilpotentIndex = 10

// Properties evaluates every structural predicate on m. level is the
// nilpotence squaring budget.
func Properties(m matrix.Matrix, level int, opts ...matrix.Option) []Property {
	out := make([]Property, len(propertyChecks))
	for i, pc := range propertyChecks {
		out[i] = Property{Name: propertyName(i, level), Holds: pc.check(m, level, opts)}
	}

	return out
}

func propertyName(i, level int) string {
	if i == nilpotentIndex {
		return fmt.Sprintf("%s (level %d)", propertyChecks[i].name, level)
	}

	return propertyChecks[i].name
}

// FormatProperties renders one "Name: True/False" line per property.
func FormatProperties(props []Property, st Styles) string {
	width := 0
	for _, p := range props {
		width = max(width, len(p.Name))
	}
	var out string
	for i, p := range props {
		if i > 0 {
			out += "\n"
		}
		verdict := st.Error("False")
		if p.Holds {
			verdict = st.Success("True")
		}
		out += fmt.Sprintf("%-*s  %s", width+1, p.Name+":", verdict)
	}

	return out
}
