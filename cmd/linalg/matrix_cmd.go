// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/internal/shell"
	"github.com/katalvlaran/linalg/matrix"
)

// operand describes one matrix read from positional arguments.
type operand struct {
	shape string
}

// bind registers the shape flag. Flag parsing stops at the first value so
// that negative elements are not mistaken for shorthand flags.
func (o *operand) bind(cmd *cobra.Command, name, usage string) {
	cmd.Flags().StringVar(&o.shape, name, "", usage)
	_ = cmd.MarkFlagRequired(name)
	cmd.Flags().SetInterspersed(false)
}

// take consumes rows*cols values from fields and returns the rest.
func (o *operand) take(fields []string, a *app) (*matrix.Dense, []string, error) {
	rows, cols, err := shell.ParseShape(o.shape)
	if err != nil {
		return nil, nil, err
	}
	n, err := shell.ElementCount(rows, cols)
	if err != nil {
		return nil, nil, err
	}
	if len(fields) < n {
		return nil, nil, fmt.Errorf("%w: got %d values, expected %d", shell.ErrInputSize, len(fields), n)
	}
	m, err := shell.ParseMatrix(rows, cols, fields[:n], a.cfg.MatrixOptions()...)
	if err != nil {
		return nil, nil, err
	}

	return m, fields[n:], nil
}

// single reads exactly one operand from args.
func (o *operand) single(args []string, a *app) (*matrix.Dense, error) {
	m, rest, err := o.take(strings.Fields(strings.Join(args, " ")), a)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: %d values left over", shell.ErrInputSize, len(rest))
	}

	return m, nil
}

type printer struct {
	cmd  *cobra.Command
	st   shell.Styles
	prec int
}

func (a *app) printer(cmd *cobra.Command) printer {
	return printer{cmd: cmd, st: a.styles(cmd), prec: a.cfg.Output.Precision}
}

func (p printer) matrix(m matrix.Matrix) {
	fmt.Fprintln(p.cmd.OutOrStdout(), p.st.Value(shell.FormatMatrix(m, p.prec)))
}

func (p printer) scalar(label string, v float64) {
	fmt.Fprintln(p.cmd.OutOrStdout(), p.st.Muted(label)+" "+p.st.Value(shell.FormatValue(v, p.prec)))
}

func (p printer) line(label, value string) {
	fmt.Fprintln(p.cmd.OutOrStdout(), p.st.Muted(label)+" "+p.st.Value(value))
}

// unary builds a command applying f to one matrix.
func unary(a *app, use, short string, f func(p printer, m *matrix.Dense) error) *cobra.Command {
	var in operand
	cmd := &cobra.Command{
		Use:   use + " --shape RxC VALUES...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := in.single(args, a)
			if err != nil {
				return err
			}
			a.logger.Debug("Running operation", "op", use, "rows", m.Rows(), "cols", m.Cols())
			return f(a.printer(cmd), m)
		},
	}
	in.bind(cmd, "shape", "matrix shape as RxC")

	return cmd
}

// binary builds a command applying f to two matrices given back to back.
func binary(a *app, use, short string, f func(x, y matrix.Matrix) (*matrix.Dense, error)) *cobra.Command {
	var left, right operand
	cmd := &cobra.Command{
		Use:   use + " --shape RxC --shape2 RxC VALUES...",
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := strings.Fields(strings.Join(args, " "))
			x, rest, err := left.take(fields, a)
			if err != nil {
				return err
			}
			y, err := right.single(rest, a)
			if err != nil {
				return err
			}
			a.logger.Debug("Running operation", "op", use)
			out, err := f(x, y)
			if err != nil {
				return err
			}
			a.printer(cmd).matrix(out)
			return nil
		},
	}
	left.bind(cmd, "shape", "first matrix shape as RxC")
	right.bind(cmd, "shape2", "second matrix shape as RxC")

	return cmd
}

func newMatrixCommands(a *app) []*cobra.Command {
	det := unary(a, "det", "Print the determinant", func(p printer, m *matrix.Dense) error {
		d, err := matrix.Determinant(m, a.cfg.MatrixOptions()...)
		if err != nil {
			return err
		}
		p.scalar("Determinant:", d)
		return nil
	})

	inverse := unary(a, "inverse", "Print the inverse", func(p printer, m *matrix.Dense) error {
		inv, err := matrix.Inverse(m, a.cfg.MatrixOptions()...)
		if err != nil {
			return err
		}
		p.matrix(inv)
		return nil
	})

	adjugate := unary(a, "adjugate", "Print the adjugate (transposed cofactor matrix)", func(p printer, m *matrix.Dense) error {
		adj, err := matrix.Adjugate(m, a.cfg.MatrixOptions()...)
		if err != nil {
			return err
		}
		p.matrix(adj)
		return nil
	})

	transpose := unary(a, "transpose", "Print the transpose", func(p printer, m *matrix.Dense) error {
		t, err := matrix.Transpose(m)
		if err != nil {
			return err
		}
		p.matrix(t)
		return nil
	})

	trace := unary(a, "trace", "Print the trace and the rank", func(p printer, m *matrix.Dense) error {
		if matrix.IsSquare(m) {
			tr, err := matrix.Trace(m)
			if err != nil {
				return err
			}
			p.scalar("Trace:", tr)
		}
		rank, err := matrix.PivotRank(m, a.cfg.MatrixOptions()...)
		if err != nil {
			return err
		}
		p.line("Rank:", fmt.Sprint(rank))
		return nil
	})

	var reduced bool
	echelon := unary(a, "echelon", "Print the row echelon form and its determinant factor", func(p printer, m *matrix.Dense) error {
		form := matrix.RowEchelon
		if reduced {
			form = matrix.ReducedRowEchelon
		}
		e, alpha, err := form(m, nil, a.cfg.MatrixOptions()...)
		if err != nil {
			return err
		}
		p.matrix(e)
		p.scalar("alpha:", alpha)
		return nil
	})
	echelon.Flags().BoolVar(&reduced, "reduced", false, "compute the reduced row echelon form")

	var level int
	props := unary(a, "props", "Report every structural property", func(p printer, m *matrix.Dense) error {
		fmt.Fprintln(p.cmd.OutOrStdout(), shell.FormatProperties(shell.Properties(m, level, a.cfg.MatrixOptions()...), p.st))
		return nil
	})
	props.Flags().IntVar(&level, "level", 2, "nilpotence squaring budget")

	var by float64
	scale := unary(a, "scale", "Multiply every element by a scalar", func(p printer, m *matrix.Dense) error {
		out, err := matrix.Scale(m, by)
		if err != nil {
			return err
		}
		p.matrix(out)
		return nil
	})
	scale.Flags().Float64Var(&by, "by", 1, "scalar factor")

	return []*cobra.Command{
		det, inverse, adjugate, transpose, trace, echelon, props, scale,
		binary(a, "mul", "Print the product A·B", matrix.Mul),
		binary(a, "add", "Print the sum A + B", matrix.Add),
		newSolveCommand(a),
	}
}

func newSolveCommand(a *app) *cobra.Command {
	var coef operand
	var rhs string
	cmd := &cobra.Command{
		Use:   "solve --shape RxC --rhs VALUES COEFFICIENTS...",
		Short: "Classify and solve the linear system A·x = b",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := coef.single(args, a)
			if err != nil {
				return err
			}
			vals, err := shell.ParseNumbers(rhs, m.Rows())
			if err != nil {
				return fmt.Errorf("--rhs: %w", err)
			}
			b, err := matrix.NewDenseFrom(m.Rows(), 1, vals, a.cfg.MatrixOptions()...)
			if err != nil {
				return err
			}

			a.logger.Debug("Solving system", "equations", m.Rows(), "variables", m.Cols())
			kind, x, err := matrix.Solve(m, b, a.cfg.MatrixOptions()...)
			if err != nil {
				return err
			}
			p := a.printer(cmd)
			p.line("Solutions:", kind.String())
			if kind == matrix.SolutionOne {
				p.matrix(x)
			}
			return nil
		},
	}
	coef.bind(cmd, "shape", "coefficient matrix shape as RxC")
	cmd.Flags().StringVar(&rhs, "rhs", "", "right-hand side values, one per equation")
	_ = cmd.MarkFlagRequired("rhs")

	return cmd
}
