// SPDX-License-Identifier: MIT

package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/linalg/internal/config"
	"github.com/katalvlaran/linalg/matrix"
)

// ErrAbandoned is returned by an operation whose input was rejected more
// times than the retry budget allows. The session itself continues.
var ErrAbandoned = errors.New("too many invalid entries")

const (
	prompt   = "--> "
	goodbye  = "Good luck."
	helpWrap = 80
)

type menuEntry struct {
	title string
	run   func() error // nil quits
}

// Shell is the interactive menu-driven calculator.
type Shell struct {
	in     *bufio.Scanner
	out    io.Writer
	cfg    *config.Config
	opts   []matrix.Option
	styles Styles
	logger *log.Logger
	menu   []menuEntry
}

// New builds a shell reading answers from in and writing to out.
// A nil cfg selects config.DefaultConfig; a nil logger discards diagnostics.
func New(in io.Reader, out io.Writer, cfg *config.Config, logger *log.Logger) *Shell {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Shell{
		in:     bufio.NewScanner(in),
		out:    out,
		cfg:    cfg,
		opts:   cfg.MatrixOptions(),
		styles: NewStyles(out, cfg.Output.Color),
		logger: logger,
	}
	s.menu = []menuEntry{
		{title: "Quit"},
		{title: "Property identification", run: s.properties},
		{title: "Matrix multiplication", run: s.multiply},
		{title: "System of linear equations", run: s.sle},
		{title: "Determinant", run: s.determinant},
		{title: "Inverse", run: s.inverse},
		{title: "Adjugate", run: s.adjugate},
		{title: "Addition", run: s.add},
		{title: "Scalar multiplication", run: s.scale},
		{title: "Transpose", run: s.transpose},
		{title: "Trace and rank", run: s.traceRank},
		{title: "Row echelon form", run: func() error { return s.echelon(false) }},
		{title: "Reduced row echelon form", run: func() error { return s.echelon(true) }},
		{title: "Help", run: s.help},
	}

	return s
}

// Run loops over the main menu until the user quits, input ends, or ctx is
// canceled. End of input is a normal exit.
func (s *Shell) Run(ctx context.Context) error {
	s.println(s.styles.Title("Linear algebra calculator"))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printMenu()
		idx, err := s.readChoice(len(s.menu))
		if err != nil {
			return s.finish(err)
		}
		entry := s.menu[idx-1]
		if entry.run == nil {
			s.println(goodbye)
			return nil
		}

		s.logger.Debug("Running operation", "op", entry.title)
		if err := entry.run(); err != nil {
			if errors.Is(err, io.EOF) {
				return s.finish(err)
			}
			s.logger.Warn("Operation failed", "op", entry.title, "err", err)
			s.report(err)
		}
		s.println("")
	}
}

func (s *Shell) finish(err error) error {
	if errors.Is(err, io.EOF) {
		s.println("")
		s.println(goodbye)
		return nil
	}

	return err
}

func (s *Shell) report(err error) {
	if errors.Is(err, ErrAbandoned) {
		s.println(s.styles.Error("Operation abandoned: " + ErrAbandoned.Error() + "."))
		return
	}
	s.println(s.styles.Error("ERROR: " + Describe(err)))
}

func (s *Shell) printMenu() {
	s.println(s.styles.Title("Choose an option:"))
	for i, e := range s.menu {
		s.printf("%2d. %s\n", i+1, e.title)
	}
}

func (s *Shell) println(text string) { fmt.Fprintln(s.out, text) }

func (s *Shell) printf(format string, args ...any) { fmt.Fprintf(s.out, format, args...) }

// readLine prints label and the prompt, then returns the next input line.
// Exhausted input yields io.EOF.
func (s *Shell) readLine(label string) (string, error) {
	if label != "" {
		s.println(s.styles.Muted(label))
	}
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimSpace(s.in.Text()), nil
}

// readChoice asks for a menu option in [1, n] until a valid one is given.
func (s *Shell) readChoice(n int) (int, error) {
	for {
		line, err := s.readLine("")
		if err != nil {
			return 0, err
		}
		v, err := ParsePositive(line)
		if err == nil && v <= n {
			return v, nil
		}
		s.println(s.styles.Warning("This is not a valid option."))
	}
}

// retry reads lines until parse accepts one or the retry budget runs out.
func (s *Shell) retry(label string, parse func(line string) error) error {
	for attempt := 1; ; attempt++ {
		line, err := s.readLine(label)
		if err != nil {
			return err
		}
		perr := parse(line)
		if perr == nil {
			return nil
		}
		s.logger.Debug("Rejected input", "attempt", attempt, "err", perr)
		s.println(s.styles.Warning("ERROR: " + Describe(perr)))
		if attempt >= s.cfg.UI.MaxRetries {
			return fmt.Errorf("%w (%d attempts): %w", ErrAbandoned, attempt, perr)
		}
	}
}

func (s *Shell) readPositive(label string) (int, error) {
	return s.readBounded(label, nil)
}

// readBounded reads a positive integer that check, when set, also accepts.
func (s *Shell) readBounded(label string, check func(v int) error) (int, error) {
	var n int
	err := s.retry(label, func(line string) error {
		v, err := ParsePositive(line)
		if err != nil {
			return err
		}
		if check != nil {
			if err := check(v); err != nil {
				return err
			}
		}
		n = v
		return nil
	})

	return n, err
}

func (s *Shell) readScalar(label string) (float64, error) {
	var v float64
	err := s.retry(label, func(line string) error {
		vals, err := ParseNumbers(line, 1)
		if err != nil {
			return err
		}
		v = vals[0]
		return nil
	})

	return v, err
}

// readMatrix prompts for the shape of name and then for its elements on a
// single line, left to right and top to bottom.
func (s *Shell) readMatrix(name string) (*matrix.Dense, error) {
	s.println(s.styles.Title("Matrix " + name))
	rows, err := s.readPositive("Number of rows:")
	if err != nil {
		return nil, err
	}
	cols, err := s.readBounded("Number of cols:", func(v int) error {
		_, err := ElementCount(rows, v)
		return err
	})
	if err != nil {
		return nil, err
	}

	var m *matrix.Dense
	label := fmt.Sprintf("Elements of the %dx%d matrix from left to right, top to bottom:", rows, cols)
	err = s.retry(label, func(line string) error {
		var perr error
		m, perr = ParseMatrix(rows, cols, []string{line}, s.opts...)
		return perr
	})

	return m, err
}

func (s *Shell) showMatrix(label string, m matrix.Matrix) {
	s.println(s.styles.Muted(label))
	s.println(s.styles.Value(FormatMatrix(m, s.cfg.Output.Precision)))
}

func (s *Shell) showScalar(label string, v float64) {
	s.println(s.styles.Muted(label) + " " + s.styles.Value(FormatValue(v, s.cfg.Output.Precision)))
}

func (s *Shell) properties() error {
	s.println(s.styles.Title("Which property?"))
	for i, pc := range propertyChecks {
		s.printf("%2d. %s\n", i+1, pc.name)
	}
	all := len(propertyChecks) + 1
	s.printf("%2d. All\n", all)
	choice, err := s.readChoice(all)
	if err != nil {
		return err
	}

	m, err := s.readMatrix("A")
	if err != nil {
		return err
	}
	level := 2
	if choice == all || choice-1 == nilpotentIndex {
		if level, err = s.readPositive("Nilpotence level:"); err != nil {
			return err
		}
	}

	if choice == all {
		s.println(FormatProperties(Properties(m, level, s.opts...), s.styles))
		return nil
	}
	pc := propertyChecks[choice-1]
	holds := pc.check(m, level, s.opts)
	s.println(FormatProperties([]Property{{Name: propertyName(choice-1, level), Holds: holds}}, s.styles))

	return nil
}

// readPair reads the two operands of a binary operation.
func (s *Shell) readPair() (*matrix.Dense, *matrix.Dense, error) {
	a, err := s.readMatrix("A")
	if err != nil {
		return nil, nil, err
	}
	b, err := s.readMatrix("B")
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

func (s *Shell) multiply() error {
	a, b, err := s.readPair()
	if err != nil {
		return err
	}
	c, err := matrix.Mul(a, b)
	if err != nil {
		return err
	}
	s.showMatrix("A·B =", c)

	return nil
}

func (s *Shell) add() error {
	a, b, err := s.readPair()
	if err != nil {
		return err
	}
	c, err := matrix.Add(a, b)
	if err != nil {
		return err
	}
	s.showMatrix("A + B =", c)

	return nil
}

func (s *Shell) scale() error {
	a, err := s.readMatrix("A")
	if err != nil {
		return err
	}
	k, err := s.readScalar("Scalar:")
	if err != nil {
		return err
	}
	c, err := matrix.Scale(a, k)
	if err != nil {
		return err
	}
	s.showMatrix(FormatValue(k, s.cfg.Output.Precision)+"·A =", c)

	return nil
}

func (s *Shell) transpose() error {
	a, err := s.readMatrix("A")
	if err != nil {
		return err
	}
	t, err := matrix.Transpose(a)
	if err != nil {
		return err
	}
	s.showMatrix("Aᵀ =", t)

	return nil
}

func (s *Shell) traceRank() error {
	a, err := s.readMatrix("A")
	if err != nil {
		return err
	}
	if matrix.IsSquare(a) {
		tr, err := matrix.Trace(a)
		if err != nil {
			return err
		}
		s.showScalar("Trace:", tr)
	} else {
		s.println(s.styles.Muted("Trace: undefined for a non-square matrix"))
	}
	rank, err := matrix.PivotRank(a, s.opts...)
	if err != nil {
		return err
	}
	s.println(s.styles.Muted("Rank:") + " " + s.styles.Value(fmt.Sprint(rank)))

	return nil
}

func (s *Shell) determinant() error {
	a, err := s.readMatrix("A")
	if err != nil {
		return err
	}
	det, err := matrix.Determinant(a, s.opts...)
	if err != nil {
		return err
	}
	s.showScalar("Determinant:", det)

	return nil
}

func (s *Shell) inverse() error {
	a, err := s.readMatrix("A")
	if err != nil {
		return err
	}
	inv, err := matrix.Inverse(a, s.opts...)
	if err != nil {
		return err
	}
	s.showMatrix("A⁻¹ =", inv)

	return nil
}

func (s *Shell) adjugate() error {
	a, err := s.readMatrix("A")
	if err != nil {
		return err
	}
	adj, err := matrix.Adjugate(a, s.opts...)
	if err != nil {
		return err
	}
	s.showMatrix("adj(A) =", adj)

	return nil
}

func (s *Shell) echelon(reduced bool) error {
	a, err := s.readMatrix("A")
	if err != nil {
		return err
	}
	form, label := matrix.RowEchelon, "Row echelon form:"
	if reduced {
		form, label = matrix.ReducedRowEchelon, "Reduced row echelon form:"
	}
	e, alpha, err := form(a, nil, s.opts...)
	if err != nil {
		return err
	}
	s.showMatrix(label, e)
	s.showScalar("alpha:", alpha)

	return nil
}

// sle reads a system one equation per line: the coefficients followed by
// the resultant.
func (s *Shell) sle() error {
	vars, err := s.readBounded("Number of variables:", func(v int) error {
		if v == math.MaxInt {
			return fmt.Errorf("%w: %d variables", ErrTooLarge, v)
		}
		return nil
	})
	if err != nil {
		return err
	}
	eqs, err := s.readBounded("Number of equations:", func(v int) error {
		_, err := ElementCount(v, vars+1)
		return err
	})
	if err != nil {
		return err
	}

	var coef, rhs []float64
	for i := 1; i <= eqs; i++ {
		label := fmt.Sprintf("Coefficients and resultant of equation %d (%d values):", i, vars+1)
		err := s.retry(label, func(line string) error {
			vals, perr := ParseNumbers(line, vars+1)
			if perr != nil {
				return perr
			}
			coef = append(coef, vals[:vars]...)
			rhs = append(rhs, vals[vars])
			return nil
		})
		if err != nil {
			return err
		}
	}

	a, err := matrix.NewDenseFrom(eqs, vars, coef, s.opts...)
	if err != nil {
		return err
	}
	b, err := matrix.NewDenseFrom(eqs, 1, rhs, s.opts...)
	if err != nil {
		return err
	}
	s.showMatrix("Coefficients:", a)
	s.showMatrix("Resultants:", b)

	kind, x, err := matrix.Solve(a, b, s.opts...)
	if err != nil {
		return err
	}
	s.println(s.styles.Muted("Solutions:") + " " + s.styles.Value(kind.String()))
	if kind == matrix.SolutionOne {
		for i := 0; i < vars; i++ {
			v, _ := x.At(i, 0)
			s.showScalar(fmt.Sprintf("x%d =", i+1), v)
		}
	}

	return nil
}

func (s *Shell) help() error {
	text, err := RenderHelp(s.cfg.UI.HelpStyle, helpWrap)
	if err != nil {
		s.logger.Warn("Help rendering failed, showing plain text", "err", err)
		text = HelpMarkdown()
	}
	fmt.Fprint(s.out, text)

	return nil
}
