package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/cxcalc/calculator"
	"github.com/npillmayer/cxcalc/grapher"
	"github.com/spf13/cobra"
)

// --- eval ------------------------------------------------------------------

func evalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate expressions",
		Long: `Evaluate one or more expressions and print their values.

Variables may be bound with --given, e.g.

    cxcalc eval --given a=1+2i --given b=a*a "a+b"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runEval,
	}
	cmd.Flags().StringArrayP("given", "g", nil, "Bind a variable: name=expression")
	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	polar, _ := cmd.Flags().GetBool("polar")
	session := calculator.NewSession()
	givens, _ := cmd.Flags().GetStringArray("given")
	return evaluate(session, givens, args, Formatter{Digits: displayDigits(), Polar: polar},
		cmd.OutOrStdout())
}

// evaluate binds variables and evaluates expressions. Evaluation continues
// after an expression without a value, but an error is returned.
func evaluate(session *calculator.Session, givens, exprs []string, f Formatter, w io.Writer) error {
	for _, g := range givens {
		if _, err := session.Assign(g); err != nil {
			return fmt.Errorf("cannot bind %q: %w", g, err)
		}
	}
	var err error
	for _, expr := range exprs {
		c, ok := session.Calculate(expr)
		if !ok {
			err = fmt.Errorf("%w: %q", calculator.ErrNoValue, expr)
			tracer().Errorf(err.Error())
			continue
		}
		if _, werr := f.Format(c, w); werr != nil {
			return werr
		}
	}
	return err
}

// --- grid and contour ------------------------------------------------------

func gridCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid <function of z>",
		Short: "Sample a function on a grid of the complex plane",
		Long: `Sample a function of z for every point of a grid.

Intervals are given as [a,b], (a,b), [a,b) or a:b with integer bounds.
Round brackets exclude a bound. Precision is the number of subdivisions per unit.

    cxcalc grid "z^2" --x "[-2,2]" --y "[-2,2]" --xprec 4 --format svg --out z2.svg
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, args[0], "")
		},
	}
	plotFlags(cmd)
	cmd.Flags().String("y", "[-10,10]", "Interval on the imaginary axis")
	cmd.Flags().String("yprec", "1", "Subdivisions per unit on the imaginary axis")
	return cmd
}

func contourCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contour <function of z> <contour in x>",
		Short: "Sample a function along a contour",
		Long: `Sample a function of z along a curve z = x + c(x)·i, where the contour c
is a real-valued expression in x.

    cxcalc contour "exp(z)" "sin(x)" --x "[-3,3]" --xprec 10
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, args[0], args[1])
		},
	}
	plotFlags(cmd)
	return cmd
}

func plotFlags(cmd *cobra.Command) {
	cmd.Flags().String("x", "[-10,10]", "Interval on the real axis")
	cmd.Flags().String("xprec", "1", "Subdivisions per unit on the real axis")
	cmd.Flags().StringP("format", "f", formatTable, "Output format: table, json or svg")
	cmd.Flags().StringP("out", "o", "", "Output file (default is stdout)")
	cmd.Flags().String("jq", "", "jq filter applied to JSON output")
	cmd.Flags().String("color", "plain", "Coloring of SVG points: plain, x, y or both")
}

func runPlot(cmd *cobra.Command, function, contour string) error {
	flags := cmd.Flags()
	req := grapher.NewRequest(function)
	req.Contour = contour
	x, _ := flags.GetString("x")
	req.X = grapher.ParseInterval(x)
	xprec, _ := flags.GetString("xprec")
	req.XPrecision = grapher.ParsePrecision(xprec)
	if flags.Lookup("y") != nil {
		y, _ := flags.GetString("y")
		req.Y = grapher.ParseInterval(y)
		yprec, _ := flags.GetString("yprec")
		req.YPrecision = grapher.ParsePrecision(yprec)
	}
	opts := outputOptions{digits: displayDigits()}
	opts.format, _ = flags.GetString("format")
	opts.jq, _ = flags.GetString("jq")
	color, _ := flags.GetString("color")
	var err error
	if opts.coloring, err = grapher.ParseColorOption(color); err != nil {
		return err
	}
	f, ok := grapher.Plot(req)
	if !ok {
		return fmt.Errorf("empty interval %v × %v", req.X, req.Y)
	}
	out, _ := flags.GetString("out")
	if out == "" {
		return writeFunction(cmd.OutOrStdout(), f, opts)
	}
	file, err := os.Create(out)
	if err != nil {
		return err
	}
	if err = writeFunction(file, f, opts); err != nil {
		file.Close()
		return err
	}
	tracer().Infof("%d points written to %s", len(f.Points), out)
	return file.Close()
}
