package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/cxcalc/calculator"
	"github.com/npillmayer/cxcalc/cxcalc/ui/termui"
)

// calcIntpr is the interactive calculator. Statements which are not
// calculator commands are evaluated as expressions.
type calcIntpr struct {
	*termui.BaseREPL
	session *calculator.Session
	format  Formatter
}

var calcStatements = []readline.PrefixCompleterInterface{
	readline.PcItem("let"),
	readline.PcItem("save"),
	readline.PcItem("vars"),
	readline.PcItem("delete"),
	readline.PcItem("clear",
		readline.PcItem("vars"),
		readline.PcItem("history"),
	),
	readline.PcItem("history"),
	readline.PcItem("polar",
		readline.PcItem("on"),
		readline.PcItem("off"),
	),
	readline.PcItem("autosave",
		readline.PcItem("on"),
		readline.PcItem("off"),
	),
}

func calcHelp(w io.Writer) {
	io.WriteString(w, `
The calculator will interpret the following statements:

  <expression>            : evaluate an expression, e.g. (1+2i)*a
  let <name>=<expression> : evaluate an expression and store it as a variable
  save <re> <im>          : store a value as a new variable (polar: <r> <θ>)
  vars                    : list variables, most recent first
  delete <name>,…         : delete variables
  clear [vars|history]    : delete all variables or the calculation history
  history                 : list calculations, most recent first
  polar [on|off]          : display or toggle polar input and output
  autosave [on|off]       : display or toggle saving results as variables

`)
}

func newCalcIntpr(session *calculator.Session, digits int32) *calcIntpr {
	return &calcIntpr{
		session: session,
		format:  Formatter{Digits: digits, Polar: session.IsPolar()},
	}
}

// InterpretCommand is part of interface termui.REPLCommandInterpreter.
func (calc *calcIntpr) InterpretCommand(line string) {
	stdout, stderr := calc.Outputs()
	calc.execute(strings.Trim(line, "\x00"), stdout, stderr)
}

// execute interprets a single calculator statement, writing results to
// stdout and messages to stderr.
func (calc *calcIntpr) execute(line string, stdout, stderr io.Writer) {
	line = strings.TrimSpace(line)
	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}
	arg := strings.TrimSpace(strings.TrimPrefix(line, words[0]))
	show := func(item interface{}, w io.Writer) {
		calc.format.Polar = calc.session.IsPolar()
		if _, err := calc.format.Format(item, w); err != nil {
			tracer().Errorf("cannot write output: %v", err)
		}
	}
	switch words[0] {
	case "let":
		c, err := calc.session.Assign(arg)
		if err != nil {
			show(err, stderr)
			return
		}
		show(c, stdout)
	case "save":
		first, second := "", ""
		if len(words) > 1 {
			first = words[1]
		}
		if len(words) > 2 {
			second = words[2]
		}
		name := calc.session.SaveVariable(first, second)
		v, _ := calc.session.Store().Lookup(name)
		show(fmt.Sprintf("%s = %s", name, calc.format.value(v)), stdout)
	case "vars":
		show(calc.session.Store().Entries(), stdout)
	case "delete":
		n := calc.session.DeleteVariables(arg)
		show(fmt.Sprintf("%d variable(s) deleted", n), stderr)
	case "clear":
		if arg == "history" {
			calc.session.ClearHistory()
			show("history cleared", stderr)
			return
		}
		calc.session.ClearVariables()
		show("variables cleared", stderr)
	case "history":
		show(calc.session.History(), stdout)
	case "polar":
		if b, ok := onOff(arg); ok {
			calc.session.SetPolar(b)
		}
		show(fmt.Sprintf("polar mode is %s", onOffString(calc.session.IsPolar())), stderr)
	case "autosave":
		if b, ok := onOff(arg); ok {
			calc.session.SetSaveResults(b)
		}
		show(fmt.Sprintf("autosave is %s", onOffString(calc.session.SavesResults())), stderr)
	default:
		c, ok := calc.session.Calculate(line)
		if !ok {
			show(fmt.Errorf("%w: %q", calculator.ErrNoValue, line), stderr)
			return
		}
		show(c, stdout)
	}
}

func onOff(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "on", "true", "1":
		return true, true
	case "off", "false", "0":
		return false, true
	}
	return false, false
}

func onOffString(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
