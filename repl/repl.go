// Package repl implements the interactive read-eval-print loop: a
// readline-backed prompt that feeds each line through the lexer,
// parser and evaluator against one persistent environment, coloring
// output the way the teacher's REPL does.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"monkey/evaluator"
	"monkey/lexer"
	"monkey/object"
	"monkey/parser"
)

const prompt = ">> "

const exitAdvisory = "if you would like to exit, please use exit(), ctrl-c, or ctrl-d"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
)

// Repl is a single interactive session. Env persists across lines so
// `let` bindings accumulate for the life of the process, the same
// contract the teacher's REPL gives its evaluator instance.
type Repl struct {
	Env *object.Environment
}

// New creates a Repl with a fresh top-level environment.
func New() *Repl {
	return &Repl{Env: object.NewEnvironment()}
}

// Start runs the loop until end-of-input, an interrupt, or `exit()`.
// Output goes to writer; input is read from standard input via
// readline, matching the teacher's use of readline for history and
// line editing.
func (r *Repl) Start(writer io.Writer) {
	rl, err := readline.NewEx(&readline.Config{Prompt: prompt})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			// io.EOF on Ctrl-D, readline.ErrInterrupt on Ctrl-C.
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == "exit()" {
			fmt.Fprintln(writer, "Bye!")
			return
		}
		if line == "exit" {
			fmt.Fprintln(writer, exitAdvisory)
			continue
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line)
	}
}

// executeWithRecovery parses and evaluates one line, recovering from
// any panic raised by an internal invariant violation so a single bad
// line never kills the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "internal error: %v\n", recovered)
		}
	}()

	l := lexer.New(line)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		redColor.Fprintln(writer, "invalid syntax")
		for _, e := range errs {
			redColor.Fprintln(writer, e)
		}
		return
	}

	result := evaluator.Eval(program, r.Env)
	if result == nil {
		return
	}

	if result.Type() == object.ErrorObj {
		redColor.Fprintln(writer, result.Inspect())
		return
	}
	yellowColor.Fprintln(writer, result.Inspect())
}
