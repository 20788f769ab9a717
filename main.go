// Command monkey is the interpreter's entry point. With no flags it
// starts the interactive REPL; with -run it executes a source file
// once and prints the final value.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"monkey/evaluator"
	"monkey/lexer"
	"monkey/object"
	"monkey/parser"
	"monkey/repl"
)

const version = "v1.0.0"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	runPath := flag.String("run", "", "execute a source file instead of starting the REPL")
	showVersion := flag.Bool("version", false, "print the interpreter version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("monkey " + version)
		return
	}

	if *runPath != "" {
		runFile(*runPath)
		return
	}

	repl.New().Start(os.Stdout)
}

// runFile lexes, parses and evaluates an entire source file once,
// printing the final value's textual form or the first parse/eval
// error encountered.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read file %q: %v\n", path, err)
		os.Exit(1)
	}

	l := lexer.New(string(source))
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		redColor.Fprintln(os.Stderr, "invalid syntax")
		for _, e := range errs {
			redColor.Fprintln(os.Stderr, e)
		}
		os.Exit(1)
	}

	result := evaluator.Eval(program, object.NewEnvironment())
	if result == nil {
		return
	}

	if result.Type() == object.ErrorObj {
		redColor.Fprintln(os.Stderr, result.Inspect())
		os.Exit(1)
	}
	yellowColor.Fprintln(os.Stdout, result.Inspect())
}
