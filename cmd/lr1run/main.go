/*
Lr1run compiles a grammar and drives a parse over a token stream,
printing the resulting step trace.

Usage:

	lr1run [flags] GRAMMAR_FILE

The flags are:

	-i, --input STRING
		The whitespace-separated input tokens to parse. Required unless
		--interactive is given.

	-I, --interactive
		After compiling the grammar, open a readline-backed prompt that
		appends each line the operator enters to the input and re-parses
		the whole input after every line, rather than parsing a fixed
		--input string. This is a thin
		operator convenience built on top of the parse driver's ordinary
		recorded trace; it does not change how any single step is
		computed.

	-t, --tree
		Print the resulting parse tree after a successful parse.

	-m, --max-steps N
		Override the MAX_STEPS bound for the parse driver.
*/
package main

import (
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"github.com/dekarrin/lr1kit"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitRejected indicates the grammar was valid but the parse was
	// rejected.
	ExitRejected

	// ExitBadInput indicates a problem reading the grammar or flags.
	ExitBadInput

	// ExitInternal indicates an unexpected internal error.
	ExitInternal
)

var (
	returnCode      = ExitSuccess
	flagInput       = pflag.StringP("input", "i", "", "Whitespace-separated input tokens to parse")
	flagInteractive = pflag.BoolP("interactive", "I", false, "Step through a parse interactively instead of using --input")
	flagTree        = pflag.BoolP("tree", "t", false, "Print the resulting parse tree after a successful parse")
	flagMaxSteps    = pflag.IntP("max-steps", "m", 0, "Override the MAX_STEPS bound for the parse driver")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "ERROR: expected exactly one grammar file argument")
		returnCode = ExitBadInput
		return
	}
	if !*flagInteractive && *flagInput == "" {
		fmt.Fprintln(os.Stderr, "ERROR: --input is required unless --interactive is given")
		returnCode = ExitBadInput
		return
	}

	data, err := os.ReadFile(pflag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitBadInput
		return
	}

	g, problems, err := lr1kit.BuildGrammar(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitBadInput
		return
	}
	for _, p := range problems {
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", p)
	}

	a, err := lr1kit.BuildAutomaton(g, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInternal
		return
	}
	t, err := lr1kit.BuildTable(g, a)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInternal
		return
	}

	if *flagInteractive {
		runInteractive(g, t)
		return
	}

	runOnce(g, t, *flagInput)
}

// runOnce parses a single fixed input string and prints its trace.
func runOnce(g *lr1kit.Grammar, t *lr1kit.Table, input string) {
	trace, err := lr1kit.Parse(g, t, input, *flagMaxSteps)
	printTrace(trace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		if trace == nil || !trace.Accepted {
			returnCode = ExitRejected
			return
		}
		returnCode = ExitInternal
		return
	}
	if *flagTree && trace != nil {
		fmt.Println(trace.Tree())
	}
}

// runInteractive reads one line of input at a time from a readline
// prompt, accumulating it onto a growing input string and re-parsing
// after every line, so an operator can watch the trace build up token by
// token. It is a convenience wrapper; the driver itself has no notion of
// "paused" state between calls.
func runInteractive(g *lr1kit.Grammar, t *lr1kit.Table) {
	rl, err := readline.NewEx(&readline.Config{Prompt: "lr1> "})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: create readline: %s\n", err.Error())
		returnCode = ExitInternal
		return
	}
	defer rl.Close()

	var input string
	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}
		if input == "" {
			input = line
		} else {
			input = input + " " + line
		}

		trace, err := lr1kit.Parse(g, t, input, *flagMaxSteps)
		printTrace(trace)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err.Error())
			continue
		}
		if trace.Accepted {
			if *flagTree {
				fmt.Println(trace.Tree())
			}
			return
		}
	}
}

func printTrace(trace *lr1kit.Trace) {
	if trace == nil {
		return
	}
	for _, step := range trace.Steps {
		fmt.Printf("%3d: %s\n", step.Ordinal, step.Explanation)
	}
}
