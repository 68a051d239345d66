/*
Lr1c compiles a context-free grammar into its canonical LR(1) ACTION/GOTO
table and prints the result.

It reads a grammar file in lr1kit's line-oriented surface syntax, builds
the canonical LR(1) collection, assembles the parsing table, and prints
either the table or a summary of any conflicts found while building it.

Usage:

	lr1c [flags] GRAMMAR_FILE

The flags are:

	-c, --conflicts
		Print only the conflicts found while building the table, instead
		of the full ACTION/GOTO grid.

	-m, --max-states N
		Override the MAX_STATES bound for automaton construction.

	--config FILE
		Load MAX_STATES/MAX_STEPS/catalog settings from a TOML config
		file instead of using lr1kit's defaults.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/dekarrin/lr1kit"
	"github.com/dekarrin/lr1kit/internal/lr1conf"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitBadInput indicates a problem reading or compiling the grammar.
	ExitBadInput

	// ExitInternal indicates an unexpected internal error.
	ExitInternal
)

var (
	returnCode    = ExitSuccess
	flagConflicts = pflag.BoolP("conflicts", "c", false, "Print only the conflicts found while building the table")
	flagMaxStates = pflag.IntP("max-states", "m", 0, "Override the MAX_STATES bound for automaton construction")
	flagConfig    = pflag.String("config", "", "Load settings from a TOML config file")
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

	cfg := lr1conf.Defaults()
	if *flagConfig != "" {
		var err error
		cfg, err = lr1conf.Load(*flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitBadInput
			return
		}
	}
	maxStates := cfg.MaxStates
	if *flagMaxStates > 0 {
		maxStates = *flagMaxStates
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

	a, err := lr1kit.BuildAutomaton(g, maxStates)
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

	if *flagConflicts {
		conflicts := t.Conflicts()
		if len(conflicts) == 0 {
			fmt.Println("no conflicts")
			return
		}
		for _, c := range conflicts {
			fmt.Println(c.String())
		}
		return
	}

	fmt.Println(t.SnapshotTable())
}
