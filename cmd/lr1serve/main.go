/*
Lr1serve compiles a grammar and serves its grammar text, ACTION/GOTO
table, automaton states, and parse traces as read-only JSON over HTTP.

Usage:

	lr1serve [flags] GRAMMAR_FILE

The flags are:

	-a, --addr ADDR
		The address to listen on. Defaults to ":8080".
*/
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/pflag"

	"github.com/dekarrin/lr1kit"
	"github.com/dekarrin/lr1kit/internal/lr1server"
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
	returnCode = ExitSuccess
	flagAddr   = pflag.StringP("addr", "a", ":8080", "Address to listen on")
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

	srv := lr1server.New(g, a, t)
	fmt.Printf("listening on %s\n", *flagAddr)
	if err := http.ListenAndServe(*flagAddr, srv); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInternal
	}
}
