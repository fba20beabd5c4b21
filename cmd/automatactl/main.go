// automatactl is a thin smoke-driver over package automata: positional
// subcommands, no flag parsing, no output formatting beyond one line per
// result (spec.md §1 excludes CLI argument parsing and ASCII-art
// visualization from the core, so this driver stays deliberately plain).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kntjspr/automata-new"
	"github.com/kntjspr/automata-new/dna"
	"github.com/kntjspr/automata-new/levenshtein"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		return usage(stderr)
	}

	switch args[0] {
	case "match":
		if len(args) != 3 {
			fmt.Fprintln(stderr, "usage: automatactl match <pattern> <input>")
			return 2
		}
		re, err := automata.Compile(args[1])
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, re.Match(args[2]))
		return 0

	case "findall":
		if len(args) != 3 {
			fmt.Fprintln(stderr, "usage: automatactl findall <pattern> <text>")
			return 2
		}
		re, err := automata.Compile(args[1])
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		for _, m := range re.FindAllMatches(args[2]) {
			fmt.Fprintf(stdout, "%d %d\n", m.Start, m.End)
		}
		return 0

	case "dna-match":
		if len(args) != 3 {
			fmt.Fprintln(stderr, "usage: automatactl dna-match <pattern> <input>")
			return 2
		}
		re, err := automata.CompileDNA(args[1])
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, re.Match(args[2]))
		return 0

	case "dna-expand":
		if len(args) != 2 {
			fmt.Fprintln(stderr, "usage: automatactl dna-expand <pattern>")
			return 2
		}
		fmt.Fprintln(stdout, dna.Expand(args[1]))
		return 0

	case "editdistance":
		if len(args) != 3 {
			fmt.Fprintln(stderr, "usage: automatactl editdistance <s1> <s2>")
			return 2
		}
		fmt.Fprintln(stdout, levenshtein.EditDistance(args[1], args[2]))
		return 0

	case "approxfind":
		if len(args) != 4 {
			fmt.Fprintln(stderr, "usage: automatactl approxfind <pattern> <text> <maxDistance>")
			return 2
		}
		k, err := parseNonNegativeInt(args[3])
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 2
		}
		matches, err := levenshtein.FindAll(args[2], args[1], k)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		for _, m := range matches {
			fmt.Fprintf(stdout, "%d %d %d %s\n", m.Start, m.End, m.Distance, m.MatchedText)
		}
		return 0

	default:
		return usage(stderr)
	}
}

func usage(stderr io.Writer) int {
	fmt.Fprintln(stderr, "usage: automatactl <match|findall|dna-match|dna-expand|editdistance|approxfind> ...")
	return 2
}

func parseNonNegativeInt(s string) (int, error) {
	n := 0
	if s == "" {
		return 0, fmt.Errorf("expected a non-negative integer, got %q", s)
	}
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("expected a non-negative integer, got %q", s)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
