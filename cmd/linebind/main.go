// Package main is the linebind binding inspector.
//
// It resolves key names into the sequences they bind and renders
// binding files as the help listing a line editor would show.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/dshills/linebind/internal/input/binding"
	"github.com/dshills/linebind/internal/input/chars"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		name        string
		dir         string
		showVersion bool
	)

	flag.StringVar(&name, "name", "", "Resolve a key name and print its sequence")
	flag.StringVar(&name, "n", "", "Resolve a key name (shorthand)")
	flag.StringVar(&dir, "dir", "", "Directory of binding files to list")
	flag.StringVar(&dir, "d", "", "Directory of binding files (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "linebind - key binding inspector\n\n")
		fmt.Fprintf(os.Stderr, "Usage: linebind [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  linebind -name Control-u        Print the sequence C-u binds\n")
		fmt.Fprintf(os.Stderr, "  linebind bindings.toml          List the bindings in a file\n")
		fmt.Fprintf(os.Stderr, "  linebind -dir ~/.linebind       List bindings from a directory\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("linebind %s (%s)\n", version, commit)
		return 0
	}

	if name != "" {
		return resolveName(name)
	}

	if dir == "" && flag.NArg() == 0 {
		flag.Usage()
		return 2
	}

	return listBindings(dir, flag.Args())
}

// resolveName prints the escaped sequence a key name denotes.
func resolveName(name string) int {
	seq, ok := chars.ParseCharName(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %q does not resolve to a key sequence\n", name)
		return 1
	}

	fmt.Printf("%s\t%s\t%s\n", name, chars.EscapeSequence(seq), seqBytes(seq))
	return 0
}

// listBindings loads binding files and prints the help listing.
func listBindings(dir string, files []string) int {
	loader := binding.NewLoader()
	reg := binding.NewRegistry()

	if dir != "" {
		loader.AddSearchPath(dir)
		if err := loader.LoadAndRegister(reg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	for _, path := range files {
		set, err := loader.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if err := reg.Register(set); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if reg.Len() == 0 {
		fmt.Fprintln(os.Stderr, "No bindings found")
		return 1
	}

	fmt.Print(binding.FormatHelp(reg))
	return 0
}

// seqBytes renders the raw sequence as hex byte values for inspection.
func seqBytes(seq string) string {
	out := ""
	for i, r := range seq {
		if i > 0 {
			out += " "
		}
		out += "0x" + strconv.FormatInt(int64(r), 16)
	}
	return out
}
