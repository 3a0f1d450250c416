package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yomu-dev/yomu/internal/app"
	"github.com/yomu-dev/yomu/internal/source"
)

const version = "0.1.0"

func printHelp() {
	fmt.Print(`yomu - terminal pager

USAGE:
    yomu [FILE]

File to print. If no FILE is specified, read standard input.

OPTIONS:
    -h, --help       Show this help message and exit
    -v, --version    Show version and exit

KEYS:
    Up / Down        Scroll one line
    Ctrl+W           Quit
`)
}

func main() {
	path := ""
	if len(os.Args) > 1 {
		arg := os.Args[1]
		switch {
		case arg == "-h" || arg == "--help":
			printHelp()
			os.Exit(0)
		case arg == "-v" || arg == "--version":
			fmt.Println("yomu", version)
			os.Exit(0)
		case len(arg) > 1 && arg[0] == '-':
			fmt.Fprintf(os.Stderr, "yomu: unknown option %s\n", arg)
			printHelp()
			os.Exit(1)
		default:
			path = arg
		}
	}

	if err := app.New(path).Run(); err != nil {
		if errors.Is(err, source.ErrNoInput) {
			// Help was the useful output; no error text on top of it.
			printHelp()
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
