/*
File    : caretlang/cmd/caretlang/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the caretlang entry point: file mode when a path is
given on the command line, REPL mode otherwise.
*/
package main

import (
	"os"

	"github.com/fatih/color"

	caretlang "github.com/akashmaji946/caretlang"
	"github.com/akashmaji946/caretlang/repl"
)

var (
	VERSION = "v1.0.0"
	AUTHOR  = "akashmaji(@iisc.ac.in)"
	LICENCE = "MIT"
	PROMPT  = "caretlang >>> "
	LINE    = "----------------------------------------------------------------"
	BANNER  = `
   ____                _   _
  / ___|__ _ _ __ ___ | |_| |    __ _ _ __   __ _
 | |   / _` + "`" + ` | '__/ _ \| __| |   / _` + "`" + ` | '_ \ / _` + "`" + ` |
 | |__| (_| | | |  __/| |_| |__| (_| | | | | (_| |
  \____\__,_|_|  \___| \__|_____\__,_|_| |_|\__, |
                                            |___/
`
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}
		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		runFile(arg)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdout)
}

// runFile executes a script with panic recovery around the whole
// lex/parse/interpret pipeline, mirroring REPL mode's recovery policy.
func runFile(fileName string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	result, diagErr := caretlang.RunFile(fileName)
	if diagErr != nil {
		redColor.Fprintf(os.Stderr, "%s", diagErr.Render())
		os.Exit(1)
	}
	if result != nil {
		yellowColor.Printf("%s\n", result.Repr())
	}
}

func showHelp() {
	cyanColor.Println("caretlang - An Interpreted Expression/Statement Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  caretlang                 Start interactive REPL mode")
	yellowColor.Println("  caretlang <path-to-file>  Execute a caretlang script")
	yellowColor.Println("  caretlang --help          Display this help message")
	yellowColor.Println("  caretlang --version       Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                     Exit the REPL")
}

func showVersion() {
	cyanColor.Println("caretlang - An Interpreted Expression/Statement Language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}
