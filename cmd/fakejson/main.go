package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

/*generates fake JSON documents: [{"<name>": "<text>", ..., "array": [0..K-1]}, ...]*/

const usage = `Usage: fakejson [command] [flags]

Commands:
  generate   write a document (default)
  verify     check a document's shape
  presets    list the built-in presets

Run "fakejson <command> -h" for the flags of a command.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) int {
	command := "generate"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command, args = args[0], args[1:]
	}

	switch command {
	case "generate":
		return runGenerate(args, stdout, stderr, getenv)
	case "verify":
		return runVerify(args, stdin, stderr, getenv)
	case "presets":
		return runPresets(stdout)
	case "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n\n%s", command, usage)
		return 2
	}
}
