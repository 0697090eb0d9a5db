package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Analyze(ctx context.Context, paths []string) error
	Similar(ctx context.Context, paths []string) error
	Crop(ctx context.Context, paths []string) error
	Status(ctx context.Context) error
	Reset(ctx context.Context, tool string) error
}

// runREPL starts a simple read–eval–print loop for the FrameCheck CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	analyze <image>              — composition analysis of one image
//	similar <image> [image ...]  — photographer-style similarity (up to 4)
//	crop <image>                 — smart-crop suggestion for one image
//	status                       — service reachability and session states
//	reset [tool]                 — reset one tool's session, or all
//	help                         — show available commands
//	exit | quit                  — leave the program
//
// Errors returned by command handlers are ignored here; handlers print
// their own errors.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn("fc> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: analyze <img>, similar <img>..., crop <img>, status, reset [tool], exit")

		case "analyze":
			_ = a.Analyze(ctx, args)

		case "similar":
			_ = a.Similar(ctx, args)

		case "crop":
			_ = a.Crop(ctx, args)

		case "status":
			_ = a.Status(ctx)

		case "reset":
			tool := ""
			if len(args) > 0 {
				tool = args[0]
			}
			_ = a.Reset(ctx, tool)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
