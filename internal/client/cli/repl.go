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
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Open(ctx context.Context, view string) error
	ShowSettings(ctx context.Context) error
	EditSettings(ctx context.Context) error
	AttachTrainingFile(ctx context.Context) error
	SaveSettings(ctx context.Context) error
	DiscardEdits(ctx context.Context) error
	FetchEmail(ctx context.Context) error
	SummarizeEmail(ctx context.Context) error
	SendEmail(ctx context.Context) error
	ShowStatus(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the mailpilot CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help             — show available commands
//	  - register         — create an account
//	  - login            — authenticate
//	  - open <view>      — navigate (protected views redirect to home)
//	  - status           — show session and panel state
//	  - exit | quit      — leave the program
//
//	Logged in:
//	  - help             — show available commands
//	  - open <view>      — navigate to a view
//	  - settings         — show agent settings (loads on first view)
//	  - edit             — edit agent settings and save
//	  - attach           — stage a training file for the next save
//	  - save             — retry saving the current edits
//	  - discard          — drop unsaved edits and the staged file
//	  - fetch            — fetch the latest email
//	  - summarize        — summarize the fetched email
//	  - send             — send out the generated summary
//	  - status           — show session and panel state
//	  - logout           — log out
//	  - exit | quit      — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mp> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: open <view>, settings, edit, attach, save, discard, fetch, summarize, send, status, logout, exit")
			} else {
				printlnFn("Available commands: register, login, open <view>, status, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "open":
			_ = a.Open(ctx, arg)

		case "settings":
			_ = a.ShowSettings(ctx)

		case "edit":
			_ = a.EditSettings(ctx)

		case "attach":
			_ = a.AttachTrainingFile(ctx)

		case "save":
			_ = a.SaveSettings(ctx)

		case "discard":
			_ = a.DiscardEdits(ctx)

		case "fetch":
			_ = a.FetchEmail(ctx)

		case "summarize":
			_ = a.SummarizeEmail(ctx)

		case "send":
			_ = a.SendEmail(ctx)

		case "status":
			_ = a.ShowStatus(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
