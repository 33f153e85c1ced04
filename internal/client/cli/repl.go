package cli

import (
	"bufio"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register() error
	Login() error
	Lists(args []string) error
	Create() error
	Show(args []string) error
	AddItem(args []string) error
	Done(args []string) error
	Drop(args []string) error
	Logout() error
}

// runREPL starts a simple read-eval-print loop for the bucketlist CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// print their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bl %s> ", statusFn()))
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
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ists [search], create, show <id>, additem <id>, done <id> <item_id>, drop <id>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register()

		case "login":
			_ = a.Login()

		case "l", "lists":
			_ = a.Lists(args)

		case "create":
			_ = a.Create()

		case "show":
			_ = a.Show(args)

		case "additem":
			_ = a.AddItem(args)

		case "done":
			_ = a.Done(args)

		case "drop":
			_ = a.Drop(args)

		case "logout":
			_ = a.Logout()

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
