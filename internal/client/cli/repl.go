package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	ToggleMode(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error

	Dashboard(ctx context.Context) error
	Recipes(ctx context.Context) error
	Pantry(ctx context.Context) error
	AddRecipe(ctx context.Context) error
	AddItem(ctx context.Context) error
	UpdateItem(ctx context.Context, args []string) error
	DeleteRecipe(ctx context.Context, args []string) error
	DeleteItem(ctx context.Context, args []string) error
	ShowRecipe(ctx context.Context, args []string) error
	SearchRecipes(ctx context.Context) error
	Expiring(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: login, signup, mode, help, exit"
	helpLoggedIn  = "Available commands: dashboard, recipes, pantry, add-recipe, add-item, update-item <id>, " +
		"delete-recipe <id>, delete-item <id>, show-recipe <id>, search-recipes, expiring [days], " +
		"export <file.xlsx>, whoami, logout, help, exit"
)

// loggedOutCommands are the commands allowed before login.
var loggedOutCommands = map[string]bool{
	"help": true, "login": true, "signup": true, "mode": true, "exit": true, "quit": true,
}

// runREPL starts a simple read–eval–print loop for the kitchenkeeper CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The prompt shows statusFn(). The loop exits on
// EOF or when the user types "exit" or "quit".
//
// Commands other than help, login, signup, mode and exit need a session.
// Errors returned by command handlers are ignored here; handlers report to the
// user and log on their own, which keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("kk (%s)> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if !loggedOutCommands[cmd] && !a.isLoggedIn() {
			if isKnown(cmd) {
				printlnFn("Please log in first.")
			} else {
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			_ = a.Login(ctx)
		case "signup":
			_ = a.Signup(ctx)
		case "mode":
			_ = a.ToggleMode(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.Whoami(ctx)

		case "dashboard", "d":
			_ = a.Dashboard(ctx)
		case "recipes", "r":
			_ = a.Recipes(ctx)
		case "pantry", "p":
			_ = a.Pantry(ctx)
		case "add-recipe":
			_ = a.AddRecipe(ctx)
		case "add-item":
			_ = a.AddItem(ctx)
		case "update-item":
			_ = a.UpdateItem(ctx, args)
		case "delete-recipe":
			_ = a.DeleteRecipe(ctx, args)
		case "delete-item":
			_ = a.DeleteItem(ctx, args)
		case "show-recipe":
			_ = a.ShowRecipe(ctx, args)
		case "search-recipes":
			_ = a.SearchRecipes(ctx)
		case "expiring":
			_ = a.Expiring(ctx, args)
		case "export":
			_ = a.Export(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func isKnown(cmd string) bool {
	switch cmd {
	case "logout", "whoami", "dashboard", "d", "recipes", "r", "pantry", "p",
		"add-recipe", "add-item", "update-item", "delete-recipe", "delete-item",
		"show-recipe", "search-recipes", "expiring", "export":
		return true
	}
	return false
}
