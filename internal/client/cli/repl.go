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

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Beers(ctx context.Context) error
	Feed(ctx context.Context) error
	Refresh(ctx context.Context) error
	Mine(ctx context.Context) error
	Recent(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Post(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Search(ctx context.Context, keyword string) error
	Product(ctx context.Context, productID string) error
	Like(ctx context.Context, id string) error
	Unlike(ctx context.Context, id string) error
	Likes(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Game(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: register, login, help, exit"
	helpSignedIn  = "Available commands: whoami, beers, feed, refresh, mine, recent, show <id>, post, edit <id>, " +
		"search <keyword>, product <id>, like <id>, unlike <id>, likes, dashboard, game, logout, help, exit"
)

// runREPL starts a simple read–eval–print loop for the Beerter CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Commands that need an argument print their
// usage when it is missing. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are shown to the user and never end
// the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("beerter %s> ", statusFn()))
		line, rerr := reader.ReadString('\n')
		if rerr != nil && (!errors.Is(rerr, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		var err error

		withArg := func(usage string, fn func(ctx context.Context, arg string) error) error {
			if len(args) == 0 {
				printlnFn("Usage:", usage)
				return nil
			}
			return fn(ctx, strings.Join(args, " "))
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}
		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.Whoami(ctx)
		case "beers":
			err = a.Beers(ctx)
		case "feed":
			err = a.Feed(ctx)
		case "refresh":
			err = a.Refresh(ctx)
		case "mine":
			err = a.Mine(ctx)
		case "recent":
			err = a.Recent(ctx)
		case "show":
			err = withArg("show <id>", a.Show)
		case "post":
			err = a.Post(ctx)
		case "edit":
			err = withArg("edit <id>", a.Edit)
		case "search":
			err = withArg("search <keyword>", a.Search)
		case "product":
			err = withArg("product <id>", a.Product)
		case "like":
			err = withArg("like <id>", a.Like)
		case "unlike":
			err = withArg("unlike <id>", a.Unlike)
		case "likes":
			err = a.Likes(ctx)
		case "dashboard":
			err = a.Dashboard(ctx)
		case "game":
			err = a.Game(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil && !errors.Is(err, errSignInRequired) && !errors.Is(err, io.EOF) {
			printlnFn("Error:", describe(err))
		}
	}
}
