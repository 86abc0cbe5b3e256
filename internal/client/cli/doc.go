// Package cli provides the interactive Beerter command-line client.
//
// The REPL is the presentation layer: each command is a view over the API.
// Commands that show user data are protected views. Before they fetch
// anything the session guard verifies the stored token with the server; if
// that fails the user is asked to sign in and the command does not run.
//
// Key features:
//   - Register / Login / Logout / Whoami
//   - Beer catalogue and the beer guessing game
//   - Reviews: feed, own, recent, by product, search, post, edit
//   - Likes
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
