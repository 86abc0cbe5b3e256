// Package guard gates protected commands on a verified session.
//
// Every activation reads the session synchronously. With no token the
// caller is told to sign in straight away and nothing touches the network.
// With a token, verification runs in the background against the server,
// which is the only authority on whether the token is still good:
//
//	Unchecked -> Unauthenticated                    (no token)
//	Unchecked -> Pending -> Verified                (server accepted)
//	Unchecked -> Pending -> Unauthenticated         (rejected, unreachable, timed out)
//	Unchecked -> Pending -> Cancelled               (caller went away)
//
// A rejected token is removed from the session. An unreachable server fails
// closed but leaves the token in place, so the next activation can try
// again. Nothing is cached: each activation verifies anew.
package guard
