package guard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/WayleX/Beerter/internal/client/client"
	"github.com/WayleX/Beerter/internal/client/session"
	"github.com/WayleX/Beerter/internal/common"
	"github.com/WayleX/Beerter/internal/logging"
)

// Verifier asks the remote side whether a token is valid.
// *client.HTTPClient satisfies it.
type Verifier interface {
	Verify(ctx context.Context, token string) client.VerifyResult
}

type State int

const (
	Unchecked State = iota
	Pending
	Verified
	Unauthenticated
	Cancelled
)

func (s State) String() string {
	switch s {
	case Unchecked:
		return "unchecked"
	case Pending:
		return "pending"
	case Verified:
		return "verified"
	case Unauthenticated:
		return "unauthenticated"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

type Guard struct {
	store    session.Store
	verifier Verifier
	log      logging.Logger
}

func New(store session.Store, verifier Verifier, log logging.Logger) *Guard {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Guard{store: store, verifier: verifier, log: log.With("component", "guard")}
}

// Activate starts a check for one protected view. onUnauthenticated may be
// nil; otherwise it runs at most once, either before Activate returns (no
// token) or on the verification goroutine.
//
// Cancelling ctx or calling Activation.Cancel before the server answers
// makes the activation drop the answer: the session is left as is and
// onUnauthenticated is not called. A ctx deadline passing first is a
// failed check instead: the token is kept and onUnauthenticated runs.
func (g *Guard) Activate(ctx context.Context, onUnauthenticated func()) *Activation {
	a := &Activation{
		state:    Unchecked,
		done:     make(chan struct{}),
		onUnauth: onUnauthenticated,
	}

	token, ok := g.store.Get()
	if !ok {
		g.log.Debug(ctx, "no session token")
		a.state = Unauthenticated
		a.result = client.Invalid{Reason: common.ErrNoToken.Error()}
		a.notify()
		close(a.done)
		return a
	}

	vctx, cancel := context.WithCancel(ctx)
	a.state = Pending
	a.stop = cancel

	go g.verify(vctx, a, token)

	return a
}

func (g *Guard) verify(ctx context.Context, a *Activation, token string) {
	resCh := make(chan client.VerifyResult, 1)
	go func() {
		resCh <- g.verifier.Verify(ctx, token)
	}()

	var res client.VerifyResult
	select {
	case res = <-resCh:
	case <-ctx.Done():
	}

	switch err := ctx.Err(); {
	case err == nil:
	case errors.Is(err, context.DeadlineExceeded):
		// Running out of time is an unanswered check, not a teardown.
		if _, failed := res.(client.TransportError); failed || res == nil {
			res = client.TransportError{Err: fmt.Errorf("%w: verify: %w", client.ErrUnavailable, err)}
		}
	default:
		// A transport error caused by our own cancellation is not an answer.
		a.Cancel()
		return
	}

	if !a.settle() {
		return
	}

	final := Unauthenticated
	switch r := res.(type) {
	case client.Valid:
		final = Verified
		g.log.Debug(ctx, "session verified", "user", r.Identity.DisplayName())
	case client.Invalid:
		g.log.Info(ctx, "session rejected, signing out", "reason", r.Reason)
		if err := g.store.Clear(context.WithoutCancel(ctx)); err != nil {
			g.log.Warn(ctx, "clear session", logging.Err(err))
		}
	case client.TransportError:
		g.log.Warn(ctx, "session check failed", logging.Err(r.Err))
	default:
		g.log.Warn(ctx, "unexpected verify result")
	}

	if final == Unauthenticated {
		a.notify()
	}
	a.finish(final, res)
}

// Activation is one in-flight or completed check.
type Activation struct {
	mu      sync.Mutex
	state   State
	result  client.VerifyResult
	settled bool

	done     chan struct{}
	stop     context.CancelFunc
	onUnauth func()
}

func (a *Activation) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Done is closed once the activation reaches a final state.
func (a *Activation) Done() <-chan struct{} {
	return a.done
}

// Wait blocks until the activation is final and returns that state.
func (a *Activation) Wait() State {
	<-a.done
	return a.State()
}

// Result is the verification outcome, nil while pending or when cancelled.
func (a *Activation) Result() client.VerifyResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result
}

// Cancel abandons a pending activation. It is a no-op once the server's
// answer has been taken.
func (a *Activation) Cancel() {
	if !a.settle() {
		return
	}
	a.finish(Cancelled, nil)
}

// settle claims the right to finish the activation. Only the first caller
// gets true.
func (a *Activation) settle() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.settled || a.state != Pending {
		return false
	}
	a.settled = true
	return true
}

func (a *Activation) finish(state State, res client.VerifyResult) {
	a.mu.Lock()
	a.state = state
	a.result = res
	a.mu.Unlock()

	if a.stop != nil {
		a.stop()
	}
	close(a.done)
}

func (a *Activation) notify() {
	if a.onUnauth != nil {
		a.onUnauth()
	}
}
