package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/WayleX/Beerter/internal/client/client"
	"github.com/WayleX/Beerter/internal/client/config"
	"github.com/WayleX/Beerter/internal/client/guard"
	"github.com/WayleX/Beerter/internal/client/repositories/metadata"
	"github.com/WayleX/Beerter/internal/client/services"
	"github.com/WayleX/Beerter/internal/client/session"
	"github.com/WayleX/Beerter/internal/client/storage"
	"github.com/WayleX/Beerter/internal/logging"
)

// gate is the part of the session guard the views use.
type gate interface {
	Activate(ctx context.Context, onUnauthenticated func()) *guard.Activation
}

type dashboardLoader interface {
	Load(ctx context.Context) *services.Dashboard
}

type App struct {
	authService   services.AuthService
	beerService   services.BeerService
	reviewService services.ReviewService
	dashboard     dashboardLoader
	guard         gate
	store         session.Store
	log           logging.Logger

	reader   *bufio.Reader
	out      io.Writer
	userName string

	db *sql.DB
}

// NewApp wires the session, API client, guard and services from c.
// Call Close when done.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.NewNopLogger()
	}

	store, db, err := openSession(ctx, c)
	if err != nil {
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, store, c.RequestTimeout, log)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	reviews := services.NewReviewService(apiClient)
	beers := services.NewBeerService(apiClient)

	return &App{
		authService:   services.NewAuthService(apiClient, store, log),
		beerService:   beers,
		reviewService: reviews,
		dashboard:     services.NewDashboardService(reviews, beers),
		guard:         guard.New(store, apiClient, log),
		store:         store,
		log:           log,
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
		db:            db,
	}, nil
}

// openSession returns the process-wide session. The db is nil for an
// ephemeral session.
func openSession(ctx context.Context, c *config.Config) (*session.Session, *sql.DB, error) {
	if c.Ephemeral {
		return session.NewEphemeral(), nil, nil
	}

	db, err := storage.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing database: %w", err)
	}

	s, err := session.Open(ctx, session.NewMetadataBackend(metadata.NewSQLiteRepository(db)))
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return s, db, nil
}

// Run starts the REPL and blocks until the user leaves or input ends.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to Beerter CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	_, ok := a.store.Get()
	return ok
}

func (a *App) getStatus() string {
	switch {
	case !a.isLoggedIn():
		return "(signed out)"
	case a.userName != "":
		return fmt.Sprintf("(%s)", a.userName)
	default:
		return ""
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
