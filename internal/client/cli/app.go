package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"bookstall/internal/client/api"
	"bookstall/internal/client/config"
	"bookstall/internal/client/models"
	"bookstall/internal/client/services"
	"bookstall/internal/client/session"
	"bookstall/internal/logging"

	_ "modernc.org/sqlite"
)

// sessionController is the slice of session.Controller the CLI needs.
type sessionController interface {
	Init(ctx context.Context)
	State() session.State
	CurrentUser() *models.User
	Login(ctx context.Context, email, password string) (session.State, error)
	Logout(ctx context.Context) error
	SwitchRole(ctx context.Context, newRole session.Role) error
	Expire(ctx context.Context)
}

// registrar creates new accounts. Split from sessionController because
// registration does not touch local session state.
type registrar interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
}

type catalogService interface {
	Browse(ctx context.Context, query string) ([]models.Book, error)
	BookDetail(ctx context.Context, id int64) (*models.Book, error)
}

type cartService interface {
	View(ctx context.Context) (*models.Cart, error)
	Add(ctx context.Context, bookID int64, quantity int) (*models.Cart, error)
	SetQuantity(ctx context.Context, bookID int64, quantity int) (*models.Cart, error)
	Remove(ctx context.Context, bookID int64) (*models.Cart, error)
	Clear(ctx context.Context) error
	Checkout(ctx context.Context) (*models.Order, error)
}

type orderService interface {
	BuyerHistory(ctx context.Context) ([]models.Order, error)
	SellerInbox(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, from, to models.OrderStatus) (*models.Order, error)
	Dashboard(ctx context.Context) (services.SalesSummary, error)
}

type listingService interface {
	MyBooks(ctx context.Context) ([]models.Book, error)
	Add(ctx context.Context, req models.BookRequest) (*models.Book, error)
	Update(ctx context.Context, id int64, req models.BookRequest) (*models.Book, error)
	Delete(ctx context.Context, id int64) error
}

// App wires the session controller and the domain services behind the REPL.
type App struct {
	config   *config.Config
	session  sessionController
	accounts registrar
	catalog  catalogService
	cart     cartService
	orders   orderService
	listings listingService
	logger   logging.Logger
	reader   *bufio.Reader
}

// NewApp opens the local session database and builds the full client stack:
// HTTP client, session controller and domain services. The HTTP client pulls
// its bearer token from the controller on every request, so a login or
// logout is picked up immediately without rebuilding anything.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := session.OpenDatabase(ctx, c.SessionDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing session database", "error", err)
		return nil, err
	}
	store := session.NewSQLiteStore(db)

	var ctrl *session.Controller
	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, api.TokenFunc(func() string {
		if ctrl == nil {
			return ""
		}
		return ctrl.Token()
	}))
	ctrl = session.NewController(store, apiClient, logger)

	return &App{
		config:   c,
		session:  ctrl,
		accounts: apiClient,
		catalog:  services.NewCatalogService(apiClient),
		cart:     services.NewCartService(apiClient),
		orders:   services.NewOrderService(apiClient),
		listings: services.NewListingService(apiClient),
		logger:   logger,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the persisted session and enters the REPL. It returns when
// the user quits or stdin is exhausted.
func (a *App) Run(ctx context.Context) {
	a.session.Init(ctx)

	printlnFn("Bookstall CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// screen resolves the current session state to the active screen.
func (a *App) screen() session.Screen {
	return session.Select(a.session.State())
}

// status renders the prompt decoration: the user's email and active role
// when logged in, empty otherwise.
func (a *App) status() string {
	st := a.session.State()
	if !st.Authenticated() {
		return ""
	}
	s := string(st.Role)
	if u := a.session.CurrentUser(); u != nil {
		s = u.Email + " " + s
	}
	return fmt.Sprintf("(%s) ", s)
}

// report surfaces a command error to the user. An authentication failure
// additionally expires the local session, so the next prompt falls back to
// the welcome screen.
func (a *App) report(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, api.ErrUnauthorized) {
		a.session.Expire(ctx)
		printlnFn("Session expired, please log in again")
		return err
	}
	printlnFn("Error:", err.Error())
	return err
}
