package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bookstall/internal/client/models"
	"bookstall/internal/common"
	"bookstall/internal/logging"
)

// AuthAPI is the slice of the backend surface the controller needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
}

// Controller is the single authority over in-memory session state.
//
// Construct it once per process with NewController, call Init exactly once
// at startup, and route every mutation (Login, Logout, SwitchRole, Expire)
// through it. Reads (State, CurrentUser, Token) are safe from any
// goroutine; mutations are serialized internally.
type Controller struct {
	store  Store
	api    AuthAPI
	logger logging.Logger

	// opMu serializes mutating operations end to end, including their I/O,
	// so two SwitchRole calls can never interleave. mu guards the fields
	// below and is held only for short copies, keeping reads responsive
	// while a mutation's I/O is in flight.
	opMu sync.Mutex
	mu   sync.Mutex

	state   State
	user    *models.User
	subs    map[int]func(State)
	nextSub int

	now func() time.Time
}

func NewController(store Store, api AuthAPI, logger logging.Logger) *Controller {
	return &Controller{
		store:  store,
		api:    api,
		logger: logger,
		state:  State{Loading: true},
		subs:   make(map[int]func(State)),
		now:    time.Now,
	}
}

// State returns the last committed session state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Token implements the api TokenSource contract.
func (c *Controller) Token() string {
	return c.State().Token
}

// CurrentUser returns a copy of the cached profile, or nil when logged out.
// It is display data only; authorization always derives from the token.
func (c *Controller) CurrentUser() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// Subscribe registers fn to be called synchronously after every committed
// state change. The returned function cancels the subscription.
func (c *Controller) Subscribe(fn func(State)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

// commit publishes a new state and notifies subscribers. Callers hold opMu,
// which keeps notifications ordered and never concurrent with a mutation.
func (c *Controller) commit(state State, user *models.User) {
	c.mu.Lock()
	c.state = state
	c.user = user
	subs := make([]func(State), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

// Init performs the one startup load from the Store and leaves the Loading
// state. It never fails hard: a broken store, an expired cached token or an
// unknown persisted role all degrade to "logged out", which is the safe
// default. Calling Init again after it completed is a no-op.
func (c *Controller) Init(ctx context.Context) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	if !c.State().Loading {
		return
	}

	p, err := c.store.Load(ctx)
	if err != nil {
		c.logger.Warn(ctx, "failed to load persisted session, starting logged out", "error", err)
		p = Persisted{}
	}

	token := p.Token
	var role Role

	if token != "" {
		switch err := c.checkToken(token); {
		case errors.Is(err, common.ErrTokenExpired):
			c.logger.Info(ctx, "cached token expired, discarding session", "error", err)
			token = ""
			if err := c.store.Clear(ctx); err != nil {
				c.logger.Warn(ctx, "failed to clear expired session", "error", err)
			}
		case errors.Is(err, common.ErrInvalidToken):
			// Opaque tokens are kept; if the backend disagrees it answers
			// 401 and the view layer expires the session then.
			c.logger.Info(ctx, "cached token is not a jwt, keeping it", "error", err)
		}
	}

	if token != "" {
		r, err := ParseRole(p.Role)
		if err != nil {
			// Token without a usable role cannot select a screen tree.
			c.logger.Warn(ctx, "persisted role unusable, starting logged out", "role", p.Role)
			token = ""
			if err := c.store.Clear(ctx); err != nil {
				c.logger.Warn(ctx, "failed to clear broken session", "error", err)
			}
		} else {
			role = r
		}
	}

	var user *models.User
	if token != "" && len(p.User) > 0 {
		var u models.User
		if err := json.Unmarshal(p.User, &u); err == nil {
			user = &u
		}
	}

	c.commit(State{Loading: false, Token: token, Role: role}, user)
}

// checkToken classifies a cached token without verifying its signature;
// verification is the backend's job. It returns common.ErrTokenExpired when
// the exp claim is in the past and wraps common.ErrInvalidToken when the
// token does not parse as a JWT at all. A parseable JWT without a usable
// exp claim passes as nil.
func (c *Controller) checkToken(token string) error {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if exp.Before(c.now()) {
		return common.ErrTokenExpired
	}
	return nil
}

// Login authenticates against the backend. The role always comes from the
// backend's response. The new session is persisted before it is committed
// in memory; on any failure the previous state stays untouched and the
// error goes back to the caller unmodified for display.
func (c *Controller) Login(ctx context.Context, email, password string) (State, error) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	if c.State().Loading {
		return State{}, ErrNotReady
	}

	resp, err := c.api.Login(ctx, email, password)
	if err != nil {
		return State{}, err
	}

	role, err := ParseRole(resp.User.Role)
	if err != nil {
		return State{}, fmt.Errorf("backend returned unusable role: %w", err)
	}

	userJSON, err := json.Marshal(resp.User)
	if err != nil {
		return State{}, fmt.Errorf("encode profile: %w", err)
	}

	if err := c.store.Save(ctx, Persisted{Token: resp.Token, Role: string(role), User: userJSON}); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	state := State{Token: resp.Token, Role: role}
	user := resp.User
	c.commit(state, &user)
	c.logger.Info(ctx, "logged in", "role", role)
	return state, nil
}

// Logout is best-effort remote, guaranteed local: the remote invalidation
// may fail, the durable clear may fail, but the in-memory session is always
// gone when Logout returns. A durable clear failure is still reported.
func (c *Controller) Logout(ctx context.Context) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	if c.State().Loading {
		return ErrNotReady
	}

	if c.State().Authenticated() {
		if err := c.api.Logout(ctx); err != nil {
			c.logger.Warn(ctx, "remote logout failed, clearing local session anyway", "error", err)
		}
	}

	var clearErr error
	if err := c.store.Clear(ctx); err != nil {
		clearErr = fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	c.commit(State{}, nil)
	c.logger.Info(ctx, "logged out")
	return clearErr
}

// SwitchRole flips the active role between buyer and seller. It is a purely
// local and persisted change: the token is untouched and accompanies every
// later request, so server-side authorization stays token-derived. The role
// is persisted first and the in-memory state is only advanced when the
// write succeeded.
func (c *Controller) SwitchRole(ctx context.Context, newRole Role) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	state := c.State()
	if state.Loading {
		return ErrNotReady
	}

	role, err := ParseRole(string(newRole))
	if err != nil {
		return err
	}
	if !state.Authenticated() {
		return ErrNotAuthenticated
	}
	if state.Role == role {
		return nil
	}

	if err := c.store.SaveRole(ctx, string(role)); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	state.Role = role
	user := c.CurrentUser()
	if user != nil {
		user.Role = string(role)
	}
	c.commit(state, user)
	c.logger.Info(ctx, "switched role", "role", role)
	return nil
}

// Expire drops the session locally without calling the backend. The view
// layer invokes it when any request comes back 401: the token is already
// dead, so a remote invalidation would only fail again.
func (c *Controller) Expire(ctx context.Context) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	if c.State().Loading || !c.State().Authenticated() {
		return
	}

	if err := c.store.Clear(ctx); err != nil {
		c.logger.Warn(ctx, "failed to clear expired session", "error", err)
	}
	c.commit(State{}, nil)
	c.logger.Info(ctx, "session expired")
}
