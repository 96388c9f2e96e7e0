package state

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ovenworks/bakeryadmin/internal/apiclient"
	"github.com/ovenworks/bakeryadmin/internal/models"
)

// CategoryNotFound is the display fallback for a product whose category_id
// no longer resolves. A dangling reference is not an error.
const CategoryNotFound = "category not found"

// TokenStore persists the raw token string across process restarts.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Store composes the session and the three resource collections. It is
// created once at startup and handed to consumers; all mutation goes
// through the dispatch methods, which wrap one client call each in the
// pending/fulfilled/rejected transitions.
//
// Concurrent dispatches on the same collection race on IsLoading/Err with
// last-write-wins semantics. The store does not sequence them.
type Store struct {
	mu     sync.Mutex
	client *apiclient.Client
	tokens TokenStore
	log    *slog.Logger

	session    Session
	users      Collection[models.User]
	categories Collection[models.Category]
	products   Collection[models.Product]
}

func New(baseURL string, tokens TokenStore, log *slog.Logger) *Store {
	s := &Store{tokens: tokens, log: log}
	s.client = apiclient.New(baseURL, s)
	return s
}

// Token implements apiclient.TokenSource from the current session.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Token
}

// Client exposes the underlying API client for read-only helpers such as
// image URL resolution.
func (s *Store) Client() *apiclient.Client { return s.client }

// Snapshot accessors return copies; transitions never mutate shared slices,
// so the copies are safe to read without further locking.

func (s *Store) Session() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *Store) Users() Collection[models.User] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users
}

func (s *Store) Categories() Collection[models.Category] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categories
}

func (s *Store) Products() Collection[models.Product] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products
}

// CategoryTitle resolves a product's category reference against the loaded
// categories, falling back to CategoryNotFound when the id is dangling.
func (s *Store) CategoryTitle(id uint) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cat := range s.categories.Items {
		if cat.ID == id {
			return cat.Title
		}
	}
	return CategoryNotFound
}

// Login authenticates and, on success, writes the token to durable storage.
func (s *Store) Login(ctx context.Context, username, password string) error {
	s.mu.Lock()
	s.session = sessionPending(s.session)
	s.mu.Unlock()

	res, err := s.client.Login(ctx, username, password)
	if err != nil {
		s.mu.Lock()
		s.session = sessionRejected(s.session, errMessage(err))
		s.mu.Unlock()
		return err
	}

	if err := s.tokens.Save(res.Token); err != nil {
		s.log.Warn("token persist failed", "error", err)
	}

	s.mu.Lock()
	s.session = sessionFulfilled(s.session, res)
	s.mu.Unlock()
	return nil
}

// Logout clears the stored token and the in-memory credentials. It never
// talks to the API.
func (s *Store) Logout() error {
	err := s.tokens.Clear()
	if err != nil {
		s.log.Warn("token clear failed", "error", err)
	}

	s.mu.Lock()
	s.session = sessionCleared(s.session)
	s.mu.Unlock()
	return err
}

// RestoreToken loads the persisted token so requests resume carrying the
// Authorization header. User and IsAuthenticated stay unset; they only come
// from a live login.
func (s *Store) RestoreToken() error {
	token, err := s.tokens.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	s.mu.Lock()
	s.session = sessionWithToken(s.session, token)
	s.mu.Unlock()
	return nil
}

func (s *Store) ClearSessionError() {
	s.mu.Lock()
	s.session = sessionClearError(s.session)
	s.mu.Unlock()
}

// errMessage extracts the display message for a Rejected transition. API
// errors already carry the server's message or a per-operation fallback;
// anything else (validation, transport) is shown verbatim.
func errMessage(err error) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
