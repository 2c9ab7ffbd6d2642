// Package session holds the admin identity for a running dashboard process:
// a bearer token and the logged-in profile, persisted to durable storage and
// rehydrated on startup. The store is constructed once at application start
// and passed to whatever needs it; there is no package-level singleton.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/casacare/casacare-admin-api/client"
	"github.com/casacare/casacare-admin-api/models"
)

// Fixed storage keys for the persisted token and serialized admin profile
const (
	TokenKey   = "admin_token"
	ProfileKey = "admin_profile"
)

// Store is the admin session. It implements client.TokenSource so the API
// client it owns always sends the current token.
type Store struct {
	storage Storage

	mu    sync.Mutex
	token string
	admin *models.AdminUser

	api *client.Client
}

// NewStore creates a session backed by storage, talking to the API at
// baseURL. A previously persisted token and profile are optimistically
// restored; call Verify to check them against the backend.
func NewStore(baseURL string, storage Storage) *Store {
	s := &Store{storage: storage}
	s.api = client.New(baseURL, s)

	if token, ok := storage.Get(TokenKey); ok && token != "" {
		s.token = token
	}
	if raw, ok := storage.Get(ProfileKey); ok && raw != "" {
		var admin models.AdminUser
		if err := json.Unmarshal([]byte(raw), &admin); err == nil {
			s.admin = &admin
		}
	}
	return s
}

// Client returns the API client bound to this session's token
func (s *Store) Client() *client.Client {
	return s.api
}

// Token implements client.TokenSource
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated reports whether a token is held. It says nothing about
// whether the backend still accepts that token; Verify answers that.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Admin returns the cached profile of the logged-in admin, nil when logged out
func (s *Store) Admin() *models.AdminUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admin
}

// Login exchanges credentials for a token and persists both token and
// profile before returning. An inactive account or bad credentials leave
// the session untouched.
func (s *Store) Login(ctx context.Context, email, password string) error {
	result, err := s.api.Login(ctx, client.Credentials{Email: email, Password: password})
	if err != nil {
		return err
	}

	profileRaw, err := json.Marshal(result.Admin)
	if err != nil {
		return fmt.Errorf("failed to serialize admin profile: %w", err)
	}
	if err := s.storage.Set(TokenKey, result.Token); err != nil {
		return err
	}
	if err := s.storage.Set(ProfileKey, string(profileRaw)); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = result.Token
	admin := result.Admin
	s.admin = &admin
	s.mu.Unlock()
	return nil
}

// Signup registers a new admin account. The account stays inactive until
// approved, so the caller is NOT logged in afterwards.
func (s *Store) Signup(ctx context.Context, params client.SignupParams) (*models.AdminUser, error) {
	return s.api.Signup(ctx, params)
}

// Logout clears the persisted and in-memory session state
func (s *Store) Logout() error {
	s.mu.Lock()
	s.token = ""
	s.admin = nil
	s.mu.Unlock()

	if err := s.storage.Delete(TokenKey); err != nil {
		return err
	}
	return s.storage.Delete(ProfileKey)
}

// Verify checks the restored token against the backend and refreshes the
// cached profile. Any verification failure forces a logout. A session with
// no token verifies trivially.
func (s *Store) Verify(ctx context.Context) error {
	if !s.IsAuthenticated() {
		return nil
	}

	admin, err := s.api.Me(ctx)
	if err != nil {
		if logoutErr := s.Logout(); logoutErr != nil {
			return fmt.Errorf("session invalid and logout failed: %w", logoutErr)
		}
		return err
	}

	profileRaw, marshalErr := json.Marshal(admin)
	if marshalErr == nil {
		_ = s.storage.Set(ProfileKey, string(profileRaw))
	}

	s.mu.Lock()
	s.admin = admin
	s.mu.Unlock()
	return nil
}
