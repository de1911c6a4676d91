// Package auth implements the credential lifecycle: password registration
// and bind verification, keyed by user id.
package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/draganczukp/lldap/config"
	"github.com/draganczukp/lldap/internal/entities"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// CredentialStore is the slice of storage the authenticator needs: password
// records keyed by user id. A missing record reports ErrUserNotFound.
type CredentialStore interface {
	UpsertCredential(ctx context.Context, userID string, passwordHash []byte) error
	GetCredential(ctx context.Context, userID string) ([]byte, error)
}

// Authenticator verifies binds against stored password records and runs the
// two-step registration handshake. The administrative bind identity is
// checked against configuration only, never against storage.
type Authenticator struct {
	log           *zap.SugaredLogger
	creds         CredentialStore
	adminDN       string
	adminPassword string
	ttl           time.Duration

	mu      sync.Mutex
	pending map[string]pendingRegistration
}

type pendingRegistration struct {
	token   string
	expires time.Time
}

// New constructs an Authenticator over the credential store.
func New(log *zap.SugaredLogger, cfg *config.Config, creds CredentialStore) *Authenticator {
	ttl := cfg.Directory.RegistrationTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Authenticator{
		log:           log.Named("auth"),
		creds:         creds,
		adminDN:       cfg.Directory.AdminDN,
		adminPassword: cfg.Directory.AdminPassword,
		ttl:           ttl,
		pending:       make(map[string]pendingRegistration),
	}
}

// Bind verifies a user's password. Any failure — unknown user, missing
// password record, wrong password — reports ErrAuthenticationFailed without
// distinguishing the cause.
func (a *Authenticator) Bind(ctx context.Context, userID, password string) error {
	if userID == a.adminDN {
		if a.adminPassword == "" {
			return entities.ErrAuthenticationFailed
		}
		if subtle.ConstantTimeCompare([]byte(password), []byte(a.adminPassword)) != 1 {
			return entities.ErrAuthenticationFailed
		}
		return nil
	}

	hash, err := a.creds.GetCredential(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return entities.ErrAuthenticationFailed
		}
		return err
	}

	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		a.log.Infow("bind rejected", "user_id", userID)
		return entities.ErrAuthenticationFailed
	}
	return nil
}

// RegistrationStart opens a registration handshake for a user and returns
// the server token the client must echo back in RegistrationFinish. Starting
// again replaces any pending handshake for the same user.
func (a *Authenticator) RegistrationStart(_ context.Context, userID string) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("registration token: %w", err)
	}
	token := hex.EncodeToString(buf)

	a.mu.Lock()
	a.pending[userID] = pendingRegistration{token: token, expires: time.Now().Add(a.ttl)}
	a.mu.Unlock()

	return token, nil
}

// RegistrationFinish completes the handshake and stores the password record.
// The token must match a live handshake for this user.
func (a *Authenticator) RegistrationFinish(ctx context.Context, userID, token, password string) error {
	a.mu.Lock()
	reg, ok := a.pending[userID]
	if ok {
		delete(a.pending, userID)
	}
	a.mu.Unlock()

	if !ok || reg.token != token || time.Now().After(reg.expires) {
		return entities.ErrAuthenticationFailed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := a.creds.UpsertCredential(ctx, userID, hash); err != nil {
		return err
	}

	a.log.Infow("registration finished", "user_id", userID)
	return nil
}
