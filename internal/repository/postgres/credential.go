package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/draganczukp/lldap/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	upsertCredentialQuery = `
INSERT INTO credentials(user_id, password_hash, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE SET password_hash = EXCLUDED.password_hash, updated_at = EXCLUDED.updated_at
`
	selectCredentialQuery = "SELECT password_hash FROM credentials WHERE user_id = $1"
)

// UpsertCredential stores or replaces the password record for a user. The
// user row must exist.
func (p *Postgres) UpsertCredential(ctx context.Context, userID string, passwordHash []byte) error {
	if _, err := p.db.Exec(ctx, upsertCredentialQuery, userID, passwordHash, time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert credential: %w", err)
	}

	p.log.Infow("credential stored", "user_id", userID)
	return nil
}

// GetCredential returns the stored password record for a user, or
// ErrUserNotFound when the user never registered a password.
func (p *Postgres) GetCredential(ctx context.Context, userID string) ([]byte, error) {
	var hash []byte
	if err := p.db.QueryRow(ctx, selectCredentialQuery, userID).Scan(&hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get credential: %w", err)
	}
	return hash, nil
}
