package auth

import (
	"context"
	"testing"
	"time"

	"github.com/draganczukp/lldap/config"
	"github.com/draganczukp/lldap/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type credStoreMock struct {
	records map[string][]byte
}

var _ CredentialStore = (*credStoreMock)(nil)

func newCredStoreMock() *credStoreMock {
	return &credStoreMock{records: make(map[string][]byte)}
}

func (m *credStoreMock) UpsertCredential(_ context.Context, userID string, passwordHash []byte) error {
	m.records[userID] = passwordHash
	return nil
}

func (m *credStoreMock) GetCredential(_ context.Context, userID string) ([]byte, error) {
	hash, ok := m.records[userID]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return hash, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Directory: config.DirectoryConfig{
			AdminDN:         "admin",
			AdminPassword:   "test",
			RegistrationTTL: time.Minute,
		},
	}
}

func register(t *testing.T, a *Authenticator, userID, password string) {
	t.Helper()

	token, err := a.RegistrationStart(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NoError(t, a.RegistrationFinish(context.Background(), userID, token, password))
}

func TestBindAdmin(t *testing.T) {
	a := New(zap.NewNop().Sugar(), testConfig(), newCredStoreMock())

	require.NoError(t, a.Bind(context.Background(), "admin", "test"))
	require.ErrorIs(t, a.Bind(context.Background(), "admin", "wrong"), entities.ErrAuthenticationFailed)
}

func TestBindUser(t *testing.T) {
	a := New(zap.NewNop().Sugar(), testConfig(), newCredStoreMock())
	register(t, a, "bob", "bob00")

	require.NoError(t, a.Bind(context.Background(), "bob", "bob00"))
	require.ErrorIs(t, a.Bind(context.Background(), "bob", "wrong_password"), entities.ErrAuthenticationFailed)
	require.ErrorIs(t, a.Bind(context.Background(), "andrew", "bob00"), entities.ErrAuthenticationFailed)
}

func TestBindUserWithoutPassword(t *testing.T) {
	// A user row can exist without any credential record; binding it fails.
	a := New(zap.NewNop().Sugar(), testConfig(), newCredStoreMock())

	require.ErrorIs(t, a.Bind(context.Background(), "bob", "bob00"), entities.ErrAuthenticationFailed)
}

func TestRegistrationFinishRejectsBadToken(t *testing.T) {
	a := New(zap.NewNop().Sugar(), testConfig(), newCredStoreMock())

	_, err := a.RegistrationStart(context.Background(), "bob")
	require.NoError(t, err)

	err = a.RegistrationFinish(context.Background(), "bob", "not-the-token", "bob00")
	require.ErrorIs(t, err, entities.ErrAuthenticationFailed)

	// The handshake is consumed by the failed finish.
	err = a.RegistrationFinish(context.Background(), "bob", "not-the-token", "bob00")
	require.ErrorIs(t, err, entities.ErrAuthenticationFailed)
}

func TestRegistrationFinishRejectsUnknownHandshake(t *testing.T) {
	a := New(zap.NewNop().Sugar(), testConfig(), newCredStoreMock())

	err := a.RegistrationFinish(context.Background(), "bob", "token", "bob00")
	require.ErrorIs(t, err, entities.ErrAuthenticationFailed)
}

func TestRegistrationReplacesPassword(t *testing.T) {
	a := New(zap.NewNop().Sugar(), testConfig(), newCredStoreMock())
	register(t, a, "bob", "first")
	register(t, a, "bob", "second")

	require.ErrorIs(t, a.Bind(context.Background(), "bob", "first"), entities.ErrAuthenticationFailed)
	require.NoError(t, a.Bind(context.Background(), "bob", "second"))
}
