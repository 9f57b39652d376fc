package provider_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tnqbao/gau-design-service/config"
	"github.com/tnqbao/gau-design-service/entity"
	"github.com/tnqbao/gau-design-service/provider"
	"github.com/tnqbao/gau-design-service/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeDesignerStore struct {
	designers map[string]*entity.Designer
	createErr error
	created   []*entity.Designer
}

func newFakeDesignerStore() *fakeDesignerStore {
	return &fakeDesignerStore{designers: make(map[string]*entity.Designer)}
}

func (f *fakeDesignerStore) Create(designer *entity.Designer) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.designers[designer.Username] = designer
	f.created = append(f.created, designer)
	return nil
}

func (f *fakeDesignerStore) GetByUsername(username string) (*entity.Designer, error) {
	designer, ok := f.designers[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return designer, nil
}

func (f *fakeDesignerStore) GetActiveByUsername(username string) (*entity.Designer, error) {
	designer, ok := f.designers[username]
	if !ok || designer.Status != entity.DesignerStatusActive {
		return nil, gorm.ErrRecordNotFound
	}
	return designer, nil
}

func (f *fakeDesignerStore) ExistsByUsername(username string) (bool, error) {
	_, ok := f.designers[username]
	return ok, nil
}

func (f *fakeDesignerStore) ExistsByEmail(email string) (bool, error) {
	for _, designer := range f.designers {
		if designer.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func testEnvConfig() *config.EnvConfig {
	cfg := &config.EnvConfig{}
	cfg.JWT.SecretKey = "test-secret-key"
	cfg.JWT.AccessExpire = 3600
	cfg.JWT.RefreshExpire = 86400
	return cfg
}

func TestSignupValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"missing username", "", "alice@x.com", "password1"},
		{"missing email", "alice", "", "password1"},
		{"missing password", "alice", "alice@x.com", ""},
		{"password too short", "alice", "alice@x.com", "seven77"},
		{"username with dash", "alice-b", "alice@x.com", "password1"},
		{"username with space", "alice b", "alice@x.com", "password1"},
		{"email without at", "alice", "alice.x.com", "password1"},
		{"email with two ats", "alice", "alice@@x.com", "password1"},
		{"email without dot after at", "alice", "alice@xcom", "password1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeDesignerStore()
			svc := provider.NewAuthService(store, testEnvConfig())
			_, _, err := svc.Signup(tt.username, tt.email, tt.password)

			var validationErr *provider.ValidationError
			require.Error(t, err)
			assert.True(t, errors.As(err, &validationErr), "expected ValidationError, got %T", err)
			assert.Empty(t, store.created)
		})
	}
}

func TestSignupSuccess(t *testing.T) {
	t.Parallel()
	store := newFakeDesignerStore()
	svc := provider.NewAuthService(store, testEnvConfig())

	designer, tokens, err := svc.Signup("alice", "alice@x.com", "password1")
	require.NoError(t, err)
	require.NotNil(t, designer)
	require.NotNil(t, tokens)

	assert.Equal(t, "alice", designer.Username)
	assert.Equal(t, entity.DesignerStatusActive, designer.Status)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	// The plaintext password must never be stored.
	assert.NotEqual(t, "password1", designer.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(designer.PasswordHash), []byte("password1")))
}

func TestSignupMinimumPasswordLength(t *testing.T) {
	t.Parallel()
	store := newFakeDesignerStore()
	svc := provider.NewAuthService(store, testEnvConfig())

	// Exactly eight characters passes the gate.
	_, _, err := svc.Signup("alice", "alice@x.com", "eight888")
	assert.NoError(t, err)
}

func TestSignupConflicts(t *testing.T) {
	t.Parallel()
	store := newFakeDesignerStore()
	svc := provider.NewAuthService(store, testEnvConfig())

	_, _, err := svc.Signup("alice", "alice@x.com", "password1")
	require.NoError(t, err)

	var conflictErr *provider.ConflictError

	_, _, err = svc.Signup("alice", "other@x.com", "password1")
	require.Error(t, err)
	assert.True(t, errors.As(err, &conflictErr))

	_, _, err = svc.Signup("bob", "alice@x.com", "password1")
	require.Error(t, err)
	assert.True(t, errors.As(err, &conflictErr))
}

func TestSignupConcurrentDuplicate(t *testing.T) {
	t.Parallel()
	// The pre-checks pass but the unique index rejects the insert, as
	// happens when two signups race.
	store := newFakeDesignerStore()
	store.createErr = gorm.ErrDuplicatedKey
	svc := provider.NewAuthService(store, testEnvConfig())

	_, _, err := svc.Signup("alice", "alice@x.com", "password1")
	require.Error(t, err)
	var conflictErr *provider.ConflictError
	assert.True(t, errors.As(err, &conflictErr))
}

func TestLogin(t *testing.T) {
	t.Parallel()
	store := newFakeDesignerStore()
	svc := provider.NewAuthService(store, testEnvConfig())
	_, _, err := svc.Signup("alice", "alice@x.com", "password1")
	require.NoError(t, err)

	t.Run("successful", func(t *testing.T) {
		tokens, err := svc.Login("alice", "password1")
		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
	})

	t.Run("wrong password and unknown username are indistinguishable", func(t *testing.T) {
		_, errWrongPassword := svc.Login("alice", "wrong")
		_, errUnknownUser := svc.Login("nobody", "password1")

		assert.ErrorIs(t, errWrongPassword, provider.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknownUser, provider.ErrInvalidCredentials)
		assert.Equal(t, errWrongPassword, errUnknownUser)
	})

	t.Run("inactive designer cannot log in", func(t *testing.T) {
		store.designers["alice"].Status = entity.DesignerStatusInactive
		defer func() { store.designers["alice"].Status = entity.DesignerStatusActive }()

		_, err := svc.Login("alice", "password1")
		assert.ErrorIs(t, err, provider.ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Login("", "password1")
		var validationErr *provider.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})
}

func TestRefresh(t *testing.T) {
	t.Parallel()
	cfg := testEnvConfig()
	store := newFakeDesignerStore()
	svc := provider.NewAuthService(store, cfg)
	_, _, err := svc.Signup("alice", "alice@x.com", "password1")
	require.NoError(t, err)

	t.Run("successful", func(t *testing.T) {
		token, err := svc.Refresh("alice")
		require.NoError(t, err)

		parsed, err := utils.ParseToken(token, cfg)
		require.NoError(t, err)
		assert.True(t, parsed.Valid)
	})

	t.Run("unknown identity", func(t *testing.T) {
		_, err := svc.Refresh("nobody")
		assert.ErrorIs(t, err, provider.ErrNotFound)
	})

	t.Run("inactive designer", func(t *testing.T) {
		store.designers["alice"].Status = entity.DesignerStatusInactive
		defer func() { store.designers["alice"].Status = entity.DesignerStatusActive }()

		_, err := svc.Refresh("alice")
		assert.ErrorIs(t, err, provider.ErrInactive)
	})
}

func TestProfile(t *testing.T) {
	t.Parallel()
	store := newFakeDesignerStore()
	svc := provider.NewAuthService(store, testEnvConfig())
	_, _, err := svc.Signup("alice", "alice@x.com", "password1")
	require.NoError(t, err)

	designer, err := svc.Profile("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", designer.Email)

	_, err = svc.Profile("nobody")
	assert.ErrorIs(t, err, provider.ErrNotFound)
}
