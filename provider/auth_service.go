package provider

import (
	"errors"
	"strings"
	"unicode"

	"github.com/tnqbao/gau-design-service/config"
	"github.com/tnqbao/gau-design-service/entity"
	"github.com/tnqbao/gau-design-service/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const MinPasswordLength = 8

// DesignerStore is the subset of the designer repository the auth
// service depends on.
type DesignerStore interface {
	Create(designer *entity.Designer) error
	GetByUsername(username string) (*entity.Designer, error)
	GetActiveByUsername(username string) (*entity.Designer, error)
	ExistsByUsername(username string) (bool, error)
	ExistsByEmail(email string) (bool, error)
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthService struct {
	designers DesignerStore
	cfg       *config.EnvConfig
}

func NewAuthService(designers DesignerStore, cfg *config.EnvConfig) *AuthService {
	return &AuthService{
		designers: designers,
		cfg:       cfg,
	}
}

// Signup validates the registration request, persists the designer with a
// bcrypt password hash and issues the first token pair. Uniqueness is
// pre-checked for friendly errors; the unique indexes remain the
// authority under concurrent signups.
func (s *AuthService) Signup(username, email, password string) (*entity.Designer, *TokenPair, error) {
	if username == "" || email == "" || password == "" {
		return nil, nil, NewValidationError("missing required fields")
	}
	if len(password) < MinPasswordLength {
		return nil, nil, NewValidationError("password must be at least 8 characters long")
	}
	if !isAlphanumeric(username) {
		return nil, nil, NewValidationError("username must be alphanumeric")
	}
	if !isValidEmail(email) {
		return nil, nil, NewValidationError("invalid email format")
	}

	exists, err := s.designers.ExistsByUsername(username)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, NewConflictError("username already exists")
	}

	exists, err = s.designers.ExistsByEmail(email)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, NewConflictError("email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	designer := &entity.Designer{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Status:       entity.DesignerStatusActive,
	}
	if err := s.designers.Create(designer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, NewConflictError("username or email already exists")
		}
		return nil, nil, err
	}

	tokens, err := s.issueTokenPair(username)
	if err != nil {
		return nil, nil, err
	}
	return designer, tokens, nil
}

// Login verifies the credentials of an active designer. A missing
// account, a wrong password and an inactive account all yield
// ErrInvalidCredentials.
func (s *AuthService) Login(username, password string) (*TokenPair, error) {
	if username == "" || password == "" {
		return nil, NewValidationError("missing username or password")
	}

	designer, err := s.designers.GetActiveByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(designer.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokenPair(username)
}

// Refresh issues a new access token for an identity already proven by a
// verified refresh token. The refresh token itself is not rotated.
func (s *AuthService) Refresh(username string) (string, error) {
	designer, err := s.designers.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	if designer.Status != entity.DesignerStatusActive {
		return "", ErrInactive
	}
	return utils.GenerateAccessToken(username, s.cfg)
}

// Profile resolves the active designer behind a verified access token.
func (s *AuthService) Profile(username string) (*entity.Designer, error) {
	designer, err := s.designers.GetActiveByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return designer, nil
}

func (s *AuthService) issueTokenPair(username string) (*TokenPair, error) {
	accessToken, err := utils.GenerateAccessToken(username, s.cfg)
	if err != nil {
		return nil, err
	}
	refreshToken, err := utils.GenerateRefreshToken(username, s.cfg)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isValidEmail(email string) bool {
	if strings.Count(email, "@") != 1 {
		return false
	}
	domain := email[strings.Index(email, "@")+1:]
	return strings.Contains(domain, ".")
}
