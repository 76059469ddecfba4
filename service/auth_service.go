package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"devtrack-backend/models"
	"devtrack-backend/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailRequired      = errors.New("email and password are required")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

var emailRe = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,})+$`)

const minPasswordLength = 6

// TokenPayload is the identity carried by a session token
type TokenPayload struct {
	UserID uuid.UUID
	Email  string
}

type sessionClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// AuthService handles sign-up, sign-in and session tokens
type AuthService struct {
	userStore UserStore
	jwtSecret []byte
	tokenTTL  time.Duration
}

// AuthServiceOption is a functional option for AuthService
type AuthServiceOption func(*AuthService)

// AuthWithUserStore sets the user store
func AuthWithUserStore(store UserStore) AuthServiceOption {
	return func(s *AuthService) {
		s.userStore = store
	}
}

// AuthWithJWTSecret sets the HMAC signing secret
func AuthWithJWTSecret(secret string) AuthServiceOption {
	return func(s *AuthService) {
		s.jwtSecret = []byte(secret)
	}
}

// AuthWithTokenTTL sets the session token lifetime
func AuthWithTokenTTL(ttl time.Duration) AuthServiceOption {
	return func(s *AuthService) {
		s.tokenTTL = ttl
	}
}

// NewAuthService creates a new auth service
func NewAuthService(opts ...AuthServiceOption) *AuthService {
	s := &AuthService{
		tokenTTL: 7 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SignUpRequest represents a request to create an account
type SignUpRequest struct {
	Email    string
	Password string
}

// SignUp creates a new user with a bcrypt password hash. Emails are
// lowercased before storage and must be unique.
func (s *AuthService) SignUp(ctx context.Context, req SignUpRequest) (*models.User, error) {
	if s.userStore == nil {
		return nil, errors.New("user store not set")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrEmailRequired
	}
	if !emailRe.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userStore.Create(ctx, user); err != nil {
		// The users table enforces email uniqueness; a concurrent duplicate
		// sign-up surfaces here rather than through a pre-check.
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// SignInRequest represents a request to authenticate
type SignInRequest struct {
	Email    string
	Password string
}

// SignInResult carries the authenticated user and their session token
type SignInResult struct {
	User  *models.User
	Token string
}

// SignIn verifies credentials and issues a session token. Unknown email and
// wrong password return the same error.
func (s *AuthService) SignIn(ctx context.Context, req SignInRequest) (*SignInResult, error) {
	if s.userStore == nil {
		return nil, errors.New("user store not set")
	}
	if req.Email == "" || req.Password == "" {
		return nil, ErrEmailRequired
	}

	user, err := s.userStore.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.CreateToken(TokenPayload{UserID: user.ID, Email: user.Email})
	if err != nil {
		return nil, err
	}

	return &SignInResult{User: user, Token: token}, nil
}

// CreateToken signs a session token for the given identity
func (s *AuthService) CreateToken(payload TokenPayload) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		UserID: payload.UserID.String(),
		Email:  payload.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

// VerifyToken validates a session token and returns the identity it carries
func (s *AuthService) VerifyToken(token string) (*TokenPayload, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &TokenPayload{UserID: userID, Email: claims.Email}, nil
}

// GetUser retrieves the account behind a verified token
func (s *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	if s.userStore == nil {
		return nil, errors.New("user store not set")
	}
	return s.userStore.GetByID(ctx, userID)
}

// PlanPreference is the user's currently selected plan, both fields nil when
// nothing is selected
type PlanPreference struct {
	SelectedPlanID   *uuid.UUID `json:"selectedPlanId"`
	SelectedPlanName *string    `json:"selectedPlanName"`
}

// GetPreference returns the user's selected-plan preference
func (s *AuthService) GetPreference(ctx context.Context, userID uuid.UUID) (*PlanPreference, error) {
	if s.userStore == nil {
		return nil, errors.New("user store not set")
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &PlanPreference{
		SelectedPlanID:   user.SelectedPlanID,
		SelectedPlanName: user.SelectedPlanName,
	}, nil
}

// SetPreference stores the user's selected-plan preference
func (s *AuthService) SetPreference(ctx context.Context, userID uuid.UUID, planID *uuid.UUID, planName *string) (*PlanPreference, error) {
	if s.userStore == nil {
		return nil, errors.New("user store not set")
	}

	if err := s.userStore.UpdateSelectedPlan(ctx, userID, planID, planName); err != nil {
		return nil, err
	}

	return &PlanPreference{SelectedPlanID: planID, SelectedPlanName: planName}, nil
}

// ClearPreference clears the user's selected-plan preference
func (s *AuthService) ClearPreference(ctx context.Context, userID uuid.UUID) error {
	if s.userStore == nil {
		return errors.New("user store not set")
	}
	return s.userStore.UpdateSelectedPlan(ctx, userID, nil, nil)
}
