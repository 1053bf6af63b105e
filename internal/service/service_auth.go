package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-logistics/internal/config"
	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/internal/store"
	"github.com/MKhiriev/go-logistics/internal/utils"
	"github.com/MKhiriev/go-logistics/internal/validators"
	"github.com/MKhiriev/go-logistics/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator
	ids       idGenerator

	// hashCost is the bcrypt work factor used for new password hashes.
	hashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now is the clock used for issuing and verifying tokens.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return newAuthService(userRepository, cfg, utils.NewUUIDGenerator(), time.Now, logger)
}

func newAuthService(userRepository store.UserRepository, cfg config.App, ids idGenerator, now func() time.Time, logger *logger.Logger) *authService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewRequestValidator(),
		ids:            ids,
		hashCost:       cfg.PasswordHashCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            now,
		logger:         logger,
	}
}

// RegisterUser creates a new user account and issues a token for it.
//
// Names are trimmed and the email is trimmed and lower-cased before the
// uniqueness check, which is left to the database.
//
// Returns the public view of the user and its token or:
//   - ErrInvalidDataProvided joined with the validators reason.
//   - store.ErrEmailAlreadyExists when the email is taken.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.PublicUser, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("func", "authService.RegisterUser").Msg("invalid registration data")
		return models.PublicUser{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), a.hashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return models.PublicUser{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		log.Err(err).Str("func", "authService.RegisterUser").Msg("password hashing failed")
		return models.PublicUser{}, models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           a.ids.Generate(),
		FirstName:    strings.TrimSpace(request.FirstName),
		LastName:     strings.TrimSpace(request.LastName),
		Email:        normalizeEmail(request.Email),
		PasswordHash: string(hash),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.PublicUser{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.CreateToken(ctx, registeredUser.ID)
	if err != nil {
		return models.PublicUser{}, models.Token{}, err
	}

	return registeredUser.Public(), token, nil
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials so
// that callers cannot tell which part failed.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.PublicUser, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.PublicUser{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(request.Email))
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("func", "authService.Login").Msg("login attempt for unknown email")
		return models.PublicUser{}, models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("user search by email failed")
		return models.PublicUser{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(request.Password)); err != nil {
		log.Info().Str("func", "authService.Login").Str("user_id", foundUser.ID).Msg("wrong password")
		return models.PublicUser{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.CreateToken(ctx, foundUser.ID)
	if err != nil {
		return models.PublicUser{}, models.Token{}, err
	}

	return foundUser.Public(), token, nil
}

// GetUser returns the public view of the user with the given id, or
// store.ErrUserNotFound.
func (a *authService) GetUser(ctx context.Context, userID string) (models.PublicUser, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.PublicUser{}, err
	}

	return user.Public(), nil
}

// CreateToken issues a signed JWT whose subject is userID.
func (a *authService) CreateToken(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey, a.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.CreateToken").Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	logger.FromContext(ctx).Debug().
		Str("user_id", userID).
		Dur("expires_in", token.ExpiresIn(a.now())).
		Msg("token issued")

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised
// to ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
