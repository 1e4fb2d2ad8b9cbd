package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"trucktrace/config"
	"trucktrace/internal/domain/service"
)

const (
	defaultAccessTTL = 7 * 24 * time.Hour
	defaultResetTTL  = time.Hour

	resetPurpose = "password_reset"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	resetTTL     time.Duration // Time-to-live for password reset tokens.
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	accessTTL, resetTTL := defaultAccessTTL, defaultResetTTL
	if cfg.Auth != nil {
		if cfg.Auth.TokenTTL > 0 {
			accessTTL = cfg.Auth.TokenTTL
		}
		if cfg.Auth.ResetTokenTTL > 0 {
			resetTTL = cfg.Auth.ResetTokenTTL
		}
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    accessTTL,
		resetTTL:     resetTTL,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken creates a bearer token whose only custom content is the subject.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID) (string, error) {
	return s.sign(s.newClaims(userID, s.accessTTL, ""), s.accessSecret)
}

// ValidateAccessToken checks the signature and expiry of an access token.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	}, s.parserOptions()...); err != nil {
		return nil, classifyTokenError(err)
	}

	if claims.Purpose != "" {
		return nil, errors.Wrap(service.ErrTokenInvalid, "not an access token")
	}
	if _, err := claims.UserID(); err != nil {
		return nil, err
	}

	return claims, nil
}

// GenerateResetToken signs with a key derived from the password hash, so the
// token stops verifying as soon as the password changes.
func (s *jwtService) GenerateResetToken(userID uuid.UUID, passwordHash string) (string, error) {
	return s.sign(s.newClaims(userID, s.resetTTL, resetPurpose), s.resetKey(passwordHash))
}

// ValidateResetToken verifies a reset token against the user's current password hash.
func (s *jwtService) ValidateResetToken(tokenString string, lookup service.PasswordHashLookup) (uuid.UUID, error) {
	var userID uuid.UUID

	claims := &service.Claims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		parsed, ok := token.Claims.(*service.Claims)
		if !ok || parsed.Purpose != resetPurpose {
			return nil, service.ErrTokenInvalid
		}

		id, err := parsed.UserID()
		if err != nil {
			return nil, err
		}

		hash, err := lookup(id)
		if err != nil {
			return nil, errors.Wrap(err, "lookup password hash")
		}
		userID = id

		return s.resetKey(hash), nil
	}, s.parserOptions()...); err != nil {
		return uuid.Nil, classifyTokenError(err)
	}

	return userID, nil
}

// AccessTokenTTL returns the configured duration for access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

func (s *jwtService) newClaims(userID uuid.UUID, ttl time.Duration, purpose string) *service.Claims {
	now := s.now()

	return &service.Claims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

func (s *jwtService) sign(claims *service.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func (s *jwtService) parserOptions() []jwt.ParserOption {
	return []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
}

func (s *jwtService) resetKey(passwordHash string) []byte {
	key := make([]byte, 0, len(s.accessSecret)+len(passwordHash)+1)
	key = append(key, s.accessSecret...)
	key = append(key, ':')
	key = append(key, passwordHash...)

	return key
}

func classifyTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return errors.WithStack(service.ErrTokenExpired)
	}

	return errors.Wrap(service.ErrTokenInvalid, err.Error())
}
