package auth

import (
	"context"
	"crypto/subtle"
	"time"

	pkgauth "github.com/buyyourkawa/kawa-backend/pkg/auth"
	"github.com/buyyourkawa/kawa-backend/pkg/config"
	"github.com/buyyourkawa/kawa-backend/pkg/enums"
	pkgerrors "github.com/buyyourkawa/kawa-backend/pkg/errors"
	"github.com/buyyourkawa/kawa-backend/pkg/security"
)

// Service authenticates staff credentials and issues access tokens.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
}

type service struct {
	jwt   config.JWTConfig
	admin config.AdminConfig
	now   func() time.Time
}

// NewService wires the auth service around the configured admin credential.
func NewService(jwtCfg config.JWTConfig, adminCfg config.AdminConfig) (Service, error) {
	if jwtCfg.Secret == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "auth: jwt secret is required")
	}
	if adminCfg.Username == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "auth: admin username is required")
	}
	if adminCfg.Password == "" && adminCfg.PasswordHash == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "auth: admin password or password hash is required")
	}
	return &service{jwt: jwtCfg, admin: adminCfg, now: time.Now}, nil
}

// Login checks the submitted credential against the configured admin account
// and mints a bearer token. Verification always runs even when the username
// does not match, so both failure modes take comparable time.
func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.admin.Username)) == 1
	passwordOK := s.verifyPassword(req.Password)
	if !usernameOK || !passwordOK {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid username or password")
	}

	token, err := pkgauth.MintAccessToken(s.jwt, s.now().UTC(), pkgauth.AccessTokenPayload{
		Username: s.admin.Username,
		Role:     enums.RoleAdmin,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting access token")
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.jwt.Expiration().Seconds()),
	}, nil
}

func (s *service) verifyPassword(password string) bool {
	if s.admin.PasswordHash != "" {
		ok, err := security.VerifyPassword(password, s.admin.PasswordHash)
		return err == nil && ok
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) == 1
}
