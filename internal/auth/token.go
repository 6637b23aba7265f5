package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/aryasaumitra/projecthub-backend/internal"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type claims struct {
	TokenType string `json:"token_type"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	IsStaff   bool   `json:"is_staff"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies signed access and refresh tokens.
type Tokens struct {
	key        []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// Config defines the settings used by Tokens.
type Config struct {
	SigningKey []byte
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// NewTokens instantiates Tokens.
func NewTokens(conf Config) *Tokens {
	return &Tokens{
		key:        conf.SigningKey,
		issuer:     conf.Issuer,
		accessTTL:  conf.AccessTTL,
		refreshTTL: conf.RefreshTTL,
		now:        time.Now,
	}
}

// Pair issues both an access and a refresh token for p.
func (t *Tokens) Pair(p internal.Principal) (internal.TokenPair, error) {
	access, err := t.sign(p, tokenTypeAccess, t.accessTTL)
	if err != nil {
		return internal.TokenPair{}, err
	}

	refresh, err := t.sign(p, tokenTypeRefresh, t.refreshTTL)
	if err != nil {
		return internal.TokenPair{}, err
	}

	return internal.TokenPair{
		Access:  access,
		Refresh: refresh,
	}, nil
}

// Access issues a new access token for p.
func (t *Tokens) Access(p internal.Principal) (string, error) {
	return t.sign(p, tokenTypeAccess, t.accessTTL)
}

// VerifyAccess returns the identity encoded in an access token.
func (t *Tokens) VerifyAccess(token string) (internal.Principal, error) {
	return t.verify(token, tokenTypeAccess)
}

// VerifyRefresh returns the identity encoded in a refresh token.
func (t *Tokens) VerifyRefresh(token string) (internal.Principal, error) {
	return t.verify(token, tokenTypeRefresh)
}

func (t *Tokens) sign(p internal.Principal, tokenType string, ttl time.Duration) (string, error) {
	now := t.now()

	c := claims{
		TokenType: tokenType,
		UserID:    p.UserID,
		Username:  p.Username,
		IsStaff:   p.IsStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    t.issuer,
			Subject:   strconv.FormatInt(p.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	res, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.key)
	if err != nil {
		return "", internal.WrapErrorf(err, internal.ErrorCodeUnknown, "token.SignedString")
	}

	return res, nil
}

func (t *Tokens) verify(token, tokenType string) (internal.Principal, error) {
	var c claims

	_, err := jwt.ParseWithClaims(token, &c,
		func(*jwt.Token) (interface{}, error) {
			return t.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		msg := "token is invalid"
		if errors.Is(err, jwt.ErrTokenExpired) {
			msg = "token is expired"
		}

		return internal.Principal{}, internal.WrapErrorf(err, internal.ErrorCodeUnauthenticated, msg)
	}

	if c.TokenType != tokenType {
		return internal.Principal{}, internal.NewErrorf(internal.ErrorCodeUnauthenticated, "token has wrong type")
	}

	return internal.Principal{
		UserID:   c.UserID,
		Username: c.Username,
		IsStaff:  c.IsStaff,
	}, nil
}
