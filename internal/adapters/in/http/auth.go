package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"agrirent/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

var ErrMissingBearerToken = errors.New("missing bearer token")

// Claims identify the caller: Subject is the user id, Role the marketplace role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator validates HS256 bearer tokens and turns them into actors.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// IssueToken signs a token for actor valid for ttl. Used by tooling and tests;
// production tokens come from the identity service sharing the secret.
func (a *Authenticator) IssueToken(actor kernel.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: string(actor.Role()),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken validates the signature and expiry and returns the actor.
func (a *Authenticator) ParseToken(raw string) (kernel.Actor, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return kernel.Actor{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return kernel.Actor{}, errors.New("invalid token")
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("subject: %w", err)
	}
	return kernel.NewActor(id, kernel.Role(claims.Role))
}

// Middleware rejects requests without a valid bearer token with 401 and
// stores the actor for the route handlers.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, found := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
			if !found || raw == "" {
				return unauthorized(c, ErrMissingBearerToken)
			}
			actor, err := a.ParseToken(raw)
			if err != nil {
				return unauthorized(c, err)
			}
			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context, err error) error {
	return c.JSON(http.StatusUnauthorized, Error{
		Code:    "UNAUTHORIZED",
		Message: err.Error(),
	})
}

func actorFrom(c echo.Context) (kernel.Actor, error) {
	actor, ok := c.Get(actorKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, kernel.ErrActorIsNotConstructed
	}
	return actor, nil
}
