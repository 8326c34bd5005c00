/*
Copyright 2025-2026 the Aimall Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package auth issues and verifies the bearer tokens the simulator hands out
// on account registration, and provides the middleware that makes the acting
// principal available to handlers.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/aimall-cloud/commerce/pkg/openapi"
	"github.com/aimall-cloud/commerce/pkg/server/util"
)

var (
	ErrTokenInvalid = errors.New("token invalid")

	ErrNoActor = errors.New("no actor in context")
)

// Claims are the JWT claims carried by an access token.
type Claims struct {
	jwt.RegisteredClaims

	Role openapi.ActorRole `json:"role"`
}

// Actor is the authenticated principal of a request.
type Actor struct {
	ID   uuid.UUID
	Role openapi.ActorRole
}

// Issuer mints and verifies HMAC signed access tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates a token issuer.
func NewIssuer(secret []byte, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: secret,
		ttl:    ttl,
	}
}

// Issue mints a token for the given principal.
func (i *Issuer) Issue(id uuid.UUID, role openapi.ActorRole) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Role: role,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return token, nil
}

// Verify parses and validates a token, returning the acting principal.
func (i *Issuer) Verify(token string) (*Actor, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %s", ErrTokenInvalid, t.Method.Alg())
		}

		return i.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject is not a UUID", ErrTokenInvalid)
	}

	return &Actor{
		ID:   id,
		Role: claims.Role,
	}, nil
}

type contextKey string

const actorContextKey contextKey = "actor"

// FromContext returns the acting principal stored by Middleware.
func FromContext(ctx context.Context) (*Actor, error) {
	actor, ok := ctx.Value(actorContextKey).(*Actor)
	if !ok {
		return nil, ErrNoActor
	}

	return actor, nil
}

// Middleware parses an optional bearer token and stores the acting principal
// in the request context. Requests with a malformed or invalid token are
// rejected, requests without a token pass through anonymously so public
// endpoints keep working.
func (i *Issuer) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			util.WriteError(w, http.StatusUnauthorized, "unauthorized", "malformed authorization header")
			return
		}

		actor, err := i.Verify(token)
		if err != nil {
			util.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired access token")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorContextKey, actor)))
	})
}

// Require returns the acting principal or writes a 401 and reports false.
func Require(w http.ResponseWriter, r *http.Request) (*Actor, bool) {
	actor, err := FromContext(r.Context())
	if err != nil {
		util.WriteError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return nil, false
	}

	return actor, true
}

// RequireRole returns the acting principal if it holds the given role. A
// missing token yields 401, a mismatched role 403.
func RequireRole(w http.ResponseWriter, r *http.Request, role openapi.ActorRole) (*Actor, bool) {
	actor, ok := Require(w, r)
	if !ok {
		return nil, false
	}

	if actor.Role != role {
		util.WriteError(w, http.StatusForbidden, "forbidden", fmt.Sprintf("operation requires the %s role", role))
		return nil, false
	}

	return actor, true
}
