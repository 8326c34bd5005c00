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

// Package server assembles the commerce API simulator: router, middleware,
// handlers and their dependencies. The simulator exists so the API test
// suites have a deployment to run against when no live one is configured;
// it is not the production backend.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/aimall-cloud/commerce/pkg/openapi"
	"github.com/aimall-cloud/commerce/pkg/payment"
	"github.com/aimall-cloud/commerce/pkg/server/auth"
	"github.com/aimall-cloud/commerce/pkg/server/coupon"
	"github.com/aimall-cloud/commerce/pkg/server/handler"
	"github.com/aimall-cloud/commerce/pkg/server/store"
)

// Options allows behaviour to be defined on the CLI.
type Options struct {
	// ListenAddress is the host:port to serve on.
	ListenAddress string

	// TokenSecret signs access tokens.
	TokenSecret string

	// TokenTTL bounds access token lifetimes.
	TokenTTL time.Duration

	// PaymentGatewayURL points at an external payment gateway. Empty
	// selects the in-process always-approve gateway.
	PaymentGatewayURL string
}

// defaultTokenTTL applies when no token lifetime is configured.
const defaultTokenTTL = 24 * time.Hour

// AddFlags registers the options with a flag set.
func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "listen-address", ":8080", "Address to listen on.")
	f.StringVar(&o.TokenSecret, "token-secret", "", "HMAC secret used to sign access tokens, generated when empty.")
	f.DurationVar(&o.TokenTTL, "token-ttl", defaultTokenTTL, "Access token lifetime.")
	f.StringVar(&o.PaymentGatewayURL, "payment-gateway-url", "", "External payment gateway base URL, in-process approval when empty.")
}

// Server is a runnable commerce API simulator.
type Server struct {
	options *Options
	logger  *zap.Logger

	issuer  *auth.Issuer
	handler *handler.Handler

	adminID    uuid.UUID
	adminToken string
}

// New assembles a simulator. An admin principal is bootstrapped so coupon
// administration is reachable without an out-of-band account system.
func New(options *Options, logger *zap.Logger) (*Server, error) {
	secret := options.TokenSecret
	if secret == "" {
		secret = uuid.New().String()
	}

	ttl := options.TokenTTL
	if ttl == 0 {
		ttl = defaultTokenTTL
	}

	issuer := auth.NewIssuer([]byte(secret), ttl)

	var gateway payment.Gateway = payment.Approved{}

	if options.PaymentGatewayURL != "" {
		gateway = payment.NewClient(options.PaymentGatewayURL)
	}

	adminID := uuid.New()

	adminToken, err := issuer.Issue(adminID, openapi.ActorRoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("issuing admin token: %w", err)
	}

	return &Server{
		options:    options,
		logger:     logger,
		issuer:     issuer,
		handler:    handler.New(store.New(), issuer, coupon.NewRegistry(), gateway),
		adminID:    adminID,
		adminToken: adminToken,
	}, nil
}

// AdminToken returns the bootstrapped admin bearer token.
func (s *Server) AdminToken() string {
	return s.adminToken
}

// logging emits one structured line per request.
func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(wrapped, r)

		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", wrapped.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// Handler builds the full middleware and routing stack.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.Recoverer)
	router.Use(s.logging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Traceparent", "Tracestate"},
	}))
	router.Use(s.issuer.Middleware)

	s.handler.Register(router)

	return router
}

// Run serves until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.options.ListenAddress,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	s.logger.Info("service listening", zap.String("address", s.options.ListenAddress))

	select {
	case err := <-errCh:
		return fmt.Errorf("server exited: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("shutting down: %w", err)
	}

	return nil
}
