// Copyright (C) 2025 Signet Project
//
// This file is part of signet-go.
//
// signet-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// signet-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with signet-go.  If not, see <https://www.gnu.org/licenses/>.

package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/signet-project/signet-go/pkg/keys"
	"github.com/signet-project/signet-go/pkg/protocol"
	"github.com/signet-project/signet-go/pkg/verifier"
)

type contextKey string

const identityKey contextKey = "signature_identity"

// Identity names the caller a verified request was signed by.
type Identity struct {
	Login       string
	Fingerprint string
}

// ErrorHandler handles verification errors
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// KeyLookup resolves the key pair registered for a login and
// fingerprint. Returning an error rejects the request.
type KeyLookup func(login, fingerprint string) (*keys.KeyPair, error)

// SignatureAuthMiddleware provides HTTP middleware that authenticates
// requests by their signed Authorization header.
type SignatureAuthMiddleware struct {
	lookup       KeyLookup
	verifier     verifier.Verifier
	errorHandler ErrorHandler
	optional     bool
}

// NewSignatureAuthMiddleware creates middleware with a default verifier
func NewSignatureAuthMiddleware(lookup KeyLookup) (*SignatureAuthMiddleware, error) {
	if lookup == nil {
		return nil, fmt.Errorf("key lookup must be present")
	}

	v, err := verifier.NewDefaultVerifier()
	if err != nil {
		return nil, fmt.Errorf("create verifier: %w", err)
	}
	return NewSignatureAuthMiddlewareWithVerifier(lookup, v)
}

// NewSignatureAuthMiddlewareWithVerifier creates middleware with a
// custom verifier
func NewSignatureAuthMiddlewareWithVerifier(lookup KeyLookup, v verifier.Verifier) (*SignatureAuthMiddleware, error) {
	if lookup == nil {
		return nil, fmt.Errorf("key lookup must be present")
	}
	if v == nil {
		return nil, fmt.Errorf("verifier must be present")
	}

	return &SignatureAuthMiddleware{
		lookup:       lookup,
		verifier:     v,
		errorHandler: defaultErrorHandler,
	}, nil
}

// SetErrorHandler sets a custom error handler
func (m *SignatureAuthMiddleware) SetErrorHandler(handler ErrorHandler) {
	m.errorHandler = handler
}

// SetOptional sets whether signature verification is optional.
// If true, requests without an Authorization header pass through
// without an Identity in context.
func (m *SignatureAuthMiddleware) SetOptional(optional bool) {
	m.optional = optional
}

// Wrap wraps an HTTP handler with signature authentication
func (m *SignatureAuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip verification for OPTIONS requests (CORS preflight)
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		authorization := r.Header.Get("Authorization")
		if authorization == "" {
			if m.optional {
				next.ServeHTTP(w, r)
				return
			}
			m.errorHandler(w, r, fmt.Errorf("missing Authorization header"))
			return
		}

		date := r.Header.Get("Date")
		if date == "" {
			m.errorHandler(w, r, fmt.Errorf("missing Date header"))
			return
		}

		login, fingerprint, err := protocol.ParseKeyID(authorization)
		if err != nil {
			m.errorHandler(w, r, fmt.Errorf("parse keyId: %w", err))
			return
		}

		keyPair, err := m.lookup(login, fingerprint)
		if err != nil {
			m.errorHandler(w, r, fmt.Errorf("unknown key %s for %s: %w", fingerprint, login, err))
			return
		}

		ok, err := m.verifier.VerifyAuthorizationHeader(keyPair, authorization, date)
		if err != nil {
			m.errorHandler(w, r, fmt.Errorf("signature verification failed: %w", err))
			return
		}
		if !ok {
			m.errorHandler(w, r, fmt.Errorf("signature does not match"))
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, Identity{
			Login:       login,
			Fingerprint: fingerprint,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentityFromContext extracts the verified caller identity from a
// request context
func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

// defaultErrorHandler is the default error handler
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, fmt.Sprintf("Unauthorized: %s", err.Error()), http.StatusUnauthorized)
}
