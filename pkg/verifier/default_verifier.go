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

package verifier

import (
	"fmt"

	"github.com/signet-project/signet-go/pkg/keys"
	"github.com/signet-project/signet-go/pkg/protocol"
	"github.com/signet-project/signet-go/pkg/sigalg"
)

// DefaultVerifier implements Verifier. Like DefaultSigner, backend
// selection runs once at construction and the value is safe for
// concurrent use.
type DefaultVerifier struct {
	selection sigalg.Selection
}

// NewDefaultVerifier creates a verifier with acceleration enabled where
// the platform supports it.
func NewDefaultVerifier() (*DefaultVerifier, error) {
	return NewDefaultVerifierWithOptions(nil)
}

// NewDefaultVerifierWithOptions creates a verifier with custom options.
func NewDefaultVerifierWithOptions(opts *Options) (*DefaultVerifier, error) {
	if opts == nil {
		opts = &Options{}
	}

	selection, err := sigalg.Select(!opts.DisableAcceleration)
	if err != nil {
		return nil, fmt.Errorf("select signature backend: %w", err)
	}
	return &DefaultVerifier{selection: selection}, nil
}

// Selection reports the chosen backend and platform signals.
func (v *DefaultVerifier) Selection() sigalg.Selection {
	return v.selection
}

// Verify checks signature against data under the public key.
func (v *DefaultVerifier) Verify(login, fingerprint string, keyPair *keys.KeyPair, data, signature []byte) (bool, error) {
	if login == "" {
		return false, fmt.Errorf("login must be present")
	}
	if fingerprint == "" {
		return false, fmt.Errorf("fingerprint must be present")
	}
	if keyPair == nil {
		return false, fmt.Errorf("key pair must be present")
	}
	if data == nil {
		return false, fmt.Errorf("data must be present")
	}
	if signature == nil {
		return false, fmt.Errorf("signature must be present")
	}

	ok, err := v.selection.Backend.Verify(keyPair.PublicKey(), data, signature)
	if err != nil {
		return false, fmt.Errorf("verify data: %w", err)
	}
	return ok, nil
}

// VerifyAuthorizationHeader checks a rendered Authorization header
// value against the canonical string rebuilt from date.
func (v *DefaultVerifier) VerifyAuthorizationHeader(keyPair *keys.KeyPair, header, date string) (bool, error) {
	if keyPair == nil {
		return false, fmt.Errorf("key pair must be present")
	}

	signature, err := protocol.ExtractSignature(header)
	if err != nil {
		return false, fmt.Errorf("parse authorization header: %w", err)
	}

	ok, err := v.selection.Backend.Verify(keyPair.PublicKey(), protocol.SigningString(date), signature)
	if err != nil {
		return false, fmt.Errorf("verify authorization header: %w", err)
	}
	return ok, nil
}
