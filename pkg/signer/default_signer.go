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

package signer

import (
	"fmt"

	"github.com/signet-project/signet-go/pkg/keys"
	"github.com/signet-project/signet-go/pkg/protocol"
	"github.com/signet-project/signet-go/pkg/sigalg"
)

// DefaultSigner implements Signer. The backend is chosen once at
// construction; the value is then safe for concurrent use because the
// backends keep no per-call state.
type DefaultSigner struct {
	selection sigalg.Selection
}

// NewDefaultSigner creates a signer with acceleration enabled where the
// platform supports it.
func NewDefaultSigner() (*DefaultSigner, error) {
	return NewDefaultSignerWithOptions(nil)
}

// NewDefaultSignerWithOptions creates a signer with custom options. A
// nil opts behaves like NewDefaultSigner. The only error condition is
// sigalg.ErrAlgorithmUnavailable.
func NewDefaultSignerWithOptions(opts *Options) (*DefaultSigner, error) {
	if opts == nil {
		opts = &Options{}
	}

	selection, err := sigalg.Select(!opts.DisableAcceleration)
	if err != nil {
		return nil, fmt.Errorf("select signature backend: %w", err)
	}
	return &DefaultSigner{selection: selection}, nil
}

// Selection reports the chosen backend and platform signals.
func (s *DefaultSigner) Selection() sigalg.Selection {
	return s.selection
}

// Sign computes the raw rsa-sha256 signature of data.
func (s *DefaultSigner) Sign(login, fingerprint string, keyPair *keys.KeyPair, data []byte) ([]byte, error) {
	if login == "" {
		return nil, fmt.Errorf("login must be present")
	}
	if fingerprint == "" {
		return nil, fmt.Errorf("fingerprint must be present")
	}
	if keyPair == nil {
		return nil, fmt.Errorf("key pair must be present")
	}
	if data == nil {
		return nil, fmt.Errorf("data must be present")
	}

	sig, err := s.selection.Backend.Sign(keyPair.PrivateKey(), data)
	if err != nil {
		return nil, fmt.Errorf("sign data: %w", err)
	}
	return sig, nil
}

// CreateAuthorizationHeader signs "date: <date>" and renders the
// Authorization header value. An empty date uses the current instant in
// GMT.
func (s *DefaultSigner) CreateAuthorizationHeader(login, fingerprint string, keyPair *keys.KeyPair, date string) (string, error) {
	if date == "" {
		date = protocol.Now()
	}

	sig, err := s.Sign(login, fingerprint, keyPair, protocol.SigningString(date))
	if err != nil {
		return "", err
	}
	return protocol.FormatAuthorizationHeader(login, fingerprint, sig), nil
}
