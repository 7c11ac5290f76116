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

package transport

import (
	"fmt"
	"net/http"

	"github.com/signet-project/signet-go/pkg/keys"
	"github.com/signet-project/signet-go/pkg/protocol"
	"github.com/signet-project/signet-go/pkg/signer"
)

// SigningTransport is an http.RoundTripper that stamps every outgoing
// request with a Date header (when absent) and a signed Authorization
// header. It wraps any base transport and leaves everything else about
// the request untouched.
type SigningTransport struct {
	login       string
	fingerprint string
	keyPair     *keys.KeyPair
	signer      signer.Signer
	base        http.RoundTripper
}

// NewSigningTransport creates a signing round tripper.
//
// Parameters:
//   - login: account name embedded in keyId
//   - fingerprint: key fingerprint embedded in keyId
//   - keyPair: the RSA key pair used for signing
//   - base: the underlying transport (nil to use http.DefaultTransport)
func NewSigningTransport(login, fingerprint string, keyPair *keys.KeyPair, base http.RoundTripper) (*SigningTransport, error) {
	if login == "" {
		return nil, fmt.Errorf("login must be present")
	}
	if fingerprint == "" {
		return nil, fmt.Errorf("fingerprint must be present")
	}
	if keyPair == nil {
		return nil, fmt.Errorf("key pair must be present")
	}
	if base == nil {
		base = http.DefaultTransport
	}

	s, err := signer.NewDefaultSigner()
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}

	return &SigningTransport{
		login:       login,
		fingerprint: fingerprint,
		keyPair:     keyPair,
		signer:      s,
		base:        base,
	}, nil
}

// RoundTrip signs the request and forwards it to the base transport.
// The incoming request is not modified; a clone carries the Date and
// Authorization headers, per the http.RoundTripper contract.
func (t *SigningTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())

	date := out.Header.Get("Date")
	if date == "" {
		date = protocol.Now()
		out.Header.Set("Date", date)
	}

	header, err := t.signer.CreateAuthorizationHeader(t.login, t.fingerprint, t.keyPair, date)
	if err != nil {
		return nil, fmt.Errorf("sign request: %w", err)
	}
	out.Header.Set("Authorization", header)

	return t.base.RoundTrip(out)
}
