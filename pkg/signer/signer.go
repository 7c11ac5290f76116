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
	"github.com/signet-project/signet-go/pkg/keys"
	"github.com/signet-project/signet-go/pkg/sigalg"
)

// Signer produces rsa-sha256 signatures and Authorization header values
type Signer interface {
	// Sign computes the raw signature of data with the key pair's
	// private key. data may be zero-length but not nil.
	Sign(login, fingerprint string, keyPair *keys.KeyPair, data []byte) ([]byte, error)

	// CreateAuthorizationHeader signs the canonical "date: <date>"
	// string and renders the full Authorization header value. An empty
	// date means the current instant.
	CreateAuthorizationHeader(login, fingerprint string, keyPair *keys.KeyPair, date string) (string, error)

	// Selection reports which signature backend this signer uses and
	// the platform signals that drove the choice.
	Selection() sigalg.Selection
}

// Options controls signer construction
type Options struct {
	// DisableAcceleration forces the software backend even on
	// platforms eligible for the accelerated one.
	DisableAcceleration bool
}
