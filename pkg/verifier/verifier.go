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
	"github.com/signet-project/signet-go/pkg/keys"
	"github.com/signet-project/signet-go/pkg/sigalg"
)

// Verifier checks rsa-sha256 signatures and Authorization header values
type Verifier interface {
	// Verify checks signature against data under the key pair's public
	// key. A signature that merely does not match reports (false, nil);
	// errors are reserved for structural failures.
	Verify(login, fingerprint string, keyPair *keys.KeyPair, data, signature []byte) (bool, error)

	// VerifyAuthorizationHeader extracts the signature from a rendered
	// Authorization header value and checks it against the canonical
	// string rebuilt from date. The date comes from the transport (the
	// HTTP Date header), not from the Authorization value, which
	// carries no date of its own. A header without the wire format's
	// signature component fails with protocol.ErrMalformedHeader.
	VerifyAuthorizationHeader(keyPair *keys.KeyPair, header, date string) (bool, error)

	// Selection reports which signature backend this verifier uses.
	Selection() sigalg.Selection
}

// Options controls verifier construction
type Options struct {
	// DisableAcceleration forces the software backend.
	DisableAcceleration bool
}
