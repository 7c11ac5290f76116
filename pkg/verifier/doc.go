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

// Package verifier checks HTTP Signature Authorization header values.
//
// The receiving side holds the same key pair (or at least the public
// half) and the date the sender signed, typically the request's Date
// header:
//
//	v, err := verifier.NewDefaultVerifier()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, err := v.VerifyAuthorizationHeader(kp, authorization, date)
//
// Three outcomes are possible and deliberately distinct:
//
//   - (true, nil): the signature matches
//   - (false, nil): the header is well-formed but the signature does
//     not match — a failed authentication, not a protocol violation
//   - (false, err): the header is structurally broken
//     (protocol.ErrMalformedHeader) or verification could not run
//     (sigalg.ErrInvalidKey, sigalg.ErrVerificationFailed)
//
// Verify covers raw signed payloads the same way.
package verifier
