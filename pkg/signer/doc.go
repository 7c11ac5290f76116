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

// Package signer produces HTTP Signature Authorization header values.
//
// # Signing a request date
//
// Construct one Signer and reuse it; backend selection runs once, at
// construction:
//
//	s, err := signer.NewDefaultSigner()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	kp, _ := keys.Load("/home/jdoe/.ssh/id_rsa")
//	header, err := s.CreateAuthorizationHeader("jdoe", "aa:bb:cc", kp, "")
//
// The returned value goes verbatim into the Authorization field. The
// empty date asks the signer to stamp the current GMT instant; pass the
// request's actual Date header value instead when the transport sets
// one, since the verifier recomputes the signed string from that value.
//
// # Signing arbitrary payloads
//
// Sign covers the general case of signing opaque bytes, for request
// payloads other than the date header:
//
//	sig, err := s.Sign("jdoe", "aa:bb:cc", kp, body)
//
// Signing is deterministic: rsa-sha256 uses PKCS#1 v1.5 padding, so
// the same key and data always produce the same signature, whichever
// backend was selected.
//
// # Errors
//
// Empty login or fingerprint, a nil key pair and nil data are caller
// errors. Bad key material surfaces sigalg.ErrInvalidKey; internal
// crypto failures surface sigalg.ErrSignatureComputation. Neither is
// retryable.
package signer
