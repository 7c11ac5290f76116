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

// Package sigalg selects and implements the rsa-sha256 signature
// backends.
//
// Two functionally equivalent implementations exist:
//
//   - software: crypto/rsa SignPKCS1v15/VerifyPKCS1v15
//   - accelerated: the RSA operation done as a direct CRT modular
//     exponentiation over math/big
//
// # Selection
//
// Selection happens once, at Signer or Verifier construction:
//
//	sel, err := sigalg.Select(true)
//	if err != nil {
//	    // no backend at all: broken host environment
//	}
//	sig, err := sel.Backend.Sign(priv, data)
//
// The accelerated backend is only attempted when the caller has not
// disabled it and the platform is on the OS and architecture
// allow-lists. If bringing it up fails for any reason the selector
// silently falls back to software; acceleration is a performance
// detail, never a functional one. The Selection value records the
// outcome and the platform signals for diagnostics.
//
// PKCS#1 v1.5 signing is deterministic, so both backends emit identical
// bytes for the same key and data, and signatures cross-verify between
// them.
package sigalg
