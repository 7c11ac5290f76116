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

// Package protocol defines the wire format of the HTTP Signature
// authentication scheme.
//
// The scheme places a single value into the Authorization header:
//
//	Signature keyId="/jdoe/keys/aa:bb:cc",algorithm="rsa-sha256",signature="MEUCIQ..."
//
// The signature covers the canonical signing string
//
//	date: Thu Jan 1 00:00:00 1970 GMT
//
// where the date portion is the literal value of the request's Date
// header. The header itself carries no date; verifiers are handed the
// date out of band and recompute the signing string from it. The date
// string is treated as opaque text and is never re-parsed into a
// calendar value.
//
// Interoperability depends on byte-exact reproduction of the templates
// in this package, so nothing here trims, folds or re-encodes the
// caller's inputs.
package protocol
