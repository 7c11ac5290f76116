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

// Package server provides HTTP middleware that authenticates requests
// by their signed Authorization header.
//
//	mw, err := server.NewSignatureAuthMiddleware(lookupKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	http.Handle("/", mw.Wrap(handler))
//
// The middleware parses the keyId out of the Authorization value,
// resolves the registered key pair through the caller-supplied
// KeyLookup, and verifies the signature against the request's Date
// header. On success the handler can recover who signed:
//
//	identity, ok := server.GetIdentityFromContext(r.Context())
//
// Rejections go through a replaceable ErrorHandler; the default
// responds 401. Replay protection and clock-skew policy are left to
// the application, which sees the Date header and can bound it.
package server
