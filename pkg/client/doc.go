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

// Package client provides an HTTP client with automatic request
// signing.
//
//	c, err := client.NewClient("jdoe", fingerprint, kp, nil)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := c.Get(ctx, "https://api.example.com/jdoe/stor")
//
// Each request gets a Date header (if the caller did not set one) and
// an Authorization header signed over that date. Callers who already
// manage their own http.Client should use package transport instead
// and keep their client.
package client
