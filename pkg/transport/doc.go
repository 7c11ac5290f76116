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

// Package transport plugs request signing into net/http clients.
//
// Wrap any http.Client's transport to have every request signed
// automatically:
//
//	st, err := transport.NewSigningTransport("jdoe", fingerprint, kp, nil)
//	if err != nil {
//	    return err
//	}
//	client := &http.Client{Transport: st}
//
//	resp, err := client.Get("https://api.example.com/jdoe/stor")
//
// A request that already carries a Date header is signed over that
// value; otherwise the transport stamps the current GMT instant first,
// so the signed string and the header the server sees always agree.
package transport
