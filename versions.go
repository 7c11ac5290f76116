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

// Package signet provides version information for signet-go.
package signet

const (
	// Version is the current version of signet-go
	Version = "1.0.0"

	// SignatureSpecVersion is the HTTP Signatures draft this library implements
	// See: https://tools.ietf.org/html/draft-cavage-http-signatures-05
	SignatureSpecVersion = "draft-cavage-http-signatures-05"

	// DefaultAlgorithm is the signature algorithm label used on the wire
	DefaultAlgorithm = "rsa-sha256"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	SignetVersion        string
	SignatureSpecVersion string
	DefaultAlgorithm     string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		SignetVersion:        Version,
		SignatureSpecVersion: SignatureSpecVersion,
		DefaultAlgorithm:     DefaultAlgorithm,
	}
}
