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

package sigalg

import (
	"crypto/rsa"
	"errors"
	"runtime"
	"slices"
	"strings"
)

// Backend is one rsa-sha256 signature implementation. Both backends
// produce the same deterministic PKCS#1 v1.5 signatures; a signature
// made by one verifies under the other. Backends hold no per-call
// state and are safe for concurrent use.
type Backend interface {
	// Name identifies the implementation for diagnostics.
	Name() string

	// Sign computes the rsa-sha256 signature of data with priv.
	Sign(priv *rsa.PrivateKey, data []byte) ([]byte, error)

	// Verify checks sig against data under pub. A signature that does
	// not match reports (false, nil); only structural failures return
	// an error.
	Verify(pub *rsa.PublicKey, data, sig []byte) (bool, error)
}

var (
	// ErrAlgorithmUnavailable means neither backend could be
	// initialized. This indicates a broken host environment and is the
	// only error here worth aborting startup over.
	ErrAlgorithmUnavailable = errors.New("no rsa-sha256 backend available")

	// ErrInvalidKey means the key material is missing, structurally
	// invalid or mismatched with the algorithm.
	ErrInvalidKey = errors.New("invalid key")

	// ErrSignatureComputation means signing failed for a reason other
	// than bad input data. Not retryable.
	ErrSignatureComputation = errors.New("signature computation failed")

	// ErrVerificationFailed means verification could not run at all,
	// as opposed to running and not matching.
	ErrVerificationFailed = errors.New("signature verification failed")
)

// Platforms eligible for the accelerated backend.
// Always keep values sorted because we binary search them.
var (
	supportedOS   = []string{"darwin", "linux", "mac os x", "solaris", "sunos"}
	supportedArch = []string{"amd64", "x86_64"}
)

// PlatformSupported reports whether the accelerated backend is eligible
// on the given operating system and architecture. Matching is
// case-insensitive and exact.
func PlatformSupported(goos, goarch string) bool {
	_, osOK := slices.BinarySearch(supportedOS, strings.ToLower(goos))
	_, archOK := slices.BinarySearch(supportedArch, strings.ToLower(goarch))
	return osOK && archOK
}

// Selection records which backend was chosen and the platform signals
// that drove the decision. It is made once per Signer or Verifier and
// is read-only afterwards.
type Selection struct {
	Backend     Backend
	OS          string
	Arch        string
	Accelerated bool
}

// Select chooses a backend for the current platform. When
// preferAccelerated is set and the platform is eligible, the
// accelerated backend is tried first; any failure to bring it up
// silently falls back to the software backend. Only the catastrophic
// absence of the base SHA-256 primitive surfaces as an error.
func Select(preferAccelerated bool) (Selection, error) {
	return selectFor(preferAccelerated, runtime.GOOS, runtime.GOARCH)
}

func selectFor(preferAccelerated bool, goos, goarch string) (Selection, error) {
	sel := Selection{OS: goos, Arch: goarch}

	if preferAccelerated && PlatformSupported(goos, goarch) {
		if backend, err := newAcceleratedBackend(); err == nil {
			sel.Backend = backend
			sel.Accelerated = true
			return sel, nil
		}
		// fall through: acceleration failures are never user-visible
	}

	backend, err := newSoftwareBackend()
	if err != nil {
		return Selection{}, err
	}
	sel.Backend = backend
	return sel, nil
}
