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
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"errors"
	"fmt"
)

// softwareBackend signs and verifies through crypto/rsa. A fresh digest
// is computed per call, so a single value serves any number of
// concurrent operations.
type softwareBackend struct{}

func newSoftwareBackend() (Backend, error) {
	if !crypto.SHA256.Available() {
		return nil, fmt.Errorf("%w: SHA-256 is not linked into this binary", ErrAlgorithmUnavailable)
	}
	return softwareBackend{}, nil
}

func (softwareBackend) Name() string { return "software" }

func (softwareBackend) Sign(priv *rsa.PrivateKey, data []byte) ([]byte, error) {
	if priv == nil {
		return nil, fmt.Errorf("%w: private key is nil", ErrInvalidKey)
	}

	digest := sha256.Sum256(data)
	sig, err := rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA256, digest[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSignatureComputation, err)
	}
	return sig, nil
}

func (softwareBackend) Verify(pub *rsa.PublicKey, data, sig []byte) (bool, error) {
	if pub == nil {
		return false, fmt.Errorf("%w: public key is nil", ErrInvalidKey)
	}

	digest := sha256.Sum256(data)
	if err := rsa.VerifyPKCS1v15(pub, crypto.SHA256, digest[:], sig); err != nil {
		if errors.Is(err, rsa.ErrVerification) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}
	return true, nil
}
