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
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
)

// sha256DigestInfo is the DER encoding of the DigestInfo structure for
// SHA-256, prepended to the digest inside the PKCS#1 v1.5 padding.
var sha256DigestInfo = []byte{
	0x30, 0x31, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01,
	0x65, 0x03, 0x04, 0x02, 0x01, 0x05, 0x00, 0x04, 0x20,
}

// acceleratedBackend performs the RSA operation as a direct modular
// exponentiation over math/big, using the CRT parameters carried by the
// private key. It produces the same bytes as the software backend for
// every (key, data) pair.
type acceleratedBackend struct{}

// newAcceleratedBackend runs a known-answer check of the modular
// exponentiation routine before handing the backend out. A failure here
// is swallowed by the selector, which falls back to software.
func newAcceleratedBackend() (Backend, error) {
	got := new(big.Int).Exp(big.NewInt(4), big.NewInt(13), big.NewInt(497))
	if got.Cmp(big.NewInt(445)) != 0 {
		return nil, fmt.Errorf("modpow self-test failed: got %s, want 445", got)
	}
	return acceleratedBackend{}, nil
}

func (acceleratedBackend) Name() string { return "accelerated" }

func (acceleratedBackend) Sign(priv *rsa.PrivateKey, data []byte) ([]byte, error) {
	if priv == nil || priv.N == nil || priv.D == nil {
		return nil, fmt.Errorf("%w: private key is missing RSA parameters", ErrInvalidKey)
	}

	k := priv.Size()
	em, err := encodePKCS1v15SHA256(k, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSignatureComputation, err)
	}

	s := modExp(priv, new(big.Int).SetBytes(em))
	sig := make([]byte, k)
	s.FillBytes(sig)
	return sig, nil
}

func (acceleratedBackend) Verify(pub *rsa.PublicKey, data, sig []byte) (bool, error) {
	if pub == nil || pub.N == nil {
		return false, fmt.Errorf("%w: public key is missing RSA parameters", ErrInvalidKey)
	}

	k := pub.Size()
	if len(sig) != k {
		return false, nil
	}

	s := new(big.Int).SetBytes(sig)
	if s.Cmp(pub.N) >= 0 {
		return false, nil
	}

	m := new(big.Int).Exp(s, big.NewInt(int64(pub.E)), pub.N)
	em := make([]byte, k)
	m.FillBytes(em)

	expected, err := encodePKCS1v15SHA256(k, data)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}
	return subtle.ConstantTimeCompare(em, expected) == 1, nil
}

// encodePKCS1v15SHA256 builds the EMSA-PKCS1-v1_5 encoding of the
// SHA-256 digest of data for a modulus of k bytes:
//
//	0x00 0x01 <0xff padding> 0x00 <DigestInfo> <digest>
func encodePKCS1v15SHA256(k int, data []byte) ([]byte, error) {
	digest := sha256.Sum256(data)
	t := len(sha256DigestInfo) + sha256.Size
	if k < t+11 {
		return nil, errors.New("rsa key too small for a SHA-256 signature")
	}

	em := make([]byte, k)
	em[1] = 0x01
	for i := 2; i < k-t-1; i++ {
		em[i] = 0xff
	}
	copy(em[k-t:], sha256DigestInfo)
	copy(em[k-sha256.Size:], digest[:])
	return em, nil
}

// modExp computes c^d mod n, taking the CRT shortcut when the key
// carries precomputed two-prime parameters.
func modExp(priv *rsa.PrivateKey, c *big.Int) *big.Int {
	pre := &priv.Precomputed
	if pre.Dp == nil || len(priv.Primes) != 2 {
		return new(big.Int).Exp(c, priv.D, priv.N)
	}

	p, q := priv.Primes[0], priv.Primes[1]
	m1 := new(big.Int).Exp(new(big.Int).Mod(c, p), pre.Dp, p)
	m2 := new(big.Int).Exp(new(big.Int).Mod(c, q), pre.Dq, q)

	h := new(big.Int).Sub(m1, m2)
	h.Mul(h, pre.Qinv)
	h.Mod(h, p)
	h.Mul(h, q)
	return h.Add(h, m2)
}
