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

package signer

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/signet-project/signet-go/pkg/keys"
)

func benchmarkCreateAuthorizationHeader(b *testing.B, opts *Options) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		b.Fatal(err)
	}
	kp, err := keys.FromPrivateKey(priv)
	if err != nil {
		b.Fatal(err)
	}
	s, err := NewDefaultSignerWithOptions(opts)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.CreateAuthorizationHeader(testLogin, testFingerprint, kp, testDate); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCreateAuthorizationHeader_Accelerated(b *testing.B) {
	benchmarkCreateAuthorizationHeader(b, nil)
}

func BenchmarkCreateAuthorizationHeader_Software(b *testing.B) {
	benchmarkCreateAuthorizationHeader(b, &Options{DisableAcceleration: true})
}
