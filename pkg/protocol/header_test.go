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

package protocol

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAuthorizationHeader(t *testing.T) {
	header := FormatAuthorizationHeader("jdoe", "aa:bb:cc", []byte("raw-signature"))

	assert.Equal(t,
		`Signature keyId="/jdoe/keys/aa:bb:cc",algorithm="rsa-sha256",signature="cmF3LXNpZ25hdHVyZQ=="`,
		header)

	// The rendered value must always match the fixed template shape
	pattern := regexp.MustCompile(`^Signature keyId="/[^"]+/keys/[^"]+",algorithm="rsa-sha256",signature="[A-Za-z0-9+/=]+"$`)
	assert.Regexp(t, pattern, header)
}

func TestSigningString(t *testing.T) {
	assert.Equal(t, []byte("date: Thu Jan 1 00:00:00 1970 GMT"),
		SigningString("Thu Jan 1 00:00:00 1970 GMT"))

	// The date is taken literally, no trimming or re-formatting
	assert.Equal(t, []byte("date:  padded "), SigningString(" padded "))
	assert.Equal(t, []byte("date: "), SigningString(""))
}

func TestExtractSignature_RoundTrip(t *testing.T) {
	sig := []byte{0x01, 0x02, 0xfe, 0xff}
	header := FormatAuthorizationHeader("jdoe", "aa:bb:cc", sig)

	got, err := ExtractSignature(header)
	require.NoError(t, err)
	assert.Equal(t, sig, got)
}

func TestExtractSignature_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing marker", `Signature keyId="/jdoe/keys/aa:bb:cc",algorithm="rsa-sha256"`},
		{"empty header", ""},
		{"invalid base64", `Signature keyId="/jdoe/keys/aa:bb:cc",algorithm="rsa-sha256",signature="!!not-base64!!"`},
		{"unterminated signature", `signature="`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractSignature(tt.header)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedHeader)
		})
	}
}

func TestParseKeyID(t *testing.T) {
	header := FormatAuthorizationHeader("jdoe", "aa:bb:cc", []byte("sig"))

	login, fingerprint, err := ParseKeyID(header)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", login)
	assert.Equal(t, "aa:bb:cc", fingerprint)
}

func TestParseKeyID_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing keyId", `Signature algorithm="rsa-sha256",signature="AAAA"`},
		{"no leading slash", `Signature keyId="jdoe/keys/aa:bb:cc"`},
		{"missing keys segment", `Signature keyId="/jdoe/aa:bb:cc"`},
		{"empty login", `Signature keyId="//keys/aa:bb:cc"`},
		{"empty fingerprint", `Signature keyId="/jdoe/keys/"`},
		{"unterminated keyId", `Signature keyId="/jdoe/keys/aa:bb:cc`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseKeyID(tt.header)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedHeader)
		})
	}
}
