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
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	// AuthorizationHeaderTemplate is the template for the Authorization
	// header value. Placeholders are login, key fingerprint and the
	// standard-base64 signature, in that order.
	AuthorizationHeaderTemplate = `Signature keyId="/%s/keys/%s",algorithm="rsa-sha256",signature="%s"`

	// SigningStringTemplate is the template for the signed string in
	// header mode. The placeholder is the date string, taken literally.
	SigningStringTemplate = "date: %s"

	// SignatureMarker is the prefix of the signature component inside
	// an Authorization header value.
	SignatureMarker = `signature="`

	// KeyIDMarker is the prefix of the keyId component inside an
	// Authorization header value.
	KeyIDMarker = `keyId="`

	// AlgorithmLabel is the signature algorithm label on the wire.
	AlgorithmLabel = "rsa-sha256"
)

// ErrMalformedHeader reports an Authorization header value that does not
// follow the wire format. It is distinct from a signature that simply
// does not verify.
var ErrMalformedHeader = errors.New("malformed authorization header")

// FormatAuthorizationHeader renders the Authorization header value for
// the given login, key fingerprint and raw signature bytes.
func FormatAuthorizationHeader(login, fingerprint string, signature []byte) string {
	encoded := base64.StdEncoding.EncodeToString(signature)
	return fmt.Sprintf(AuthorizationHeaderTemplate, login, fingerprint, encoded)
}

// SigningString builds the canonical byte sequence signed in header
// mode: "date: " followed by the date string, byte for byte.
func SigningString(date string) []byte {
	return []byte(fmt.Sprintf(SigningStringTemplate, date))
}

// ExtractSignature locates the signature component inside a previously
// rendered Authorization header value and returns the decoded signature
// bytes. The component runs from the signature marker to the final
// closing quote of the header. A missing marker or an undecodable
// payload is an ErrMalformedHeader.
func ExtractSignature(header string) ([]byte, error) {
	start := strings.Index(header, SignatureMarker)
	if start == -1 {
		return nil, fmt.Errorf("%w: no %s component", ErrMalformedHeader, SignatureMarker)
	}
	start += len(SignatureMarker)

	end := strings.LastIndex(header, `"`)
	if end < start {
		return nil, fmt.Errorf("%w: signature component is not quote-terminated", ErrMalformedHeader)
	}

	raw, err := base64.StdEncoding.DecodeString(header[start:end])
	if err != nil {
		return nil, fmt.Errorf("%w: signature is not valid base64", ErrMalformedHeader)
	}
	return raw, nil
}

// ParseKeyID extracts the login and key fingerprint from the keyId
// component of an Authorization header value. The component has the
// shape keyId="/<login>/keys/<fingerprint>".
func ParseKeyID(header string) (login, fingerprint string, err error) {
	start := strings.Index(header, KeyIDMarker)
	if start == -1 {
		return "", "", fmt.Errorf("%w: no %s component", ErrMalformedHeader, KeyIDMarker)
	}
	start += len(KeyIDMarker)

	end := strings.Index(header[start:], `"`)
	if end == -1 {
		return "", "", fmt.Errorf("%w: keyId component is not quote-terminated", ErrMalformedHeader)
	}

	keyID := header[start : start+end]
	if !strings.HasPrefix(keyID, "/") {
		return "", "", fmt.Errorf("%w: keyId %q does not start with /", ErrMalformedHeader, keyID)
	}

	login, fingerprint, found := strings.Cut(keyID[1:], "/keys/")
	if !found || login == "" || fingerprint == "" {
		return "", "", fmt.Errorf("%w: keyId %q is not of the form /login/keys/fingerprint", ErrMalformedHeader, keyID)
	}
	return login, fingerprint, nil
}
