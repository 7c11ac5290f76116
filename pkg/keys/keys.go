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

package keys

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/ssh"
)

var (
	// ErrKeyNotFound means no key source was given or the path does
	// not exist.
	ErrKeyNotFound = errors.New("key file not found")

	// ErrKeyUnreadable means the key file exists but could not be read.
	ErrKeyUnreadable = errors.New("key file not readable")

	// ErrKeyDecryptionFailed means the key is encrypted and the
	// passphrase is missing or wrong.
	ErrKeyDecryptionFailed = errors.New("key decryption failed")

	// ErrInvalidArgument means a nil key source was passed in.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidKey means the PEM decoded but does not hold a usable
	// RSA key pair.
	ErrInvalidKey = errors.New("invalid key material")
)

// KeyPair holds a matched RSA private/public key pair. It is immutable
// after construction and safe to share across concurrent callers. The
// pair is never logged or rendered into error text by this package.
type KeyPair struct {
	private *rsa.PrivateKey
	public  *rsa.PublicKey
}

// PrivateKey returns the private half of the pair.
func (kp *KeyPair) PrivateKey() *rsa.PrivateKey { return kp.private }

// PublicKey returns the public half of the pair.
func (kp *KeyPair) PublicKey() *rsa.PublicKey { return kp.public }

// FingerprintMD5 returns the legacy colon-separated MD5 fingerprint of
// the public key, e.g. "9f:ab:...". This is the fingerprint form
// embedded in the Authorization header's keyId.
func (kp *KeyPair) FingerprintMD5() (string, error) {
	sshPub, err := ssh.NewPublicKey(kp.public)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return ssh.FingerprintLegacyMD5(sshPub), nil
}

// FromPrivateKey builds a KeyPair from an already-parsed RSA private
// key, validating it first.
func FromPrivateKey(priv *rsa.PrivateKey) (*KeyPair, error) {
	if priv == nil {
		return nil, fmt.Errorf("%w: private key must be present", ErrInvalidArgument)
	}
	if err := priv.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return &KeyPair{private: priv, public: &priv.PublicKey}, nil
}

// Load reads an unencrypted PEM key pair from the file at path.
func Load(path string) (*KeyPair, error) {
	return LoadWithPassphrase(path, nil)
}

// LoadWithPassphrase reads a PEM key pair from the file at path,
// decrypting it with passphrase when the key is encrypted. A nil
// passphrase requires the key to be unencrypted.
func LoadWithPassphrase(path string, passphrase []byte) (*KeyPair, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no key file path specified", ErrKeyNotFound)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no key file available at path %s", ErrKeyNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s", ErrKeyUnreadable, path)
	}

	pemBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: can't read key file from path %s", ErrKeyUnreadable, path)
	}
	return Parse(pemBytes, passphrase)
}

// Read consumes a PEM key pair from r. See Parse for passphrase
// semantics.
func Read(r io.Reader, passphrase []byte) (*KeyPair, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: reader must be present", ErrInvalidArgument)
	}
	pemBytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyUnreadable, err)
	}
	return Parse(pemBytes, passphrase)
}

// ParseString parses a PEM key pair from a string.
func ParseString(pemContent string, passphrase []byte) (*KeyPair, error) {
	return Parse([]byte(pemContent), passphrase)
}

// Parse decodes one PEM-encoded RSA key pair, decrypting with
// passphrase when needed. Supported encodings are PKCS#1, PKCS#8 and
// OpenSSH, with legacy DEK-Info or OpenSSH-format encryption.
//
// An encrypted key with a nil passphrase fails with
// ErrKeyDecryptionFailed. A passphrase supplied for an unencrypted key
// is ignored and the key is decoded directly.
func Parse(pemBytes []byte, passphrase []byte) (*KeyPair, error) {
	if pemBytes == nil {
		return nil, fmt.Errorf("%w: key bytes must be present", ErrInvalidArgument)
	}

	parsed, err := ssh.ParseRawPrivateKey(pemBytes)
	if err != nil {
		var missing *ssh.PassphraseMissingError
		if !errors.As(err, &missing) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		if passphrase == nil {
			return nil, fmt.Errorf("%w: key is encrypted and no passphrase was given", ErrKeyDecryptionFailed)
		}
		parsed, err = ssh.ParseRawPrivateKeyWithPassphrase(pemBytes, passphrase)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyDecryptionFailed, err)
		}
	}

	priv, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key (%T)", ErrInvalidKey, parsed)
	}
	return FromPrivateKey(priv)
}
