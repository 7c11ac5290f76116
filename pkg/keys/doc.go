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

// Package keys loads RSA key material for request signing.
//
// A key pair comes from one PEM object, read from a file, a string, a
// byte slice or an io.Reader:
//
//	kp, err := keys.Load("/home/jdoe/.ssh/id_rsa")
//	if err != nil {
//	    return err
//	}
//	fp, _ := kp.FingerprintMD5()
//
// Encrypted keys take a passphrase:
//
//	kp, err := keys.LoadWithPassphrase(path, []byte("secret"))
//
// A wrong passphrase fails with ErrKeyDecryptionFailed and never
// produces a partially-decoded pair. Supplying a passphrase for an
// unencrypted key is allowed; the passphrase is simply unused. The
// loaded pair is read-only and safe to cache and share; callers
// typically load once per process.
package keys
