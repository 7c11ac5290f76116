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

// Command sign-request loads an RSA key and prints a signed
// Authorization header value for a given login.
//
// Usage:
//
//	sign-request <login> <key-path>
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/signet-project/signet-go/pkg/keys"
	"github.com/signet-project/signet-go/pkg/protocol"
	"github.com/signet-project/signet-go/pkg/signer"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <login> <key-path>\n", os.Args[0])
		os.Exit(2)
	}
	login, keyPath := os.Args[1], os.Args[2]

	keyPair, err := keys.Load(keyPath)
	if err != nil {
		log.Fatalf("load key: %v", err)
	}

	fingerprint, err := keyPair.FingerprintMD5()
	if err != nil {
		log.Fatalf("fingerprint key: %v", err)
	}

	s, err := signer.NewDefaultSigner()
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	sel := s.Selection()
	log.Printf("backend: %s (os=%s arch=%s accelerated=%v)",
		sel.Backend.Name(), sel.OS, sel.Arch, sel.Accelerated)

	date := protocol.Now()
	header, err := s.CreateAuthorizationHeader(login, fingerprint, keyPair, date)
	if err != nil {
		log.Fatalf("sign: %v", err)
	}

	fmt.Printf("Date: %s\n", date)
	fmt.Printf("Authorization: %s\n", header)
}
