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

// Command verify-server serves HTTP on :8080 and authenticates every
// request against a single registered key.
//
// Usage:
//
//	verify-server <key-path>
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/signet-project/signet-go/pkg/keys"
	"github.com/signet-project/signet-go/pkg/server"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <key-path>\n", os.Args[0])
		os.Exit(2)
	}

	keyPair, err := keys.Load(os.Args[1])
	if err != nil {
		log.Fatalf("load key: %v", err)
	}
	registered, err := keyPair.FingerprintMD5()
	if err != nil {
		log.Fatalf("fingerprint key: %v", err)
	}

	lookup := func(login, fingerprint string) (*keys.KeyPair, error) {
		if fingerprint != registered {
			return nil, fmt.Errorf("fingerprint not registered")
		}
		return keyPair, nil
	}

	mw, err := server.NewSignatureAuthMiddleware(lookup)
	if err != nil {
		log.Fatalf("create middleware: %v", err)
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, _ := server.GetIdentityFromContext(r.Context())
		fmt.Fprintf(w, "hello, %s\n", identity.Login)
	})

	log.Println("listening on :8080")
	log.Fatal(http.ListenAndServe(":8080", mw.Wrap(handler)))
}
