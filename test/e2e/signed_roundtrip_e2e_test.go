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

package e2e

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signet-project/signet-go/pkg/client"
	"github.com/signet-project/signet-go/pkg/keys"
	"github.com/signet-project/signet-go/pkg/server"
	"github.com/signet-project/signet-go/pkg/transport"
)

const testLogin = "jdoe"

func generateKeyPair(t *testing.T) (*keys.KeyPair, string) {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	kp, err := keys.FromPrivateKey(priv)
	require.NoError(t, err)
	fp, err := kp.FingerprintMD5()
	require.NoError(t, err)
	return kp, fp
}

func authServer(t *testing.T, kp *keys.KeyPair, fp string) *httptest.Server {
	t.Helper()

	lookup := func(login, fingerprint string) (*keys.KeyPair, error) {
		if login != testLogin || fingerprint != fp {
			return nil, fmt.Errorf("key not registered")
		}
		return kp, nil
	}
	mw, err := server.NewSignatureAuthMiddleware(lookup)
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := server.GetIdentityFromContext(r.Context())
		require.True(t, ok)
		fmt.Fprintf(w, "hello, %s", identity.Login)
	})

	ts := httptest.NewServer(mw.Wrap(handler))
	t.Cleanup(ts.Close)
	return ts
}

// TestE2E_ClientToMiddleware exercises the full cycle: signing client,
// wire transfer, keyId parsing, key lookup and verification.
func TestE2E_ClientToMiddleware(t *testing.T) {
	kp, fp := generateKeyPair(t)
	ts := authServer(t, kp, fp)

	c, err := client.NewClient(testLogin, fp, kp, nil)
	require.NoError(t, err)

	resp, err := c.Get(context.Background(), ts.URL+"/stor")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello, jdoe", string(body))
}

// TestE2E_TransportToMiddleware does the same through a plain
// http.Client carrying the signing round tripper.
func TestE2E_TransportToMiddleware(t *testing.T) {
	kp, fp := generateKeyPair(t)
	ts := authServer(t, kp, fp)

	st, err := transport.NewSigningTransport(testLogin, fp, kp, nil)
	require.NoError(t, err)
	httpClient := &http.Client{Transport: st}

	resp, err := httpClient.Get(ts.URL + "/stor")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestE2E_ForeignKeyRejected signs with a key the server never
// registered.
func TestE2E_ForeignKeyRejected(t *testing.T) {
	kp, fp := generateKeyPair(t)
	ts := authServer(t, kp, fp)

	foreign, foreignFP := generateKeyPair(t)
	c, err := client.NewClient(testLogin, foreignFP, foreign, nil)
	require.NoError(t, err)

	resp, err := c.Get(context.Background(), ts.URL+"/stor")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// TestE2E_UnsignedRejected sends a bare request to the protected
// handler.
func TestE2E_UnsignedRejected(t *testing.T) {
	kp, fp := generateKeyPair(t)
	ts := authServer(t, kp, fp)

	resp, err := http.Get(ts.URL + "/stor")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// TestE2E_SignatureForOtherLoginRejected replays a valid signature
// under a different keyId login.
func TestE2E_SignatureForOtherLoginRejected(t *testing.T) {
	kp, fp := generateKeyPair(t)
	ts := authServer(t, kp, fp)

	c, err := client.NewClient("mallory", fp, kp, nil)
	require.NoError(t, err)

	resp, err := c.Get(context.Background(), ts.URL+"/stor")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
