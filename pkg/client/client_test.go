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

package client

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signet-project/signet-go/pkg/keys"
	"github.com/signet-project/signet-go/pkg/verifier"
)

func generateTestKeyPair(t *testing.T) *keys.KeyPair {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	kp, err := keys.FromPrivateKey(priv)
	require.NoError(t, err)
	return kp
}

func TestClient_Get_SignsRequest(t *testing.T) {
	kp := generateTestKeyPair(t)

	var gotAuthorization, gotDate string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		gotDate = r.Header.Get("Date")
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c, err := NewClient("jdoe", "aa:bb:cc", kp, nil)
	require.NoError(t, err)

	resp, err := c.Get(context.Background(), ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	v, err := verifier.NewDefaultVerifier()
	require.NoError(t, err)
	ok, err := v.VerifyAuthorizationHeader(kp, gotAuthorization, gotDate)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClient_Post_SendsBody(t *testing.T) {
	kp := generateTestKeyPair(t)

	var gotBody []byte
	var gotContentType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	c, err := NewClient("jdoe", "aa:bb:cc", kp, nil)
	require.NoError(t, err)

	resp, err := c.Post(context.Background(), ts.URL, "application/json", []byte(`{"ok":true}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, `{"ok":true}`, string(gotBody))
	assert.Equal(t, "application/json", gotContentType)
}

func TestClient_Do_CanceledContext(t *testing.T) {
	kp := generateTestKeyPair(t)
	c, err := NewClient("jdoe", "aa:bb:cc", kp, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req, err := http.NewRequest(http.MethodGet, "http://example.invalid/", nil)
	require.NoError(t, err)

	_, err = c.Do(ctx, req)
	assert.Error(t, err)
}

func TestClient_Do_DoesNotMutateRequest(t *testing.T) {
	kp := generateTestKeyPair(t)

	var gotAuthorization, gotDate string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		gotDate = r.Header.Get("Date")
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c, err := NewClient("jdoe", "aa:bb:cc", kp, nil)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	resp, err := c.Do(context.Background(), req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NotEmpty(t, gotAuthorization)
	require.NotEmpty(t, gotDate)
	assert.Empty(t, req.Header.Get("Authorization"))
	assert.Empty(t, req.Header.Get("Date"))
}

func TestNewClient_Preconditions(t *testing.T) {
	kp := generateTestKeyPair(t)

	_, err := NewClient("", "aa:bb:cc", kp, nil)
	assert.Error(t, err)

	_, err = NewClient("jdoe", "", kp, nil)
	assert.Error(t, err)

	_, err = NewClient("jdoe", "aa:bb:cc", nil, nil)
	assert.Error(t, err)
}

func TestClient_Accessors(t *testing.T) {
	kp := generateTestKeyPair(t)
	c, err := NewClient("jdoe", "aa:bb:cc", kp, nil)
	require.NoError(t, err)

	assert.Equal(t, "jdoe", c.Login())
	assert.Equal(t, "aa:bb:cc", c.Fingerprint())
}
