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
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/signet-project/signet-go/pkg/keys"
	"github.com/signet-project/signet-go/pkg/protocol"
	"github.com/signet-project/signet-go/pkg/signer"
)

// Client is an HTTP client that signs every request it sends
type Client struct {
	login       string
	fingerprint string
	keyPair     *keys.KeyPair
	signer      signer.Signer
	httpClient  *http.Client
}

// NewClient creates a signing HTTP client.
// If httpClient is nil, http.DefaultClient is used.
func NewClient(login, fingerprint string, keyPair *keys.KeyPair, httpClient *http.Client) (*Client, error) {
	if login == "" {
		return nil, fmt.Errorf("login must be present")
	}
	if fingerprint == "" {
		return nil, fmt.Errorf("fingerprint must be present")
	}
	if keyPair == nil {
		return nil, fmt.Errorf("key pair must be present")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	s, err := signer.NewDefaultSigner()
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}

	return &Client{
		login:       login,
		fingerprint: fingerprint,
		keyPair:     keyPair,
		signer:      s,
		httpClient:  httpClient,
	}, nil
}

// Do executes an HTTP request after stamping Date and Authorization on
// a clone. The caller's request is not modified.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	signed := req.Clone(req.Context())

	date := signed.Header.Get("Date")
	if date == "" {
		date = protocol.Now()
		signed.Header.Set("Date", date)
	}

	header, err := c.signer.CreateAuthorizationHeader(c.login, c.fingerprint, c.keyPair, date)
	if err != nil {
		return nil, fmt.Errorf("failed to sign request: %w", err)
	}
	signed.Header.Set("Authorization", header)

	resp, err := c.httpClient.Do(signed)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	return resp, nil
}

// Get sends a signed GET request
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GET request: %w", err)
	}
	return c.Do(ctx, req)
}

// Post sends a signed POST request
func (c *Client) Post(ctx context.Context, url, contentType string, body []byte) (*http.Response, error) {
	var bodyReader io.Reader = bytes.NewReader(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create POST request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return c.Do(ctx, req)
}

// Login returns the account name used in keyId
func (c *Client) Login() string {
	return c.login
}

// Fingerprint returns the key fingerprint used in keyId
func (c *Client) Fingerprint() string {
	return c.fingerprint
}
