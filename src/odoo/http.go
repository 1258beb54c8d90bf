// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package odoo

import (
	"fmt"
	"net/http"
	"sync"
	"time"
)

// HTTPConfig holds HTTP client configuration for JSON-RPC exchanges.
type HTTPConfig struct {
	Timeout   time.Duration // HTTP request timeout, zero means no timeout
	Version   string        // Application version for User-Agent
	UserAgent string        // Custom User-Agent string, if empty will be constructed from Version

	mu     sync.Mutex
	client *http.Client
}

// NewHTTPConfig creates a new HTTP configuration with default values.
//
// It initializes the configuration with a default timeout of 30 seconds
// and the provided application version.
func NewHTTPConfig(version string) *HTTPConfig {
	return &HTTPConfig{
		Timeout: 30 * time.Second,
		Version: version,
	}
}

// GetUserAgent returns the User-Agent string, constructing it if not set.
func (c *HTTPConfig) GetUserAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return fmt.Sprintf("Odoo-JSONRPC-Client/%s (+https://github.com/H0llyW00dzZ/odoo-jsonrpc)", c.Version)
}

// SetClient installs a copy of client, e.g. to use a custom transport. The
// configured Timeout applies to the copy; client itself is never modified.
func (c *HTTPConfig) SetClient(client *http.Client) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if client == nil {
		c.client = nil
		return
	}
	clone := *client
	c.client = &clone
}

// Client returns an HTTP client configured with the current timeout.
//
// It creates or reuses an http.Client, ensuring it uses the configured timeout.
//
// Thread Safety: Safe for concurrent use.
func (c *HTTPConfig) Client() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		c.client = &http.Client{Timeout: c.Timeout}
		return c.client
	}

	if c.client.Timeout != c.Timeout {
		c.client.Timeout = c.Timeout
	}

	return c.client
}
