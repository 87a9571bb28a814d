// Package fm is the FileMaker Data API adapter: session lifecycle,
// authenticated find/get calls, and the store's error-code mapping.
package fm

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultRequestTimeout = 30 * time.Second

// Credentials identify one remote database. Immutable, sourced once at
// process start.
type Credentials struct {
	Host      string
	Database  string
	Username  string
	Password  string
	VerifyTLS bool
}

func (c Credentials) Validate() error {
	if c.Host == "" {
		return errors.New("host is required")
	}
	if c.Database == "" {
		return errors.New("database name is required")
	}
	if c.Username == "" || c.Password == "" {
		return errors.New("api username and password are required")
	}
	return nil
}

// BaseURL is the Data API root for this database.
func (c Credentials) BaseURL() string {
	return fmt.Sprintf("https://%s/fmi/data/v1/databases/%s", c.Host, url.PathEscape(c.Database))
}

// NewHTTPClient builds the transport for this database, disabling
// certificate verification only when the credentials say so.
func NewHTTPClient(creds Credentials) *http.Client {
	client := &http.Client{Timeout: defaultRequestTimeout}
	if !creds.VerifyTLS {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // self-signed hosts are common on-prem
		}
	}
	return client
}
