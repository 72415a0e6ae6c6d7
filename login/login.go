package login

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"adobe-reserve/config"
)

// ErrRejected reports that the portal was reached but answered the login POST
// with a non-success status. It is distinct from transport errors so the
// operator can tell "rejected" from "never reached the server".
var ErrRejected = errors.New("login rejected")

// NewClient builds the single HTTP client shared by both portal requests.
// The cookie jar carries the session set by the login response over to the
// reservation request.
func NewClient(portal config.Portal) (*http.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	client := &http.Client{
		Jar:     jar,
		Timeout: portal.Timeout(),
	}
	if portal.InsecureSkipVerify {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return client, nil
}

// Do posts the credentials to the portal login endpoint. On success the
// session cookies are left in the client's jar; any non-2xx final status
// returns an ErrRejected-wrapped error carrying the status code.
func Do(client *http.Client, portal config.Portal, creds *config.Credentials) error {
	formData := url.Values{}
	formData.Set("myusername", creds.Username)
	formData.Set("mypassword", creds.Password)
	formData.Set("Submit", "")

	req, err := http.NewRequest("POST", portal.LoginURL, strings.NewReader(formData.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", portal.UserAgent)
	req.Header.Set("Origin", portal.Origin)
	req.Header.Set("Referer", portal.LoginURL)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}
	return nil
}
