package reserve

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Submit posts the renewal form to the Adobe reservation endpoint and returns
// the raw response body. The body is not parsed; whatever the portal answers,
// success page or error page, goes back to the caller verbatim.
//
// The Referer points at the intermediate processa.php URL rather than the
// endpoint itself. The portal expects exactly that, so it is kept.
func Submit(req *Request) (string, error) {
	formData := url.Values{}
	formData.Set("userId", "")
	formData.Set("date_expire", req.DateExpire)
	formData.Set("status_number", "0")
	formData.Set("Submit_get", "")

	httpReq, err := http.NewRequest("POST", req.Portal.ReserveURL, strings.NewReader(formData.Encode()))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("User-Agent", req.Portal.UserAgent)
	httpReq.Header.Set("Origin", req.Portal.Origin)
	httpReq.Header.Set("Referer", req.Portal.ProcessURL)

	resp, err := req.Client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("reservation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read reservation response: %w", err)
	}
	return string(body), nil
}
