package reserve

import (
	"net/http"

	"adobe-reserve/config"
)

// Request encapsulates everything one reservation attempt needs. Client must
// be the same instance the login step used, so the session cookie rides along.
type Request struct {
	Client     *http.Client
	Portal     config.Portal
	DateExpire string
}
