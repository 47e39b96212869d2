// Package remote holds the concrete clients for the order-and-fleet data
// service, one per repository interface, sharing a single resty core. Every
// other component takes the interfaces, so this whole package is swappable.
package remote

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrUnavailable is the generic transient failure for anything that is not a
// clean not-found: unreachable host, timeout, non-success response. The core
// performs no automatic retry on it.
var ErrUnavailable = errors.New("remote service unavailable")

// Clients bundles the per-domain clients built on one shared HTTP core.
type Clients struct {
	Sessions *SessionsClient
	Orders   *OrdersClient
	Fleet    *FleetClient
}

func NewClients(baseURL string, timeout time.Duration) *Clients {
	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Clients{
		Sessions: &SessionsClient{rest: rest},
		Orders:   &OrdersClient{rest: rest},
		Fleet:    &FleetClient{rest: rest},
	}
}

// checkResponse folds transport and HTTP-level failures into the error
// taxonomy: notFound for 404, ErrUnavailable for everything else non-2xx.
func checkResponse(resp *resty.Response, err error, notFound error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return notFound
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode())
	}
	return nil
}
