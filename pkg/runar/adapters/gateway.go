// Package adapters exposes a runar.Dispatcher over popular HTTP frameworks.
//
// Every gateway mounts a single route, POST <prefix>/:service/:action, whose
// JSON body is the action's parameter bag and whose response body is the
// resulting runar.ServiceResponse.
package adapters

import (
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/toyz/runar/pkg/runar"
)

// actionRoute is the framework-neutral route suffix; all three routers share the :name syntax
const actionRoute = "/:service/:action"

// StatusCode maps a dispatch error to an HTTP status code
func StatusCode(err error) int {
	switch {
	case errors.Is(err, runar.ErrServiceNotFound), errors.Is(err, runar.ErrActionNotFound):
		return http.StatusNotFound
	case errors.Is(err, runar.ErrInvalidPath), errors.Is(err, runar.ErrMissingParameter):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// routePath joins prefix and the action route
func routePath(prefix string) string {
	return strings.TrimSuffix(prefix, "/") + actionRoute
}

// decodeParams decodes a JSON object body; an empty body yields no parameters
func decodeParams(body []byte) (runar.Params, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, nil
	}
	var params runar.Params
	if err := json.Unmarshal(body, &params); err != nil {
		return nil, err
	}
	return params, nil
}

// result turns the outcome of a dispatch into a status code and response body
func result(resp *runar.ServiceResponse, err error) (int, *runar.ServiceResponse) {
	if err != nil {
		status := StatusCode(err)
		return status, runar.Failure(status, err.Error())
	}
	if resp == nil {
		return http.StatusOK, runar.Success("", nil)
	}
	if resp.Status == 0 {
		return http.StatusOK, resp
	}
	return resp.Status, resp
}

// badRequest builds the response for an undecodable body
func badRequest(err error) (int, *runar.ServiceResponse) {
	return http.StatusBadRequest, runar.Failure(http.StatusBadRequest, "invalid parameters: "+err.Error())
}
