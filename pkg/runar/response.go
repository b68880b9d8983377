package runar

import "net/http"

// ServiceResponse is the normalized result of an action
type ServiceResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    Value  `json:"data,omitempty"`
}

// Success creates a 200 response carrying message and an optional payload
func Success(message string, data Value) *ServiceResponse {
	return &ServiceResponse{
		Status:  http.StatusOK,
		Message: message,
		Data:    data,
	}
}

// Failure creates a response with the given status and no payload
func Failure(status int, message string) *ServiceResponse {
	return &ServiceResponse{
		Status:  status,
		Message: message,
	}
}

// OK reports whether the response carries a 2xx status
func (r *ServiceResponse) OK() bool {
	return r != nil && r.Status >= 200 && r.Status < 300
}

// Responder is implemented by application response types that know how to
// present themselves as a ServiceResponse
type Responder interface {
	ServiceResponse() *ServiceResponse
}

// ResponseOf normalizes a response of an application-defined type. A
// *ServiceResponse (or an alias of it) is returned unchanged, a Responder
// supplies its own response and anything else becomes the payload of a
// success response.
func ResponseOf(v any) (*ServiceResponse, error) {
	switch r := v.(type) {
	case *ServiceResponse:
		return r, nil
	case Responder:
		return r.ServiceResponse(), nil
	}

	payload, err := ToValue(v)
	if err != nil {
		return nil, err
	}
	return Success("Operation succeeded", payload), nil
}
