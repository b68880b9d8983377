package adapters

import (
	"io"

	"github.com/labstack/echo/v4"
	"github.com/toyz/runar/pkg/runar"
)

// EchoRouter is satisfied by both *echo.Echo and *echo.Group
type EchoRouter interface {
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// EchoGateway serves a dispatcher through Echo
type EchoGateway struct {
	dispatcher *runar.Dispatcher
}

// NewEchoGateway creates a new Echo gateway
func NewEchoGateway(dispatcher *runar.Dispatcher) *EchoGateway {
	return &EchoGateway{dispatcher: dispatcher}
}

// Name returns the gateway name
func (g *EchoGateway) Name() string {
	return "Echo"
}

// Mount registers the action route on router under prefix
func (g *EchoGateway) Mount(router EchoRouter, prefix string, middlewares ...echo.MiddlewareFunc) {
	router.POST(routePath(prefix), g.handle, middlewares...)
}

func (g *EchoGateway) handle(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(badRequest(err))
	}

	params, err := decodeParams(body)
	if err != nil {
		return c.JSON(badRequest(err))
	}

	status, resp := result(g.dispatcher.Invoke(c.Request().Context(), c.Param("service"), c.Param("action"), params))
	return c.JSON(status, resp)
}
