package adapters

import (
	"github.com/gofiber/fiber/v2"
	"github.com/toyz/runar/pkg/runar"
)

// FiberGateway serves a dispatcher through Fiber
type FiberGateway struct {
	dispatcher *runar.Dispatcher
}

// NewFiberGateway creates a new Fiber gateway
func NewFiberGateway(dispatcher *runar.Dispatcher) *FiberGateway {
	return &FiberGateway{dispatcher: dispatcher}
}

// Name returns the gateway name
func (g *FiberGateway) Name() string {
	return "Fiber"
}

// Mount registers the action route on router under prefix
func (g *FiberGateway) Mount(router fiber.Router, prefix string) {
	router.Post(routePath(prefix), g.handle)
}

func (g *FiberGateway) handle(c *fiber.Ctx) error {
	params, err := decodeParams(c.Body())
	if err != nil {
		status, resp := badRequest(err)
		return c.Status(status).JSON(resp)
	}

	status, resp := result(g.dispatcher.Invoke(c.UserContext(), c.Params("service"), c.Params("action"), params))
	return c.Status(status).JSON(resp)
}
