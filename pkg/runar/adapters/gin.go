package adapters

import (
	"github.com/gin-gonic/gin"
	"github.com/toyz/runar/pkg/runar"
)

// GinGateway serves a dispatcher through Gin
type GinGateway struct {
	dispatcher *runar.Dispatcher
}

// NewGinGateway creates a new Gin gateway
func NewGinGateway(dispatcher *runar.Dispatcher) *GinGateway {
	return &GinGateway{dispatcher: dispatcher}
}

// Name returns the gateway name
func (g *GinGateway) Name() string {
	return "Gin"
}

// Mount registers the action route on router under prefix
func (g *GinGateway) Mount(router gin.IRoutes, prefix string) {
	router.POST(routePath(prefix), g.handle)
}

func (g *GinGateway) handle(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(badRequest(err))
		return
	}

	params, err := decodeParams(body)
	if err != nil {
		c.JSON(badRequest(err))
		return
	}

	c.JSON(result(g.dispatcher.Invoke(c.Request.Context(), c.Param("service"), c.Param("action"), params)))
}
