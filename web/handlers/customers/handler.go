package customers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"univen.com/backoffice/core"
)

type Endpoint struct {
	svc *core.CustomerService
	log *zap.Logger
}

func Register(r *gin.RouterGroup, svc *core.CustomerService, log *zap.Logger) {
	endpoint := &Endpoint{svc: svc, log: log}
	r.GET("/customers", endpoint.List)
	r.GET("/customers/export", endpoint.Export)
	r.GET("/customers/:id", endpoint.Get)
	r.GET("/customers/:id/profile", endpoint.Profile)
	r.PUT("/customers/:id", endpoint.Update)
}
