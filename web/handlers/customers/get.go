package customers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	web "univen.com/backoffice/web/common"
)

// Get returns the raw record. The service reports a missing row and an
// unreachable store the same way, so both present as not found here.
func (ep *Endpoint) Get(c *gin.Context) {
	customer := ep.svc.GetByID(c.Request.Context(), c.Param("id"))
	if customer == nil {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Customer not found"))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(customer))
}
