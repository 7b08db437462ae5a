package customers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"univen.com/backoffice/core"
	web "univen.com/backoffice/web/common"
)

// Update applies a partial-field update and returns the updated record.
// Field-level validation stays with the store; unknown fields are dropped by
// the service.
func (ep *Endpoint) Update(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	customer, err := ep.svc.Update(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			c.JSON(http.StatusNotFound, web.NewErrorResponse("Customer not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(customer))
}
