package customers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"univen.com/backoffice/core"
	web "univen.com/backoffice/web/common"
)

// The account list screen shows 20 rows per page.
const defaultListPageSize = 20

// List serves both the paginated account list and the account search: a
// non-empty q switches to the substring search, which always orders newest
// first. A client-supplied X-Sequence header is echoed back so the browser
// can discard responses that arrive out of order.
func (ep *Endpoint) List(c *gin.Context) {
	pageNo := 1
	pageSize := defaultListPageSize
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		pageNo = v
	}
	if v, err := strconv.Atoi(c.Query("pageSize")); err == nil && v > 0 {
		pageSize = v
	}
	sortBy := c.DefaultQuery("sortBy", "created_at")
	sortOrder := c.DefaultQuery("sortOrder", "desc")

	if seq := c.GetHeader("X-Sequence"); seq != "" {
		c.Header("X-Sequence", seq)
	}

	ctx := c.Request.Context()

	var (
		result core.CustomerPage
		err    error
	)
	if term := c.Query("q"); term != "" {
		result, err = ep.svc.Search(ctx, term, pageNo, pageSize)
	} else {
		result, err = ep.svc.ListPage(ctx, pageNo, pageSize, sortBy, sortOrder)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSearchResponse(result.Customers, result.TotalCount, pageNo, pageSize))
}
