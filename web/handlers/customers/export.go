package customers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"univen.com/backoffice/core"
	"univen.com/backoffice/utils"
	web "univen.com/backoffice/web/common"
)

const (
	exportPageSize = 500
	// keeps a runaway export from holding the whole book in memory
	exportRowCap = 50000

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Export streams the account list as an xlsx workbook, honouring the same q
// filter as the list endpoint. Rows are paged out of the store in chunks.
func (ep *Endpoint) Export(c *gin.Context) {
	ctx := c.Request.Context()
	term := c.Query("q")

	var all []core.Customer
	for pageNo := 1; ; pageNo++ {
		var (
			result core.CustomerPage
			err    error
		)
		if term != "" {
			result, err = ep.svc.Search(ctx, term, pageNo, exportPageSize)
		} else {
			result, err = ep.svc.ListPage(ctx, pageNo, exportPageSize, "created_at", "desc")
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
			return
		}

		all = append(all, result.Customers...)
		if len(result.Customers) < exportPageSize || len(all) >= exportRowCap {
			break
		}
	}

	workbook, err := buildWorkbook(all)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer workbook.Close()

	c.Header("Content-Disposition", `attachment; filename="univen-customers.xlsx"`)
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)

	if err := workbook.Write(c.Writer); err != nil {
		ep.log.Error("writing customer export", zap.Error(err))
	}
}

func buildWorkbook(customers []core.Customer) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Customers"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []interface{}{
		"Client Reference", "Full Name", "ID Number", "Phone", "Email",
		"Status", "Current Balance", "Days Overdue", "Risk Level", "Overdue",
		"Last Payment Date",
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}

	for i := range customers {
		customer := &customers[i]
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		row := []interface{}{
			utils.Format(customer.ClientReference),
			core.FullName(customer),
			utils.Format(customer.IDNumber),
			core.PrimaryPhone(customer),
			core.PrimaryEmail(customer),
			utils.Format(customer.Status),
			core.FormatCurrency(customer.CurrentBalance),
			utils.Format(customer.DaysOverdue),
			core.RiskLevel(customer),
			utils.FormatBoolean(core.IsOverdue(customer), "Yes", "No"),
			core.FormatDate(customer.LastPaymentDate),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}
