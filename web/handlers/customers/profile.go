package customers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"univen.com/backoffice/core"
	"univen.com/backoffice/utils"
	web "univen.com/backoffice/web/common"
)

// ProfileDTO is the display-ready projection of one account, everything
// derived and formatted server side.
type ProfileDTO struct {
	ID              string `json:"id"`
	ClientReference string `json:"clientReference"`
	FullName        string `json:"fullName"`
	IDNumber        string `json:"idNumber"`
	Gender          string `json:"gender"`
	Occupation      string `json:"occupation"`
	EmployerName    string `json:"employerName"`
	PrimaryPhone    string `json:"primaryPhone"`
	PrimaryEmail    string `json:"primaryEmail"`
	FullAddress     string `json:"fullAddress"`
	Status          string `json:"status"`
	StatusDate      string `json:"statusDate"`
	DateOpened      string `json:"dateOpened"`
	HandOverDate    string `json:"handOverDate"`
	HandOverAmount  string `json:"handOverAmount"`
	OriginalCost    string `json:"originalCost"`
	CapitalAmount   string `json:"capitalAmount"`
	PaymentsToDate  string `json:"paymentsToDate"`
	CurrentBalance  string `json:"currentBalance"`
	LastPaymentDate string `json:"lastPaymentDate"`
	LastPaymentAmt  string `json:"lastPaymentAmount"`
	DaysOverdue     int    `json:"daysOverdue"`
	RiskLevel       string `json:"riskLevel"`
	Overdue         bool   `json:"overdue"`
	Notes           string `json:"notes"`
}

func toProfile(c *core.Customer) ProfileDTO {
	daysOverdue := 0
	if c.DaysOverdue != nil {
		daysOverdue = *c.DaysOverdue
	}
	return ProfileDTO{
		ID:              c.ID,
		ClientReference: utils.Format(c.ClientReference),
		FullName:        core.FullName(c),
		IDNumber:        utils.Format(c.IDNumber),
		Gender:          utils.Format(c.Gender),
		Occupation:      utils.Format(c.Occupation),
		EmployerName:    utils.Format(c.EmployerName),
		PrimaryPhone:    core.PrimaryPhone(c),
		PrimaryEmail:    core.PrimaryEmail(c),
		FullAddress:     core.FullAddress(c),
		Status:          utils.Format(c.Status),
		StatusDate:      core.FormatDate(c.StatusDate),
		DateOpened:      core.FormatDate(c.DateOpened),
		HandOverDate:    core.FormatDate(c.HandOverDate),
		HandOverAmount:  core.FormatCurrency(c.HandOverAmount),
		OriginalCost:    core.FormatCurrency(c.OriginalCost),
		CapitalAmount:   core.FormatCurrency(c.CapitalAmount),
		PaymentsToDate:  core.FormatCurrency(c.PaymentsToDate),
		CurrentBalance:  core.FormatCurrency(c.CurrentBalance),
		LastPaymentDate: core.FormatDate(c.LastPaymentDate),
		LastPaymentAmt:  core.FormatCurrency(c.LastPaymentAmount),
		DaysOverdue:     daysOverdue,
		RiskLevel:       core.RiskLevel(c),
		Overdue:         core.IsOverdue(c),
		Notes:           utils.Format(c.Notes),
	}
}

// Profile returns the derived view the account detail screen renders.
func (ep *Endpoint) Profile(c *gin.Context) {
	customer := ep.svc.GetByID(c.Request.Context(), c.Param("id"))
	if customer == nil {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Customer not found"))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(toProfile(customer)))
}
