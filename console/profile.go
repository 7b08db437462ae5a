package console

import (
	"fmt"

	"univen.com/backoffice/core"
	"univen.com/backoffice/utils"
)

// PrintCustomer renders one account the way the detail screen shows it.
func PrintCustomer(c *core.Customer) {
	fmt.Printf("Reference:      %s\n", utils.Format(c.ClientReference))
	fmt.Printf("Name:           %s\n", core.FullName(c))
	fmt.Printf("ID Number:      %s\n", utils.Format(c.IDNumber))
	fmt.Printf("Phone:          %s\n", core.PrimaryPhone(c))
	fmt.Printf("Email:          %s\n", core.PrimaryEmail(c))
	fmt.Printf("Address:        %s\n", core.FullAddress(c))
	fmt.Printf("Status:         %s\n", utils.Format(c.Status))
	fmt.Printf("Date Opened:    %s\n", core.FormatDate(c.DateOpened))
	fmt.Printf("Balance:        %s\n", core.FormatCurrency(c.CurrentBalance))
	fmt.Printf("Last Payment:   %s on %s\n",
		core.FormatCurrency(c.LastPaymentAmount), core.FormatDate(c.LastPaymentDate))
	fmt.Printf("Days Overdue:   %s\n", utils.Format(c.DaysOverdue))
	fmt.Printf("Risk:           %s\n", core.RiskLevel(c))
	fmt.Printf("Overdue:        %s\n", utils.FormatBoolean(core.IsOverdue(c), "yes", "no"))
}

// PrintPage renders a search result page as a compact table.
func PrintPage(page core.CustomerPage) {
	for i := range page.Customers {
		c := &page.Customers[i]
		fmt.Printf("%-36s  %-12s  %-30s  %-10s  %s\n",
			c.ID,
			utils.Format(c.ClientReference),
			core.FullName(c),
			core.RiskLevel(c),
			core.FormatCurrency(c.CurrentBalance),
		)
	}
	fmt.Printf("%d of %d customers\n", len(page.Customers), page.TotalCount)
}
