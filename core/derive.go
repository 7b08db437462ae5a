package core

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"univen.com/backoffice/utils"
)

// Sentinels returned when a record has no usable value. The two date
// sentinels are distinct on purpose: absent and unparsable are different
// answers.
const (
	NotAvailable = "N/A"
	InvalidDate  = "Invalid Date"
)

// Risk tiers derived from overdue days and outstanding balance. Never stored;
// recomputed on every read.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// The locale is pinned so amounts render the same on every host.
var currencyPrinter = message.NewPrinter(language.English)

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intVal(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func floatVal(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func firstNonEmpty(values ...*string) string {
	for _, v := range values {
		if s := strVal(v); s != "" {
			return s
		}
	}
	return NotAvailable
}

func joinNonEmpty(sep string, values ...*string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if s := strVal(v); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return NotAvailable
	}
	return strings.Join(parts, sep)
}

// FullName joins first name, second name and surname, skipping blanks.
func FullName(c *Customer) string {
	if c == nil {
		return NotAvailable
	}
	return joinNonEmpty(" ", c.FirstName, c.SecondName, c.Surname)
}

// PrimaryPhone picks the first non-empty cellphone in ranked order.
func PrimaryPhone(c *Customer) string {
	if c == nil {
		return NotAvailable
	}
	return firstNonEmpty(c.Cellphone, c.Cellphone2, c.Cellphone3, c.Cellphone4)
}

// PrimaryEmail picks the first non-empty email in ranked order.
func PrimaryEmail(c *Customer) string {
	if c == nil {
		return NotAvailable
	}
	return firstNonEmpty(c.Email, c.Email2, c.Email3)
}

// FullAddress prefers the precomposed combined street, falling back to the
// individual address lines joined with ", ".
func FullAddress(c *Customer) string {
	if c == nil {
		return NotAvailable
	}
	if s := strVal(c.CombinedStreet); s != "" {
		return s
	}
	return joinNonEmpty(", ", c.StreetAddress1, c.StreetAddress2, c.StreetAddress3, c.StreetAddress4)
}

// FormatCurrency renders an amount as rand with grouped thousands and two
// decimals. Absent or non-numeric amounts render as the zero amount rather
// than failing.
func FormatCurrency(amount *float64) string {
	if amount == nil || math.IsNaN(*amount) {
		return "R0.00"
	}
	return currencyPrinter.Sprintf("R%.2f", *amount)
}

// FormatDate renders an ISO-ish date string as e.g. "3 Mar 2024". Absent
// dates render as N/A, unparsable ones as Invalid Date.
func FormatDate(date *string) string {
	s := strVal(date)
	if s == "" {
		return NotAvailable
	}
	t, err := utils.ParseISOTime(s)
	if err != nil {
		return InvalidDate
	}
	return t.Format("2 Jan 2006")
}

// RiskLevel classifies a customer from overdue days and current balance.
// Either signal alone is enough to escalate; missing values count as zero.
func RiskLevel(c *Customer) string {
	if c == nil {
		return RiskLow
	}
	daysOverdue := intVal(c.DaysOverdue)
	balance := floatVal(c.CurrentBalance)

	switch {
	case daysOverdue > 90 || balance > 10000:
		return RiskHigh
	case daysOverdue > 30 || balance > 5000:
		return RiskMedium
	default:
		return RiskLow
	}
}

// IsOverdue reports active delinquency: overdue days AND an outstanding
// balance. Note the deliberate asymmetry with RiskLevel, which ORs the same
// two signals; a high-balance account with zero overdue days is high risk
// yet not overdue. Preserved as-is pending product clarification.
func IsOverdue(c *Customer) bool {
	if c == nil {
		return false
	}
	return intVal(c.DaysOverdue) > 0 && floatVal(c.CurrentBalance) > 0
}
