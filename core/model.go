package core

import (
	"reflect"
	"strings"
	"sync"
	"time"
)

// Customer maps one row of the legacy univen_customers table. The table is
// populated by an external import pipeline and keeps its original column
// identifiers, spaces and punctuation included, so every field carries an
// explicit column tag. The JSON names are what the API exposes.
type Customer struct {
	ID        string     `gorm:"column:id;primaryKey" json:"id"`
	CreatedAt *time.Time `gorm:"column:created_at;autoCreateTime:false" json:"createdAt"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime:false" json:"updatedAt"`
	TenantID  *string    `gorm:"column:tenant_id" json:"tenantId"`

	ClientReference      *string `gorm:"column:Client Reference" json:"clientReference"`
	MaskedClientRef      *string `gorm:"column:Masked Client Reference" json:"maskedClientReference"`
	OldClientRef         *string `gorm:"column:Old Client Ref" json:"oldClientRef"`
	Client               *string `gorm:"column:Client" json:"client"`
	ClientGroup          *string `gorm:"column:Client Group" json:"clientGroup"`
	ClientDivision       *string `gorm:"column:Client Division" json:"clientDivision"`
	ClientProfileAccount *string `gorm:"column:Client Profile Account" json:"clientProfileAccount"`
	EasyPayReference     *string `gorm:"column:EasyPay Reference" json:"easyPayReference"`
	LinkedAccount        *string `gorm:"column:Linked Account" json:"linkedAccount"`

	Title      *string `gorm:"column:Title" json:"title"`
	Initials   *string `gorm:"column:Initials" json:"initials"`
	FirstName  *string `gorm:"column:First Name" json:"firstName"`
	SecondName *string `gorm:"column:Second Name" json:"secondName"`
	Surname    *string `gorm:"column:Surname" json:"surname"`
	Gender     *string `gorm:"column:Gender" json:"gender"`
	IDNumber   *string `gorm:"column:ID Number" json:"idNumber"`

	Occupation      *string `gorm:"column:Occupation" json:"occupation"`
	EmployerName    *string `gorm:"column:Employer Name" json:"employerName"`
	EmployerContact *string `gorm:"column:Employer Contact" json:"employerContact"`

	Cellphone  *string `gorm:"column:Cellphone" json:"cellphone"`
	Cellphone2 *string `gorm:"column:Cellphone 2" json:"cellphone2"`
	Cellphone3 *string `gorm:"column:Cellphone 3" json:"cellphone3"`
	Cellphone4 *string `gorm:"column:Cellphone 4" json:"cellphone4"`
	Email      *string `gorm:"column:Email" json:"email"`
	Email2     *string `gorm:"column:Email 2" json:"email2"`
	Email3     *string `gorm:"column:Email 3" json:"email3"`

	StreetAddress1 *string `gorm:"column:Street Address 1" json:"streetAddress1"`
	StreetAddress2 *string `gorm:"column:Street Address 2" json:"streetAddress2"`
	StreetAddress3 *string `gorm:"column:Street Address 3" json:"streetAddress3"`
	StreetAddress4 *string `gorm:"column:Street Address 4" json:"streetAddress4"`
	StreetCode     *string `gorm:"column:Street Code" json:"streetCode"`
	CombinedStreet *string `gorm:"column:Combined Street" json:"combinedStreet"`

	Status           *string  `gorm:"column:Status" json:"status"`
	StatusDate       *string  `gorm:"column:Status Date" json:"statusDate"`
	DateOpened       *string  `gorm:"column:Date Opened" json:"dateOpened"`
	HandOverDate     *string  `gorm:"column:Hand Over Date" json:"handOverDate"`
	HandOverAmount   *float64 `gorm:"column:Hand Over Amount" json:"handOverAmount"`
	DebtorUnderDC    *string  `gorm:"column:Debtor under DC?" json:"debtorUnderDC"`
	DebtorStatusDate *string  `gorm:"column:Debtor Status Date" json:"debtorStatusDate"`
	AccountLoadDate  *string  `gorm:"column:Account Load Date" json:"accountLoadDate"`

	OriginalCost         *float64 `gorm:"column:Original Cost" json:"originalCost"`
	CapitalOnDefault     *float64 `gorm:"column:Capital on Default" json:"capitalOnDefault"`
	CapitalAmount        *float64 `gorm:"column:Capital Amount" json:"capitalAmount"`
	PaymentsToDate       *float64 `gorm:"column:Payments To Date" json:"paymentsToDate"`
	InterestToDate       *float64 `gorm:"column:Interest To Date" json:"interestToDate"`
	AdjustmentsToDate    *float64 `gorm:"column:Adjustments To Date" json:"adjustmentsToDate"`
	FeesExpenses         *float64 `gorm:"column:Fees & Expenses" json:"feesExpenses"`
	CollectionCommission *float64 `gorm:"column:Collection Commission" json:"collectionCommission"`
	FCCExclVAT           *float64 `gorm:"column:FCC (excl VAT)" json:"fccExclVat"`
	CurrentBalance       *float64 `gorm:"column:Current Balance" json:"currentBalance"`
	InterestRate         *float64 `gorm:"column:Interest rate" json:"interestRate"`
	InterestDate         *string  `gorm:"column:Interest date" json:"interestDate"`
	InDuplum             *string  `gorm:"column:In Duplum" json:"inDuplum"`

	DaysOverdue              *int     `gorm:"column:Days Overdue" json:"daysOverdue"`
	DaysSinceLastPayment     *int     `gorm:"column:Days since Last Payment" json:"daysSinceLastPayment"`
	LastPaymentMethod        *string  `gorm:"column:Last Payment Method" json:"lastPaymentMethod"`
	LastPaymentDate          *string  `gorm:"column:Last Payment Date" json:"lastPaymentDate"`
	LastPaymentAmount        *float64 `gorm:"column:Last Payment Amount" json:"lastPaymentAmount"`
	OutboundPhoneCallOutcome *string  `gorm:"column:Outbound Phone Call Outcome" json:"outboundPhoneCallOutcome"`
	OutboundPhoneCallComment *string  `gorm:"column:Outbound Phone Call Comment" json:"outboundPhoneCallComment"`
	LastInboundPhoneCallDate *string  `gorm:"column:Last Inbound Phone Call Date" json:"lastInboundPhoneCallDate"`
	InboundPhoneCallOutcome  *string  `gorm:"column:Inbound Phone Call Outcome" json:"inboundPhoneCallOutcome"`
	LastContact              *string  `gorm:"column:Last Contact" json:"lastContact"`

	DebtorFlags        *string `gorm:"column:Debtor Flags" json:"debtorFlags"`
	AccountFlags       *string `gorm:"column:Account Flags" json:"accountFlags"`
	Bucket             *string `gorm:"column:Bucket" json:"bucket"`
	CampaignExclusions *string `gorm:"column:Campaign Exclusions" json:"campaignExclusions"`
	OriginalLine       *string `gorm:"column:Original Line" json:"originalLine"`

	ImportError   *string `gorm:"column:error" json:"error"`
	SourceFile    *string `gorm:"column:source_file" json:"sourceFile"`
	ImportBatchID *string `gorm:"column:import_batch_id" json:"importBatchId"`
	Notes         *string `gorm:"column:notes" json:"notes"`
}

func (Customer) TableName() string {
	return "univen_customers"
}

var (
	columnsOnce   sync.Once
	fieldToColumn map[string]string
	knownColumns  map[string]bool
)

// buildColumnMaps walks the Customer struct tags once so the API field names
// and the legacy column identifiers stay in lockstep with the model.
func buildColumnMaps() {
	fieldToColumn = make(map[string]string)
	knownColumns = make(map[string]bool)

	t := reflect.TypeOf(Customer{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		column := ""
		for _, part := range strings.Split(f.Tag.Get("gorm"), ";") {
			if v, ok := strings.CutPrefix(part, "column:"); ok {
				column = v
			}
		}
		if column == "" {
			continue
		}
		jsonName := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if jsonName != "" && jsonName != "-" {
			fieldToColumn[jsonName] = column
		}
		knownColumns[column] = true
	}
}

// ColumnFor resolves an API field name or a raw column identifier to the
// column it addresses. Returns false for anything outside the table schema.
func ColumnFor(name string) (string, bool) {
	columnsOnce.Do(buildColumnMaps)
	if col, ok := fieldToColumn[name]; ok {
		return col, true
	}
	if knownColumns[name] {
		return name, true
	}
	return "", false
}
