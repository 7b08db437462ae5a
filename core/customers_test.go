package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockService(t *testing.T) (*CustomerService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return NewCustomerService(gdb, zaptest.NewLogger(t)), mock
}

func customerRows() *sqlmock.Rows {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{
		"id", "created_at", "Client Reference", "First Name", "Surname",
		"Days Overdue", "Current Balance",
	}).AddRow("cust-1", now, "UNIV001", "Jane", "Doe", 45, 7500.0)
}

func TestPageRange(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		wantOffset int
		wantLimit  int
	}{
		{"first page", 1, 20, 0, 20},
		{"second page", 2, 20, 20, 20},
		{"third page larger size", 3, 100, 200, 100},
		{"zero page clamps to first", 0, 20, 0, 20},
		{"zero size falls back to default", 1, 0, 0, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := pageRange(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}

	// page=2, pageSize=20: rows 20..39 inclusive
	offset, limit := pageRange(2, 20)
	assert.Equal(t, 20, offset)
	assert.Equal(t, 39, offset+limit-1)
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, `"created_at" DESC`, orderClause("created_at", "desc"))
	assert.Equal(t, `"created_at" ASC`, orderClause("created_at", "asc"))
	assert.Equal(t, `"Surname" ASC`, orderClause("surname", "asc"))
	assert.Equal(t, `"Current Balance" DESC`, orderClause("currentBalance", "whatever"))
	// unknown fields cannot reach the SQL
	assert.Equal(t, `"created_at" DESC`, orderClause("1; DROP TABLE students", "desc"))
}

func TestListPage(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "univen_customers"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(57))
	mock.ExpectQuery(`SELECT \* FROM "univen_customers" ORDER BY "created_at" DESC`).
		WillReturnRows(customerRows())

	page, err := svc.ListPage(context.Background(), 2, 20, "", "")
	require.NoError(t, err)

	// total reflects the count query, not the page length
	assert.EqualValues(t, 57, page.TotalCount)
	require.Len(t, page.Customers, 1)
	assert.Equal(t, "cust-1", page.Customers[0].ID)
	assert.Equal(t, "UNIV001", *page.Customers[0].ClientReference)
	assert.Equal(t, 45, *page.Customers[0].DaysOverdue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPageCountFailure(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "univen_customers"`).
		WillReturnError(errors.New("connection refused"))

	page, err := svc.ListPage(context.Background(), 1, 20, "", "")
	assert.Error(t, err)
	assert.Empty(t, page.Customers)
	assert.Zero(t, page.TotalCount)
}

func TestListPageFetchFailure(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "univen_customers"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(57))
	mock.ExpectQuery(`SELECT \* FROM "univen_customers"`).
		WillReturnError(errors.New("connection reset"))

	page, err := svc.ListPage(context.Background(), 1, 20, "", "")
	assert.Error(t, err)
	assert.Empty(t, page.Customers)
	assert.Zero(t, page.TotalCount)
}

func TestSearch(t *testing.T) {
	svc, mock := newMockService(t)
	like := "%jane%"

	mock.ExpectQuery(`SELECT count\(\*\) FROM "univen_customers" WHERE "Client Reference" ILIKE`).
		WithArgs(like, like, like, like, like, like).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT \* FROM "univen_customers" WHERE "Client Reference" ILIKE .* ORDER BY "created_at" DESC`).
		WillReturnRows(customerRows())

	page, err := svc.Search(context.Background(), "jane", 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.TotalCount)
	require.Len(t, page.Customers, 1)
	assert.Equal(t, "Jane", *page.Customers[0].FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchFailure(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "univen_customers" WHERE`).
		WillReturnError(errors.New("timeout"))

	page, err := svc.Search(context.Background(), "jane", 1, 20)
	assert.Error(t, err)
	assert.Empty(t, page.Customers)
	assert.Zero(t, page.TotalCount)
}

func TestGetByID(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`SELECT \* FROM "univen_customers" WHERE id = \$1`).
		WillReturnRows(customerRows())

	customer := svc.GetByID(context.Background(), "cust-1")
	require.NotNil(t, customer)
	assert.Equal(t, "Doe", *customer.Surname)
}

func TestGetByIDNotFound(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`SELECT \* FROM "univen_customers" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	assert.Nil(t, svc.GetByID(context.Background(), "missing"))
}

// A store failure looks exactly like a missing row; callers get nil either
// way and the detail is only in the log.
func TestGetByIDStoreFailure(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`SELECT \* FROM "univen_customers" WHERE id = \$1`).
		WillReturnError(errors.New("connection refused"))

	assert.Nil(t, svc.GetByID(context.Background(), "cust-1"))
}

func TestGetByIDEmptyID(t *testing.T) {
	svc, _ := newMockService(t)
	assert.Nil(t, svc.GetByID(context.Background(), ""))
}

func TestUpdate(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectExec(`UPDATE "univen_customers" SET "notes"=\$1 WHERE id = \$2`).
		WithArgs("called back, promised payment", "cust-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "univen_customers" WHERE id = \$1`).
		WillReturnRows(customerRows())

	customer, err := svc.Update(context.Background(), "cust-1", map[string]interface{}{
		"notes": "called back, promised payment",
	})
	require.NoError(t, err)
	assert.Equal(t, "cust-1", customer.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNotFound(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectExec(`UPDATE "univen_customers" SET "notes"=\$1 WHERE id = \$2`).
		WithArgs("x", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := svc.Update(context.Background(), "missing", map[string]interface{}{"notes": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateDropsUnknownAndImmutableFields(t *testing.T) {
	svc, _ := newMockService(t)

	_, err := svc.Update(context.Background(), "cust-1", map[string]interface{}{
		"bogus":     "value",
		"id":        "new-id",
		"createdAt": "2020-01-01",
	})
	assert.Error(t, err)
}

func TestColumnFor(t *testing.T) {
	tests := []struct {
		in     string
		column string
		ok     bool
	}{
		{"clientReference", "Client Reference", true},
		{"daysOverdue", "Days Overdue", true},
		{"fccExclVat", "FCC (excl VAT)", true},
		{"debtorUnderDC", "Debtor under DC?", true},
		{"created_at", "created_at", true},
		{"Surname", "Surname", true},
		{"no_such_field", "", false},
	}

	for _, tt := range tests {
		col, ok := ColumnFor(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.column, col, tt.in)
	}
}
