package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultPageSize caps a range read when the caller does not say otherwise.
const DefaultPageSize = 100

var ErrNotFound = errors.New("customer not found")

// searchFilter is the OR-combined substring filter the account list search
// applies. Matches the columns the legacy screen searched.
const searchFilter = `"Client Reference" ILIKE ? OR "First Name" ILIKE ? OR "Surname" ILIKE ? OR "ID Number" ILIKE ? OR "Cellphone" ILIKE ? OR "Email" ILIKE ?`

// CustomerService issues reads and single-row updates against the
// univen_customers table. The DB handle and logger are injected; the service
// holds no other state, so one instance serves all requests.
type CustomerService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCustomerService(db *gorm.DB, log *zap.Logger) *CustomerService {
	return &CustomerService{db: db, log: log}
}

// CustomerPage is one page of records plus the unfiltered (or filtered, for
// search) total. The count and the page rows come from separate reads and are
// not transactionally linked.
type CustomerPage struct {
	Customers  []Customer `json:"customers"`
	TotalCount int64      `json:"totalCount"`
}

// pageRange turns a 1-based page into offset+limit. Out-of-range inputs are
// clamped rather than rejected.
func pageRange(page, pageSize int) (offset, limit int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize, pageSize
}

// orderClause resolves a caller-supplied sort field against the table schema.
// Unknown fields fall back to the default newest-first ordering.
func orderClause(sortBy, sortOrder string) string {
	column, ok := ColumnFor(sortBy)
	if !ok {
		column = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	return fmt.Sprintf("%q %s", column, dir)
}

// GetByID returns the customer or nil. A store failure is logged and also
// surfaces as nil; callers cannot tell it apart from a missing row.
func (s *CustomerService) GetByID(ctx context.Context, id string) *Customer {
	if id == "" {
		return nil
	}

	var customer Customer
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&customer).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Error("fetching univen customer", zap.String("id", id), zap.Error(err))
		}
		return nil
	}
	return &customer
}

// ListPage returns one page of customers ordered by sortBy/sortOrder together
// with the full table count. On a store failure the page is empty, the count
// is zero and the error is non-nil.
func (s *CustomerService) ListPage(ctx context.Context, page, pageSize int, sortBy, sortOrder string) (CustomerPage, error) {
	offset, limit := pageRange(page, pageSize)

	var total int64
	if err := s.db.WithContext(ctx).Model(&Customer{}).Count(&total).Error; err != nil {
		s.log.Error("counting univen customers", zap.Error(err))
		return CustomerPage{}, err
	}

	var customers []Customer
	err := s.db.WithContext(ctx).
		Order(orderClause(sortBy, sortOrder)).
		Limit(limit).
		Offset(offset).
		Find(&customers).Error
	if err != nil {
		s.log.Error("fetching univen customers", zap.Int("page", page), zap.Error(err))
		return CustomerPage{}, err
	}

	return CustomerPage{Customers: customers, TotalCount: total}, nil
}

// Search returns the page of customers whose client reference, name, ID
// number, primary cellphone or primary email contains term, newest first.
// Empty terms are the caller's concern; they are expected to call ListPage.
func (s *CustomerService) Search(ctx context.Context, term string, page, pageSize int) (CustomerPage, error) {
	offset, limit := pageRange(page, pageSize)
	like := "%" + term + "%"

	var total int64
	err := s.db.WithContext(ctx).Model(&Customer{}).
		Where(searchFilter, like, like, like, like, like, like).
		Count(&total).Error
	if err != nil {
		s.log.Error("counting univen customer matches", zap.Error(err))
		return CustomerPage{}, err
	}

	var customers []Customer
	err = s.db.WithContext(ctx).
		Where(searchFilter, like, like, like, like, like, like).
		Order(`"created_at" DESC`).
		Limit(limit).
		Offset(offset).
		Find(&customers).Error
	if err != nil {
		s.log.Error("searching univen customers", zap.Error(err))
		return CustomerPage{}, err
	}

	return CustomerPage{Customers: customers, TotalCount: total}, nil
}

// Update applies a partial update to one customer and returns the updated
// row. Keys may be API field names or raw column identifiers; anything
// outside the table schema, and the immutable id/audit columns, is dropped.
// Last write wins, there is no concurrency check.
func (s *CustomerService) Update(ctx context.Context, id string, updates map[string]interface{}) (*Customer, error) {
	if id == "" {
		return nil, ErrNotFound
	}

	fields := make(map[string]interface{}, len(updates))
	for name, value := range updates {
		column, ok := ColumnFor(name)
		if !ok {
			continue
		}
		switch column {
		case "id", "created_at", "updated_at":
			continue
		}
		fields[column] = value
	}
	if len(fields) == 0 {
		return nil, errors.New("no updatable fields in request")
	}

	result := s.db.WithContext(ctx).Model(&Customer{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		s.log.Error("updating univen customer", zap.String("id", id), zap.Error(result.Error))
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var customer Customer
	if err := s.db.WithContext(ctx).Where("id = ?", id).Take(&customer).Error; err != nil {
		s.log.Error("reloading univen customer", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &customer, nil
}
