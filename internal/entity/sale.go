package entity

import (
	"context"
	"errors"
	"time"
)

var (
	ErrSaleNotFound = errors.New("sale not found")

	// ErrSaleOptedOut is returned by Upsert when the existing row for the
	// phone carries opted_out = TRUE. The row is left untouched in that case.
	ErrSaleOptedOut = errors.New("sale opted out")
)

// Sale is one lead/enrollment record, keyed by canonical phone.
type Sale struct {
	ID             int64     `json:"id"`
	ExternalSaleID string    `json:"external_sale_id"`
	Phone          string    `json:"phone"`
	AgentName      string    `json:"agent_name"`
	Office         string    `json:"office"`
	Source         string    `json:"source"`
	HealthID       string    `json:"health_id"`
	PlanType       string    `json:"plan_type"`
	OptedOut       bool      `json:"opted_out"`
	CreatedOn      time.Time `json:"created_on"`
}

// ListFilter narrows the admin listing. Dates are YYYY-MM-DD strings,
// Search matches phone or health id (case-insensitive substring).
type ListFilter struct {
	Limit    int
	FromDate string
	ToDate   string
	Today    bool
	Search   string
}

type SaleRepositoryInterface interface {
	Upsert(ctx context.Context, sale *Sale) error
	FindByPhone(ctx context.Context, phone string) (*Sale, error)
	FindByID(ctx context.Context, id int64) (*Sale, error)
	List(ctx context.Context, filter ListFilter) ([]Sale, error)
	Delete(ctx context.Context, id int64) error
	OptOutByPhone(ctx context.Context, phone string) error
}
