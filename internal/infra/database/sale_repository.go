package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rvelasco1/salestext/internal/entity"
)

const saleColumns = "id, external_sale_id, phone, agent_name, office, source, health_id, plan_type, opted_out, created_on"

type SaleRepository struct {
	DB *sql.DB
}

func NewSaleRepository(db *sql.DB) *SaleRepository {
	return &SaleRepository{DB: db}
}

// Upsert records a sale keyed by canonical phone in a single statement.
// The unique index on phone makes concurrent submissions for the same new
// number converge on one row, and the opted_out guard keeps a row untouched
// once the lead has opted out — the statement then returns no row and the
// caller gets ErrSaleOptedOut.
func (r *SaleRepository) Upsert(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (external_sale_id, phone, agent_name, office, source, health_id, plan_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (phone)
		DO UPDATE SET
			external_sale_id = EXCLUDED.external_sale_id,
			agent_name = EXCLUDED.agent_name,
			office = EXCLUDED.office,
			source = EXCLUDED.source,
			health_id = EXCLUDED.health_id,
			plan_type = EXCLUDED.plan_type
		WHERE sales.opted_out = FALSE
		RETURNING id, opted_out, created_on
	`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		sale.ExternalSaleID,
		sale.Phone,
		sale.AgentName,
		sale.Office,
		sale.Source,
		sale.HealthID,
		sale.PlanType,
	).Scan(&sale.ID, &sale.OptedOut, &sale.CreatedOn)

	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrSaleOptedOut
	}
	return err
}

func (r *SaleRepository) FindByPhone(ctx context.Context, phone string) (*entity.Sale, error) {
	query := fmt.Sprintf("SELECT %s FROM sales WHERE phone = $1", saleColumns)
	return scanSale(r.DB.QueryRowContext(ctx, query, phone))
}

func (r *SaleRepository) FindByID(ctx context.Context, id int64) (*entity.Sale, error) {
	query := fmt.Sprintf("SELECT %s FROM sales WHERE id = $1", saleColumns)
	return scanSale(r.DB.QueryRowContext(ctx, query, id))
}

// List returns the latest sales, newest first. Filters mirror the admin
// page: date window, today-only, and a substring search on phone/health id.
func (r *SaleRepository) List(ctx context.Context, filter entity.ListFilter) ([]entity.Sale, error) {
	query := fmt.Sprintf("SELECT %s FROM sales", saleColumns)

	var where []string
	var params []interface{}

	if filter.Today {
		where = append(where, "DATE(created_on) = CURRENT_DATE")
	}
	switch {
	case filter.FromDate != "" && filter.ToDate != "":
		params = append(params, filter.FromDate, filter.ToDate)
		where = append(where, fmt.Sprintf("DATE(created_on) BETWEEN $%d AND $%d", len(params)-1, len(params)))
	case filter.FromDate != "":
		params = append(params, filter.FromDate)
		where = append(where, fmt.Sprintf("DATE(created_on) >= $%d", len(params)))
	case filter.ToDate != "":
		params = append(params, filter.ToDate)
		where = append(where, fmt.Sprintf("DATE(created_on) <= $%d", len(params)))
	}
	if filter.Search != "" {
		params = append(params, "%"+filter.Search+"%")
		n := len(params)
		where = append(where, fmt.Sprintf("(phone ILIKE $%d OR health_id ILIKE $%d)", n, n))
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	params = append(params, limit)
	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d", len(params))

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.ExternalSaleID, &s.Phone, &s.AgentName, &s.Office,
			&s.Source, &s.HealthID, &s.PlanType, &s.OptedOut, &s.CreatedOn,
		); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *SaleRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM sales WHERE id = $1", id)
	return err
}

// OptOutByPhone flips the opt-out flag for a phone. Zero rows affected
// (unknown sender) is a successful no-op.
func (r *SaleRepository) OptOutByPhone(ctx context.Context, phone string) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE sales SET opted_out = TRUE WHERE phone = $1", phone)
	return err
}

func scanSale(row *sql.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.ExternalSaleID, &s.Phone, &s.AgentName, &s.Office,
		&s.Source, &s.HealthID, &s.PlanType, &s.OptedOut, &s.CreatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrSaleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
