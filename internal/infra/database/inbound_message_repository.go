package database

import (
	"context"
	"database/sql"

	"github.com/rvelasco1/salestext/internal/entity"
)

type InboundMessageRepository struct {
	DB *sql.DB
}

func NewInboundMessageRepository(db *sql.DB) *InboundMessageRepository {
	return &InboundMessageRepository{DB: db}
}

func (r *InboundMessageRepository) Create(ctx context.Context, msg *entity.InboundMessage) error {
	query := `
		INSERT INTO inbound_messages (sale_id, from_phone, body)
		VALUES ($1, $2, $3)
		RETURNING id, created_on
	`

	// sale_id lands as NULL when the sender matched no sale
	return r.DB.QueryRowContext(
		ctx,
		query,
		msg.SaleID,
		msg.FromPhone,
		msg.Body,
	).Scan(&msg.ID, &msg.CreatedOn)
}

func (r *InboundMessageRepository) ListBySale(ctx context.Context, saleID int64) ([]entity.InboundMessage, error) {
	query := `
		SELECT id, sale_id, from_phone, body, created_on
		FROM inbound_messages
		WHERE sale_id = $1
		ORDER BY created_on DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []entity.InboundMessage
	for rows.Next() {
		var m entity.InboundMessage
		if err := rows.Scan(&m.ID, &m.SaleID, &m.FromPhone, &m.Body, &m.CreatedOn); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
