package database

import (
	"context"
	"database/sql"

	"github.com/rvelasco1/salestext/internal/entity"
)

type OutboundMessageRepository struct {
	DB *sql.DB
}

func NewOutboundMessageRepository(db *sql.DB) *OutboundMessageRepository {
	return &OutboundMessageRepository{DB: db}
}

func (r *OutboundMessageRepository) Create(ctx context.Context, msg *entity.OutboundMessage) error {
	query := `
		INSERT INTO outbound_messages (sale_id, body, provider, provider_sid)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_on
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		msg.SaleID,
		msg.Body,
		msg.Provider,
		msg.ProviderSID,
	).Scan(&msg.ID, &msg.CreatedOn)
}

func (r *OutboundMessageRepository) ListBySale(ctx context.Context, saleID int64) ([]entity.OutboundMessage, error) {
	query := `
		SELECT id, sale_id, body, provider, provider_sid, created_on
		FROM outbound_messages
		WHERE sale_id = $1
		ORDER BY created_on DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []entity.OutboundMessage
	for rows.Next() {
		var m entity.OutboundMessage
		if err := rows.Scan(&m.ID, &m.SaleID, &m.Body, &m.Provider, &m.ProviderSID, &m.CreatedOn); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
