package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/wfap/offerdesk/internal/model"
)

// OfferArchiveSchema creates the raw offer archive table. Payloads are kept as TEXT so the
// record reads back byte for byte, including escapes JSONB rejects such as \u0000.
const OfferArchiveSchema = `
CREATE TABLE IF NOT EXISTS offer_archive (
    id BIGSERIAL PRIMARY KEY,
    session_id UUID NOT NULL,
    bank_id TEXT NOT NULL,
    offer_id TEXT NOT NULL,
    payload TEXT NOT NULL,
    received_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
    UNIQUE (session_id, bank_id, offer_id)
);

CREATE INDEX IF NOT EXISTS idx_offer_archive_session ON offer_archive (session_id);
`

// OfferArchiveRepository stores raw offer records in Postgres.
type OfferArchiveRepository struct {
	db *sqlx.DB
}

func NewOfferArchiveRepository(db *sqlx.DB) *OfferArchiveRepository {
	return &OfferArchiveRepository{db: db}
}

// keyColumn drops NUL bytes, which Postgres text columns cannot hold.
func keyColumn(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// archivedOfferRow scans the payload column into plain bytes before handing it to the model.
type archivedOfferRow struct {
	ID         int64     `db:"id"`
	SessionID  uuid.UUID `db:"session_id"`
	BankID     string    `db:"bank_id"`
	OfferID    string    `db:"offer_id"`
	Payload    []byte    `db:"payload"`
	ReceivedAt time.Time `db:"received_at"`
}

func (r *archivedOfferRow) toModel() model.ArchivedOffer {
	return model.ArchivedOffer{
		ID:         r.ID,
		SessionID:  r.SessionID,
		BankID:     r.BankID,
		OfferID:    r.OfferID,
		Payload:    append([]byte(nil), r.Payload...),
		ReceivedAt: r.ReceivedAt,
	}
}

// ReplaceSession swaps the archived batch for a session in one transaction.
// Duplicate keys within offers keep the last record.
func (r *OfferArchiveRepository) ReplaceSession(ctx context.Context, sessionID uuid.UUID, offers []model.ArchivedOffer) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin archive tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM offer_archive WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("clear archived offers: %w", err)
	}

	query := `
		INSERT INTO offer_archive (session_id, bank_id, offer_id, payload, received_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id, bank_id, offer_id)
		DO UPDATE SET payload = EXCLUDED.payload, received_at = EXCLUDED.received_at`

	for _, o := range offers {
		if _, err := tx.ExecContext(ctx, query,
			sessionID, keyColumn(o.BankID), keyColumn(o.OfferID), string(o.Payload), o.ReceivedAt,
		); err != nil {
			return fmt.Errorf("archive offer %s/%s: %w", o.BankID, o.OfferID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive tx: %w", err)
	}
	return nil
}

func (r *OfferArchiveRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]model.ArchivedOffer, error) {
	var rows []archivedOfferRow
	query := `
		SELECT id, session_id, bank_id, offer_id, payload, received_at
		FROM offer_archive
		WHERE session_id = $1
		ORDER BY id`
	if err := r.db.SelectContext(ctx, &rows, query, sessionID); err != nil {
		return nil, fmt.Errorf("list archived offers: %w", err)
	}

	offers := make([]model.ArchivedOffer, len(rows))
	for i := range rows {
		offers[i] = rows[i].toModel()
	}
	return offers, nil
}

func (r *OfferArchiveRepository) GetByKey(ctx context.Context, sessionID uuid.UUID, key model.OfferKey) (*model.ArchivedOffer, error) {
	var row archivedOfferRow
	query := `
		SELECT id, session_id, bank_id, offer_id, payload, received_at
		FROM offer_archive
		WHERE session_id = $1 AND bank_id = $2 AND offer_id = $3`
	err := r.db.GetContext(ctx, &row, query, sessionID, keyColumn(key.BankID), keyColumn(key.OfferID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArchivedOfferNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get archived offer: %w", err)
	}
	offer := row.toModel()
	return &offer, nil
}

func (r *OfferArchiveRepository) DeleteBySession(ctx context.Context, sessionID uuid.UUID) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM offer_archive WHERE session_id = $1`, sessionID)
	if err != nil {
		return 0, fmt.Errorf("delete archived offers: %w", err)
	}
	return result.RowsAffected()
}
