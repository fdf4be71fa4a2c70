package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/tradewinds-go/internal/domain/ledger"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// ledgerOrders maps the accepted QueryOptions.OrderBy values to SQL. Anything else
// falls back to newest first, so OrderBy never reaches the database verbatim.
var ledgerOrders = map[string]string{
	ledger.OrderOldestFirst: "timestamp ASC, day ASC",
	ledger.OrderNewestFirst: "timestamp DESC, day DESC",
	"day ASC":               "day ASC, timestamp ASC",
	"day DESC":              "day DESC, timestamp DESC",
	"amount ASC":            "amount ASC",
	"amount DESC":           "amount DESC",
}

// GormTransactionRepository keeps the ledger in the transactions table
type GormTransactionRepository struct {
	db *gorm.DB
}

func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

func (r *GormTransactionRepository) Create(ctx context.Context, transaction *ledger.Transaction) error {
	row, err := newTransactionModel(transaction)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("inserting transaction %s: %w", row.ID, err)
	}
	return nil
}

func (r *GormTransactionRepository) FindByID(ctx context.Context, id ledger.TransactionID, sessionID shared.SessionID) (*ledger.Transaction, error) {
	var row TransactionModel
	err := r.db.WithContext(ctx).
		Scopes(inSession(sessionID)).
		Where("id = ?", id.String()).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ledger.ErrTransactionNotFound{ID: id.String(), SessionID: sessionID.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("loading transaction %s: %w", id, err)
	}
	return row.toDomain()
}

func (r *GormTransactionRepository) FindBySession(ctx context.Context, sessionID shared.SessionID, opts ledger.QueryOptions) ([]*ledger.Transaction, error) {
	order, ok := ledgerOrders[opts.OrderBy]
	if !ok {
		order = ledgerOrders[ledger.OrderNewestFirst]
	}

	var rows []TransactionModel
	err := r.db.WithContext(ctx).
		Scopes(inSession(sessionID), matching(opts), page(opts.Limit, opts.Offset)).
		Order(order).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing transactions of %s: %w", sessionID, err)
	}

	out := make([]*ledger.Transaction, 0, len(rows))
	for i := range rows {
		tx, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, nil
}

func (r *GormTransactionRepository) CountBySession(ctx context.Context, sessionID shared.SessionID, opts ledger.QueryOptions) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&TransactionModel{}).
		Scopes(inSession(sessionID), matching(opts)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting transactions of %s: %w", sessionID, err)
	}
	return int(count), nil
}

func (r *GormTransactionRepository) ListSessions(ctx context.Context) ([]shared.SessionID, error) {
	var sessions []string
	err := r.db.WithContext(ctx).
		Model(&TransactionModel{}).
		Group("session_id").
		Order("MAX(timestamp) DESC").
		Pluck("session_id", &sessions).Error
	if err != nil {
		return nil, fmt.Errorf("listing ledger sessions: %w", err)
	}

	ids := make([]shared.SessionID, 0, len(sessions))
	for _, raw := range sessions {
		id, err := shared.ParseSessionID(raw)
		if err != nil {
			return nil, fmt.Errorf("transactions table holds bad session id %q: %w", raw, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func inSession(sessionID shared.SessionID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("session_id = ?", sessionID.String())
	}
}

// matching applies every non-nil filter of opts
func matching(opts ledger.QueryOptions) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if opts.FromDay != nil {
			db = db.Where("day >= ?", *opts.FromDay)
		}
		if opts.ToDay != nil {
			db = db.Where("day <= ?", *opts.ToDay)
		}
		if opts.Category != nil {
			db = db.Where("category = ?", string(*opts.Category))
		}
		if opts.TransactionType != nil {
			db = db.Where("transaction_type = ?", string(*opts.TransactionType))
		}
		if opts.RelatedEntityType != nil {
			db = db.Where("related_entity_type = ?", *opts.RelatedEntityType)
		}
		if opts.RelatedEntityID != nil {
			db = db.Where("related_entity_id = ?", *opts.RelatedEntityID)
		}
		return db
	}
}

func page(limit, offset int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit > 0 {
			db = db.Limit(limit)
		}
		if offset > 0 {
			db = db.Offset(offset)
		}
		return db
	}
}

func newTransactionModel(tx *ledger.Transaction) (*TransactionModel, error) {
	row := &TransactionModel{
		ID:                tx.ID().String(),
		SessionID:         tx.SessionID().String(),
		Timestamp:         tx.Timestamp(),
		Day:               tx.Day(),
		TransactionType:   tx.TransactionType().String(),
		Category:          tx.Category().String(),
		Amount:            tx.Amount(),
		BalanceBefore:     tx.BalanceBefore(),
		BalanceAfter:      tx.BalanceAfter(),
		Description:       tx.Description(),
		RelatedEntityType: tx.RelatedEntityType(),
		RelatedEntityID:   tx.RelatedEntityID(),
	}
	if meta := tx.Metadata(); meta != nil {
		encoded, err := json.Marshal(meta)
		if err != nil {
			return nil, fmt.Errorf("encoding metadata of transaction %s: %w", row.ID, err)
		}
		row.Metadata = string(encoded)
	}
	return row, nil
}

func (m *TransactionModel) toDomain() (*ledger.Transaction, error) {
	corrupt := func(field string, err error) error {
		return fmt.Errorf("transaction row %s has bad %s: %w", m.ID, field, err)
	}

	id, err := ledger.ParseTransactionID(m.ID)
	if err != nil {
		return nil, corrupt("id", err)
	}
	sessionID, err := shared.ParseSessionID(m.SessionID)
	if err != nil {
		return nil, corrupt("session_id", err)
	}
	kind, err := ledger.ParseTransactionType(m.TransactionType)
	if err != nil {
		return nil, corrupt("transaction_type", err)
	}
	category, err := ledger.ParseCategory(m.Category)
	if err != nil {
		return nil, corrupt("category", err)
	}

	// Metadata is informational; an unreadable blob is dropped instead of failing the read
	var meta map[string]interface{}
	if m.Metadata != "" && json.Unmarshal([]byte(m.Metadata), &meta) != nil {
		meta = nil
	}

	return ledger.ReconstructTransaction(id, category, ledger.TransactionParams{
		SessionID:         sessionID,
		Timestamp:         m.Timestamp,
		Day:               m.Day,
		Type:              kind,
		Amount:            m.Amount,
		BalanceBefore:     m.BalanceBefore,
		BalanceAfter:      m.BalanceAfter,
		Description:       m.Description,
		Metadata:          meta,
		RelatedEntityType: m.RelatedEntityType,
		RelatedEntityID:   m.RelatedEntityID,
	}), nil
}
