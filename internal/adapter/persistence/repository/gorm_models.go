package repository

import (
	"time"

	"trade_credit/internal/domain/entities"

	"gorm.io/gorm"
)

type obligationRequestModel struct {
	ID              string `gorm:"primaryKey;size:64"`
	CatalogItemID   string `gorm:"size:64;not null;index"`
	VendorID        string `gorm:"size:64;not null;index"`
	RequesterID     string `gorm:"size:64;not null;index"`
	CreatedBy       string `gorm:"size:64;not null"`
	Quantity        int64  `gorm:"not null"`
	UnitPrice       int64  `gorm:"not null"`
	Total           int64  `gorm:"not null"`
	Note            string
	DefaultDeadline time.Time `gorm:"not null"`
	Status          string    `gorm:"size:16;not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DecidedAt       *time.Time
}

func (obligationRequestModel) TableName() string { return "obligation_requests" }

type paymentObligationModel struct {
	ID              string `gorm:"primaryKey;size:64"`
	RequestID       string `gorm:"size:64;not null;uniqueIndex"`
	VendorID        string `gorm:"size:64;not null;index"`
	RequesterID     string `gorm:"size:64;not null;index"`
	CatalogItemID   string `gorm:"size:64;not null"`
	Total           int64  `gorm:"not null"`
	AmountDue       int64  `gorm:"not null"`
	Status          string `gorm:"size:16;not null"`
	AcceptedAt      time.Time
	PaymentDeadline time.Time
	Version         int64 `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (paymentObligationModel) TableName() string { return "payment_obligations" }

type paymentTransactionModel struct {
	ID                string  `gorm:"primaryKey;size:64"`
	ObligationID      string  `gorm:"size:64;not null;uniqueIndex:idx_tx_obligation_seq,priority:1;uniqueIndex:idx_tx_obligation_idem,priority:1"`
	Sequence          int64   `gorm:"column:seq;not null;uniqueIndex:idx_tx_obligation_seq,priority:2"`
	IdempotencyKey    *string `gorm:"size:128;uniqueIndex:idx_tx_obligation_idem,priority:2"`
	PayerID           string  `gorm:"size:64;not null"`
	VendorID          string  `gorm:"size:64;not null"`
	RequesterID       string  `gorm:"size:64;not null"`
	AmountPaid        int64   `gorm:"not null"`
	AmountDueBefore   int64   `gorm:"not null"`
	AmountDueAfter    int64   `gorm:"not null"`
	ProviderReference string
	PaidAt            time.Time
}

func (paymentTransactionModel) TableName() string { return "payment_transactions" }

type catalogItemModel struct {
	ID      string `gorm:"primaryKey;size:64"`
	Price   int64  `gorm:"not null"`
	OwnerID string `gorm:"size:64;not null"`
}

func (catalogItemModel) TableName() string { return "catalog_items" }

type userCredentialModel struct {
	UserID       string `gorm:"primaryKey;size:64"`
	PasswordHash string `gorm:"not null"`
}

func (userCredentialModel) TableName() string { return "user_credentials" }

// Migrate creates the relational schema. The pending guard is a partial unique
// index, supported by both PostgreSQL and SQLite.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&obligationRequestModel{},
		&paymentObligationModel{},
		&paymentTransactionModel{},
		&catalogItemModel{},
		&userCredentialModel{},
	); err != nil {
		return err
	}
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_requests_pending_guard
		ON obligation_requests (requester_id, catalog_item_id) WHERE status = 'pending'`).Error
}

func toObligationRequestModel(r entities.ObligationRequest) obligationRequestModel {
	return obligationRequestModel{
		ID:              r.ID,
		CatalogItemID:   r.CatalogItemID,
		VendorID:        r.VendorID,
		RequesterID:     r.RequesterID,
		CreatedBy:       r.CreatedBy,
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
		Total:           r.Total,
		Note:            r.Note,
		DefaultDeadline: r.DefaultDeadline.UTC(),
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt.UTC(),
		UpdatedAt:       r.UpdatedAt.UTC(),
		DecidedAt:       utcPtr(r.DecidedAt),
	}
}

func (m obligationRequestModel) toEntity() entities.ObligationRequest {
	return entities.ObligationRequest{
		ID:              m.ID,
		CatalogItemID:   m.CatalogItemID,
		VendorID:        m.VendorID,
		RequesterID:     m.RequesterID,
		CreatedBy:       m.CreatedBy,
		Quantity:        m.Quantity,
		UnitPrice:       m.UnitPrice,
		Total:           m.Total,
		Note:            m.Note,
		DefaultDeadline: m.DefaultDeadline.UTC(),
		Status:          entities.RequestStatus(m.Status),
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
		DecidedAt:       utcPtr(m.DecidedAt),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func toPaymentObligationModel(o entities.PaymentObligation) paymentObligationModel {
	return paymentObligationModel{
		ID:              o.ID,
		RequestID:       o.RequestID,
		VendorID:        o.VendorID,
		RequesterID:     o.RequesterID,
		CatalogItemID:   o.CatalogItemID,
		Total:           o.Total,
		AmountDue:       o.AmountDue,
		Status:          string(o.Status),
		AcceptedAt:      o.AcceptedAt.UTC(),
		PaymentDeadline: o.PaymentDeadline.UTC(),
		Version:         o.Version,
		CreatedAt:       o.CreatedAt.UTC(),
		UpdatedAt:       o.UpdatedAt.UTC(),
	}
}

func (m paymentObligationModel) toEntity() entities.PaymentObligation {
	return entities.PaymentObligation{
		ID:              m.ID,
		RequestID:       m.RequestID,
		VendorID:        m.VendorID,
		RequesterID:     m.RequesterID,
		CatalogItemID:   m.CatalogItemID,
		Total:           m.Total,
		AmountDue:       m.AmountDue,
		Status:          entities.ObligationStatus(m.Status),
		AcceptedAt:      m.AcceptedAt.UTC(),
		PaymentDeadline: m.PaymentDeadline.UTC(),
		Version:         m.Version,
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
	}
}

func toPaymentTransactionModel(tx entities.PaymentTransaction) paymentTransactionModel {
	m := paymentTransactionModel{
		ID:                tx.ID,
		ObligationID:      tx.ObligationID,
		Sequence:          tx.Sequence,
		PayerID:           tx.PayerID,
		VendorID:          tx.VendorID,
		RequesterID:       tx.RequesterID,
		AmountPaid:        tx.AmountPaid,
		AmountDueBefore:   tx.AmountDueBefore,
		AmountDueAfter:    tx.AmountDueAfter,
		ProviderReference: tx.ProviderReference,
		PaidAt:            tx.PaidAt.UTC(),
	}
	if tx.IdempotencyKey != "" {
		key := tx.IdempotencyKey
		m.IdempotencyKey = &key
	}
	return m
}

func (m paymentTransactionModel) toEntity() entities.PaymentTransaction {
	tx := entities.PaymentTransaction{
		ID:                m.ID,
		ObligationID:      m.ObligationID,
		Sequence:          m.Sequence,
		PayerID:           m.PayerID,
		VendorID:          m.VendorID,
		RequesterID:       m.RequesterID,
		AmountPaid:        m.AmountPaid,
		AmountDueBefore:   m.AmountDueBefore,
		AmountDueAfter:    m.AmountDueAfter,
		ProviderReference: m.ProviderReference,
		PaidAt:            m.PaidAt.UTC(),
	}
	if m.IdempotencyKey != nil {
		tx.IdempotencyKey = *m.IdempotencyKey
	}
	return tx
}
