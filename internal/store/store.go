// Package store persists canonical transactions in a SQLite database.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pennywise-dev/pennywise/internal/id"
	"github.com/pennywise-dev/pennywise/internal/model"
)

// Record is the stored form of a canonical transaction. Amount is the raw
// decimal, never a display string.
type Record struct {
	gorm.Model
	BatchID     string `gorm:"index;not null"`
	Ref         string `gorm:"uniqueIndex;not null"`
	Description string `gorm:"not null"`
	Date        time.Time
	Amount      decimal.Decimal `gorm:"type:text;not null"`
	AccountName string          `gorm:"index;not null"`
	Category    string
}

// Transaction converts the record back to the canonical model.
func (r Record) Transaction() model.Transaction {
	return model.Transaction{
		Description: r.Description,
		Date:        r.Date.UTC(),
		Amount:      r.Amount,
		AccountName: r.AccountName,
		Category:    r.Category,
	}
}

// Store wraps the transaction database.
type Store struct {
	db *gorm.DB
}

// Open connects to the SQLite database at path and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveBatch writes all transactions of one import inside a single database
// transaction. Either every row is stored or none is.
func (s *Store) SaveBatch(ctx context.Context, batchID string, txns []model.Transaction) error {
	if batchID == "" {
		return errors.New("batch ID is required")
	}
	if len(txns) == 0 {
		return nil
	}

	records := make([]Record, len(txns))
	for i, txn := range txns {
		records[i] = Record{
			BatchID:     batchID,
			Ref:         id.FormatRef(batchID, i+1),
			Description: txn.Description,
			Date:        txn.Date,
			Amount:      txn.Amount,
			AccountName: txn.AccountName,
			Category:    txn.Category,
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(records, 100).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save batch %s: %w", batchID, err)
	}
	return nil
}

// Transactions returns every stored transaction in insertion order.
func (s *Store) Transactions(ctx context.Context) ([]model.Transaction, error) {
	var records []Record
	if err := s.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	txns := make([]model.Transaction, len(records))
	for i, r := range records {
		txns[i] = r.Transaction()
	}
	return txns, nil
}

// Batch returns the records stored for one import, ordered by reference.
func (s *Store) Batch(ctx context.Context, batchID string) ([]Record, error) {
	var records []Record
	err := s.db.WithContext(ctx).Where("batch_id = ?", batchID).Order("ref").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load batch %s: %w", batchID, err)
	}
	return records, nil
}

// Count returns the number of stored transactions.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&Record{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return n, nil
}
