package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/amrutdhara/orders-api/internal/notify"
)

var _ notify.Journal = (*Journal)(nil)

// Journal persists dispatch diagnostics in PostgreSQL. Caller manages DB
// lifecycle.
type Journal struct {
	db *gorm.DB
}

func NewJournal(db *gorm.DB) *Journal {
	j := &Journal{db: db}
	if db != nil {
		_ = db.AutoMigrate(&dispatchRecord{})
	}
	return j
}

type dispatchRecord struct {
	ID           int64          `gorm:"primaryKey;autoIncrement;column:id"`
	OrderID      string         `gorm:"column:order_id;type:varchar(36);index"`
	Channels     pq.StringArray `gorm:"column:channels;type:text[]"`
	Failures     pq.StringArray `gorm:"column:failures;type:text[]"`
	DispatchedAt time.Time      `gorm:"column:dispatched_at;index"`
}

func (dispatchRecord) TableName() string { return "notification_dispatches" }

// Record appends one dispatch entry.
func (j *Journal) Record(ctx context.Context, entry notify.JournalEntry) error {
	if j == nil || j.db == nil {
		return errors.New("postgres dispatch journal not configured")
	}
	record := dispatchRecord{
		OrderID:      entry.OrderID,
		Channels:     pq.StringArray(entry.Channels),
		Failures:     pq.StringArray(entry.Failures),
		DispatchedAt: entry.DispatchedAt,
	}
	return j.db.WithContext(ctx).Create(&record).Error
}
