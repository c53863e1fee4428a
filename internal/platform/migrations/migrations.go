// Package migrations applies the relational schema for all bounded contexts
// in one place, mirroring the adapter-level records.
package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema. Intended to replace adapter-level automigrate in
// tests and tooling.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&orderRecord{},
		&userRecord{},
		&sessionRecord{},
		&dispatchRecord{},
	)
}

// Order schema mirrors the orders Postgres adapter.
type orderRecord struct {
	ID              string    `gorm:"primaryKey;column:id;type:varchar(36)"`
	OwnerID         string    `gorm:"column:user_id;type:varchar(36);index:idx_orders_owner_created"`
	CompanyName     string    `gorm:"column:company_name"`
	ContactName     string    `gorm:"column:contact_name"`
	MobileNumber    string    `gorm:"column:mobile_number;type:varchar(20)"`
	BottleType      string    `gorm:"column:bottle_type;type:varchar(16)"`
	Quantity        int       `gorm:"column:quantity"`
	DeliveryAddress string    `gorm:"column:delivery_address"`
	City            string    `gorm:"column:city"`
	State           string    `gorm:"column:state"`
	Pincode         string    `gorm:"column:pincode;type:varchar(10)"`
	Landmark        string    `gorm:"column:landmark"`
	DeliveryDate    string    `gorm:"column:delivery_date;type:varchar(10)"`
	Notes           string    `gorm:"column:notes"`
	Status          string    `gorm:"column:order_status;type:varchar(32);index"`
	CreatedAt       time.Time `gorm:"column:created_at;index:idx_orders_owner_created,sort:desc"`
}

func (orderRecord) TableName() string { return "orders" }

// User schema mirrors the users Postgres adapter.
type userRecord struct {
	ID          string    `gorm:"primaryKey;column:id;type:varchar(36)"`
	Email       string    `gorm:"column:email;uniqueIndex"`
	Password    string    `gorm:"column:password_hash"`
	CompanyName string    `gorm:"column:company_name"`
	Phone       string    `gorm:"column:phone;type:varchar(20)"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (userRecord) TableName() string { return "users" }

// Session schema mirrors the session store.
type sessionRecord struct {
	Token     string     `gorm:"primaryKey;column:token;size:512"`
	UserID    string     `gorm:"column:user_id;type:varchar(36);index"`
	ExpiresAt *time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time  `gorm:"column:created_at;index"`
	UpdatedAt time.Time  `gorm:"column:updated_at;index"`
}

func (sessionRecord) TableName() string { return "user_sessions" }

// Dispatch schema mirrors the notification journal.
type dispatchRecord struct {
	ID           int64          `gorm:"primaryKey;autoIncrement;column:id"`
	OrderID      string         `gorm:"column:order_id;type:varchar(36);index"`
	Channels     pq.StringArray `gorm:"column:channels;type:text[]"`
	Failures     pq.StringArray `gorm:"column:failures;type:text[]"`
	DispatchedAt time.Time      `gorm:"column:dispatched_at;index"`
}

func (dispatchRecord) TableName() string { return "notification_dispatches" }
