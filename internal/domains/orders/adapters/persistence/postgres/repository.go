package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amrutdhara/orders-api/internal/domains/orders/domain"
	"github.com/amrutdhara/orders-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{})
	}
	return repo
}

// orderRecord maps the order aggregate to a relational table.
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

// Create inserts a new order, assigning the identifier and timestamp.
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := toRecord(order)
	record.ID = uuid.NewString()
	record.CreatedAt = time.Now().UTC()
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches an order by identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// ListByOwner returns the owner's orders, newest first.
func (r *Repository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	return orderRecord{
		ID:              order.ID,
		OwnerID:         order.OwnerID,
		CompanyName:     order.CompanyName,
		ContactName:     order.ContactName,
		MobileNumber:    order.MobileNumber,
		BottleType:      order.BottleType,
		Quantity:        order.Quantity,
		DeliveryAddress: order.DeliveryAddress,
		City:            order.City,
		State:           order.State,
		Pincode:         order.Pincode,
		Landmark:        order.Landmark,
		DeliveryDate:    order.DeliveryDate,
		Notes:           order.Notes,
		Status:          string(order.Status),
		CreatedAt:       order.CreatedAt,
	}
}

func (r orderRecord) toDomain() *domain.Order {
	return &domain.Order{
		ID:              r.ID,
		OwnerID:         r.OwnerID,
		CompanyName:     r.CompanyName,
		ContactName:     r.ContactName,
		MobileNumber:    r.MobileNumber,
		BottleType:      r.BottleType,
		Quantity:        r.Quantity,
		DeliveryAddress: r.DeliveryAddress,
		City:            r.City,
		State:           r.State,
		Pincode:         r.Pincode,
		Landmark:        r.Landmark,
		DeliveryDate:    r.DeliveryDate,
		Notes:           r.Notes,
		Status:          domain.Status(r.Status),
		CreatedAt:       r.CreatedAt,
	}
}
