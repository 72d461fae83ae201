package repository

import (
	"context"
	"time"

	"rentwheels/internal/domain"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

type vehicleModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	OwnerID     int64     `gorm:"column:owner_id;index"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	Type        string    `gorm:"column:type"`
	Location    string    `gorm:"column:location;index"`
	PricePerDay float64   `gorm:"column:price_per_day"`
	IsAvailable bool      `gorm:"column:is_available"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (vehicleModel) TableName() string { return "vehicles" }

func toDomainVehicle(m vehicleModel) *domain.Vehicle {
	return &domain.Vehicle{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Title:       m.Title,
		Description: m.Description,
		Type:        domain.VehicleType(m.Type),
		Location:    m.Location,
		PricePerDay: m.PricePerDay,
		IsAvailable: m.IsAvailable,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toVehicleModel(v *domain.Vehicle) vehicleModel {
	return vehicleModel{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		Title:       v.Title,
		Description: v.Description,
		Type:        string(v.Type),
		Location:    v.Location,
		PricePerDay: v.PricePerDay,
		IsAvailable: v.IsAvailable,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	m := toVehicleModel(v)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*v = *toDomainVehicle(m)
	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var m vehicleModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainVehicle(m), nil
}

func (r *VehicleRepository) GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Vehicle, error) {
	var ms []vehicleModel
	tx := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainVehicles(ms), nil
}

func (r *VehicleRepository) GetByLocation(ctx context.Context, location string) ([]domain.Vehicle, error) {
	var ms []vehicleModel
	tx := r.db.WithContext(ctx).
		Where("location = ?", location).
		Order("price_per_day ASC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainVehicles(ms), nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	m := toVehicleModel(v)
	return r.db.WithContext(ctx).Save(&m).Error
}

func toDomainVehicles(ms []vehicleModel) []domain.Vehicle {
	out := make([]domain.Vehicle, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainVehicle(m))
	}
	return out
}
