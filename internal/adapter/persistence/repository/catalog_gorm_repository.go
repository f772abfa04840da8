package repository

import (
	"context"
	"errors"

	"trade_credit/internal/domain/entities"
	"trade_credit/internal/infrastructure/credentials"
	"trade_credit/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogGormRepository is the relational twin of CatalogDynamoRepository.
type CatalogGormRepository struct {
	db *gorm.DB
}

var (
	_ interfaces.ICatalogService    = (*CatalogGormRepository)(nil)
	_ credentials.ICredentialStore = (*CatalogGormRepository)(nil)
)

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) GetItem(ctx context.Context, id string) (entities.CatalogItem, error) {
	var m catalogItemModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.CatalogItem{}, nil
	}
	if err != nil {
		return entities.CatalogItem{}, err
	}
	return entities.CatalogItem{ID: m.ID, Price: m.Price, OwnerID: m.OwnerID}, nil
}

func (r *CatalogGormRepository) Save(ctx context.Context, item entities.CatalogItem) error {
	m := catalogItemModel{ID: item.ID, Price: item.Price, OwnerID: item.OwnerID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error
}

func (r *CatalogGormRepository) GetPasswordHash(ctx context.Context, userID string) (string, error) {
	var m userCredentialModel
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return m.PasswordHash, nil
}

func (r *CatalogGormRepository) SetPasswordHash(ctx context.Context, userID, hash string) error {
	m := userCredentialModel{UserID: userID, PasswordHash: hash}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error
}
