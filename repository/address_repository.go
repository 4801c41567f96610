package repository

import (
	"github.com/Eduardo-pena2000/parmesana-web-app/entity"
	"gorm.io/gorm"
)

type AddressRepository struct{ DB *gorm.DB }

func NewAddressRepository(db *gorm.DB) *AddressRepository { return &AddressRepository{DB: db} }

// FindForUser only returns addresses owned by the requesting user; checkout
// must not be able to ship to somebody else's address id.
func (r *AddressRepository) FindForUser(id, userID uint) (*entity.Address, error) {
	var a entity.Address
	err := r.DB.Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepository) ListForUser(userID uint) ([]entity.Address, error) {
	var out []entity.Address
	err := r.DB.Where("user_id = ? AND is_active = ?", userID, true).
		Order("is_default DESC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *AddressRepository) Create(a *entity.Address) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if a.IsDefault {
			if err := tx.Model(&entity.Address{}).
				Where("user_id = ?", a.UserID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(a).Error
	})
}

func (r *AddressRepository) Update(id, userID uint, fields map[string]any) error {
	return r.DB.Model(&entity.Address{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields).Error
}

// Delete is a soft deactivate; orders keep their own address snapshot anyway.
func (r *AddressRepository) Delete(id, userID uint) error {
	return r.DB.Model(&entity.Address{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_active", false).Error
}
