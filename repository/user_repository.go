package repository

import (
	"github.com/Eduardo-pena2000/parmesana-web-app/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByPhone(phone string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("phone = ?", phone).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByPhone(phone string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.User{}).Where("phone = ?", phone).Count(&n).Error
	return n, err
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&n).Error
	return n, err
}

func (r *UserRepository) Update(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(fields).Error
}

// AccrueLoyalty bumps the user's counters inside the order-creation
// transaction so the profile numbers cannot drift from order history.
func (r *UserRepository) AccrueLoyalty(tx *gorm.DB, userID uint, points int, spent decimal.Decimal) error {
	return tx.Model(&entity.User{}).Where("id = ?", userID).Updates(map[string]any{
		"loyalty_points": gorm.Expr("loyalty_points + ?", points),
		"total_orders":   gorm.Expr("total_orders + 1"),
		"total_spent":    gorm.Expr("total_spent + ?", spent),
	}).Error
}
