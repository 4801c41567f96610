package repository

import (
	"time"

	"github.com/Eduardo-pena2000/parmesana-web-app/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderByNumber(userID uint, number string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("order_number = ? AND user_id = ?", number, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListOrdersForUser(userID uint, status string, page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	q := r.DB.Model(&entity.Order{}).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	err := q.Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&orders).Error
	return orders, total, err
}

// UpdateStatusGuard flips the status only when the current one matches;
// RowsAffected == 0 means someone else got there first.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	fields := map[string]any{"status": to}
	if to == entity.OrderDelivered {
		now := time.Now()
		fields["completed_at"] = &now
	}
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) SaveOrder(o *entity.Order) error {
	return r.DB.Save(o).Error
}

func (r *OrderRepository) CountByStatus(userID uint, status string) (int64, error) {
	var n int64
	q := r.DB.Model(&entity.Order{}).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Count(&n).Error
	return n, err
}

// TotalsForUser sums the totals of delivered/confirmed orders for the stats
// endpoint. Summed in SQL; totals are stored as decimal(10,2) text.
func (r *OrderRepository) TotalsForUser(userID uint) (string, error) {
	var row struct{ Spent string }
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total), 0) AS spent").
		Where("user_id = ? AND status IN ?", userID, []string{entity.OrderDelivered, entity.OrderConfirmed}).
		Scan(&row).Error
	return row.Spent, err
}
