package billing

import (
	"fmt"

	"gorm.io/gorm"
)

// HistoryQuery pages through a user's payments newest first. BeforeID is
// exclusive; zero starts from the newest payment.
type HistoryQuery struct {
	UserID   uint
	Status   string
	BeforeID uint
	Limit    int
}

// History returns up to q.Limit payments and whether older ones remain.
func History(db *gorm.DB, q HistoryQuery) ([]Payment, bool, error) {
	tx := db.Where("user_id = ?", q.UserID)
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.BeforeID > 0 {
		tx = tx.Where("id < ?", q.BeforeID)
	}

	var list []Payment
	if err := tx.Order("id DESC").Limit(q.Limit + 1).Find(&list).Error; err != nil {
		return nil, false, fmt.Errorf("load payments for user %d: %w", q.UserID, err)
	}
	if len(list) > q.Limit {
		return list[:q.Limit], true, nil
	}
	return list, false, nil
}
