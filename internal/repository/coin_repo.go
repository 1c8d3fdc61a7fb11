package repository

import (
	"vetrico-go/internal/model"

	"gorm.io/gorm"
)

// CoinRepository 金币余额操作
// 扣减一律用条件 UPDATE 实现，余额不可能为负
type CoinRepository struct {
	db *gorm.DB
}

func NewCoinRepository(db *gorm.DB) *CoinRepository {
	return &CoinRepository{db: db}
}

// GetBalance 查询余额
func (r *CoinRepository) GetBalance(userID int64) (int64, error) {
	var user model.User
	err := r.db.Select("coins").Where("id = ?", userID).First(&user).Error
	if err != nil {
		return 0, err
	}
	return user.Coins, nil
}

// Credit 余额增加
func (r *CoinRepository) Credit(userID, amount int64) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).
		UpdateColumn("coins", gorm.Expr("coins + ?", amount)).Error
}

// DebitIfEnough 余额足够时扣减，返回是否扣减成功
func (r *CoinRepository) DebitIfEnough(userID, amount int64) (bool, error) {
	result := r.db.Model(&model.User{}).
		Where("id = ? AND coins >= ?", userID, amount).
		UpdateColumn("coins", gorm.Expr("coins - ?", amount))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ClaimDailyBonus 领取每日签到奖励
// 比较和更新在一条 UPDATE 里完成，多标签页并发请求同一天最多成功一次
func (r *CoinRepository) ClaimDailyBonus(userID int64, today string, amount int64) (bool, error) {
	result := r.db.Model(&model.User{}).
		Where("id = ? AND (last_bonus_date IS NULL OR last_bonus_date <> ?)", userID, today).
		Updates(map[string]interface{}{
			"coins":           gorm.Expr("coins + ?", amount),
			"last_bonus_date": today,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// TransferGift 转账打赏：扣减、入账、礼物通知在同一事务内完成
// 余额不足时整个事务回滚，返回 ok=false 且不产生任何变更
func (r *CoinRepository) TransferGift(fromID, toID, amount int64, postID *int64) (ok bool, err error) {
	err = r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.User{}).
			Where("id = ? AND coins >= ?", fromID, amount).
			UpdateColumn("coins", gorm.Expr("coins - ?", amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			ok = false
			return nil
		}
		if err := tx.Model(&model.User{}).Where("id = ?", toID).
			UpdateColumn("coins", gorm.Expr("coins + ?", amount)).Error; err != nil {
			return err
		}
		notification := &model.Notification{
			RecipientID: toID,
			SenderID:    fromID,
			Type:        model.NotificationTypeGift,
			PostID:      postID,
			Amount:      &amount,
		}
		if err := tx.Create(notification).Error; err != nil {
			return err
		}
		ok = true
		return nil
	})
	return ok, err
}
