package service

import (
	"testing"
	"time"

	"vetrico-go/internal/model"
	"vetrico-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCoinService(t *testing.T) (*CoinService, *repository.CoinRepository, *testEnv) {
	t.Helper()
	db := setupTestDB(t)
	coinRepo := repository.NewCoinRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	notificationService := NewNotificationService(notificationRepo, nil)
	svc := NewCoinService(coinRepo, videoRepo, notificationService, &testCoinCfg)
	return svc, coinRepo, &testEnv{db: db}
}

func TestCoinServiceCreditDebit(t *testing.T) {
	svc, _, env := newCoinService(t)
	user := createTestUser(t, env.db, "alice")

	require.NoError(t, svc.Credit(user.ID, 25))
	balance, err := svc.Balance(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(75), balance)

	require.NoError(t, svc.Debit(user.ID, 30))
	balance, err = svc.Balance(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(45), balance)
}

func TestCoinServiceDebitInsufficient(t *testing.T) {
	svc, _, env := newCoinService(t)
	user := createTestUser(t, env.db, "alice")

	err := svc.Debit(user.ID, 51)
	assert.ErrorIs(t, err, ErrInsufficientCoins)

	// 失败的扣款不留下任何变更
	balance, err := svc.Balance(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50), balance)
}

func TestCoinServiceBalanceUnknownUser(t *testing.T) {
	svc, _, _ := newCoinService(t)

	_, err := svc.Balance(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCoinServiceSendGift(t *testing.T) {
	svc, _, env := newCoinService(t)
	sender := createTestUser(t, env.db, "sender")
	author := createTestUser(t, env.db, "author")
	video := createTestVideo(t, env.db, author.ID, "clip")

	result, err := svc.SendGift(sender.ID, video.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), result.Amount)
	assert.Equal(t, int64(40), result.NewBalance)

	authorBalance, err := svc.Balance(author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(60), authorBalance)

	// 礼物通知与转账一起写入
	var notification model.Notification
	require.NoError(t, env.db.Where("recipient_id = ?", author.ID).First(&notification).Error)
	assert.Equal(t, model.NotificationTypeGift, notification.Type)
	assert.Equal(t, sender.ID, notification.SenderID)
	require.NotNil(t, notification.PostID)
	assert.Equal(t, video.ID, *notification.PostID)
	require.NotNil(t, notification.Amount)
	assert.Equal(t, int64(10), *notification.Amount)
}

func TestCoinServiceSendGiftToSelf(t *testing.T) {
	svc, _, env := newCoinService(t)
	author := createTestUser(t, env.db, "author")
	video := createTestVideo(t, env.db, author.ID, "clip")

	_, err := svc.SendGift(author.ID, video.ID)
	assert.ErrorIs(t, err, ErrGiftToSelf)
}

func TestCoinServiceSendGiftInsufficient(t *testing.T) {
	svc, _, env := newCoinService(t)
	sender := createTestUser(t, env.db, "sender")
	author := createTestUser(t, env.db, "author")
	video := createTestVideo(t, env.db, author.ID, "clip")

	require.NoError(t, svc.Debit(sender.ID, 45))

	_, err := svc.SendGift(sender.ID, video.ID)
	assert.ErrorIs(t, err, ErrInsufficientCoins)

	// 余额不足时扣款、入账、通知三者都不发生
	senderBalance, _ := svc.Balance(sender.ID)
	authorBalance, _ := svc.Balance(author.ID)
	assert.Equal(t, int64(5), senderBalance)
	assert.Equal(t, int64(50), authorBalance)

	var count int64
	env.db.Model(&model.Notification{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCoinServiceDailyBonus(t *testing.T) {
	svc, _, env := newCoinService(t)
	user := createTestUser(t, env.db, "alice")
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	granted, amount, err := svc.ApplyDailyBonusIfDue(user.ID, now)
	require.NoError(t, err)
	assert.True(t, granted)
	assert.Equal(t, int64(10), amount)

	balance, _ := svc.Balance(user.ID)
	assert.Equal(t, int64(60), balance)

	// 同一天再次调用不再发放
	granted, _, err = svc.ApplyDailyBonusIfDue(user.ID, now.Add(5*time.Hour))
	require.NoError(t, err)
	assert.False(t, granted)

	balance, _ = svc.Balance(user.ID)
	assert.Equal(t, int64(60), balance)

	// 第二天重新发放
	granted, _, err = svc.ApplyDailyBonusIfDue(user.ID, now.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.True(t, granted)

	balance, _ = svc.Balance(user.ID)
	assert.Equal(t, int64(70), balance)
}
