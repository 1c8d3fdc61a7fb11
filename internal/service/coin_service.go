package service

import (
	"errors"
	"time"

	"vetrico-go/internal/api/dto"
	"vetrico-go/internal/config"
	"vetrico-go/internal/repository"
	"vetrico-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrInsufficientCoins = errors.New("金币余额不足")
	ErrGiftToSelf        = errors.New("不能给自己的视频送礼")
)

type CoinService struct {
	coinRepo            *repository.CoinRepository
	videoRepo           *repository.VideoRepository
	notificationService *NotificationService
	cfg                 *config.CoinConfig
}

func NewCoinService(
	coinRepo *repository.CoinRepository,
	videoRepo *repository.VideoRepository,
	notificationService *NotificationService,
	cfg *config.CoinConfig,
) *CoinService {
	return &CoinService{
		coinRepo:            coinRepo,
		videoRepo:           videoRepo,
		notificationService: notificationService,
		cfg:                 cfg,
	}
}

// Balance 查询金币余额
func (s *CoinService) Balance(userID int64) (int64, error) {
	balance, err := s.coinRepo.GetBalance(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return balance, nil
}

// Credit 发放金币
func (s *CoinService) Credit(userID, amount int64) error {
	return s.coinRepo.Credit(userID, amount)
}

// Debit 扣减金币，余额不足时不产生任何变更
func (s *CoinService) Debit(userID, amount int64) error {
	ok, err := s.coinRepo.DebitIfEnough(userID, amount)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInsufficientCoins
	}
	return nil
}

// SendGift 给视频作者送礼
// 扣款、入账、礼物通知在同一事务内完成，余额不足时三者都不发生
func (s *CoinService) SendGift(fromID, videoID int64) (*dto.GiftResult, error) {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	if video.AuthorID == fromID {
		return nil, ErrGiftToSelf
	}

	ok, err := s.coinRepo.TransferGift(fromID, video.AuthorID, s.cfg.GiftAmount, &videoID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInsufficientCoins
	}

	s.notificationService.InvalidateUnread(video.AuthorID)

	balance, err := s.coinRepo.GetBalance(fromID)
	if err != nil {
		return nil, err
	}

	logger.Info("礼物发送成功",
		zap.Int64("from", fromID),
		zap.Int64("to", video.AuthorID),
		zap.Int64("video_id", videoID),
		zap.Int64("amount", s.cfg.GiftAmount))

	return &dto.GiftResult{Amount: s.cfg.GiftAmount, NewBalance: balance}, nil
}

// ApplyDailyBonusIfDue 当日首次访问发放签到奖励
// 依赖单条条件更新保证并发下同一天最多发放一次
func (s *CoinService) ApplyDailyBonusIfDue(userID int64, now time.Time) (bool, int64, error) {
	today := now.Format("2006-01-02")
	granted, err := s.coinRepo.ClaimDailyBonus(userID, today, s.cfg.DailyBonus)
	if err != nil {
		return false, 0, err
	}
	if granted {
		logger.Info("发放每日签到奖励", zap.Int64("user_id", userID), zap.Int64("amount", s.cfg.DailyBonus))
	}
	return granted, s.cfg.DailyBonus, nil
}
