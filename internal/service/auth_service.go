package service

import (
	"errors"

	"vetrico-go/internal/api/dto"
	"vetrico-go/internal/config"
	"vetrico-go/internal/model"
	"vetrico-go/internal/repository"
	"vetrico-go/pkg/badwords"
	"vetrico-go/pkg/logger"
	"vetrico-go/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("用户名已被占用")
	ErrInvalidUsername    = errors.New("用户名包含不当词汇")
	ErrInvalidCredentials = errors.New("用户名或密码错误")
)

type AuthService struct {
	userRepo *repository.UserRepository
	filter   *badwords.Filter
	coinCfg  *config.CoinConfig
}

func NewAuthService(userRepo *repository.UserRepository, filter *badwords.Filter, coinCfg *config.CoinConfig) *AuthService {
	return &AuthService{userRepo: userRepo, filter: filter, coinCfg: coinCfg}
}

// Register 注册新用户，初始金币由配置决定
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthData, error) {
	if s.filter.Contains(req.Username) {
		return nil, ErrInvalidUsername
	}

	if _, err := s.userRepo.GetByUsername(req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserName: req.Username,
		Password: hash,
		Coins:    s.coinCfg.InitialBalance,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	logger.Info("用户注册成功", zap.Int64("user_id", user.ID), zap.String("username", user.UserName))

	return &dto.AuthData{Token: token, User: toUserInfo(user)}, nil
}

// Login 用户登录
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthData, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthData{Token: token, User: toUserInfo(user)}, nil
}

func toUserInfo(user *model.User) dto.UserInfo {
	return dto.UserInfo{
		ID:                 user.ID,
		Username:           user.UserName,
		Bio:                user.Bio,
		Avatar:             user.Avatar,
		Coins:              user.Coins,
		IsAdmin:            user.IsAdmin,
		IsVerified:         user.IsVerified,
		VerificationStatus: user.VerificationStatus,
	}
}
