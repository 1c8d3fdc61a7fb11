package service

import (
	"errors"

	"vetrico-go/internal/api/dto"
	"vetrico-go/internal/model"
	"vetrico-go/internal/repository"
	"vetrico-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrReportNotFound = errors.New("举报记录不存在")

type ModerationService struct {
	reportRepo          *repository.ReportRepository
	userRepo            *repository.UserRepository
	videoRepo           *repository.VideoRepository
	likeRepo            *repository.LikeRepository
	notificationService *NotificationService
}

func NewModerationService(
	reportRepo *repository.ReportRepository,
	userRepo *repository.UserRepository,
	videoRepo *repository.VideoRepository,
	likeRepo *repository.LikeRepository,
	notificationService *NotificationService,
) *ModerationService {
	return &ModerationService{
		reportRepo:          reportRepo,
		userRepo:            userRepo,
		videoRepo:           videoRepo,
		likeRepo:            likeRepo,
		notificationService: notificationService,
	}
}

// ReportVideo 举报视频，同一用户重复举报同一视频只记一次
func (s *ModerationService) ReportVideo(reporterID, videoID int64, reason string) (*dto.ReportResult, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	duplicate, err := s.reportRepo.Create(&model.Report{
		ReporterID: reporterID,
		VideoID:    videoID,
		Reason:     reason,
	})
	if err != nil {
		return nil, err
	}

	if duplicate {
		return &dto.ReportResult{Duplicate: true, Message: "您已经举报过该视频"}, nil
	}
	return &dto.ReportResult{Duplicate: false, Message: "举报已受理"}, nil
}

// DismissReport 驳回举报
func (s *ModerationService) DismissReport(reportID int64) error {
	deleted, err := s.reportRepo.Delete(reportID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrReportNotFound
	}
	return nil
}

// ApproveVerification 通过认证申请并下发系统通知
func (s *ModerationService) ApproveVerification(adminID, userID int64) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.userRepo.SetVerificationStatus(userID, model.VerificationApproved, true); err != nil {
		return err
	}

	if err := s.notificationService.Notify(userID, adminID, model.NotificationTypeSystemApprove, nil, nil); err != nil {
		return err
	}

	logger.Info("认证申请已通过", zap.Int64("user_id", userID), zap.Int64("admin_id", adminID))
	return nil
}

// RejectVerification 驳回认证申请
func (s *ModerationService) RejectVerification(adminID, userID int64) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.userRepo.SetVerificationStatus(userID, model.VerificationRejected, false); err != nil {
		return err
	}

	logger.Info("认证申请已驳回", zap.Int64("user_id", userID), zap.Int64("admin_id", adminID))
	return nil
}

// AdminPanel 管理面板数据：全站统计、待审核认证、举报队列
func (s *ModerationService) AdminPanel() (*dto.AdminPanelData, error) {
	userCount, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	videoCount, err := s.videoRepo.Count()
	if err != nil {
		return nil, err
	}
	likeCount, err := s.likeRepo.Count()
	if err != nil {
		return nil, err
	}
	reportCount, err := s.reportRepo.Count()
	if err != nil {
		return nil, err
	}

	pending, err := s.userRepo.ListPendingVerification()
	if err != nil {
		return nil, err
	}
	pendingInfos := make([]dto.UserInfo, 0, len(pending))
	for i := range pending {
		pendingInfos = append(pendingInfos, toUserInfo(&pending[i]))
	}

	reports, err := s.reportRepo.List()
	if err != nil {
		return nil, err
	}
	reportInfos := make([]dto.ReportInfo, 0, len(reports))
	for i := range reports {
		r := &reports[i]
		reportInfos = append(reportInfos, dto.ReportInfo{
			ID:           r.ID,
			ReporterID:   r.ReporterID,
			ReporterName: r.Reporter.UserName,
			VideoID:      r.VideoID,
			Reason:       r.Reason,
			CreatedAt:    r.CreatedAt,
		})
	}

	return &dto.AdminPanelData{
		Stats: dto.AdminStats{
			Users:   userCount,
			Videos:  videoCount,
			Likes:   likeCount,
			Reports: reportCount,
		},
		PendingVerifications: pendingInfos,
		Reports:              reportInfos,
	}, nil
}

// DeleteUser 删除用户及其全部数据（管理端）
func (s *ModerationService) DeleteUser(userID int64) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.userRepo.DeleteCascade(userID)
}
