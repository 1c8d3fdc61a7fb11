package service

import (
	"errors"

	"vetrico-go/internal/api/dto"
	"vetrico-go/internal/repository"

	"gorm.io/gorm"
)

type BookmarkService struct {
	bookmarkRepo *repository.BookmarkRepository
	videoRepo    *repository.VideoRepository
	likeRepo     *repository.LikeRepository
	commentRepo  *repository.CommentRepository
}

func NewBookmarkService(
	bookmarkRepo *repository.BookmarkRepository,
	videoRepo *repository.VideoRepository,
	likeRepo *repository.LikeRepository,
	commentRepo *repository.CommentRepository,
) *BookmarkService {
	return &BookmarkService{
		bookmarkRepo: bookmarkRepo,
		videoRepo:    videoRepo,
		likeRepo:     likeRepo,
		commentRepo:  commentRepo,
	}
}

// Toggle 收藏/取消收藏切换，无任何附带效果
func (s *BookmarkService) Toggle(userID, videoID int64) (*dto.ToggleResult, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	added, err := s.bookmarkRepo.Toggle(userID, videoID)
	if err != nil {
		return nil, err
	}

	count, err := s.bookmarkRepo.CountByVideo(videoID)
	if err != nil {
		return nil, err
	}

	return &dto.ToggleResult{Action: toggleAction(added), Count: count}, nil
}

// ListBookmarked 当前用户收藏的视频列表
func (s *BookmarkService) ListBookmarked(userID int64) ([]dto.VideoInfo, error) {
	ids, err := s.bookmarkRepo.ListVideoIDsByUser(userID)
	if err != nil {
		return nil, err
	}

	infos := make([]dto.VideoInfo, 0, len(ids))
	for _, id := range ids {
		video, err := s.videoRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}

		likeCount, err := s.likeRepo.CountByVideo(id)
		if err != nil {
			return nil, err
		}
		commentCount, err := s.commentRepo.CountByVideo(id)
		if err != nil {
			return nil, err
		}

		infos = append(infos, dto.VideoInfo{
			ID:           video.ID,
			AuthorID:     video.AuthorID,
			AuthorName:   video.Author.UserName,
			Caption:      video.Caption,
			Category:     video.Category,
			PlayURL:      video.PlayURL,
			CoverURL:     video.CoverURL,
			ViewCount:    video.ViewCount,
			LikeCount:    likeCount,
			CommentCount: commentCount,
			CreatedAt:    video.CreatedAt,
		})
	}
	return infos, nil
}
