package repository

import (
	"errors"

	"vetrico-go/internal/model"

	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create 创建举报，重复举报返回 duplicate=true
func (r *ReportRepository) Create(report *model.Report) (duplicate bool, err error) {
	if err := r.db.Create(report).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// List 查询全部举报，最新在前（管理端）
func (r *ReportRepository) List() ([]model.Report, error) {
	var reports []model.Report
	err := r.db.Preload("Reporter").
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

// Delete 删除举报，返回是否存在
func (r *ReportRepository) Delete(id int64) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&model.Report{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Count 举报总数
func (r *ReportRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Report{}).Count(&count).Error
	return count, err
}
