package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/victor823543/schedule-api/internal/model"
)

// ScheduleRepository 课表数据访问接口
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *model.Schedule) error
	GetByID(ctx context.Context, id string) (*model.Schedule, error)
	// GetDetail 读取课表并预加载四类成员列表
	GetDetail(ctx context.Context, id string) (*model.Schedule, error)
	List(ctx context.Context) ([]model.Schedule, error)
	// Delete 无条件删除：id 不存在时也视为成功
	Delete(ctx context.Context, id string) error
}

type scheduleRepo struct {
	db *gorm.DB
}

// NewScheduleRepo 创建 ScheduleRepository 实例
func NewScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) Create(ctx context.Context, schedule *model.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepo) GetByID(ctx context.Context, id string) (*model.Schedule, error) {
	var schedule model.Schedule
	err := r.db.WithContext(ctx).
		Where("schedule_id = ?", id).
		First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepo) GetDetail(ctx context.Context, id string) (*model.Schedule, error) {
	var schedule model.Schedule
	err := r.db.WithContext(ctx).
		Preload("Teachers").
		Preload("Groups").
		Preload("Locations").
		Preload("Courses").
		Where("schedule_id = ?", id).
		First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepo) List(ctx context.Context) ([]model.Schedule, error) {
	var schedules []model.Schedule
	err := r.db.WithContext(ctx).Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("schedule_id = ?", id).
		Delete(&model.Schedule{}).Error
}
