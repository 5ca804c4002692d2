package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/victor823543/schedule-api/internal/model"
)

// CourseRepository 课程数据访问接口
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, id string) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	// Delete 无条件删除：id 不存在时也视为成功
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
	// Attach / Detach 课表成员列表的原子追加 / 摘除
	Attach(ctx context.Context, scheduleID, id string) error
	Detach(ctx context.Context, scheduleID, id string) error
}

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepo) GetByID(ctx context.Context, id string) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Where("course_id = ?", id).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).Find(&courses).Error
	return courses, err
}

func (r *courseRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("course_id = ?", id).
		Delete(&model.Course{}).Error
}

func (r *courseRepo) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("course_id IN ?", ids).
		Delete(&model.Course{}).Error
}

func (r *courseRepo) Attach(ctx context.Context, scheduleID, id string) error {
	return r.db.WithContext(ctx).
		Exec("INSERT INTO schedule_courses (schedule_id, course_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
			scheduleID, id).Error
}

func (r *courseRepo) Detach(ctx context.Context, scheduleID, id string) error {
	return r.db.WithContext(ctx).
		Exec("DELETE FROM schedule_courses WHERE schedule_id = ? AND course_id = ?",
			scheduleID, id).Error
}
