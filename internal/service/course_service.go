package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/victor823543/schedule-api/internal/dto"
	"github.com/victor823543/schedule-api/internal/model"
	"github.com/victor823543/schedule-api/internal/repository"
)

// CourseService 课程业务接口。
// 创建有两条路径：独立创建，以及课表作用域创建（同步维护课表成员列表）。
type CourseService interface {
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.IDResponse, error)
	List(ctx context.Context) ([]dto.CourseResponse, error)
	// Delete scheduleID 非空时同步摘除课表成员关系
	Delete(ctx context.Context, id, scheduleID string) error
	DeleteMany(ctx context.Context, ids []string) error
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.IDResponse, error) {
	// 课表作用域路径：写入前先校验课表存在
	if req.Schedule != "" {
		if _, err := s.repo.Schedule.GetByID(ctx, req.Schedule); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidSchedule
			}
			s.logger.Error("查询课表失败", zap.String("schedule", req.Schedule), zap.Error(err))
			return nil, err
		}
	}

	course := &model.Course{
		DisplayName: req.DisplayName,
		Subject:     req.Subject,
	}
	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("创建课程失败", zap.Error(err))
		return nil, err
	}

	if req.Schedule != "" {
		if err := s.repo.Course.Attach(ctx, req.Schedule, course.CourseID); err != nil {
			// 课程已持久化但未挂接到课表成员列表
			s.logger.Error("追加课表课程成员失败，课程保留为游离状态",
				zap.String("id", course.CourseID),
				zap.String("schedule", req.Schedule),
				zap.Error(err),
			)
			return nil, err
		}
	}

	return &dto.IDResponse{ID: course.CourseID}, nil
}

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, dto.CourseResponse{
			ID:          courses[i].CourseID,
			DisplayName: courses[i].DisplayName,
			Subject:     courses[i].Subject,
		})
	}

	return result, nil
}

func (s *courseService) Delete(ctx context.Context, id, scheduleID string) error {
	if scheduleID != "" {
		if _, err := s.repo.Schedule.GetByID(ctx, scheduleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidSchedule
			}
			s.logger.Error("查询课表失败", zap.String("schedule", scheduleID), zap.Error(err))
			return err
		}
	}

	// 删除不存在的课程视为成功
	if err := s.repo.Course.Delete(ctx, id); err != nil {
		s.logger.Error("删除课程失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if scheduleID != "" {
		if err := s.repo.Course.Detach(ctx, scheduleID, id); err != nil {
			s.logger.Error("摘除课表课程成员失败",
				zap.String("id", id),
				zap.String("schedule", scheduleID),
				zap.Error(err),
			)
			return err
		}
	}

	return nil
}

func (s *courseService) DeleteMany(ctx context.Context, ids []string) error {
	if err := s.repo.Course.DeleteMany(ctx, ids); err != nil {
		s.logger.Error("批量删除课程失败", zap.Int("count", len(ids)), zap.Error(err))
		return err
	}
	return nil
}
