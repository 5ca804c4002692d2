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

// ── 课表模块业务错误 ──

var (
	ErrScheduleNotFound = errors.New("schedule not found")
)

// ScheduleService 课表业务接口
type ScheduleService interface {
	Create(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.IDResponse, error)
	List(ctx context.Context) ([]dto.ScheduleListItem, error)
	// Get 返回成员列表已解析的课表详情；id 不存在时返回 ErrScheduleNotFound
	Get(ctx context.Context, id string) (*dto.ScheduleDetailResponse, error)
	Delete(ctx context.Context, id string) error
}

type scheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService 创建 ScheduleService 实例
func NewScheduleService(repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, logger: logger}
}

func (s *scheduleService) Create(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.IDResponse, error) {
	schedule := &model.Schedule{DisplayName: req.DisplayName}

	if err := s.repo.Schedule.Create(ctx, schedule); err != nil {
		s.logger.Error("创建课表失败", zap.Error(err))
		return nil, err
	}

	return &dto.IDResponse{ID: schedule.ScheduleID}, nil
}

func (s *scheduleService) List(ctx context.Context) ([]dto.ScheduleListItem, error) {
	schedules, err := s.repo.Schedule.List(ctx)
	if err != nil {
		s.logger.Error("列出课表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ScheduleListItem, 0, len(schedules))
	for i := range schedules {
		result = append(result, dto.ScheduleListItem{
			ID:          schedules[i].ScheduleID,
			DisplayName: schedules[i].DisplayName,
		})
	}

	return result, nil
}

func (s *scheduleService) Get(ctx context.Context, id string) (*dto.ScheduleDetailResponse, error) {
	schedule, err := s.repo.Schedule.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("查询课表失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := &dto.ScheduleDetailResponse{
		ID:          schedule.ScheduleID,
		DisplayName: schedule.DisplayName,
		Teachers:    make([]dto.EntityResponse, 0, len(schedule.Teachers)),
		Groups:      make([]dto.EntityResponse, 0, len(schedule.Groups)),
		Locations:   make([]dto.EntityResponse, 0, len(schedule.Locations)),
		Courses:     make([]dto.CourseResponse, 0, len(schedule.Courses)),
	}
	for i := range schedule.Teachers {
		resp.Teachers = append(resp.Teachers, dto.EntityResponse{
			ID:          schedule.Teachers[i].TeacherID,
			DisplayName: schedule.Teachers[i].DisplayName,
		})
	}
	for i := range schedule.Groups {
		resp.Groups = append(resp.Groups, dto.EntityResponse{
			ID:          schedule.Groups[i].GroupID,
			DisplayName: schedule.Groups[i].DisplayName,
		})
	}
	for i := range schedule.Locations {
		resp.Locations = append(resp.Locations, dto.EntityResponse{
			ID:          schedule.Locations[i].LocationID,
			DisplayName: schedule.Locations[i].DisplayName,
		})
	}
	for i := range schedule.Courses {
		resp.Courses = append(resp.Courses, dto.CourseResponse{
			ID:          schedule.Courses[i].CourseID,
			DisplayName: schedule.Courses[i].DisplayName,
			Subject:     schedule.Courses[i].Subject,
		})
	}

	return resp, nil
}

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	// 删除不存在的课表视为成功；关联的日历事件不随之删除
	if err := s.repo.Schedule.Delete(ctx, id); err != nil {
		s.logger.Error("删除课表失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
