package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/victor823543/schedule-api/internal/model"
	"github.com/victor823543/schedule-api/internal/repository"
)

// ── Mock ScheduleRepository ──

type mockScheduleRepo struct {
	schedules map[string]*model.Schedule
	seq       int
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{schedules: make(map[string]*model.Schedule)}
}

func (m *mockScheduleRepo) Create(_ context.Context, schedule *model.Schedule) error {
	if schedule.ScheduleID == "" {
		m.seq++
		schedule.ScheduleID = fmt.Sprintf("sched-%d", m.seq)
	}
	m.schedules[schedule.ScheduleID] = schedule
	return nil
}

func (m *mockScheduleRepo) GetByID(_ context.Context, id string) (*model.Schedule, error) {
	if s, ok := m.schedules[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) GetDetail(_ context.Context, id string) (*model.Schedule, error) {
	if s, ok := m.schedules[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) List(_ context.Context) ([]model.Schedule, error) {
	var result []model.Schedule
	for _, s := range m.schedules {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockScheduleRepo) Delete(_ context.Context, id string) error {
	delete(m.schedules, id)
	return nil
}

// ── Mock EntityRepository ──

// mockEntityRepo 基于 map 的叶子实体仓储；memberships 模拟课表成员关系表，
// key 为 "scheduleID|entityID"（复合主键语义：重复追加为 no-op）。
type mockEntityRepo struct {
	prefix      string
	entities    map[string]*model.EntityRef
	memberships map[string]bool
	seq         int

	attachErr error // 注入挂接失败
}

func newMockEntityRepo(prefix string) *mockEntityRepo {
	return &mockEntityRepo{
		prefix:      prefix,
		entities:    make(map[string]*model.EntityRef),
		memberships: make(map[string]bool),
	}
}

func membershipKey(scheduleID, id string) string {
	return scheduleID + "|" + id
}

func (m *mockEntityRepo) Create(_ context.Context, displayName string) (string, error) {
	m.seq++
	id := fmt.Sprintf("%s-%d", m.prefix, m.seq)
	m.entities[id] = &model.EntityRef{ID: id, DisplayName: displayName}
	return id, nil
}

func (m *mockEntityRepo) GetByID(_ context.Context, id string) (*model.EntityRef, error) {
	if e, ok := m.entities[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEntityRepo) List(_ context.Context) ([]model.EntityRef, error) {
	var result []model.EntityRef
	for _, e := range m.entities {
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockEntityRepo) Delete(_ context.Context, id string) error {
	delete(m.entities, id)
	// 级联语义：叶子删除后成员关系行一并消失
	for key := range m.memberships {
		if strings.HasSuffix(key, "|"+id) {
			delete(m.memberships, key)
		}
	}
	return nil
}

func (m *mockEntityRepo) Attach(_ context.Context, scheduleID, id string) error {
	if m.attachErr != nil {
		return m.attachErr
	}
	m.memberships[membershipKey(scheduleID, id)] = true
	return nil
}

func (m *mockEntityRepo) Detach(_ context.Context, scheduleID, id string) error {
	delete(m.memberships, membershipKey(scheduleID, id))
	return nil
}

func (m *mockEntityRepo) isMember(scheduleID, id string) bool {
	return m.memberships[membershipKey(scheduleID, id)]
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses     map[string]*model.Course
	memberships map[string]bool
	seq         int
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{
		courses:     make(map[string]*model.Course),
		memberships: make(map[string]bool),
	}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	if course.CourseID == "" {
		m.seq++
		course.CourseID = fmt.Sprintf("course-%d", m.seq)
	}
	m.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id string) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.courses {
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id string) error {
	delete(m.courses, id)
	return nil
}

func (m *mockCourseRepo) DeleteMany(_ context.Context, ids []string) error {
	for _, id := range ids {
		delete(m.courses, id)
	}
	return nil
}

func (m *mockCourseRepo) Attach(_ context.Context, scheduleID, id string) error {
	m.memberships[membershipKey(scheduleID, id)] = true
	return nil
}

func (m *mockCourseRepo) Detach(_ context.Context, scheduleID, id string) error {
	delete(m.memberships, membershipKey(scheduleID, id))
	return nil
}

func (m *mockCourseRepo) isMember(scheduleID, id string) bool {
	return m.memberships[membershipKey(scheduleID, id)]
}

// ── Mock CalendarEventRepository ──

// mockCalendarEventRepo 持有各叶子仓储的引用以模拟 ListWeek 的关联预加载。
type mockCalendarEventRepo struct {
	events       map[string]*model.CalendarEvent
	relTeachers  map[string][]string
	relGroups    map[string][]string
	relLocations map[string][]string
	seq          int

	schedules *mockScheduleRepo
	courses   *mockCourseRepo
	teachers  *mockEntityRepo
	groups    *mockEntityRepo
	locations *mockEntityRepo
}

func newMockCalendarEventRepo(s *mockScheduleRepo, c *mockCourseRepo, t, g, l *mockEntityRepo) *mockCalendarEventRepo {
	return &mockCalendarEventRepo{
		events:       make(map[string]*model.CalendarEvent),
		relTeachers:  make(map[string][]string),
		relGroups:    make(map[string][]string),
		relLocations: make(map[string][]string),
		schedules:    s,
		courses:      c,
		teachers:     t,
		groups:       g,
		locations:    l,
	}
}

// dedupe 模拟关系表复合主键的 ON CONFLICT DO NOTHING 语义
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	var result []string
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}

func (m *mockCalendarEventRepo) Create(_ context.Context, event *model.CalendarEvent, teacherIDs, groupIDs, locationIDs []string) error {
	if event.EventID == "" {
		m.seq++
		event.EventID = fmt.Sprintf("event-%d", m.seq)
	}
	m.events[event.EventID] = event
	m.relTeachers[event.EventID] = dedupe(teacherIDs)
	m.relGroups[event.EventID] = dedupe(groupIDs)
	m.relLocations[event.EventID] = dedupe(locationIDs)
	return nil
}

func (m *mockCalendarEventRepo) GetByID(_ context.Context, id string) (*model.CalendarEvent, error) {
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (m *mockCalendarEventRepo) ListWeek(_ context.Context, scheduleID string, start, end time.Time, filter repository.WeekFilter) ([]model.CalendarEvent, error) {
	var result []model.CalendarEvent
	for id, e := range m.events {
		if e.BelongsTo != scheduleID {
			continue
		}
		// [start, end) 半开窗口
		if e.StartAt.Before(start) || !e.StartAt.Before(end) {
			continue
		}
		if filter.LocationID != "" && !contains(m.relLocations[id], filter.LocationID) {
			continue
		}
		if filter.TeacherID != "" && !contains(m.relTeachers[id], filter.TeacherID) {
			continue
		}
		if filter.GroupID != "" && !contains(m.relGroups[id], filter.GroupID) {
			continue
		}
		result = append(result, m.preload(e))
	}
	return result, nil
}

// preload 模拟关联预加载：引用落空的课表/课程保持 nil
func (m *mockCalendarEventRepo) preload(e *model.CalendarEvent) model.CalendarEvent {
	loaded := *e
	if s, ok := m.schedules.schedules[e.BelongsTo]; ok {
		loaded.Schedule = s
	}
	if e.CourseID != nil {
		if c, ok := m.courses.courses[*e.CourseID]; ok {
			loaded.Course = c
		}
	}
	for _, id := range m.relTeachers[e.EventID] {
		if ref, ok := m.teachers.entities[id]; ok {
			loaded.Teachers = append(loaded.Teachers, model.Teacher{TeacherID: ref.ID, DisplayName: ref.DisplayName})
		}
	}
	for _, id := range m.relGroups[e.EventID] {
		if ref, ok := m.groups.entities[id]; ok {
			loaded.Groups = append(loaded.Groups, model.Group{GroupID: ref.ID, DisplayName: ref.DisplayName})
		}
	}
	for _, id := range m.relLocations[e.EventID] {
		if ref, ok := m.locations.entities[id]; ok {
			loaded.Locations = append(loaded.Locations, model.Location{LocationID: ref.ID, DisplayName: ref.DisplayName})
		}
	}
	return loaded
}

func (m *mockCalendarEventRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	e, ok := m.events[id]
	if !ok {
		return nil
	}
	for key, value := range fields {
		switch key {
		case "display_name":
			e.DisplayName = value.(string)
		case "start_at":
			e.StartAt = value.(time.Time)
		case "end_at":
			e.EndAt = value.(time.Time)
		case "duration":
			e.Duration = value.(int)
		case "event_type":
			v := value.(string)
			e.EventType = &v
		case "course_id":
			v := value.(string)
			e.CourseID = &v
		case "color":
			e.Color = value.(string)
		case "cancelled":
			e.Cancelled = value.(bool)
		}
	}
	return nil
}

func (m *mockCalendarEventRepo) ReplaceTeachers(_ context.Context, eventID string, ids []string) error {
	m.relTeachers[eventID] = dedupe(ids)
	return nil
}

func (m *mockCalendarEventRepo) ReplaceGroups(_ context.Context, eventID string, ids []string) error {
	m.relGroups[eventID] = dedupe(ids)
	return nil
}

func (m *mockCalendarEventRepo) ReplaceLocations(_ context.Context, eventID string, ids []string) error {
	m.relLocations[eventID] = dedupe(ids)
	return nil
}

func (m *mockCalendarEventRepo) Delete(_ context.Context, id string) error {
	delete(m.events, id)
	delete(m.relTeachers, id)
	delete(m.relGroups, id)
	delete(m.relLocations, id)
	return nil
}

// ── 组装 ──

// mockRepos 聚合全部 mock，便于测试用例直接触达底层状态
type mockRepos struct {
	schedule *mockScheduleRepo
	course   *mockCourseRepo
	event    *mockCalendarEventRepo
	teacher  *mockEntityRepo
	group    *mockEntityRepo
	location *mockEntityRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	scheduleRepo := newMockScheduleRepo()
	courseRepo := newMockCourseRepo()
	teacherRepo := newMockEntityRepo("t")
	groupRepo := newMockEntityRepo("g")
	locationRepo := newMockEntityRepo("loc")
	eventRepo := newMockCalendarEventRepo(scheduleRepo, courseRepo, teacherRepo, groupRepo, locationRepo)

	repo := &repository.Repository{
		Schedule:      scheduleRepo,
		Course:        courseRepo,
		CalendarEvent: eventRepo,
		Teacher:       teacherRepo,
		Group:         groupRepo,
		Location:      locationRepo,
	}
	mocks := &mockRepos{
		schedule: scheduleRepo,
		course:   courseRepo,
		event:    eventRepo,
		teacher:  teacherRepo,
		group:    groupRepo,
		location: locationRepo,
	}
	return repo, mocks
}
