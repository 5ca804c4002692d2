package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/victor823543/schedule-api/internal/dto"
	"github.com/victor823543/schedule-api/internal/model"
)

// ── 测试辅助 ──

func setupTestCourseService() (CourseService, *mockRepos) {
	repo, mocks := newMockRepository()
	mocks.schedule.schedules["sched-1"] = &model.Schedule{ScheduleID: "sched-1", DisplayName: "Fall 2025"}
	svc := NewCourseService(repo, zap.NewNop())
	return svc, mocks
}

// ── Create 测试 ──

func TestCourseService_Create_Standalone(t *testing.T) {
	svc, mocks := setupTestCourseService()

	result, err := svc.Create(context.Background(), &dto.CreateCourseRequest{
		DisplayName: "Algebra I",
		Subject:     "Math",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if _, ok := mocks.course.courses[result.ID]; !ok {
		t.Error("课程未持久化")
	}
	if len(mocks.course.memberships) != 0 {
		t.Error("独立创建不应写入任何成员关系")
	}
}

func TestCourseService_Create_ScheduleScoped(t *testing.T) {
	svc, mocks := setupTestCourseService()

	result, err := svc.Create(context.Background(), &dto.CreateCourseRequest{
		DisplayName: "Algebra I",
		Subject:     "Math",
		Schedule:    "sched-1",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if !mocks.course.isMember("sched-1", result.ID) {
		t.Error("课程应已追加到课表成员列表")
	}
}

func TestCourseService_Create_InvalidSchedule(t *testing.T) {
	svc, mocks := setupTestCourseService()

	_, err := svc.Create(context.Background(), &dto.CreateCourseRequest{
		DisplayName: "Algebra I",
		Subject:     "Math",
		Schedule:    "nonexistent",
	})
	if !errors.Is(err, ErrInvalidSchedule) {
		t.Errorf("期望 ErrInvalidSchedule，实际: %v", err)
	}
	if len(mocks.course.courses) != 0 {
		t.Error("课表校验失败时不应写入课程")
	}
}

// ── Delete 测试 ──

func TestCourseService_Delete_WithScheduleDetaches(t *testing.T) {
	svc, mocks := setupTestCourseService()
	mocks.course.courses["course-1"] = &model.Course{CourseID: "course-1", DisplayName: "Algebra I", Subject: "Math"}
	mocks.course.memberships[membershipKey("sched-1", "course-1")] = true

	if err := svc.Delete(context.Background(), "course-1", "sched-1"); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, ok := mocks.course.courses["course-1"]; ok {
		t.Error("课程应已删除")
	}
	if mocks.course.isMember("sched-1", "course-1") {
		t.Error("课表成员关系应已摘除")
	}
}

func TestCourseService_Delete_WithoutSchedule(t *testing.T) {
	svc, mocks := setupTestCourseService()
	mocks.course.courses["course-1"] = &model.Course{CourseID: "course-1", DisplayName: "Algebra I", Subject: "Math"}

	if err := svc.Delete(context.Background(), "course-1", ""); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, ok := mocks.course.courses["course-1"]; ok {
		t.Error("课程应已删除")
	}
}

func TestCourseService_Delete_InvalidSchedule(t *testing.T) {
	svc, mocks := setupTestCourseService()
	mocks.course.courses["course-1"] = &model.Course{CourseID: "course-1", DisplayName: "Algebra I", Subject: "Math"}

	err := svc.Delete(context.Background(), "course-1", "nonexistent")
	if !errors.Is(err, ErrInvalidSchedule) {
		t.Errorf("期望 ErrInvalidSchedule，实际: %v", err)
	}
	if _, ok := mocks.course.courses["course-1"]; !ok {
		t.Error("课表校验失败时不应删除课程")
	}
}

// ── DeleteMany 测试 ──

func TestCourseService_DeleteMany(t *testing.T) {
	svc, mocks := setupTestCourseService()
	mocks.course.courses["course-1"] = &model.Course{CourseID: "course-1"}
	mocks.course.courses["course-2"] = &model.Course{CourseID: "course-2"}
	mocks.course.courses["course-3"] = &model.Course{CourseID: "course-3"}

	if err := svc.DeleteMany(context.Background(), []string{"course-1", "course-3"}); err != nil {
		t.Fatalf("DeleteMany 应成功: %v", err)
	}
	if len(mocks.course.courses) != 1 {
		t.Errorf("期望剩余 1 门课程，实际=%d", len(mocks.course.courses))
	}
	if _, ok := mocks.course.courses["course-2"]; !ok {
		t.Error("未指定的课程不应被删除")
	}
}
