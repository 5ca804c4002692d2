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

func setupTestEntityService() (EntityService, *mockRepos) {
	repo, mocks := newMockRepository()
	mocks.schedule.schedules["sched-1"] = &model.Schedule{ScheduleID: "sched-1", DisplayName: "Fall 2025"}
	svc := NewEntityService(repo, zap.NewNop())
	return svc, mocks
}

// ── Create 测试 ──

func TestEntityService_Create_TeacherAttached(t *testing.T) {
	svc, mocks := setupTestEntityService()

	result, err := svc.Create(context.Background(), &dto.CreateEntityRequest{
		Category:    "teacher",
		DisplayName: "Dr. Lee",
		Schedule:    "sched-1",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if _, ok := mocks.teacher.entities[result.ID]; !ok {
		t.Error("教师记录未持久化")
	}
	if !mocks.teacher.isMember("sched-1", result.ID) {
		t.Error("教师应已追加到课表成员列表")
	}
}

func TestEntityService_Create_InvalidCategory(t *testing.T) {
	svc, _ := setupTestEntityService()

	_, err := svc.Create(context.Background(), &dto.CreateEntityRequest{
		Category:    "classroom",
		DisplayName: "whatever",
		Schedule:    "sched-1",
	})
	if !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("期望 ErrInvalidCategory，实际: %v", err)
	}
}

func TestEntityService_Create_InvalidSchedule(t *testing.T) {
	svc, mocks := setupTestEntityService()

	_, err := svc.Create(context.Background(), &dto.CreateEntityRequest{
		Category:    "group",
		DisplayName: "Grade 9A",
		Schedule:    "nonexistent",
	})
	if !errors.Is(err, ErrInvalidSchedule) {
		t.Errorf("期望 ErrInvalidSchedule，实际: %v", err)
	}
	// 校验先于任何写入：不得留下游离实体
	if len(mocks.group.entities) != 0 {
		t.Error("课表校验失败时不应写入实体")
	}
}

func TestEntityService_Create_AttachFailureReturnsError(t *testing.T) {
	svc, mocks := setupTestEntityService()
	mocks.location.attachErr = errors.New("connection reset")

	_, err := svc.Create(context.Background(), &dto.CreateEntityRequest{
		Category:    "location",
		DisplayName: "Room 101",
		Schedule:    "sched-1",
	})
	if err == nil {
		t.Fatal("挂接失败应返回错误")
	}
	// 实体记录保留为游离状态（无事务回滚）
	if len(mocks.location.entities) != 1 {
		t.Error("挂接失败时实体记录应保留")
	}
}

// ── List 测试 ──

func TestEntityService_List_SingleCategory(t *testing.T) {
	svc, mocks := setupTestEntityService()
	mocks.teacher.entities["t-1"] = &model.EntityRef{ID: "t-1", DisplayName: "Dr. Lee"}
	mocks.group.entities["g-1"] = &model.EntityRef{ID: "g-1", DisplayName: "Grade 9A"}

	result, err := svc.List(context.Background(), "teacher")
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(result) != 1 || result[0].DisplayName != "Dr. Lee" {
		t.Errorf("期望仅返回教师类别，实际=%v", result)
	}
}

func TestEntityService_List_EmptyCategoryReturnsUnion(t *testing.T) {
	svc, mocks := setupTestEntityService()
	mocks.teacher.entities["t-1"] = &model.EntityRef{ID: "t-1", DisplayName: "Dr. Lee"}
	mocks.group.entities["g-1"] = &model.EntityRef{ID: "g-1", DisplayName: "Grade 9A"}
	mocks.location.entities["loc-1"] = &model.EntityRef{ID: "loc-1", DisplayName: "Room 101"}

	result, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(result) != 3 {
		t.Errorf("期望三类并集共 3 条，实际=%d", len(result))
	}
}

func TestEntityService_List_InvalidCategory(t *testing.T) {
	svc, _ := setupTestEntityService()

	_, err := svc.List(context.Background(), "classroom")
	if !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("期望 ErrInvalidCategory，实际: %v", err)
	}
}

// ── Delete 测试 ──

func TestEntityService_Delete_DetachesMembership(t *testing.T) {
	svc, mocks := setupTestEntityService()
	mocks.teacher.entities["t-1"] = &model.EntityRef{ID: "t-1", DisplayName: "Dr. Lee"}
	mocks.teacher.memberships[membershipKey("sched-1", "t-1")] = true

	err := svc.Delete(context.Background(), &dto.DeleteEntityRequest{
		ID:       "t-1",
		Category: "teacher",
		Schedule: "sched-1",
	})
	if err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, ok := mocks.teacher.entities["t-1"]; ok {
		t.Error("教师记录应已删除")
	}
	if mocks.teacher.isMember("sched-1", "t-1") {
		t.Error("课表成员关系应已摘除")
	}
}

func TestEntityService_Delete_InvalidSchedule(t *testing.T) {
	svc, mocks := setupTestEntityService()
	mocks.teacher.entities["t-1"] = &model.EntityRef{ID: "t-1", DisplayName: "Dr. Lee"}

	err := svc.Delete(context.Background(), &dto.DeleteEntityRequest{
		ID:       "t-1",
		Category: "teacher",
		Schedule: "nonexistent",
	})
	if !errors.Is(err, ErrInvalidSchedule) {
		t.Errorf("期望 ErrInvalidSchedule，实际: %v", err)
	}
	if _, ok := mocks.teacher.entities["t-1"]; !ok {
		t.Error("课表校验失败时不应删除实体")
	}
}

// ── 成员关系往返 ──

func TestEntityService_MembershipRoundTrip(t *testing.T) {
	svc, mocks := setupTestEntityService()

	created, err := svc.Create(context.Background(), &dto.CreateEntityRequest{
		Category:    "group",
		DisplayName: "Grade 9A",
		Schedule:    "sched-1",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if !mocks.group.isMember("sched-1", created.ID) {
		t.Fatal("创建后应为课表成员")
	}

	err = svc.Delete(context.Background(), &dto.DeleteEntityRequest{
		ID:       created.ID,
		Category: "group",
		Schedule: "sched-1",
	})
	if err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if mocks.group.isMember("sched-1", created.ID) {
		t.Error("删除后成员关系应已清空")
	}
}
