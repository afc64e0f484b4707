package service

import (
	"context"
	"testing"
	"time"

	"training_briefing/internal/models"
)

func TestBriefingService_GetBriefing(t *testing.T) {
	base := time.Date(2025, 10, 28, 8, 29, 0, 0, time.UTC)
	meta := models.EventMeta{
		Title:    "2025 리더십 교육",
		StartsAt: base.Add(90061 * time.Second),
		EndsAt:   base.Add(90061*time.Second + 8*time.Hour),
		Agenda:   []models.AgendaItem{{Time: "09:00", Text: "강의장 오픈"}},
		Instructor: &models.Instructor{
			Name:   "김철영 소장",
			Career: []string{"버크만 진단 강사 자격"},
		},
	}
	forms := NewFormService(testMenus, time.Hour)
	cd := NewCountdownService(meta.StartsAt, time.Second)
	cd.now = func() time.Time { return base }

	svc := NewBriefingService(meta, forms, cd)
	b, err := svc.GetBriefing(context.Background())
	if err != nil {
		t.Fatalf("GetBriefing: %v", err)
	}
	if b.Event.Title != meta.Title || len(b.Event.Agenda) != 1 || b.Event.Instructor == nil {
		t.Fatalf("event not passed through: %+v", b.Event)
	}
	if b.CountdownLabel != "1일 1시간 1분 1초" {
		t.Fatalf("label = %q", b.CountdownLabel)
	}
	if len(b.Menus) != len(testMenus) || b.Menus[len(b.Menus)-1] != "안 먹겠음" {
		t.Fatalf("menus = %v", b.Menus)
	}

	// callers mutating the result must not leak into the service
	b.Menus[0] = "changed"
	b.Event.Agenda[0].Text = "changed"
	b.Event.Instructor.Name = "changed"
	b.Event.Instructor.Career[0] = "changed"
	again, _ := svc.GetBriefing(context.Background())
	if again.Menus[0] == "changed" || again.Event.Agenda[0].Text == "changed" ||
		again.Event.Instructor.Name == "changed" || again.Event.Instructor.Career[0] == "changed" {
		t.Fatalf("briefing shares mutable state with callers")
	}
}
