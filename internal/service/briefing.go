package service

import (
	"context"

	"training_briefing/internal/models"
)

type BriefingService struct {
	meta      models.EventMeta
	forms     *FormService
	countdown *CountdownService
}

func NewBriefingService(meta models.EventMeta, forms *FormService, countdown *CountdownService) *BriefingService {
	return &BriefingService{meta: meta, forms: forms, countdown: countdown}
}

// GetBriefing returns the static event copy, the menu options and the countdown as of now.
func (s *BriefingService) GetBriefing(_ context.Context) (models.Briefing, error) {
	cd := s.countdown.Snapshot()
	meta := s.meta
	meta.Agenda = append([]models.AgendaItem(nil), s.meta.Agenda...)
	if s.meta.Instructor != nil {
		in := *s.meta.Instructor
		in.Career = append([]string(nil), in.Career...)
		meta.Instructor = &in
	}
	return models.Briefing{
		Event:          meta,
		Menus:          s.forms.Menus(),
		Countdown:      cd,
		CountdownLabel: cd.Label(),
	}, nil
}
