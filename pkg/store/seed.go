package store

import (
	"time"

	"github.com/miroma-app/miroma/pkg/domain"
	"github.com/miroma-app/miroma/pkg/domain/schedule"
)

// seed installs the default demo entities used when no saved state exists.
// Dates are relative to now so the sample schedule always looks current.
func (s *Store) seed() {
	now := time.Now()
	nextWeek := now.AddDate(0, 0, 7)
	lastMonth := now.AddDate(0, -1, 0)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.packs = []schedule.Pack{
		{
			ID:         domain.NewID(),
			Name:       "Pack Básico - Ilustração",
			Price:      500,
			Conditions: "Entrega digital, 1 revisão",
			IsActive:   true,
		},
		{
			ID:         domain.NewID(),
			Name:       "Pack Premium - Pintura",
			Price:      1200,
			Conditions: "Entrega física + digital, 3 revisões",
			IsActive:   true,
		},
	}

	s.clients = []schedule.Client{
		{
			ID:      domain.NewID(),
			Name:    "Empresa Alpha",
			Contact: "contato@alpha.com",
			Notes:   "Prefere reuniões pela manhã.",
		},
		{
			ID:      domain.NewID(),
			Name:    "João Silva",
			Contact: "11 99999-9999",
			Notes:   "Gosta de cores vibrantes.",
		},
	}

	s.events = []schedule.CalendarEvent{
		{
			ID:          domain.NewID(),
			Title:       "Reunião Alpha",
			Start:       now,
			End:         now.Add(time.Hour),
			BookingDate: lastMonth,
			Type:        schedule.TypeWork,
			ClientID:    s.clients[0].ID,
			Description: "Briefing inicial",
			Location:    "Google Meet",
			PackName:    "Consultoria Hora",
			AgreedPrice: 200,
		},
		{
			ID:              domain.NewID(),
			Title:           "Entrega Ilustração João",
			Start:           nextWeek,
			End:             nextWeek,
			BookingDate:     now,
			Type:            schedule.TypeOrder,
			ClientID:        s.clients[1].ID,
			Description:     "Ilustração para capa de livro",
			PackName:        "Pack Básico - Ilustração",
			AgreedPrice:     500,
			ShippingAddress: "Rua das Flores, 123, Lisboa",
			ReferenceImages: [][]byte{},
		},
	}

	s.notify = schedule.NotificationConfig{}
	s.saveLocked()
}
