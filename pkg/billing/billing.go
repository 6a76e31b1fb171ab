// Package billing computes recognized revenue from the event collection.
// Recognition is deterministic and period-agnostic: the rules only need an
// is-this-instant-in-this-period test, so the same engine serves monthly
// buckets today and any other granularity later.
package billing

import (
	"time"

	"github.com/miroma-app/miroma/pkg/domain"
	"github.com/miroma-app/miroma/pkg/domain/schedule"
)

// PeriodPredicate tests whether an instant falls inside the target period.
type PeriodPredicate func(time.Time) bool

// Month returns a predicate for a calendar month.
func Month(year int, month time.Month) PeriodPredicate {
	return func(t time.Time) bool {
		return t.Year() == year && t.Month() == month
	}
}

// MonthOf returns a predicate for the calendar month containing t.
func MonthOf(t time.Time) PeriodPredicate {
	return Month(t.Year(), t.Month())
}

// Recognized sums the revenue recognized in the period over all events, in
// collection order. Per event:
//
//   - no agreed price: contributes nothing;
//   - manual adjustment ("Ajuste Financeiro"): full price at start, and no
//     other rule applies;
//   - order (Encomenda): full price at booking date, not at delivery;
//   - anything else: half at booking date and, independently, half at
//     start. Same period for both means the full price lands there.
func Recognized(events []schedule.CalendarEvent, inPeriod PeriodPredicate) float64 {
	var total float64
	for _, e := range events {
		if e.AgreedPrice == 0 {
			continue
		}

		if e.IsManualAdjustment() {
			if inPeriod(e.Start) {
				total += e.AgreedPrice
			}
			continue
		}

		if e.Type == schedule.TypeOrder {
			if inPeriod(e.BookingDate) {
				total += e.AgreedPrice
			}
			continue
		}

		if inPeriod(e.BookingDate) {
			total += e.AgreedPrice * 0.5
		}
		if inPeriod(e.Start) {
			total += e.AgreedPrice * 0.5
		}
	}
	return total
}

// ClientRevenue sums the agreed prices of all events booked for a client.
func ClientRevenue(events []schedule.CalendarEvent, clientID domain.EntityID) float64 {
	var total float64
	for _, e := range events {
		if e.ClientID == clientID {
			total += e.AgreedPrice
		}
	}
	return total
}
