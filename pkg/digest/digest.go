// Package digest periodically pushes a recognized-revenue summary through
// the notification gateway. The schedule is a cron expression evaluated
// once a minute; no expression means the digest is off.
package digest

import (
	"context"
	"fmt"
	"time"

	"github.com/adhocore/gronx"

	"github.com/miroma-app/miroma/pkg/billing"
	"github.com/miroma-app/miroma/pkg/logger"
	"github.com/miroma-app/miroma/pkg/notify"
	"github.com/miroma-app/miroma/pkg/store"
)

// Digest computes and delivers the monthly revenue summary.
type Digest struct {
	store   *store.Store
	gateway notify.Gateway
	expr    string
	gron    *gronx.Gronx
}

// New creates a digest on the given cron expression.
func New(st *store.Store, gateway notify.Gateway, expr string) *Digest {
	return &Digest{
		store:   st,
		gateway: gateway,
		expr:    expr,
		gron:    gronx.New(),
	}
}

// Run blocks, checking the schedule every minute, until ctx is canceled.
func (d *Digest) Run(ctx context.Context) {
	if d.expr == "" {
		return
	}
	if !d.gron.IsValid(d.expr) {
		logger.ErrorCF("digest", "Invalid cron expression, digest disabled",
			map[string]interface{}{"expr": d.expr})
		return
	}
	logger.InfoCF("digest", "Revenue digest scheduled",
		map[string]interface{}{"expr": d.expr})

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			due, err := d.gron.IsDue(d.expr, now)
			if err != nil || !due {
				continue
			}
			d.send(ctx, now)
		}
	}
}

func (d *Digest) send(ctx context.Context, now time.Time) {
	events := d.store.Events()
	revenue := billing.Recognized(events, billing.MonthOf(now))

	text := fmt.Sprintf(
		"📊 <b>Resumo MIROMA</b>\n\n💶 Faturamento reconhecido em %s: €%.2f\n📅 %d eventos na agenda",
		now.Format("01/2006"), revenue, len(events))

	if err := d.gateway.Send(ctx, text); err != nil {
		logger.ErrorCF("digest", "Summary delivery failed",
			map[string]interface{}{"error": err.Error()})
	}
}
