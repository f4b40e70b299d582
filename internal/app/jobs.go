package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/cargoshop/cargoshop/internal/domain"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	if loc == nil {
		loc = time.Local
	}
	a.sched = cron.New(cron.WithParser(cronParser), cron.WithLocation(loc))

	if _, err := a.sched.AddFunc("@every 1h", a.collectStoreStats); err != nil {
		zap.S().Errorf("schedule store stats failed: %v", err)
	}

	a.sched.Start()
}

// collectStoreStats logs per-collection document counts, the only
// operational signal a scan-only store exposes cheaply.
func (a *Application) collectStoreStats() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fields := make([]zap.Field, 0, len(domain.Tables))
	for _, table := range domain.Tables {
		n, err := a.docStore.Count(ctx, table)
		if err != nil {
			zap.S().Errorf("count %s failed: %v", table, err)
			continue
		}
		fields = append(fields, zap.Int64(table, n))
	}
	zap.L().Info("store stats", fields...)
}
