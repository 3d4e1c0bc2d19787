package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Purger interface {
	Purge(ctx context.Context, before time.Time, batch int) (int64, error)
}

// CleanupJob borra la auditoría con más de ttlDays días. ttlDays <= 0 desactiva la limpieza.
func CleanupJob(p Purger, ttlDays int, now func() time.Time) func(ctx context.Context) error {
	if now == nil {
		now = time.Now
	}
	return func(ctx context.Context) error {
		if ttlDays <= 0 {
			return nil
		}
		before := now().AddDate(0, 0, -ttlDays)
		n, err := p.Purge(ctx, before, 500)
		if err != nil {
			return err
		}
		if n > 0 {
			zap.L().Info("[CLEANUP] auditoría antigua eliminada", zap.Int64("rows", n), zap.Time("before", before))
		}
		return nil
	}
}
