package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pulpito_backend/internals/features/cultos/cultos/model"
	"pulpito_backend/internals/features/cultos/cultos/repository"
	"pulpito_backend/internals/features/cultos/cultos/service"
	tipoModel "pulpito_backend/internals/features/cultos/tipos/model"
	"pulpito_backend/internals/helpers/dbtime"
)

type CultoLister interface {
	List(ctx context.Context, f repository.ListFilter) ([]model.CultoModel, int64, error)
}

type Notifier interface {
	Broadcast(ctx context.Context, title, body string, cultoID *uuid.UUID, tags ...string) error
}

// Reminder avisa de los cultos planeados de mañana que aún tienen puestos sin cubrir.
type Reminder struct {
	Cultos   CultoLister
	Notifier Notifier
	Loc      *time.Location
	Now      func() time.Time
}

func NewReminder(cultos CultoLister, notifier Notifier, loc *time.Location) *Reminder {
	if loc == nil {
		loc = time.UTC
	}
	return &Reminder{Cultos: cultos, Notifier: notifier, Loc: loc, Now: time.Now}
}

// Run envía un aviso por culto incompleto y devuelve cuántos envió. Un aviso que falla no
// corta el resto; el primer error se devuelve al final.
func (r *Reminder) Run(ctx context.Context) (int, error) {
	now := r.Now().In(r.Loc)
	tomorrow := dbtime.DateOnly(now).AddDate(0, 0, 1)
	planned := model.CultoPlanned

	rows, _, err := r.Cultos.List(ctx, repository.ListFilter{From: tomorrow, To: tomorrow, Status: &planned})
	if err != nil {
		return 0, err
	}

	sent := 0
	var firstErr error
	for i := range rows {
		c := &rows[i]
		if service.Evaluate(c, c.Tipo) == service.Complete {
			continue
		}
		title, body := reminderText(c, service.MissingRoles(c, c.Tipo))
		if err := r.Notifier.Broadcast(ctx, title, body, &c.CultoID, "recordatorio", "incompleto"); err != nil {
			zap.L().Warn("no se pudo enviar el recordatorio", zap.String("culto_id", c.CultoID.String()), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		sent++
	}
	return sent, firstErr
}

// Job adapta Run a la firma del planificador.
func (r *Reminder) Job(ctx context.Context) error {
	n, err := r.Run(ctx)
	if n > 0 {
		zap.L().Info("recordatorios enviados", zap.Int("count", n))
	}
	return err
}

func reminderText(c *model.CultoModel, missing []tipoModel.Role) (string, string) {
	name := "Culto"
	if c.Tipo != nil {
		name = c.Tipo.TipoCultoName
	}
	labels := make([]string, 0, len(missing))
	for _, r := range missing {
		labels = append(labels, r.Label())
	}
	title := fmt.Sprintf("Faltan puestos: %s de mañana", name)
	body := fmt.Sprintf("%s del %s a las %s. Sin asignar: %s.",
		name, dbtime.FormatDate(c.CultoDate), c.CultoStartTime.String(), strings.Join(labels, ", "))
	return title, body
}
