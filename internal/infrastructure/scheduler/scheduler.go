// Package scheduler ejecuta tareas periódicas de mantenimiento del inventario.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/cafetal-api/pkg/logger"
	"github.com/robfig/cron/v3"
)

// LotRefresher recalcula la caché qty_available de los lotes desde el kardex.
type LotRefresher interface {
	RefreshAvailable(ctx context.Context) (int64, error)
}

// Scheduler agenda el refresco de disponibilidad de lotes.
type Scheduler struct {
	cron      *cron.Cron
	refresher LotRefresher
	spec      string
	timeout   time.Duration
	log       *logger.Logger
}

// New crea el scheduler. spec es una expresión cron estándar o "@every 5m".
func New(refresher LotRefresher, spec string, loc *time.Location, log *logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	if loc == nil {
		loc = time.Local
	}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	return &Scheduler{
		cron:      c,
		refresher: refresher,
		spec:      spec,
		timeout:   2 * time.Minute,
		log:       log.Component("scheduler"),
	}
}

// Start registra el job, ejecuta un refresco inmediato y arranca el cron.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.RefreshLots); err != nil {
		return fmt.Errorf("scheduler: spec %q: %w", s.spec, err)
	}
	s.log.Info().Str("spec", s.spec).Msg("iniciando scheduler")
	go s.RefreshLots()
	s.cron.Start()
	return nil
}

// Stop detiene el cron y espera a que termine el job en curso.
func (s *Scheduler) Stop() {
	s.log.Info().Msg("deteniendo scheduler")
	<-s.cron.Stop().Done()
}

// RefreshLots recalcula qty_available. Los errores se registran y no detienen el cron.
func (s *Scheduler) RefreshLots() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	n, err := s.refresher.RefreshAvailable(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("falló el refresco de lotes")
		return
	}
	s.log.Info().Int64("lots", n).Dur("took", time.Since(start)).Msg("disponibilidad de lotes refrescada")
}
