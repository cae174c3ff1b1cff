package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/config"
	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/usecases/syncing"
	"github.com/sirupsen/logrus"
)

// ActivationSyncConfig representa a configuração do agendador de
// republicação de ativações
type ActivationSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// ActivationSyncService agenda a republicação periódica do resumo de
// ativações dos últimos dias na planilha
type ActivationSyncService struct {
	scheduler       *gocron.Scheduler
	config          ActivationSyncConfig
	syncer          syncing.Syncer
	lastTriggeredAt time.Time
}

// NewActivationSyncService cria uma nova instância do agendador de
// sincronização de ativações
func NewActivationSyncService(syncer syncing.Syncer, appConfig *config.Config) *ActivationSyncService {
	syncConfig := ActivationSyncConfig{
		CronSchedule: appConfig.ActivationSync.CronSchedule,
		LookbackDays: appConfig.ActivationSync.LookbackDays,
		SyncEnabled:  appConfig.ActivationSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de ativações carregada")

	return &ActivationSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    syncConfig,
		syncer:    syncer,
	}
}

// Start inicia o agendador
func (s *ActivationSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização agendada de ativações desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de ativações")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncRecentActivations()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de ativações: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de ativações")
		s.scheduler.Stop()
	}()

	return nil
}

// syncRecentActivations agenda a republicação da janela recente. A
// execução entra na mesma fila única das sincronizações manuais: se já
// houver uma em andamento, esta rodada é ignorada.
func (s *ActivationSyncService) syncRecentActivations() {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -s.config.LookbackDays)
	s.lastTriggeredAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"inicio": start.Format(time.DateOnly),
		"fim":    end.Format(time.DateOnly),
	}).Info("Janela da sincronização agendada de ativações")

	err := s.syncer.EnqueueSync(start.Format(time.DateOnly), end.Format(time.DateOnly))
	if errors.Is(err, syncing.ErrSyncInProgress) {
		logrus.Info("Sincronização de ativações já em andamento, ignorando rodada agendada")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("Erro ao agendar sincronização de ativações")
	}
}

// TriggerManualSync dispara manualmente a rodada agendada
func (s *ActivationSyncService) TriggerManualSync() {
	logrus.Info("Iniciando sincronização manual de ativações")
	s.syncRecentActivations()
}

// GetStatus retorna o status atual do agendador
func (s *ActivationSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":       s.config.SyncEnabled,
		"sync_cron":          s.config.CronSchedule,
		"sync_lookback_days": s.config.LookbackDays,
		"last_triggered_at":  s.lastTriggeredAt,
		"last_sync":          s.syncer.LastSync(),
	}
}
