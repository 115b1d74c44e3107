package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/halsbagel/sales-dashboard-api/internal/config"
	"github.com/halsbagel/sales-dashboard-api/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

// MonthlySummarySyncConfig representa a configuração do agendador de snapshots mensais
type MonthlySummarySyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	MonthLookBack int
}

// MonthlySummarySyncService gerencia o agendamento e execução da
// sincronização dos snapshots mensais de vendas. Os snapshots alimentam
// apenas o histórico: os relatórios ao vivo sempre recalculam a partir
// dos lançamentos.
type MonthlySummarySyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlySummarySyncConfig
	syncer              reporting.SummarySyncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewMonthlySummarySyncService cria uma nova instância do serviço de sincronização de snapshots mensais
func NewMonthlySummarySyncService(
	syncer reporting.SummarySyncer,
	appConfig *config.Config,
) *MonthlySummarySyncService {
	syncConfig := MonthlySummarySyncConfig{
		CronSchedule:  appConfig.MonthlySummarySync.CronSchedule,
		SyncEnabled:   appConfig.MonthlySummarySync.Enabled,
		MonthLookBack: appConfig.MonthlySummarySync.MonthLookBack,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   syncConfig.CronSchedule,
		"sync_enabled":    syncConfig.SyncEnabled,
		"month_look_back": syncConfig.MonthLookBack,
	}).Info("Configuração do agendador de snapshots mensais carregada")

	return &MonthlySummarySyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		syncer:      syncer,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *MonthlySummarySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots mensais desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots mensais")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMonthlySummaries()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots mensais: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots mensais")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMonthlySummaries recalcula os snapshots dos últimos meses fechados
func (s *MonthlySummarySyncService) syncMonthlySummaries() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots mensais já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.WithField("month_look_back", s.config.MonthLookBack).
		Info("Iniciando sincronização de snapshots mensais")

	if err := s.syncer.SyncClosedMonths(s.config.MonthLookBack); err != nil {
		logrus.WithError(err).Error("Erro ao sincronizar snapshots mensais")
	}

	logrus.WithField("duration", time.Since(startTime).String()).
		Info("Sincronização de snapshots mensais concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização de snapshots mensais
func (s *MonthlySummarySyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots mensais já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshots mensais")
	go s.syncMonthlySummaries()
}

// GetStatus retorna o status atual da sincronização
func (s *MonthlySummarySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"month_look_back":        s.config.MonthLookBack,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
