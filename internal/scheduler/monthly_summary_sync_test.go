package scheduler

import (
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	reportingmocks "github.com/halsbagel/sales-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMonthlySummarySyncService_syncMonthlySummaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := reportingmocks.NewMockSummarySyncer(ctrl)

	service := &MonthlySummarySyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config: MonthlySummarySyncConfig{
			CronSchedule:  "0 3 * * *",
			SyncEnabled:   true,
			MonthLookBack: 3,
		},
		syncer: mockSyncer,
	}

	mockSyncer.EXPECT().
		SyncClosedMonths(3).
		Return(nil)

	service.syncMonthlySummaries()

	// Ao final a flag de execução é liberada e os timestamps registrados.
	assert.False(t, service.syncRunning)
	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestMonthlySummarySyncService_syncMonthlySummaries_ErroNaoTravaProximaExecucao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := reportingmocks.NewMockSummarySyncer(ctrl)

	service := &MonthlySummarySyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config: MonthlySummarySyncConfig{
			SyncEnabled:   true,
			MonthLookBack: 1,
		},
		syncer: mockSyncer,
	}

	mockSyncer.EXPECT().
		SyncClosedMonths(1).
		Return(assert.AnError).
		Times(2)

	service.syncMonthlySummaries()
	assert.False(t, service.syncRunning)

	// Uma execução com erro não deixa a flag presa.
	service.syncMonthlySummaries()
	assert.False(t, service.syncRunning)
}

func TestMonthlySummarySyncService_GetStatus(t *testing.T) {
	service := &MonthlySummarySyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config: MonthlySummarySyncConfig{
			CronSchedule:  "0 3 * * *",
			SyncEnabled:   true,
			MonthLookBack: 2,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, 2, status["month_look_back"])
}
