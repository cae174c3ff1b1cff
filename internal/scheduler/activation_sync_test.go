package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/config"
	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/usecases/syncing"
	syncmocks "github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/usecases/syncing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestConfig(enabled bool) *config.Config {
	return &config.Config{
		ActivationSync: config.ActivationSync{
			CronSchedule: "0 5 * * *",
			LookbackDays: 7,
			Enabled:      enabled,
		},
	}
}

func TestTriggerManualSyncUsesLookbackWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := syncmocks.NewMockSyncer(ctrl)
	mockSyncer.EXPECT().
		EnqueueSync(gomock.Any(), gomock.Any()).
		DoAndReturn(func(startStr, endStr string) error {
			start, err := time.Parse(time.DateOnly, startStr)
			require.NoError(t, err)
			end, err := time.Parse(time.DateOnly, endStr)
			require.NoError(t, err)

			// Janela de 7 dias terminando hoje
			assert.Equal(t, 7*24*time.Hour, end.Sub(start))
			return nil
		})

	service := NewActivationSyncService(mockSyncer, newTestConfig(false))
	service.TriggerManualSync()
}

func TestTriggerManualSyncIgnoresBusySlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := syncmocks.NewMockSyncer(ctrl)
	mockSyncer.EXPECT().
		EnqueueSync(gomock.Any(), gomock.Any()).
		Return(syncing.ErrSyncInProgress)

	service := NewActivationSyncService(mockSyncer, newTestConfig(false))

	// Slot ocupado não é erro do agendador: a rodada é só ignorada
	service.TriggerManualSync()
}

func TestStartDisabledByConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := syncmocks.NewMockSyncer(ctrl)

	service := NewActivationSyncService(mockSyncer, newTestConfig(false))

	require.NoError(t, service.Start(context.Background()))
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := syncmocks.NewMockSyncer(ctrl)
	mockSyncer.EXPECT().LastSync().Return(syncing.SyncState{
		Status:  syncing.StatusDone,
		Message: "Sucesso!",
		Rows:    10,
	})

	service := NewActivationSyncService(mockSyncer, newTestConfig(true))

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 5 * * *", status["sync_cron"])
	assert.Equal(t, 7, status["sync_lookback_days"])

	lastSync, ok := status["last_sync"].(syncing.SyncState)
	require.True(t, ok)
	assert.Equal(t, syncing.StatusDone, lastSync.Status)
}
