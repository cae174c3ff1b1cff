package syncing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/infrastructure/repository"
	repomocks "github.com/juliosilva-anagaming/Suporte-Sustenta-o/infrastructure/repository/mocks"
	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/domain"
	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/usecases/syncing"
	syncmocks "github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/usecases/syncing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func summariesFixture() []*domain.ActivationSummary {
	return []*domain.ActivationSummary{
		{House: "7k", Campaign: "Black Friday", Game: "Fortune Tiger", TotalActivations: 3, Year: 2025, Month: 11, Day: "2025-11-15", HouseOrder: 1},
		{House: "Cassino", Campaign: "Sem Campanha", Game: "Sem Jogo", TotalActivations: 1, Year: 2025, Month: 11, Day: "2025-11-16", HouseOrder: 2},
	}
}

func TestServiceRunSync(t *testing.T) {
	expectedStart := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
	expectedEnd := time.Date(2025, 11, 16, 23, 59, 0, 0, time.UTC)

	t.Run("Sucesso - limpa a aba e escreve cabeçalho mais dados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockActivationRepository(ctrl)
		mockDestination := syncmocks.NewMockDestination(ctrl)

		mockRepo.EXPECT().
			AggregateByDay(gomock.Any(), expectedStart, expectedEnd, domain.AllowedHouses()).
			Return(summariesFixture(), nil)

		// A limpeza cobre A:I; a escrita reocupa apenas A:G
		gomock.InOrder(
			mockDestination.EXPECT().
				BatchClear(gomock.Any(), []string{"A:I"}).
				Return(nil),
			mockDestination.EXPECT().
				UpdateRows(gomock.Any(), "A1:G3", gomock.Len(3)).
				Return(nil),
		)

		service := syncing.NewService(mockRepo, mockDestination)

		total, err := service.RunSync(context.Background(), "2025-11-15", "2025-11-16")
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("Sem dados no período - publica apenas o cabeçalho e retorna zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockActivationRepository(ctrl)
		mockDestination := syncmocks.NewMockDestination(ctrl)

		mockRepo.EXPECT().
			AggregateByDay(gomock.Any(), expectedStart, expectedEnd, domain.AllowedHouses()).
			Return([]*domain.ActivationSummary{}, nil)

		gomock.InOrder(
			mockDestination.EXPECT().
				BatchClear(gomock.Any(), []string{"A:I"}).
				Return(nil),
			mockDestination.EXPECT().
				UpdateRows(gomock.Any(), "A1:G1", gomock.Len(1)).
				Return(nil),
		)

		service := syncing.NewService(mockRepo, mockDestination)

		total, err := service.RunSync(context.Background(), "2025-11-15", "2025-11-16")
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("Destino indisponível - falha antes de qualquer consulta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockActivationRepository(ctrl)

		service := syncing.NewService(mockRepo, nil)

		_, err := service.RunSync(context.Background(), "2025-11-15", "2025-11-16")
		assert.ErrorIs(t, err, syncing.ErrSheetsUnavailable)
	})

	t.Run("Período invertido - não consulta nem publica", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockActivationRepository(ctrl)
		mockDestination := syncmocks.NewMockDestination(ctrl)

		service := syncing.NewService(mockRepo, mockDestination)

		_, err := service.RunSync(context.Background(), "2025-11-15", "2025-11-10")
		assert.ErrorIs(t, err, syncing.ErrInvertedRange)
	})

	t.Run("Data malformada - não consulta nem publica", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockActivationRepository(ctrl)
		mockDestination := syncmocks.NewMockDestination(ctrl)

		service := syncing.NewService(mockRepo, mockDestination)

		_, err := service.RunSync(context.Background(), "15/11/2025", "2025-11-16")
		assert.ErrorIs(t, err, syncing.ErrInvalidDate)
	})

	t.Run("Falha no aggregate - propaga o erro sem publicar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockActivationRepository(ctrl)
		mockDestination := syncmocks.NewMockDestination(ctrl)

		mockRepo.EXPECT().
			AggregateByDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, repository.ErrUnavailable)

		service := syncing.NewService(mockRepo, mockDestination)

		_, err := service.RunSync(context.Background(), "2025-11-15", "2025-11-16")
		assert.ErrorIs(t, err, repository.ErrUnavailable)
	})

	t.Run("Falha na limpeza - aborta sem escrever", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockActivationRepository(ctrl)
		mockDestination := syncmocks.NewMockDestination(ctrl)

		mockRepo.EXPECT().
			AggregateByDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(summariesFixture(), nil)

		mockDestination.EXPECT().
			BatchClear(gomock.Any(), gomock.Any()).
			Return(errors.New("quota exceeded"))

		service := syncing.NewService(mockRepo, mockDestination)

		_, err := service.RunSync(context.Background(), "2025-11-15", "2025-11-16")
		assert.ErrorIs(t, err, syncing.ErrPublishFailed)
		assert.Contains(t, err.Error(), "quota exceeded")
	})
}

func TestServiceEnqueueSync(t *testing.T) {
	t.Run("Sucesso em background - registra done com o total de linhas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockActivationRepository(ctrl)
		mockDestination := syncmocks.NewMockDestination(ctrl)

		mockRepo.EXPECT().
			AggregateByDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(summariesFixture(), nil)
		mockDestination.EXPECT().BatchClear(gomock.Any(), gomock.Any()).Return(nil)
		mockDestination.EXPECT().UpdateRows(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		service := syncing.NewService(mockRepo, mockDestination)

		require.NoError(t, service.EnqueueSync("2025-11-15", "2025-11-16"))

		assert.Eventually(t, func() bool {
			return service.LastSync().Status == syncing.StatusDone
		}, time.Second, 10*time.Millisecond)

		state := service.LastSync()
		assert.Equal(t, "Sucesso!", state.Message)
		assert.Equal(t, 2, state.Rows)
		assert.Empty(t, state.Error)
	})

	t.Run("Falha em background - registra failed com a causa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockActivationRepository(ctrl)

		// Destino nulo: toda sincronização falha com erro claro
		service := syncing.NewService(mockRepo, nil)

		require.NoError(t, service.EnqueueSync("2025-11-15", "2025-11-16"))

		assert.Eventually(t, func() bool {
			return service.LastSync().Status == syncing.StatusFailed
		}, time.Second, 10*time.Millisecond)

		state := service.LastSync()
		assert.Equal(t, "Erro", state.Message)
		assert.Contains(t, state.Error, "google sheets não conectou")
		assert.Zero(t, state.Rows)
	})

	t.Run("Segunda sincronização concorrente - rejeitada enquanto a primeira roda", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockActivationRepository(ctrl)
		mockDestination := syncmocks.NewMockDestination(ctrl)

		release := make(chan struct{})
		mockRepo.EXPECT().
			AggregateByDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, time.Time, time.Time, []string) ([]*domain.ActivationSummary, error) {
				<-release
				return nil, nil
			})
		mockDestination.EXPECT().BatchClear(gomock.Any(), gomock.Any()).Return(nil)
		mockDestination.EXPECT().UpdateRows(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		service := syncing.NewService(mockRepo, mockDestination)

		require.NoError(t, service.EnqueueSync("2025-11-15", "2025-11-16"))

		err := service.EnqueueSync("2025-11-15", "2025-11-16")
		assert.ErrorIs(t, err, syncing.ErrSyncInProgress)

		close(release)
		assert.Eventually(t, func() bool {
			return service.LastSync().Status == syncing.StatusDone
		}, time.Second, 10*time.Millisecond)

		// Com a primeira concluída, o slot volta a aceitar pedidos
		mockRepo.EXPECT().
			AggregateByDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, repository.ErrMissingMongoURI)

		require.NoError(t, service.EnqueueSync("2025-11-15", "2025-11-16"))
		assert.Eventually(t, func() bool {
			return service.LastSync().Status == syncing.StatusFailed
		}, time.Second, 10*time.Millisecond)
	})
}
