package syncing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/infrastructure/repository"
	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	// clearRange limpa também as colunas H e I, reservadas na aba e
	// nunca reescritas pela publicação
	clearRange = "A:I"
)

// Destination é o destino de publicação do resumo (aba da planilha)
type Destination interface {
	BatchClear(ctx context.Context, ranges []string) error
	UpdateRows(ctx context.Context, rangeA1 string, rows [][]interface{}) error
}

// Syncer expõe o fluxo de sincronização para os handlers HTTP e para o
// agendador
type Syncer interface {
	RunSync(ctx context.Context, startStr, endStr string) (int, error)
	EnqueueSync(startStr, endStr string) error
	LastSync() SyncState
}

type Service struct {
	repo        repository.ActivationRepository
	destination Destination
	tracker     *StatusTracker

	syncRunning bool
	syncMutex   sync.Mutex
}

// NewService cria o serviço de sincronização. destination pode ser nil
// quando o Google Sheets não conectou na inicialização; nesse caso toda
// sincronização falha com ErrSheetsUnavailable até a reconfiguração.
func NewService(repo repository.ActivationRepository, destination Destination) *Service {
	return &Service{
		repo:        repo,
		destination: destination,
		tracker:     NewStatusTracker(),
	}
}

// RunSync executa o fluxo completo de forma síncrona: normaliza o
// período, agrega as ativações, projeta as linhas e republica a aba
// (limpeza seguida de escrita). Retorna a quantidade de linhas de dados
// escritas, sem contar o cabeçalho.
func (s *Service) RunSync(ctx context.Context, startStr, endStr string) (int, error) {
	if s.destination == nil {
		return 0, ErrSheetsUnavailable
	}

	start, end, err := NormalizeRange(startStr, endStr)
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"inicio": start.Format(time.DateOnly),
		"fim":    end.Format(time.DateOnly),
	}).Info("Intervalo aplicado (UTC)")

	t0 := time.Now()
	logrus.Info("Rodando aggregate no Mongo...")

	summaries, err := s.repo.AggregateByDay(ctx, start, end, domain.AllowedHouses())
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(t0).String(),
		"linhas":   len(summaries),
	}).Info("Mongo OK")

	rows := BuildRows(summaries)

	// A publicação não é atômica: entre a limpeza e a escrita um leitor
	// da planilha pode observar a aba vazia
	t1 := time.Now()
	if err := s.destination.BatchClear(ctx, []string{clearRange}); err != nil {
		return 0, &SyncError{Err: ErrPublishFailed, Details: err.Error()}
	}
	logrus.WithField("duration", time.Since(t1).String()).Info("Sheets batch_clear OK")

	t2 := time.Now()
	writeRange := fmt.Sprintf("A1:G%d", len(rows))
	if err := s.destination.UpdateRows(ctx, writeRange, rows); err != nil {
		return 0, &SyncError{Err: ErrPublishFailed, Details: err.Error()}
	}
	logrus.WithField("duration", time.Since(t2).String()).Info("Sheets update OK")

	return len(summaries), nil
}

// EnqueueSync agenda uma sincronização em background. O serviço aceita
// uma execução por vez: um segundo pedido enquanto houver sincronização
// agendada ou em andamento é rejeitado com ErrSyncInProgress.
func (s *Service) EnqueueSync(startStr, endStr string) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização já em andamento, ignorando novo pedido")
		return ErrSyncInProgress
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.tracker.Set(SyncState{Status: StatusQueued, Message: "Agendado..."})
	go s.runQueued(startStr, endStr)

	return nil
}

// LastSync retorna o registro da última sincronização
func (s *Service) LastSync() SyncState {
	return s.tracker.Snapshot()
}

// runQueued executa a sincronização agendada. Qualquer falha é capturada
// aqui e registrada no tracker: o caminho em background nunca derruba o
// processo e o endpoint de status é o único registro do resultado.
func (s *Service) runQueued(startStr, endStr string) {
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("Panic na sincronização em background")
			s.tracker.Set(SyncState{Status: StatusFailed, Message: "Erro", Error: fmt.Sprint(r)})
		}
	}()

	s.tracker.Set(SyncState{Status: StatusRunning, Message: "Processando..."})

	total, err := s.RunSync(context.Background(), startStr, endStr)
	if err != nil {
		logrus.WithError(err).Error("Erro na sincronização em background")
		s.tracker.Set(SyncState{Status: StatusFailed, Message: "Erro", Error: err.Error()})
		return
	}

	s.tracker.Set(SyncState{Status: StatusDone, Message: "Sucesso!", Rows: total})
}
