package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/infrastructure/repository"
	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/usecases/syncing"
	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/pkg/apiErrors"
	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/pkg/log"
)

// SyncRequest é o corpo do POST /sync. Os horários são aceitos por
// compatibilidade com o frontend, mas o período sincronizado é sempre de
// dias cheios. start/end são aliases de inicio/fim para clientes novos.
type SyncRequest struct {
	Inicio     string `json:"inicio"`
	Fim        string `json:"fim"`
	Start      string `json:"start"`
	End        string `json:"end"`
	HoraInicio string `json:"hora_inicio"`
	HoraFim    string `json:"hora_fim"`
}

func (r *SyncRequest) period() (string, string) {
	start, end := r.Inicio, r.Fim
	if start == "" {
		start = r.Start
	}
	if end == "" {
		end = r.End
	}
	return start, end
}

// ResumoResponse é a resposta do fluxo síncrono GET /puxar-resumo
type ResumoResponse struct {
	Status            string `json:"status"`
	IntervaloAplicado string `json:"intervalo_aplicado"`
	LinhasNoSheets    int    `json:"linhas_no_sheets"`
}

// StartSync agenda uma sincronização em background e responde de
// imediato; o resultado deve ser consultado em GET /last-sync
func StartSync(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var payload SyncRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logger.WithError(err).Warn("sync: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		inicio, fim := payload.period()
		if inicio == "" || fim == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe inicio e fim no formato YYYY-MM-DD", nil)
			return
		}

		if err := service.EnqueueSync(inicio, fim); err != nil {
			logger.WithError(err).Warn("sync: não foi possível agendar a sincronização")
			writeSyncError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"inicio": inicio,
			"fim":    fim,
		}).Info("sync: sincronização agendada")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Sincronização iniciada!",
			"inicio":  inicio,
			"fim":     fim,
		})
	})
}

// GetLastSync retorna o registro da última sincronização agendada
func GetLastSync(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.LastSync()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("sync: erro ao serializar último status")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetResumo executa a sincronização inline e devolve o total de linhas
// publicadas, sem passar pelo registro de status
func GetResumo(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		inicio := r.URL.Query().Get("inicio")
		if inicio == "" {
			inicio = r.URL.Query().Get("start")
		}
		fim := r.URL.Query().Get("fim")
		if fim == "" {
			fim = r.URL.Query().Get("end")
		}
		if inicio == "" || fim == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe inicio e fim no formato YYYY-MM-DD", nil)
			return
		}

		total, err := service.RunSync(r.Context(), inicio, fim)
		if err != nil {
			logger.WithFields(log.Fields{
				"inicio": inicio,
				"fim":    fim,
				"error":  err.Error(),
			}).Error("sync: erro na sincronização síncrona")

			writeSyncError(w, err)
			return
		}

		response := ResumoResponse{
			Status: "Sucesso",
			IntervaloAplicado: fmt.Sprintf(
				"%s a %s (inicio minimo: %s)",
				inicio, fim, syncing.FloorDate.Format(time.DateOnly),
			),
			LinhasNoSheets: total,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("sync: erro ao serializar resumo")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// writeSyncError traduz a taxonomia de erros da sincronização para os
// códigos padronizados da API
func writeSyncError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, syncing.ErrInvalidDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, syncing.ErrInvertedRange):
		apiErrors.WriteError(w, apiErrors.ErrInvertedRange, err.Error(), nil)
	case errors.Is(err, syncing.ErrSyncInProgress):
		apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, err.Error(), nil)
	case errors.Is(err, repository.ErrMissingMongoURI):
		apiErrors.WriteError(w, apiErrors.ErrMissingConfig, err.Error(), nil)
	case errors.Is(err, repository.ErrUnavailable), errors.Is(err, repository.ErrQueryTimeout):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
	case errors.Is(err, syncing.ErrSheetsUnavailable), errors.Is(err, syncing.ErrPublishFailed):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
