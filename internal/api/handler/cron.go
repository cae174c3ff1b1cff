package handler

import (
	"encoding/json"
	"net/http"

	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/scheduler"
	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// RunCronJob dispara manualmente a rodada agendada de republicação
func RunCronJob(service *scheduler.ActivationSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização agendada não disponível", nil)
			return
		}

		service.TriggerManualSync()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    "ativacoes",
		})
	})
}

// GetCronStatus retorna o status do agendador de republicação
func GetCronStatus(service *scheduler.ActivationSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"ativacoes": service.GetStatus(),
		})
	})
}
