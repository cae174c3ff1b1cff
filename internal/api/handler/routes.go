package handler

import (
	"net/http"

	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/api/handler/router"
	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/scheduler"
	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/usecases/syncing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sync(service syncing.Syncer) []router.Route {
	return []router.Route{
		{
			Path:    "/sync",
			Method:  http.MethodPost,
			Handler: StartSync(service),
		},
		{
			Path:    "/last-sync",
			Method:  http.MethodGet,
			Handler: GetLastSync(service),
		},
		{
			Path:    "/puxar-resumo",
			Method:  http.MethodGet,
			Handler: GetResumo(service),
		},
		{
			// Alias em inglês do /puxar-resumo para clientes novos
			Path:    "/sync-summary",
			Method:  http.MethodGet,
			Handler: GetResumo(service),
		},
	}
}

// Frontend retorna as rotas do painel estático de sustentação
func Frontend() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RootHandler(),
		},
		{
			Path:    "/assests/*filepath",
			Method:  http.MethodGet,
			Handler: AssetsHandler(),
		},
	}
}

func CronJobs(service *scheduler.ActivationSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/ativacoes/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(service),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(service),
		},
	}
}
