package main

import (
	"context"
	"time"

	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/infrastructure/repository"
	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/infrastructure/spreadsheet"
	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/api"
	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/config"
	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/scheduler"
	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/usecases/syncing"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	activationRepo := repository.NewActivationRepository(cfg.Mongo)

	// O Google Sheets carrega uma vez na inicialização. Falha aqui não
	// derruba a API: as sincronizações passam a falhar com erro claro
	// até o deploy ser corrigido.
	destination := sheetsDestination(ctx, cfg)

	syncService := syncing.NewService(activationRepo, destination)

	activationSyncService := scheduler.NewActivationSyncService(syncService, cfg)
	if err := activationSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de ativações")
	} else {
		logrus.Info("Agendador de sincronização de ativações iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		syncService,
		activationSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// sheetsDestination conecta no Google Sheets e devolve a aba de destino,
// ou nil quando a conexão falhou
func sheetsDestination(ctx context.Context, cfg *config.Config) syncing.Destination {
	service, err := spreadsheet.NewService(ctx, cfg.Sheets)
	if err != nil {
		logrus.WithError(err).Error("Erro ao conectar no Google Sheets")
		return nil
	}

	logrus.Info("Google Sheets conectado com sucesso")
	return spreadsheet.NewWorksheet(service, cfg.Sheets.SpreadsheetID, cfg.Sheets.Worksheet)
}
