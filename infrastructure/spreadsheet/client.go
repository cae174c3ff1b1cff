// Package spreadsheet concentra a integração com o Google Sheets, o
// destino de publicação do resumo de ativações.
package spreadsheet

import (
	"context"
	"os"

	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/config"
	"github.com/pkg/errors"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// NewService cria o client do Google Sheets a partir do arquivo de
// credenciais de service account configurado.
func NewService(ctx context.Context, cfg config.Sheets) (*sheets.Service, error) {
	credJSON, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler arquivo de credenciais %s", cfg.CredentialsFile)
	}

	jwtConfig, err := google.JWTConfigFromJSON(credJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao interpretar credenciais do Google")
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar serviço do Google Sheets")
	}

	return service, nil
}
