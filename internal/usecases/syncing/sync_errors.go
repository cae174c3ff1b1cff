package syncing

import (
	"errors"
	"fmt"
)

// Erros específicos do fluxo de sincronização
var (
	// Erros de validação do período
	ErrInvalidDate   = errors.New("data inválida, use YYYY-MM-DD")
	ErrInvertedRange = errors.New("data fim não pode ser menor que data início")

	// Erros dos colaboradores externos
	ErrSheetsUnavailable = errors.New("google sheets não conectou (credenciais/aba/planilha)")
	ErrPublishFailed     = errors.New("erro ao publicar na planilha")

	// Erros de concorrência
	ErrSyncInProgress = errors.New("sincronização já em andamento")
)

// SyncError é um erro com contexto adicional do fluxo de sincronização
type SyncError struct {
	Err     error  // Erro base
	Details string // Detalhes adicionais (ex.: valor rejeitado)
}

// Error implementa a interface error
func (e *SyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SyncError) Unwrap() error {
	return e.Err
}
