package syncing

import (
	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/domain"
)

// SheetHeader retorna a primeira linha fixa da aba de destino
func SheetHeader() []interface{} {
	return []interface{}{"Casa", "Campanha", "Jogo", "Total", "Ano", "Mês", "Dia (YYYY-MM-DD)"}
}

// BuildRows projeta os resumos agregados no formato tabular da planilha,
// cabeçalho incluso e na ordem recebida da agregação. A coluna auxiliar
// de ordenação (casa_ordem) nunca é emitida. Sem resumos, o resultado é
// apenas o cabeçalho.
func BuildRows(summaries []*domain.ActivationSummary) [][]interface{} {
	rows := make([][]interface{}, 0, len(summaries)+1)
	rows = append(rows, SheetHeader())

	for _, summary := range summaries {
		rows = append(rows, []interface{}{
			summary.House,
			summary.Campaign,
			summary.Game,
			summary.TotalActivations,
			summary.Year,
			summary.Month,
			summary.Day,
		})
	}

	return rows
}
