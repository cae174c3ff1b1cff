package syncing

import (
	"testing"

	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRowsEmptyInputProducesOnlyHeader(t *testing.T) {
	rows := BuildRows(nil)

	require.Len(t, rows, 1)
	assert.Equal(t, []interface{}{"Casa", "Campanha", "Jogo", "Total", "Ano", "Mês", "Dia (YYYY-MM-DD)"}, rows[0])
}

func TestBuildRowsProjectsSummariesInOrder(t *testing.T) {
	summaries := []*domain.ActivationSummary{
		{
			House:            "7k",
			Campaign:         "Black Friday",
			Game:             "Fortune Tiger",
			TotalActivations: 42,
			Year:             2025,
			Month:            11,
			Day:              "2025-11-14",
			HouseOrder:       1,
		},
		{
			House:            "Cassino",
			Campaign:         "Sem Campanha",
			Game:             "Sem Jogo",
			TotalActivations: 2,
			Year:             2025,
			Month:            11,
			Day:              "2025-11-15",
			HouseOrder:       2,
		},
	}

	rows := BuildRows(summaries)

	// Cabeçalho + uma linha por resumo, na ordem recebida
	require.Len(t, rows, 3)
	assert.Equal(t, []interface{}{"7k", "Black Friday", "Fortune Tiger", int64(42), 2025, 11, "2025-11-14"}, rows[1])
	assert.Equal(t, []interface{}{"Cassino", "Sem Campanha", "Sem Jogo", int64(2), 2025, 11, "2025-11-15"}, rows[2])
}

func TestBuildRowsNeverEmitsHouseOrder(t *testing.T) {
	rows := BuildRows([]*domain.ActivationSummary{
		{House: "Vera", Campaign: "Natal", Game: "Roleta", TotalActivations: 1, Year: 2025, Month: 12, Day: "2025-12-01", HouseOrder: 3},
	})

	require.Len(t, rows, 2)
	assert.Len(t, rows[1], 7)
	assert.NotContains(t, rows[1], 3)
}
