package syncing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRange(t *testing.T) {
	tests := []struct {
		name          string
		start         string
		end           string
		expectedStart time.Time
		expectedEnd   time.Time
		expectedErr   error
	}{
		{
			name:          "Período dentro do limite - mantém as datas pedidas",
			start:         "2025-11-15",
			end:           "2025-11-20",
			expectedStart: time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 11, 20, 23, 59, 0, 0, time.UTC),
		},
		{
			name:          "Início antes do limite mínimo - ajusta para a data limite",
			start:         "2025-01-01",
			end:           "2025-11-20",
			expectedStart: time.Date(2025, 11, 13, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 11, 20, 23, 59, 0, 0, time.UTC),
		},
		{
			name:          "Início muito no passado - ajuste independe da distância",
			start:         "2020-03-10",
			end:           "2025-11-14",
			expectedStart: time.Date(2025, 11, 13, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 11, 14, 23, 59, 0, 0, time.UTC),
		},
		{
			name:          "Período de um único dia",
			start:         "2025-11-13",
			end:           "2025-11-13",
			expectedStart: time.Date(2025, 11, 13, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2025, 11, 13, 23, 59, 0, 0, time.UTC),
		},
		{
			name:        "Fim anterior ao início - rejeita o período",
			start:       "2025-11-15",
			end:         "2025-11-10",
			expectedErr: ErrInvertedRange,
		},
		{
			name:        "Inversão causada pelo ajuste do limite mínimo",
			start:       "2025-01-01",
			end:         "2025-11-12",
			expectedErr: ErrInvertedRange,
		},
		{
			name:        "Data de início malformada",
			start:       "15/11/2025",
			end:         "2025-11-20",
			expectedErr: ErrInvalidDate,
		},
		{
			name:        "Data de fim malformada",
			start:       "2025-11-15",
			end:         "2025-13-45",
			expectedErr: ErrInvalidDate,
		},
		{
			name:        "Data vazia",
			start:       "",
			end:         "2025-11-20",
			expectedErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := NormalizeRange(tt.start, tt.end)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedErr))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)
		})
	}
}

func TestNormalizeRangeInvalidDateIdentifiesValue(t *testing.T) {
	_, _, err := NormalizeRange("2025-11-bad", "2025-11-20")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "2025-11-bad")
}

func TestNormalizeRangeEndBoundHasMinutePrecision(t *testing.T) {
	_, end, err := NormalizeRange("2025-11-13", "2025-11-14")

	require.NoError(t, err)
	// O limite final é 23:59:00 em ponto: eventos no último minuto do
	// dia depois do segundo zero ficam fora do período
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 0, end.Second())
}
