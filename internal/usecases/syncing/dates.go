package syncing

import "time"

// FloorDate é o limite mínimo de data da base: antes de 13/11/2025 os
// dados de ativação não existem na coleção atual. Pedidos anteriores
// são sempre ajustados para esta data.
var FloorDate = time.Date(2025, time.November, 13, 0, 0, 0, 0, time.UTC)

// NormalizeRange valida o período pedido e o converte em limites UTC
// inclusivos. O início é ajustado para FloorDate quando anterior a ela
// e a inversão do período é verificada depois do ajuste. O limite final
// é 23:59 do último dia, com precisão de minuto.
func NormalizeRange(startStr, endStr string) (time.Time, time.Time, error) {
	startDate, err := parseDate(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	endDate, err := parseDate(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if startDate.Before(FloorDate) {
		startDate = FloorDate
	}

	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, ErrInvertedRange
	}

	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 23, 59, 0, 0, time.UTC)

	return start, end, nil
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, &SyncError{Err: ErrInvalidDate, Details: value}
	}
	return parsed, nil
}
