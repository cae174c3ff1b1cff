package spreadsheet

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// Worksheet publica valores em uma aba fixa de uma planilha. Os ranges
// recebidos são relativos à aba (ex.: "A:I", "A1:G10").
type Worksheet struct {
	service       *sheets.Service
	spreadsheetID string
	tab           string
}

func NewWorksheet(service *sheets.Service, spreadsheetID, tab string) *Worksheet {
	return &Worksheet{
		service:       service,
		spreadsheetID: spreadsheetID,
		tab:           tab,
	}
}

// BatchClear limpa os ranges informados na aba de destino
func (w *Worksheet) BatchClear(ctx context.Context, ranges []string) error {
	qualified := make([]string, 0, len(ranges))
	for _, r := range ranges {
		qualified = append(qualified, w.qualify(r))
	}

	_, err := w.service.Spreadsheets.Values.
		BatchClear(w.spreadsheetID, &sheets.BatchClearValuesRequest{Ranges: qualified}).
		Context(ctx).
		Do()

	return err
}

// UpdateRows escreve as linhas a partir do range informado, com os
// valores crus (sem interpretação de fórmulas pelo Sheets)
func (w *Worksheet) UpdateRows(ctx context.Context, rangeA1 string, rows [][]interface{}) error {
	_, err := w.service.Spreadsheets.Values.
		Update(w.spreadsheetID, w.qualify(rangeA1), &sheets.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()

	return err
}

func (w *Worksheet) qualify(rangeA1 string) string {
	return fmt.Sprintf("%s!%s", w.tab, rangeA1)
}
