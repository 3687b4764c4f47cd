package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/uncode/videojuegos/internal/app/service"
	"github.com/uncode/videojuegos/pkg/logger"
	"github.com/xuri/excelize/v2"
)

// Columns of the catalog workbook, in order.
var Columns = []string{
	"nombre", "rutaimg", "precio", "cantidad", "descripcion",
	"oferta", "lanzamiento", "categoria", "estudio",
}

// ReadGames reads the first sheet of an .xlsx workbook. The first row is a
// header; empty rows are skipped and short rows are padded with empty cells.
func ReadGames(r io.Reader) ([]service.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	result := make([]service.ImportRow, 0, len(rows))
	for i, cells := range rows {
		if i == 0 || isEmpty(cells) {
			continue
		}
		result = append(result, toRow(i+1, cells))
	}

	logger.Info("Workbook read", map[string]interface{}{
		"sheet": sheets[0],
		"rows":  len(result),
	})
	return result, nil
}

func toRow(line int, cells []string) service.ImportRow {
	cell := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}

	return service.ImportRow{
		Line:        line,
		Name:        cell(0),
		ImagePath:   cell(1),
		Price:       cell(2),
		Quantity:    cell(3),
		Description: cell(4),
		OnOffer:     cell(5),
		ReleaseDate: cell(6),
		Category:    cell(7),
		Studio:      cell(8),
	}
}

func isEmpty(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
