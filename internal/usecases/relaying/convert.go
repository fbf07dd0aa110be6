package relaying

import (
	"bytes"
	"encoding/csv"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ConvertWorkbookToCSV converte uma planilha xlsx em memória para um único
// CSV separado por ponto e vírgula. Todas as abas entram, na ordem do
// arquivo, concatenadas.
func ConvertWorkbookToCSV(data []byte) ([]byte, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir a planilha")
	}
	defer workbook.Close()

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Comma = ';'

	for _, sheet := range workbook.GetSheetList() {
		rows, err := workbook.GetRows(sheet)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao ler a aba %q", sheet)
		}
		for _, row := range rows {
			if err := writer.Write(row); err != nil {
				return nil, errors.Wrap(err, "erro ao escrever linha do CSV")
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "erro ao finalizar o CSV")
	}

	return buf.Bytes(), nil
}
