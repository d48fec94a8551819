package extractors

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXReader читает лист книги Excel
type XLSXReader struct {
	sheetName string
}

// NewXLSXReader создает читатель для листа sheetName (пустое имя - первый лист)
func NewXLSXReader(sheetName string) *XLSXReader {
	return &XLSXReader{sheetName: sheetName}
}

// ReadRows возвращает значения всех строк листа без числового формата ячеек:
// даты приходят серийными номерами Excel, время суток долями суток
func (r *XLSXReader) ReadRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия книги: %w", err)
	}
	defer f.Close()

	sheet := r.sheetName
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("книга %s не содержит листов", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения листа %q: %w", sheet, err)
	}
	return rows, nil
}
