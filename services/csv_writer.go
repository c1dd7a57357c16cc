package services

import (
	"encoding/csv"
	"fmt"
	"io"

	"epictojira/models"
)

// utf8BOM はExcel等の表計算ツールにUTF-8と認識させるためのBOMです
const utf8BOM = "\uFEFF"

// WriteTableCSV は表をBOM付きUTF-8のCSVとして書き出します
func WriteTableCSV(w io.Writer, t models.Table) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("BOM書き込みエラー: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(t.Columns); err != nil {
		return fmt.Errorf("ヘッダー書き込みエラー: %w", err)
	}

	for _, row := range t.Rows {
		record := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			record[i] = row[col]
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("行書き込みエラー: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("CSV書き込み完了エラー: %w", err)
	}

	return nil
}
