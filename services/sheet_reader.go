package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"epictojira/models"
)

// ReadTable はファイル名の拡張子に応じてCSVまたはExcelとして表を読み込みます
func ReadTable(filename string, data []byte) (models.Table, error) {
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return ReadTableXLSX(bytes.NewReader(data))
	}
	return ReadTableCSV(bytes.NewReader(data))
}

// ReadTableCSV はCSVを読み込み、先頭行をヘッダーとして表を構築します
func ReadTableCSV(r io.Reader) (models.Table, error) {
	reader := csv.NewReader(r)
	// 行ごとのフィールド数の不一致は許容する（後段で空セル扱い）
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return models.Table{}, fmt.Errorf("CSV読み込みエラー: %w", err)
	}

	return tableFromRecords(records), nil
}

// ReadTableXLSX はExcelブックの最初のシートを表として読み込みます
func ReadTableXLSX(r io.Reader) (models.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return models.Table{}, fmt.Errorf("Excelオープンエラー: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return models.Table{}, fmt.Errorf("Excelブックにシートがありません")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return models.Table{}, fmt.Errorf("シート '%s' の読み込みエラー: %w", sheets[0], err)
	}

	return tableFromRecords(rows), nil
}

// tableFromRecords は生のレコード列から表を構築します。
// セル値は前後の空白を除去し、名前のないヘッダーには
// スプレッドシート出力と同じ形式の "Unnamed: N" を割り当てます。
func tableFromRecords(records [][]string) models.Table {
	if len(records) == 0 {
		return models.Table{}
	}

	headers := records[0]
	columns := make([]string, len(headers))
	for i, header := range headers {
		if i == 0 {
			// Excel互換ツールが付けるBOMを除去
			header = strings.TrimPrefix(header, "\uFEFF")
		}
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Unnamed: %d", i)
		}
		columns[i] = header
	}

	rows := make([]models.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(models.Row, len(columns))
		for j, col := range columns {
			if j < len(record) {
				row[col] = strings.TrimSpace(record[j])
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return models.Table{Columns: columns, Rows: rows}
}
