package services

import (
	"epictojira/models"
)

// sentinelValue はEPIC列で有効データの終端を示す値です
const sentinelValue = "END"

// maxColumns は正規化後に保持する列数です
const maxColumns = 6

// placeholderColumns は元のスプレッドシート書式が挿入する空のプレースホルダー列です。
// データを持つことはないため、存在すれば無条件に除去します。
var placeholderColumns = map[string]bool{
	"Unnamed: 3": true,
	"Unnamed: 5": true,
	"Unnamed: 7": true,
}

// Normalize は入力表の構造を整えます：
// 先頭のテンプレート行（"As a user I need to" の説明行）を除去し、
// プレースホルダー列を落とし、先頭6列のみを残し、空行を除去し、
// EPIC列の終端値 'END' の直前までで表を打ち切ります。
func Normalize(t models.Table) (models.Table, error) {
	if len(t.Rows) < 2 {
		return models.Table{}, &models.EmptyInputError{Rows: len(t.Rows)}
	}

	// 先頭のデータ行はテンプレート行のため無条件に除去する
	rows := t.Rows[1:]

	columns := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		if placeholderColumns[col] {
			continue
		}
		columns = append(columns, col)
	}
	if len(columns) > maxColumns {
		columns = columns[:maxColumns]
	}

	// 保持対象の列がすべて空の行を除去し、残す列だけに射影する
	kept := make([]models.Row, 0, len(rows))
	for _, row := range rows {
		if row.IsEmpty(columns) {
			continue
		}
		projected := make(models.Row, len(columns))
		for _, col := range columns {
			projected[col] = row[col]
		}
		kept = append(kept, projected)
	}

	cleaned := models.Table{Columns: columns, Rows: kept}
	if !cleaned.HasColumn(models.ColEpic) {
		return models.Table{}, &models.MissingColumnError{Columns: []string{models.ColEpic}}
	}

	// EPIC列を上から走査し、最初の 'END' の直前までを有効データとする
	for i, row := range cleaned.Rows {
		if row[models.ColEpic] == sentinelValue {
			cleaned.Rows = cleaned.Rows[:i]
			return cleaned, nil
		}
	}

	return models.Table{}, &models.MissingSentinelError{}
}
