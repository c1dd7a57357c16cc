package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"epictojira/models"
)

// planHeader はテスト入力の標準的なヘッダーです
var planHeader = []string{"EPIC", "SUMMARY", "IOS", "AND", "SERV", "NOTES"}

// planTable はテンプレート行付きのテスト用入力表を構築します
func planTable(rows ...[]string) models.Table {
	records := [][]string{planHeader, {"As a user I need to", "", "", "", "", ""}}
	records = append(records, rows...)
	return tableFromRecords(records)
}

func TestNormalizeEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		table models.Table
	}{
		{"データ行なし", tableFromRecords([][]string{planHeader})},
		{"データ行1行のみ", tableFromRecords([][]string{planHeader, {"E1", "s", "", "", "", ""}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.table)
			var emptyErr *models.EmptyInputError
			require.ErrorAs(t, err, &emptyErr)
		})
	}
}

func TestNormalizeDropsTemplateRowAndPlaceholders(t *testing.T) {
	records := [][]string{
		{"EPIC", "SUMMARY", "IOS", "", "AND", "", "SERV", "", "NOTES"},
		{"As a user I need to", "", "", "x", "", "x", "", "x", ""},
		{"E1", "エピック概要", "", "", "", "", "", "", "メモ"},
		{"END", "", "", "", "", "", "", "", ""},
	}

	cleaned, err := Normalize(tableFromRecords(records))
	require.NoError(t, err)

	// プレースホルダー列（Unnamed: 3, 5, 7）は除去され、6列が残る
	assert.Equal(t, []string{"EPIC", "SUMMARY", "IOS", "AND", "SERV", "NOTES"}, cleaned.Columns)
	require.Len(t, cleaned.Rows, 1)
	assert.Equal(t, "E1", cleaned.Rows[0]["EPIC"])
	assert.Equal(t, "エピック概要", cleaned.Rows[0]["SUMMARY"])
	assert.Equal(t, "メモ", cleaned.Rows[0]["NOTES"])
}

func TestNormalizeKeepsFirstSixColumns(t *testing.T) {
	records := [][]string{
		{"EPIC", "SUMMARY", "IOS", "AND", "SERV", "NOTES", "EXTRA"},
		{"template", "", "", "", "", "", ""},
		{"E1", "s", "", "", "", "", "余分"},
		{"END", "", "", "", "", "", ""},
	}

	cleaned, err := Normalize(tableFromRecords(records))
	require.NoError(t, err)

	assert.Len(t, cleaned.Columns, 6)
	assert.NotContains(t, cleaned.Columns, "EXTRA")
	_, ok := cleaned.Rows[0]["EXTRA"]
	assert.False(t, ok)
}

func TestNormalizeRemovesEmptyRows(t *testing.T) {
	cleaned, err := Normalize(planTable(
		[]string{"E1", "s1", "", "", "", ""},
		[]string{"", "", "", "", "", ""},
		[]string{"", "story", "1", "", "", ""},
		[]string{"END", "", "", "", "", ""},
	))
	require.NoError(t, err)

	require.Len(t, cleaned.Rows, 2)
	assert.Equal(t, "E1", cleaned.Rows[0]["EPIC"])
	assert.Equal(t, "story", cleaned.Rows[1]["SUMMARY"])
}

func TestNormalizeMissingEpicColumn(t *testing.T) {
	records := [][]string{
		{"SUMMARY", "IOS", "AND", "SERV", "NOTES"},
		{"template", "", "", "", ""},
		{"s1", "1", "", "", ""},
	}

	_, err := Normalize(tableFromRecords(records))
	var columnErr *models.MissingColumnError
	require.ErrorAs(t, err, &columnErr)
	assert.Equal(t, []string{"EPIC"}, columnErr.Columns)
}

func TestNormalizeMissingSentinel(t *testing.T) {
	_, err := Normalize(planTable(
		[]string{"E1", "s1", "", "", "", ""},
		[]string{"", "story", "1", "", "", ""},
	))
	var sentinelErr *models.MissingSentinelError
	require.ErrorAs(t, err, &sentinelErr)
}

func TestNormalizeSentinelOnFirstRow(t *testing.T) {
	// 最初の有効行が 'END' の場合は空の表（エラーではない）
	cleaned, err := Normalize(planTable(
		[]string{"END", "", "", "", "", ""},
		[]string{"E1", "無視される", "", "", "", ""},
	))
	require.NoError(t, err)
	assert.Empty(t, cleaned.Rows)
	assert.Contains(t, cleaned.Columns, "EPIC")
}

func TestNormalizeTruncatesAtFirstSentinel(t *testing.T) {
	cleaned, err := Normalize(planTable(
		[]string{"E1", "s1", "", "", "", ""},
		[]string{"END", "", "", "", "", ""},
		[]string{"E2", "打ち切り後", "", "", "", ""},
		[]string{"END", "", "", "", "", ""},
	))
	require.NoError(t, err)

	require.Len(t, cleaned.Rows, 1)
	assert.Equal(t, "E1", cleaned.Rows[0]["EPIC"])
}

func TestNormalizeIdempotent(t *testing.T) {
	records := [][]string{
		{"EPIC", "SUMMARY", "IOS", "", "AND", "", "SERV", "", "NOTES"},
		{"As a user I need to", "", "", "", "", "", "", "", ""},
		{"E1", "s1", "", "", "", "", "", "", "メモ"},
		{"", "story", "1", "", "0.5", "", "2", "", ""},
		{"END", "", "", "", "", "", "", "", ""},
	}

	first, err := Normalize(tableFromRecords(records))
	require.NoError(t, err)

	// 正規化済みの出力にダミーの先頭行と終端行を加えて再実行しても
	// 同じ表が得られる（除去対象の構造がもう残っていないため）
	again := models.Table{Columns: first.Columns}
	again.Rows = append(again.Rows, models.Row{"EPIC": "dummy"})
	again.Rows = append(again.Rows, first.Rows...)
	again.Rows = append(again.Rows, models.Row{"EPIC": "END"})

	second, err := Normalize(again)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalizeErrorsAreConversionErrors(t *testing.T) {
	_, err := Normalize(models.Table{})
	assert.True(t, models.IsConversionError(err))
	assert.False(t, models.IsConversionError(errors.New("別のエラー")))
}
