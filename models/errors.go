package models

import (
	"errors"
	"fmt"
	"strings"
)

// EmptyInputError は入力データの行数が処理に必要な数に満たない場合のエラーです
type EmptyInputError struct {
	Rows int
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("入力データが空か、処理に必要な行数がありません（%d 行）", e.Rows)
}

// MissingColumnError は必須カラムが入力データに存在しない場合のエラーです
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("必要なカラムが見つかりません: %s。入力フォーマットを確認してください", strings.Join(e.Columns, ", "))
}

// MissingSentinelError はEPIC列に終端値 'END' が見つからない場合のエラーです
type MissingSentinelError struct{}

func (e *MissingSentinelError) Error() string {
	return "EPIC列に終端値 'END' が見つかりません。入力データに 'END' が存在することを確認してください"
}

// OrphanStoryError は先行するエピックを持たないストーリー行のエラーです。
// Row は正規化後の表における0始まりの行位置です。
type OrphanStoryError struct {
	Row int
}

func (e *OrphanStoryError) Error() string {
	return fmt.Sprintf("行 %d のストーリーに対応するエピックがありません。すべてのストーリーはエピックの後に置いてください", e.Row)
}

// InvalidEstimateError は見積もりセルが数値として解析できない場合のエラーです
type InvalidEstimateError struct {
	Row    int
	Column string
	Value  string
}

func (e *InvalidEstimateError) Error() string {
	return fmt.Sprintf("行 %d の %s 列の見積もり '%s' を数値として解析できません", e.Row, e.Column, e.Value)
}

// IsConversionError は err が変換エラー分類のいずれかであるかを返します。
// 境界層はこれを使って入力起因のエラーをHTTP 400に対応付けます。
func IsConversionError(err error) bool {
	var (
		emptyErr    *EmptyInputError
		columnErr   *MissingColumnError
		sentinelErr *MissingSentinelError
		orphanErr   *OrphanStoryError
		estimateErr *InvalidEstimateError
	)

	switch {
	case errors.As(err, &emptyErr),
		errors.As(err, &columnErr),
		errors.As(err, &sentinelErr),
		errors.As(err, &orphanErr),
		errors.As(err, &estimateErr):
		return true
	}
	return false
}
