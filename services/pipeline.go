package services

import (
	"fmt"

	"epictojira/models"
)

// Convert はエピック計画表をJIRA一括インポート表へ変換します。
// 正規化 → 展開 → 仕上げ の3段階を順に実行し、いずれかの段階で
// エラーが発生した場合は部分的な出力を返さずに中断します。
func Convert(t models.Table) (models.Table, error) {
	cleaned, err := Normalize(t)
	if err != nil {
		return models.Table{}, fmt.Errorf("正規化エラー: %w", err)
	}

	expanded, err := Expand(cleaned)
	if err != nil {
		return models.Table{}, fmt.Errorf("展開エラー: %w", err)
	}

	return Finalize(expanded), nil
}
