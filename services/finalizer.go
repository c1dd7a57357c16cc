package services

import (
	"math"
	"strconv"

	"epictojira/models"
)

// secondsPerDay は見積もりの換算係数です（1日 = 8時間 = 28800秒）
const secondsPerDay = 8 * 3600

// Finalize は展開結果を最終的なインポート表へ仕上げます。
// エピックの見積もりを集計値で埋め、すべての見積もりを日から秒へ
// 換算し、コンポーネント列を3列（Components / Components 1 / Components 2）
// に展開します。エピックの3列は Android / iOS / Server の固定順です。
func Finalize(result *models.ExpandResult) models.Table {
	rows := make([]models.Row, 0, len(result.Records))

	for _, rec := range result.Records {
		days := rec.EstimateDays
		comp, comp1, comp2 := rec.Components, rec.Components, rec.Components

		if rec.IssueType == models.IssueTypeEpic {
			if rec.AggregateIndex >= 0 && rec.AggregateIndex < len(result.Aggregates) {
				agg := result.Aggregates[rec.AggregateIndex]
				days = agg.TotalDays
				comp = componentIf(agg.Android, models.ComponentAndroid)
				comp1 = componentIf(agg.IOS, models.ComponentIOS)
				comp2 = componentIf(agg.Server, models.ComponentServer)
			} else {
				// 集計が見つからないエピックは見積もり0のまま出力する
				days = 0
				comp, comp1, comp2 = "", "", ""
			}
		}

		rows = append(rows, models.Row{
			"Issue Type":        rec.IssueType,
			"Epic Name":         rec.EpicName,
			"Epic Link":         rec.EpicLink,
			"Summary":           rec.Summary,
			"Description":       rec.Description,
			"Components":        comp,
			"Components 1":      comp1,
			"Components 2":      comp2,
			"Original Estimate": strconv.Itoa(daysToSeconds(days)),
		})
	}

	return models.Table{Columns: models.ImportColumns, Rows: rows}
}

// daysToSeconds は日数を秒へ換算し整数に丸めます。
// 丸めは四捨五入（0.5は0から遠い方向）で統一しています。
func daysToSeconds(days float64) int {
	return int(math.Round(days * secondsPerDay))
}

func componentIf(enabled bool, component string) string {
	if enabled {
		return component
	}
	return ""
}
