package services

import (
	"strconv"

	"epictojira/models"
)

// requiredColumns は展開処理に必須の入力列です
var requiredColumns = []string{
	models.ColEpic,
	models.ColSummary,
	models.ColIOS,
	models.ColAnd,
	models.ColServ,
	models.ColNotes,
}

// platformColumns は見積もり列と出力コンポーネントの対応です。
// ストーリーレコードはこの順（Server → iOS → Android）で出力されます。
var platformColumns = []struct {
	Column    string
	Component string
}{
	{models.ColServ, models.ComponentServer},
	{models.ColIOS, models.ComponentIOS},
	{models.ColAnd, models.ComponentAndroid},
}

// Expand は正規化済みの表を上から1回走査し、エピックとストーリーの
// インポートレコードへ展開します。エピック行は新しい集計を開き、
// ストーリー行は見積もりが入っているプラットフォームごとに
// 1レコードずつ出力しながら現在のエピックの集計へ加算します。
func Expand(t models.Table) (*models.ExpandResult, error) {
	for _, col := range requiredColumns {
		if !t.HasColumn(col) {
			return nil, &models.MissingColumnError{Columns: requiredColumns}
		}
	}

	result := &models.ExpandResult{}
	currentAgg := -1

	for i, row := range t.Rows {
		switch {
		case row[models.ColEpic] != "":
			// エピック行：同名でも出現ごとに独立した集計を開く
			agg := &models.EpicAggregate{Name: row[models.ColEpic]}
			result.Aggregates = append(result.Aggregates, agg)
			currentAgg = len(result.Aggregates) - 1

			result.Records = append(result.Records, models.ImportRecord{
				IssueType:      models.IssueTypeEpic,
				EpicName:       row[models.ColEpic],
				Summary:        row[models.ColSummary],
				Description:    row[models.ColNotes],
				AggregateIndex: currentAgg,
			})

		case row[models.ColSummary] != "":
			// ストーリー行：先行するエピックが必須
			if currentAgg < 0 {
				return nil, &models.OrphanStoryError{Row: i}
			}
			agg := result.Aggregates[currentAgg]

			for _, platform := range platformColumns {
				cell := row[platform.Column]
				if cell == "" {
					continue
				}

				days, err := strconv.ParseFloat(cell, 64)
				if err != nil {
					return nil, &models.InvalidEstimateError{Row: i, Column: platform.Column, Value: cell}
				}

				markPlatform(agg, platform.Component)
				agg.TotalDays += days

				result.Records = append(result.Records, models.ImportRecord{
					IssueType:      models.IssueTypeStory,
					EpicLink:       agg.Name,
					Summary:        row[models.ColSummary],
					Description:    row[models.ColNotes],
					Components:     platform.Component,
					EstimateDays:   days,
					AggregateIndex: -1,
				})
			}

		default:
			// EPICもSUMMARYも空の行はスキップ
		}
	}

	return result, nil
}

// markPlatform は集計のプラットフォームフラグを立てます
func markPlatform(agg *models.EpicAggregate, component string) {
	switch component {
	case models.ComponentServer:
		agg.Server = true
	case models.ComponentIOS:
		agg.IOS = true
	case models.ComponentAndroid:
		agg.Android = true
	}
}
