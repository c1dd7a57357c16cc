package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"epictojira/config"
	"epictojira/services"
	"epictojira/utils"
)

func main() {
	// コマンドラインフラグの定義
	inputPath := flag.String("input", "", "入力するエピック計画表（CSVまたはxlsx、指定しない場合は環境変数から取得）")
	outputPath := flag.String("output", "", "出力するJIRAインポートCSV（指定しない場合は環境変数から取得）")
	help := flag.Bool("help", false, "ヘルプを表示する")

	// フラグのパース
	flag.Parse()

	// ヘルプフラグが指定された場合はヘルプを表示
	if *help {
		printHelp()
		return
	}

	// 開始時間の記録
	startTime := time.Now()

	utils.LogInfo("エピック計画表 → JIRAインポートCSV 変換ツール")

	// 設定の読み込み
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("設定の読み込みに失敗しました: %v", err)
		os.Exit(1)
	}

	// コマンドラインでパスが指定された場合、設定を上書き
	if *inputPath != "" {
		cfg.InputCSV = *inputPath
		utils.LogInfo("入力ファイルを指定: %s", cfg.InputCSV)
	}

	if *outputPath != "" {
		cfg.OutputCSV = *outputPath
		utils.LogInfo("出力ファイルを指定: %s", cfg.OutputCSV)
	}

	// 変換サービスの初期化と実行
	converter := services.NewConvertService(cfg)

	utils.LogInfo("変換しています: %s → %s", cfg.InputCSV, cfg.OutputCSV)
	rows, err := converter.ConvertFile(cfg.InputCSV, cfg.OutputCSV)
	if err != nil {
		utils.LogError("変換エラー: %v", err)
		os.Exit(1)
	}

	// 処理時間の表示
	elapsed := time.Since(startTime)
	utils.LogInfo("変換が完了しました: %d 件のレコードを出力しました。処理時間: %s", rows, elapsed)
}

// ヘルプメッセージを表示する関数
func printHelp() {
	fmt.Printf(`
エピック計画表 → JIRAインポートCSV 変換ツール

使用方法:
  %s [オプション]

オプション:
  -input ファイル      入力するエピック計画表（CSVまたはxlsx）
  -output ファイル     出力するJIRAインポートCSV
  -help               このヘルプを表示する

環境変数:
  INPUT_CSV           入力するエピック計画表のパス (デフォルト: epic_plan.csv)
  OUTPUT_CSV          出力するJIRAインポートCSVのパス (デフォルト: jira_import_ready.csv)

説明:
  このツールはエピックとプラットフォーム別ストーリー見積もりを含む
  計画スプレッドシートを、JIRAの一括インポートで読み込める
  固定列のCSVに変換します。

  見積もりは日単位で記入されたものを秒単位（1日 = 8時間）へ換算します。
  入力のEPIC列には終端を示す 'END' 行が必要です。
`, os.Args[0])
}
