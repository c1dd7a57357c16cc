package main

import (
	"flag"
	"fmt"
	"os"

	"epictojira/config"
	"epictojira/server"
	"epictojira/services"
	"epictojira/utils"
)

func main() {
	// コマンドラインフラグの定義
	port := flag.Int("port", 0, "待ち受けポート（0の場合は環境変数の値を使用）")
	uploadDir := flag.String("upload-dir", "", "アップロード保存フォルダ（指定しない場合は環境変数から取得）")
	help := flag.Bool("help", false, "ヘルプを表示する")

	// フラグのパース
	flag.Parse()

	// ヘルプフラグが指定された場合はヘルプを表示
	if *help {
		printHelp()
		return
	}

	// 設定の読み込み
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("設定の読み込みに失敗しました: %v", err)
		os.Exit(1)
	}

	// コマンドラインでの上書き（指定された場合のみ）
	if *port > 0 {
		cfg.Port = *port
	}
	if *uploadDir != "" {
		cfg.UploadFolder = *uploadDir
	}

	utils.LogInfo("エピック計画表変換サーバー (v1.0.0)")
	utils.LogInfo("設定読み込み完了 (Port: %d, Upload: %s)", cfg.Port, cfg.UploadFolder)

	// 必要なサービスの初期化
	converter := services.NewConvertService(cfg)
	srv := server.New(cfg, converter)

	// サーバーの起動
	if err := srv.ListenAndServe(); err != nil {
		utils.LogError("サーバーの起動に失敗しました: %v", err)
		os.Exit(1)
	}
}

// ヘルプメッセージを表示する関数
func printHelp() {
	fmt.Printf(`
エピック計画表変換サーバー

使用方法:
  %s [オプション]

オプション:
  -port=N             待ち受けポートを指定する
  -upload-dir パス     アップロード保存フォルダを指定する
  -help               このヘルプを表示する

環境変数:
  PORT                待ち受けポート (デフォルト: 5001)
  UPLOAD_FOLDER       アップロード保存フォルダ (デフォルト: uploads)
  MAX_UPLOAD_MB       アップロードの最大サイズMB (デフォルト: 16)

説明:
  このサーバーはエピック計画のスプレッドシートをブラウザから受け取り、
  JIRA一括インポート用CSVへ変換して配信します。

  変換結果は UPLOAD_FOLDER/processed の下に一意な名前で保存され、
  /uploads/processed/<ファイル名> からダウンロードできます。
`, os.Args[0])
}
