package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"

	"epictojira/config"
	"epictojira/utils"
)

// ConvertService はアップロードされたファイルの変換と保存を担当します
type ConvertService struct {
	config *config.Config
}

// NewConvertService は新しい変換サービスを作成します
func NewConvertService(cfg *config.Config) *ConvertService {
	return &ConvertService{
		config: cfg,
	}
}

// ConvertBytes はファイル内容を変換し、インポートCSVのバイト列を返します。
// 拡張子が .xlsx の場合はExcelとして、それ以外はCSVとして読み込みます。
func (s *ConvertService) ConvertBytes(filename string, data []byte) ([]byte, error) {
	table, err := ReadTable(filename, data)
	if err != nil {
		return nil, err
	}

	converted, err := Convert(table)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := WriteTableCSV(&buf, converted); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ProcessUpload はアップロードされたファイルを変換し、一意な名前で
// 保存フォルダに永続化してそのファイル名を返します。
// 変換に失敗した場合は何も永続化しません。
func (s *ConvertService) ProcessUpload(filename string, data []byte) (string, error) {
	defer utils.TrackTime(time.Now(), "ファイル変換")

	safe := utils.SanitizeFilename(filename)
	utils.LogInfo("アップロードファイルを変換します: %s (%d バイト)", safe, len(data))

	output, err := s.ConvertBytes(safe, data)
	if err != nil {
		return "", err
	}

	blobName := s.blobName(safe)
	dir := s.config.ProcessedFolder()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("保存フォルダ作成エラー: %w", err)
	}

	// 部分的に書かれたファイルを残さないようアトミックに書き込む
	outPath := filepath.Join(dir, blobName)
	if err := atomic.WriteFile(outPath, bytes.NewReader(output)); err != nil {
		return "", fmt.Errorf("変換結果書き込みエラー: %w", err)
	}

	utils.LogInfo("変換結果を保存しました: %s", outPath)
	return blobName, nil
}

// Open は保存済みの変換結果を開きます。
// パスを遡るようなファイル名は拒否します。
func (s *ConvertService) Open(blobName string) (*os.File, error) {
	if blobName == "" || blobName != filepath.Base(blobName) {
		return nil, fmt.Errorf("不正なファイル名です: %s", blobName)
	}

	file, err := os.Open(filepath.Join(s.config.ProcessedFolder(), blobName))
	if err != nil {
		return nil, fmt.Errorf("変換結果オープンエラー: %w", err)
	}
	return file, nil
}

// ConvertFile はローカルファイルを変換して outputPath に保存します（CLI用）。
// 成功時は出力した行数を返します。
func (s *ConvertService) ConvertFile(inputPath, outputPath string) (int, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return 0, fmt.Errorf("入力ファイル読み込みエラー: %w", err)
	}

	table, err := ReadTable(inputPath, data)
	if err != nil {
		return 0, err
	}

	converted, err := Convert(table)
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	if err := WriteTableCSV(&buf, converted); err != nil {
		return 0, err
	}
	if err := atomic.WriteFile(outputPath, &buf); err != nil {
		return 0, fmt.Errorf("出力ファイル書き込みエラー: %w", err)
	}

	return len(converted.Rows), nil
}

// blobName は保存用の一意なファイル名を生成します。
// タイムスタンプに加えて短いランダムトークンを付けることで、
// 同時アップロード間の名前衝突を避けます。
func (s *ConvertService) blobName(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	if base == "" {
		base = "upload"
	}
	token := uuid.NewString()[:8]
	return fmt.Sprintf("%s_%d_%s_processed.csv", base, time.Now().Unix(), token)
}
