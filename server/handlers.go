package server

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"epictojira/models"
	"epictojira/utils"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// indexData はアップロードページの表示内容です
type indexData struct {
	DownloadURL string
}

// IndexPage はアップロードフォームを表示します
func (s *Server) IndexPage(w http.ResponseWriter, r *http.Request) {
	s.renderIndex(w, indexData{})
}

// UploadFile はアップロードされたスプレッドシートを受け取り、変換して
// 保存した上でダウンロードリンク付きのページを返します。
// 入力起因の変換エラーはHTTP 400で応答し、ファイルは永続化しません。
func (s *Server) UploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxUploadBytes())

	file, header, err := r.FormFile("file")
	if err != nil {
		s.badRequest(w, r, "ファイルパートがありません")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		s.badRequest(w, r, "ファイルが選択されていません")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.badRequest(w, r, "ファイルの読み取りに失敗しました")
		return
	}

	blobName, err := s.converter.ProcessUpload(header.Filename, data)
	if err != nil {
		if models.IsConversionError(err) {
			utils.LogWarn("変換エラー: %v", err)
			s.badRequest(w, r, fmt.Sprintf("ファイル処理エラー: %v", err))
			return
		}
		utils.LogError("内部エラー: %v", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]string{"error": "内部エラーが発生しました"})
		return
	}

	s.renderIndex(w, indexData{
		DownloadURL: "/uploads/processed/" + url.PathEscape(blobName),
	})
}

// ProcessedFile は保存済みの変換結果を添付ファイルとして配信します
func (s *Server) ProcessedFile(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	file, err := s.converter.Open(filename)
	if err != nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, map[string]string{"error": "ファイルが見つかりません"})
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := io.Copy(w, file); err != nil {
		utils.LogWarn("ファイル配信エラー: %v", err)
	}
}

func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, message string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, map[string]string{"error": message})
}

func (s *Server) renderIndex(w http.ResponseWriter, data indexData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		utils.LogError("テンプレート描画エラー: %v", err)
	}
}
