package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"epictojira/config"
	"epictojira/services"
	"epictojira/utils"
)

// Server はアップロード受付と変換結果の配信を提供するHTTPサーバーです
type Server struct {
	config    *config.Config
	converter *services.ConvertService
}

// New は新しいHTTPサーバーを作成します
func New(cfg *config.Config, converter *services.ConvertService) *Server {
	return &Server{
		config:    cfg,
		converter: converter,
	}
}

// Routes はHTTPルーターを構築します
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", s.IndexPage)
	r.Post("/", s.UploadFile)
	r.Get("/uploads/processed/{filename}", s.ProcessedFile)

	return r
}

// ListenAndServe は設定されたポートでサーバーを起動します
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	utils.LogInfo("HTTPサーバーを起動します: http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Routes())
}
