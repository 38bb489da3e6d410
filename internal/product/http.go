package product

import (
	"net/http"

	"go.uber.org/zap"

	"MiniShop/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

func (s *Server) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	products, err := s.Store.List(r.Context())
	if err != nil {
		s.logger().Error("list products failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	rec, err := kit.DecodeRecord(w, r)
	if err != nil {
		kit.WriteDecodeError(w, r, err)
		return
	}

	if err := s.Store.Add(r.Context(), rec); err != nil {
		s.logger().Error("add product failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	if p, err := FromRecord(rec); err != nil {
		s.logger().Debug("product added with unexpected shape", zap.Error(err))
	} else {
		s.logger().Info("product added", zap.Int64("id", p.ID), zap.String("name", p.Name))
	}

	kit.WriteJSON(w, http.StatusCreated, rec)
}
