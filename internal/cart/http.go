package cart

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"MiniShop/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger

	removed prometheus.Counter
}

type removeResp struct {
	Message string `json:"message"`
}

func (s *Server) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	items, err := s.Store.List(r.Context())
	if err != nil {
		s.logger().Error("list cart failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, items)
}

func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	item, err := kit.DecodeRecord(w, r)
	if err != nil {
		kit.WriteDecodeError(w, r, err)
		return
	}

	if err := s.Store.Add(r.Context(), item); err != nil {
		s.logger().Error("add to cart failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	if _, err := item.Int(idField); err != nil {
		s.logger().Warn("cart item cannot be removed by id", zap.Error(err))
	}

	kit.WriteJSON(w, http.StatusCreated, item)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "itemID")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"item_id": raw})
		return
	}

	n, err := s.Store.Remove(r.Context(), id)
	if err != nil {
		s.logger().Error("remove from cart failed", zap.Error(err), zap.Int64("item_id", id))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	if s.removed != nil {
		s.removed.Add(float64(n))
	}
	s.logger().Debug("cart items removed", zap.Int64("item_id", id), zap.Int("removed", n))

	kit.WriteJSON(w, http.StatusOK, removeResp{Message: "Item removed"})
}
