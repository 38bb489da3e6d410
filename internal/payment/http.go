package payment

import (
	"errors"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"MiniShop/pkg/kit"
)

const RefHeader = "X-Payment-Ref"

type Server struct {
	Processor Processor
	Log       *zap.Logger

	processed *prometheus.CounterVec
}

func (s *Server) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func (s *Server) processor() Processor {
	if s.Processor == nil {
		return AcceptAll{}
	}
	return s.Processor
}

func (s *Server) process(w http.ResponseWriter, r *http.Request) {
	payload, err := kit.DecodeBody(w, r)
	if err != nil && !errors.Is(err, kit.ErrEmptyBody) {
		kit.WriteDecodeError(w, r, err)
		return
	}

	ref := "pay_" + uuid.NewString()
	log := s.logger().With(
		zap.String("payment_ref", ref),
		zap.String("request_id", chimw.GetReqID(r.Context())),
	)

	res, err := s.processor().Process(r.Context(), Request{Ref: ref, Payload: payload})
	if err != nil {
		log.Error("process payment failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	if s.processed != nil {
		s.processed.WithLabelValues(res.Status).Inc()
	}
	log.Info("payment processed", zap.String("status", res.Status))

	w.Header().Set(RefHeader, ref)
	kit.WriteJSON(w, http.StatusOK, res)
}
