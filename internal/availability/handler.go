package availability

import (
	"net/http"

	httputil "wanderbook/pkg/http"
	"wanderbook/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	service Service
	log     *logger.Logger
}

func NewHandler(service Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

func (h *Handler) AvailableItems(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	items, err := h.service.ListAvailableItems(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, items)
}

func (h *Handler) RegisterRoutes(router *httprouter.Router, prefix string) {
	router.GET(prefix+"/available-items", h.AvailableItems)
}
