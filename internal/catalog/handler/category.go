package handler

import (
	"encoding/json"
	"net/http"

	"wanderbook/internal/catalog/service"
	apperrors "wanderbook/pkg/errors"
	httputil "wanderbook/pkg/http"
	"wanderbook/pkg/logger"
	"wanderbook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const (
	viewParam = "view"
	viewRaw   = "raw"
)

type CategoryHandler struct {
	service service.CategoryService
	log     *logger.Logger
}

func NewCategoryHandler(service service.CategoryService, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log,
	}
}

// List serves the resolved catalog. ?view=raw returns the stored documents
// without availability filtering.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	list := h.service.ListCategories
	if r.URL.Query().Get(viewParam) == viewRaw {
		list = h.service.ListRawCategories
	}

	categories, err := list(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, categories)
}

func (h *CategoryHandler) UpsertOptions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.CategoryOptionsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.log.Debug("Invalid option submission body", "error", err)
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	category, err := h.service.UpsertCategoryOptions(r.Context(), &input)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, "Options saved", category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteMessage(w, "Category deleted", nil)
}

func (h *CategoryHandler) RegisterRoutes(router *httprouter.Router, prefix string) {
	router.GET(prefix+"/categories", h.List)
	router.POST(prefix+"/options", h.UpsertOptions)
	router.DELETE(prefix+"/categories/:id", h.Delete)
}
