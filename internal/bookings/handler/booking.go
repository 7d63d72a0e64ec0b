package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"wanderbook/internal/bookings/service"
	apperrors "wanderbook/pkg/errors"
	httputil "wanderbook/pkg/http"
	"wanderbook/pkg/logger"
	"wanderbook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.BookingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.log.Debug("Invalid booking body", "handler", "Create", "error", err)
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	booking, err := h.service.Create(r.Context(), &input)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, "Booking created successfully", booking)
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, booking)
}

func (h *BookingHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings, err := h.service.GetAll(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, bookings)
}

func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var update model.BookingStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.log.Debug("Invalid status body", "handler", "UpdateStatus", "error", err)
		httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), id, update.Status)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteMessage(w, fmt.Sprintf("Booking status updated to %s", booking.Status), booking)
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteMessage(w, "Booking deleted", nil)
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router, prefix string) {
	router.POST(prefix+"/bookings", h.Create)
	router.GET(prefix+"/bookings", h.GetAll)
	router.GET(prefix+"/bookings/:id", h.GetByID)
	router.PUT(prefix+"/bookings/:id", h.UpdateStatus)
	router.DELETE(prefix+"/bookings/:id", h.Delete)
}
