package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/polesense/polesense-be/internal/http/respond"
	"github.com/polesense/polesense-be/internal/status"
	"github.com/polesense/polesense-be/internal/storage"
)

// PoleHandler serves the pole fleet with derived display status.
type PoleHandler struct {
	poles storage.PoleStore
}

// NewPoleHandler constructs the handler.
func NewPoleHandler(poles storage.PoleStore) *PoleHandler {
	return &PoleHandler{poles: poles}
}

// Register attaches pole routes to the router.
func (h *PoleHandler) Register(r chi.Router) {
	r.Get("/api/poles", h.handleList)
	r.Get("/api/poles/{poleID}", h.handleGet)
}

func (h *PoleHandler) handleList(w http.ResponseWriter, r *http.Request) {
	poles, err := h.poles.ListPoles(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list poles failed")
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch poles")
		return
	}

	// One evaluation instant for the whole response.
	status.Annotate(poles, time.Now().UTC())
	respond.JSON(w, http.StatusOK, poles)
}

func (h *PoleHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	poleID := chi.URLParam(r, "poleID")

	pole, err := h.poles.GetPole(r.Context(), poleID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Pole not found")
			return
		}
		log.Error().Err(err).Str("pole_id", poleID).Msg("get pole failed")
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch pole")
		return
	}

	pole.DisplayStatus = status.Resolve(pole.CommunicationStatus, pole.UpdateTime, time.Now().UTC())
	respond.JSON(w, http.StatusOK, pole)
}
