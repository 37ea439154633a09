package userdata

import (
	"encoding/json"
	"net/http"

	"datapulse/internal/handler/http/respond"
	dataUC "datapulse/internal/usecase/userdata"
)

type CreateHandler struct{ Svc dataUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	created, err := h.Svc.Create(r.Context(), dataUC.CreateInput{
		Name: req.Name, Value: req.Value,
	})
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(created))
}
