package userdata

import (
	"encoding/json"
	"errors"
	"net/http"

	"datapulse/internal/domain/entity"
	"datapulse/internal/handler/http/pathutil"
	"datapulse/internal/handler/http/respond"
	dataUC "datapulse/internal/usecase/userdata"
)

type UpdateHandler struct{ Svc dataUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/data/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	updated, err := h.Svc.Update(r.Context(), dataUC.UpdateInput{
		ID: id, Name: req.Name, Value: req.Value,
	})
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, entity.ErrNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(updated))
}
