package userdata

import (
	"errors"
	"net/http"

	"datapulse/internal/domain/entity"
	"datapulse/internal/handler/http/pathutil"
	"datapulse/internal/handler/http/respond"
	dataUC "datapulse/internal/usecase/userdata"
)

type GetHandler struct{ Svc dataUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/data/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	item, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, entity.ErrNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(item))
}
