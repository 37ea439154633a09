package userdata

import (
	"net/http"
	"strconv"

	"datapulse/internal/handler/http/respond"
	dataUC "datapulse/internal/usecase/userdata"
)

type ListHandler struct{ Svc dataUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	in, err := parseListQuery(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	items, err := h.Svc.List(r.Context(), in)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	out := make([]DTO, 0, len(items))
	for _, e := range items {
		out = append(out, toDTO(e))
	}
	respond.JSON(w, http.StatusOK, out)
}

// parseListQuery reads the skip and limit query parameters. Absent
// parameters default to zero, which the use case resolves to its own
// defaults.
func parseListQuery(r *http.Request) (dataUC.ListInput, error) {
	var in dataUC.ListInput
	q := r.URL.Query()

	if s := q.Get("skip"); s != "" {
		skip, err := strconv.Atoi(s)
		if err != nil {
			return in, &invalidParamError{"skip"}
		}
		in.Skip = skip
	}
	if s := q.Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil {
			return in, &invalidParamError{"limit"}
		}
		in.Limit = limit
	}
	return in, nil
}

type invalidParamError struct{ name string }

func (e *invalidParamError) Error() string {
	return "invalid query parameter: " + e.name
}
