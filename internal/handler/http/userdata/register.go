package userdata

import (
	"net/http"

	dataUC "datapulse/internal/usecase/userdata"
)

// Register wires the user-data CRUD routes onto the mux. Item routes
// use the subtree pattern and extract the ID from the path themselves.
func Register(mux *http.ServeMux, svc dataUC.Service) {
	mux.Handle("GET /data", ListHandler{svc})
	mux.Handle("POST /data", CreateHandler{svc})
	mux.Handle("GET /data/", GetHandler{svc})
	mux.Handle("PUT /data/", UpdateHandler{svc})
	mux.Handle("DELETE /data/", DeleteHandler{svc})
}
