package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RootResponse is the document served at the root path.
type RootResponse struct {
	Message       string `json:"message"`
	Status        string `json:"status"`
	Documentation string `json:"documentation"`
}

// RegisterRoot serves the welcome document.
func RegisterRoot(r chi.Router) {
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		renderResponse(w, &RootResponse{
			Message:       "Welcome to the Project Hub API",
			Status:        "Server is running",
			Documentation: "/openapi3.yaml",
		}, http.StatusOK)
	})
}
