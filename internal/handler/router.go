package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vibejam-co/jam-sub001/pkg/metrics"
)

func NewRouter(directory *DirectoryHandler, canvas *CanvasHandler, catalog *CatalogHandler) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestMiddleware)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/apps", directory.ListApps).Methods(http.MethodGet)
	api.HandleFunc("/apps", directory.PublishApp).Methods(http.MethodPost)
	api.HandleFunc("/notifications", directory.ListNotifications).Methods(http.MethodGet)
	api.HandleFunc("/canvas/claim", canvas.Claim).Methods(http.MethodPost)
	api.HandleFunc("/catalog", catalog.GetCatalog).Methods(http.MethodGet)

	router.HandleFunc("/health", HandleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	return router
}
