package handler

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/vibejam-co/jam-sub001/internal/catalog"
	"github.com/vibejam-co/jam-sub001/internal/models"
	"github.com/vibejam-co/jam-sub001/pkg/errors"
	"github.com/vibejam-co/jam-sub001/pkg/logger"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeAppError maps the error kind to a status code.
func writeAppError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.KindOf(err) {
	case errors.KindValidation:
		status = http.StatusBadRequest
	case errors.KindConfiguration:
		status = http.StatusServiceUnavailable
	}
	writeError(w, status, err.Error())
}

// readBody writes the error response itself and returns ok=false when the
// body cannot be read or exceeds maxBodyBytes.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return nil, false
	}
	return body, true
}

type Directory interface {
	LoadApps(ctx context.Context) ([]models.App, error)
	Publish(ctx context.Context, in models.AppInput) ([]models.App, error)
	ListNotifications(ctx context.Context, limit int) ([]models.Notification, error)
}

type DirectoryHandler struct {
	directory Directory
}

func NewDirectoryHandler(directory Directory) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

func (h *DirectoryHandler) ListApps(w http.ResponseWriter, r *http.Request) {
	apps, err := h.directory.LoadApps(r.Context())
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *DirectoryHandler) PublishApp(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	var in models.AppInput
	if err := json.Unmarshal(body, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid app payload: "+err.Error())
		return
	}

	apps, err := h.directory.Publish(r.Context(), in)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, apps)
}

func (h *DirectoryHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	// 非法或缺省的 limit 交给 service 按上限处理
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	notifications, err := h.directory.ListNotifications(r.Context(), limit)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

type Canvas interface {
	Claim(ctx context.Context, raw []byte) error
}

type CanvasHandler struct {
	canvas Canvas
}

func NewCanvasHandler(canvas Canvas) *CanvasHandler {
	return &CanvasHandler{canvas: canvas}
}

func (h *CanvasHandler) Claim(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	if err := h.canvas.Claim(r.Context(), body); err != nil {
		if !errors.IsValidation(err) {
			logger.Error("Failed to claim canvas: ", err)
		}
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type Catalog interface {
	GetCatalog() catalog.Catalog
}

type CatalogHandler struct {
	catalog Catalog
}

func NewCatalogHandler(c Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.GetCatalog())
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
