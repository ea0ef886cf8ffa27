package finder

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// Handler serves the search API.
type Handler struct {
	svc      *Service
	recorder Recorder
}

// NewHandler binds the service. A nil recorder disables the lookup log.
func NewHandler(svc *Service, recorder Recorder) *Handler {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Handler{svc: svc, recorder: recorder}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	addNoStore(w)
	writeJSONStatus(w, status, map[string]string{"error": msg})
}

func addCacheHeaders(w http.ResponseWriter, maxAgeSeconds, swrSeconds int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", maxAgeSeconds, swrSeconds))
	w.Header().Set("Vary", "Accept-Encoding")
}

// addServerTiming appends name;dur=ms pairs to the Server-Timing header.
func addServerTiming(w http.ResponseWriter, kv ...[2]string) {
	if len(kv) == 0 {
		return
	}
	parts := make([]string, 0, len(kv))
	for _, p := range kv {
		parts = append(parts, fmt.Sprintf("%s;dur=%s", p[0], p[1]))
	}
	w.Header().Add("Server-Timing", strings.Join(parts, ", "))
}

func ms(d time.Duration) string {
	return fmt.Sprintf("%.2f", float64(d.Microseconds())/1000)
}

func addNoStore(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	w.Header().Set("Pragma", "no-cache")
}

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	addNoStore(w)
	writeJSON(w, map[string]string{"status": "ok"})
}

// SearchByPLZ handles GET /search?plz=
func (h *Handler) SearchByPLZ(w http.ResponseWriter, r *http.Request) {
	h.handlePLZ(w, r, r.URL.Query().Get("plz"))
}

// GetByPLZ handles GET /plz/{plz}
func (h *Handler) GetByPLZ(w http.ResponseWriter, r *http.Request) {
	h.handlePLZ(w, r, chi.URLParam(r, "plz"))
}

func (h *Handler) handlePLZ(w http.ResponseWriter, r *http.Request, code string) {
	start := time.Now()
	resp, err := h.svc.FindByPostalCode(code)
	addServerTiming(w, [2]string{"resolve", ms(time.Since(start))})
	if err != nil {
		log.Printf("[finder] plz=%s err=%v", code, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if resp.Type == TypeInvalid {
		writeError(w, http.StatusBadRequest, resp.Message)
		return
	}

	log.Printf("[finder] plz=%s type=%s count=%d from=%s", resp.PLZ, resp.Type, resp.Count, r.RemoteAddr)
	h.recorder.Record(r.Context(), resp.PLZ, resp.Type)

	w.Header().Set("X-Resolution", string(resp.Type))
	addCacheHeaders(w, 3600, 86400)
	writeJSON(w, resp)
}

// SearchByCity handles GET /city?name=
func (h *Handler) SearchByCity(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	resp, err := h.svc.FindByCity(r.URL.Query().Get("name"))
	addServerTiming(w, [2]string{"resolve", ms(time.Since(start))})
	if err != nil {
		log.Printf("[finder] city=%q err=%v", r.URL.Query().Get("name"), err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if resp.Type == TypeInvalid {
		writeError(w, http.StatusBadRequest, resp.Message)
		return
	}

	log.Printf("[finder] city=%q type=%s count=%d", resp.City, resp.Type, resp.Count)
	w.Header().Set("X-Resolution", string(resp.Type))
	addCacheHeaders(w, 3600, 86400)
	writeJSON(w, resp)
}

// ListConstituencies handles GET /wahlkreise
func (h *Handler) ListConstituencies(w http.ResponseWriter, r *http.Request) {
	addCacheHeaders(w, 3600, 86400)
	writeJSON(w, h.svc.Constituencies())
}

// GetConstituency handles GET /wahlkreise/{number}
func (h *Handler) GetConstituency(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	detail, err := h.svc.Constituency(number)
	if errors.Is(err, ErrConstituencyNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Wahlkreis %s not found", number))
		return
	}
	if err != nil {
		log.Printf("[finder] wahlkreis=%s err=%v", number, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	addCacheHeaders(w, 3600, 86400)
	writeJSON(w, detail)
}
