package task

import (
	"encoding/json"
	"net/http"
	"strings"
)

type Handler struct {
	ledger *Ledger
}

func NewHandler(ledger *Ledger) *Handler {
	return &Handler{ledger: ledger}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

type createRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

// /api/tasks  (collection)
func (h *Handler) TasksRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		ts, err := h.ledger.ProjectTasks()
		if err != nil {
			writeErr(w, 500, "could not read task log")
			return
		}
		writeJSON(w, 200, ts)
		return

	case http.MethodPost:
		var in createRequest
		if err := decodeJSON(r, &in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		if strings.TrimSpace(in.Name) == "" {
			writeErr(w, 400, "name is required")
			return
		}

		id, err := h.ledger.AppendCreate(CreateFields{
			Name:        in.Name,
			Date:        in.Date,
			Time:        in.Time,
			Description: in.Description,
		})
		if err != nil {
			writeErr(w, 500, "could not append to task log")
			return
		}
		writeJSON(w, 201, map[string]any{"id": id})
		return

	default:
		writeErr(w, 405, "method not allowed")
		return
	}
}

// /api/tasks/{id}
func (h *Handler) TasksSub(w http.ResponseWriter, r *http.Request) {
	tail := strings.TrimPrefix(r.URL.Path, "/api/tasks/")
	id := strings.Trim(tail, "/")
	if id == "" || strings.Contains(id, "/") {
		writeErr(w, 404, "not found")
		return
	}

	switch r.Method {
	case http.MethodDelete:
		if err := h.ledger.AppendDelete(id); err != nil {
			writeErr(w, 500, "could not append to task log")
			return
		}
		writeJSON(w, 200, map[string]any{"ok": true})
		return

	default:
		writeErr(w, 405, "method not allowed")
		return
	}
}
