package task

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskledger/internal/event"
)

func newHandlerForTests(t *testing.T) (*Handler, *event.MemoryLog) {
	t.Helper()
	ml := event.NewMemoryLog()
	ledger := NewLedger(ml, nil, WithClock(fixedClock))
	return NewHandler(ledger), ml
}

func jsonReq(method, path string, body any) *http.Request {
	var b []byte
	if body != nil {
		b, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestTasksRoot_CreateThenList(t *testing.T) {
	h, _ := newHandlerForTests(t)

	rec := httptest.NewRecorder()
	h.TasksRoot(rec, jsonReq(http.MethodPost, "/api/tasks", map[string]any{
		"name":        "Write report",
		"date":        "2025-10-25",
		"time":        "14:30",
		"description": "quarterly numbers",
	}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected non-empty id, body=%s", rec.Body.String())
	}

	listRec := httptest.NewRecorder()
	h.TasksRoot(listRec, jsonReq(http.MethodGet, "/api/tasks", nil))
	if listRec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", listRec.Code)
	}

	var tasks []Task
	if err := json.Unmarshal(listRec.Body.Bytes(), &tasks); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].ID != created.ID || tasks[0].Name != "Write report" {
		t.Fatalf("unexpected task: %+v", tasks[0])
	}
}

func TestTasksRoot_CreateRequiresName(t *testing.T) {
	h, _ := newHandlerForTests(t)

	for _, body := range []map[string]any{
		{"date": "2025-10-25"},
		{"name": "   "},
	} {
		rec := httptest.NewRecorder()
		h.TasksRoot(rec, jsonReq(http.MethodPost, "/api/tasks", body))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for body %v, got %d", body, rec.Code)
		}
	}
}

func TestTasksRoot_BadJSON(t *testing.T) {
	h, _ := newHandlerForTests(t)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewReader([]byte("{nope")))
	rec := httptest.NewRecorder()
	h.TasksRoot(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTasksRoot_MethodNotAllowed(t *testing.T) {
	h, _ := newHandlerForTests(t)

	rec := httptest.NewRecorder()
	h.TasksRoot(rec, jsonReq(http.MethodPut, "/api/tasks", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestTasksSub_DeleteTombstonesTask(t *testing.T) {
	h, _ := newHandlerForTests(t)

	rec := httptest.NewRecorder()
	h.TasksRoot(rec, jsonReq(http.MethodPost, "/api/tasks", map[string]any{"name": "To delete"}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create failed: %d", rec.Code)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	delRec := httptest.NewRecorder()
	h.TasksSub(delRec, jsonReq(http.MethodDelete, "/api/tasks/"+created.ID, nil))
	if delRec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", delRec.Code, delRec.Body.String())
	}

	listRec := httptest.NewRecorder()
	h.TasksRoot(listRec, jsonReq(http.MethodGet, "/api/tasks", nil))
	var tasks []Task
	if err := json.Unmarshal(listRec.Body.Bytes(), &tasks); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected empty list after delete, got %+v", tasks)
	}
}

func TestTasksSub_DeleteUnknownIDIsAccepted(t *testing.T) {
	h, ml := newHandlerForTests(t)

	rec := httptest.NewRecorder()
	h.TasksSub(rec, jsonReq(http.MethodDelete, "/api/tasks/t_never", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	lines, err := ml.ReadAll()
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected the delete to be recorded, got %d lines", len(lines))
	}
}

func TestTasksSub_EmptyIDNotFound(t *testing.T) {
	h, _ := newHandlerForTests(t)

	rec := httptest.NewRecorder()
	h.TasksSub(rec, jsonReq(http.MethodDelete, "/api/tasks/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
