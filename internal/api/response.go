package api

import (
	"encoding/json"
	"net/http"
)

// Response 統一回應格式
type Response struct {
	Data any    `json:"data,omitempty"`
	Meta *Meta  `json:"meta,omitempty"`
	Err  string `json:"error,omitempty"`
}

// Meta 分頁資訊
type Meta struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Total  int64 `json:"total"`
}

func SuccessJSON(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{Data: data})
}

func CreatedJSON(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, Response{Data: data})
}

func PagedJSON(w http.ResponseWriter, data any, offset, limit int, total int64) {
	writeJSON(w, http.StatusOK, Response{
		Data: data,
		Meta: &Meta{Offset: offset, Limit: limit, Total: total},
	})
}

func ErrorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Response{Err: msg})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
