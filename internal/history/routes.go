package history

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the chat history API routes.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/history", func(r chi.Router) {
		r.Get("/", handleList(store))
		r.Delete("/", handleDeleteBefore(store))
	})
}

func handleList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := ListFilter{Limit: 50}
		if v := r.URL.Query().Get("client"); v != "" {
			filter.Client = v
		}
		if v := r.URL.Query().Get("year"); v != "" {
			filter.Year = v
		}
		if v := r.URL.Query().Get("month"); v != "" {
			filter.Month = v
		}
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				filter.Limit = n
			}
		}
		if v := r.URL.Query().Get("offset"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				filter.Offset = n
			}
		}

		exchanges, err := store.List(r.Context(), filter)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		if exchanges == nil {
			exchanges = []Exchange{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(exchanges)
	}
}

func handleDeleteBefore(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		beforeStr := r.URL.Query().Get("before")
		if beforeStr == "" {
			http.Error(w, `{"error":"before parameter is required"}`, http.StatusBadRequest)
			return
		}
		before, err := time.Parse(time.RFC3339, beforeStr)
		if err != nil {
			http.Error(w, `{"error":"before must be RFC3339"}`, http.StatusBadRequest)
			return
		}

		deleted, err := store.DeleteBefore(r.Context(), before)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]int64{"deleted": deleted})
	}
}
