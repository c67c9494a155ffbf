package web

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Deblish/fridge-app/internal/expiry"
	"github.com/Deblish/fridge-app/internal/model"
	"github.com/Deblish/fridge-app/internal/store"
	"github.com/Deblish/fridge-app/internal/upload"
)

// MonitorPage handles GET /monitor. It buckets items by expiry urgency, or
// lists everything unclassified when showall=true.
func (s *Server) MonitorPage(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListItems(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to list items", "error", err)
		http.Error(w, "Database error occurred.", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	today := expiry.FormatDate(now)
	tomorrow := expiry.FormatDate(now.AddDate(0, 0, 1))

	showAll := r.URL.Query().Get("showall") == "true"

	var buckets expiry.Buckets
	if !showAll {
		buckets = expiry.Classify(items, today, tomorrow)
	}

	s.Templates.Render(w, "monitor.html", &struct {
		PageData
		Buckets expiry.Buckets
		Counts  map[string]int
		Items   []model.Item
		ShowAll bool
		Deleted bool
	}{
		PageData: PageData{Title: "Monitor"},
		Buckets:  buckets,
		Counts:   expiry.CountByFridge(items),
		Items:    items,
		ShowAll:  showAll,
		Deleted:  r.URL.Query().Get("deleted") == "true",
	})
}

// DeleteItemSubmit handles POST /delete-item/{id}. The backing image file is
// removed first; a removal failure is logged but doesn't block deleting the
// row, since a row pointing at a missing file is worse than the reverse.
func (s *Server) DeleteItemSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	item, err := store.GetItem(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get item", "error", err)
		http.Error(w, "Database error occurred.", http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.Error(w, "Item not found.", http.StatusNotFound)
		return
	}

	upload.Remove(item.ImagePath)

	if err := store.DeleteItem(r.Context(), s.DB, id); err != nil {
		slog.Error("failed to delete item", "error", err)
		http.Error(w, "Database error occurred.", http.StatusInternalServerError)
		return
	}

	slog.Info("item deleted", "id", id, "username", item.Username)

	if r.URL.Query().Get("from") == "my-items" {
		http.Redirect(w, r, "/my-items?deleted=true", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/monitor?deleted=true", http.StatusSeeOther)
}
