package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Deblish/fridge-app/internal/expiry"
	"github.com/Deblish/fridge-app/internal/imaging"
	"github.com/Deblish/fridge-app/internal/model"
	"github.com/Deblish/fridge-app/internal/store"
	"github.com/Deblish/fridge-app/internal/upload"
)

// IndexPage handles GET /. It renders the add-item form with today's date
// prefilled and any error/added flags from a previous submit.
func (s *Server) IndexPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.Templates.Render(w, "index.html", &struct {
		PageData
		Added     bool
		TodayDate string
		Fridges   []string
	}{
		PageData:  PageData{Title: "Add Item", Error: q.Get("error")},
		Added:     q.Get("added") == "true",
		TodayDate: expiry.FormatDate(time.Now()),
		Fridges:   model.Fridges,
	})
}

// AddItemSubmit handles POST /add-item. The photo is staged to disk first and
// the form is validated after, so every failure path has to clean the staged
// file up.
func (s *Server) AddItemSubmit(w http.ResponseWriter, r *http.Request) {
	// Allow some slack over the photo cap for the other form fields.
	r.Body = http.MaxBytesReader(w, r.Body, upload.MaxBytes+1<<20)
	if err := r.ParseMultipartForm(upload.MaxBytes); err != nil {
		redirectError(w, r, "Photo is too large (max 5 MB).")
		return
	}

	var staged string
	if file, header, err := r.FormFile("photo"); err == nil {
		path, saveErr := upload.Save(file, header.Filename, s.UploadsDir)
		file.Close()
		if saveErr != nil {
			if errors.Is(saveErr, upload.ErrTooLarge) {
				redirectError(w, r, "Photo is too large (max 5 MB).")
				return
			}
			slog.Error("failed to store upload", "error", saveErr)
			redirectError(w, r, "Failed to store the uploaded photo.")
			return
		}
		staged = path
	}

	username := strings.TrimSpace(r.FormValue("username"))
	if len(username) < 3 {
		upload.Remove(staged)
		redirectError(w, r, "Username must be at least 3 characters long.")
		return
	}

	if staged == "" {
		redirectError(w, r, "Picture is missing.")
		return
	}

	fridge := r.FormValue("fridge")
	if fridge == "" {
		upload.Remove(staged)
		redirectError(w, r, "Fridge selection is required.")
		return
	}
	if !model.ValidFridge(fridge) {
		upload.Remove(staged)
		redirectError(w, r, "Invalid fridge selection.")
		return
	}

	now := time.Now()
	expiryDate, err := expiry.Resolve(r.FormValue("expiry_date"), r.FormValue("days_to_store"), now)
	if err != nil {
		upload.Remove(staged)
		switch {
		case errors.Is(err, expiry.ErrMissingInput):
			redirectError(w, r, "Please provide either Days to Store or Expiry Date.")
		case errors.Is(err, expiry.ErrInvalidDays):
			redirectError(w, r, "Please enter a valid number of days to store.")
		default:
			redirectError(w, r, "Please enter a valid expiry date.")
		}
		return
	}

	if err := upload.ResizeInPlace(staged); err != nil {
		upload.Remove(staged)
		if errors.Is(err, imaging.ErrUnsupportedFormat) {
			redirectError(w, r, "Unsupported image type.")
			return
		}
		slog.Error("failed to process image", "error", err)
		redirectError(w, r, "Image processing failed.")
		return
	}

	item := model.Item{
		Username:   username,
		DateAdded:  expiry.FormatDate(now),
		ExpiryDate: expiry.FormatDate(expiryDate),
		Fridge:     fridge,
		ImagePath:  staged,
	}
	if _, err := store.CreateItem(r.Context(), s.DB, item); err != nil {
		slog.Error("failed to insert item", "error", err)
		upload.Remove(staged)
		redirectError(w, r, "Failed to add item to database.")
		return
	}

	slog.Info("item added", "username", username, "fridge", fridge, "expiry", item.ExpiryDate)
	http.Redirect(w, r, "/?added=true", http.StatusSeeOther)
}

// redirectError sends the client back to the add-item form with a
// human-readable error message.
func redirectError(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/?error="+url.QueryEscape(msg), http.StatusSeeOther)
}
