package web

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Deblish/fridge-app/internal/model"
	"github.com/Deblish/fridge-app/internal/store"
)

// myItemsData is the template data for the my-items page. At most one of
// Items and Usernames is set: Items shows a single user's belongings,
// Usernames renders the disambiguation list.
type myItemsData struct {
	PageData
	Items            []model.Item
	Usernames        []string
	SelectedUsername string
	Deleted          bool
}

// MyItemsPage handles GET /my-items.
func (s *Server) MyItemsPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "my_items.html", &myItemsData{
		PageData: PageData{Title: "My Items"},
		Deleted:  r.URL.Query().Get("deleted") == "true",
	})
}

// MyItemsSubmit handles POST /my-items. Two reserved keywords short-circuit
// the search: "admin" lists every known username, "monitor" jumps to the
// monitor view in show-all mode. Anything else is a substring search.
func (s *Server) MyItemsSubmit(w http.ResponseWriter, r *http.Request) {
	input := strings.TrimSpace(r.FormValue("username"))

	switch strings.ToLower(input) {
	case "admin":
		usernames, err := store.ListUsernames(r.Context(), s.DB)
		if err != nil {
			slog.Error("failed to list usernames", "error", err)
			s.renderMyItemsError(w, "Database error occurred.")
			return
		}
		s.renderUsernameMatches(w, r, usernames, "No users found in the database.")
		return

	case "monitor":
		http.Redirect(w, r, "/monitor?showall=true", http.StatusSeeOther)
		return
	}

	if len(input) < 3 {
		s.renderMyItemsError(w, "Please enter at least 3 characters.")
		return
	}

	usernames, err := store.SearchUsernames(r.Context(), s.DB, input)
	if err != nil {
		slog.Error("failed to search usernames", "error", err)
		s.renderMyItemsError(w, "Database error occurred.")
		return
	}
	s.renderUsernameMatches(w, r, usernames, "No users found matching that username.")
}

// SelectUsernameSubmit handles POST /my-items/select-username, the re-post
// from the disambiguation list.
func (s *Server) SelectUsernameSubmit(w http.ResponseWriter, r *http.Request) {
	s.renderUserItems(w, r, r.FormValue("selectedUsername"))
}

// renderUsernameMatches renders the right view for a set of candidate
// usernames: an error when empty, the single user's items when unambiguous,
// or the disambiguation list otherwise.
func (s *Server) renderUsernameMatches(w http.ResponseWriter, r *http.Request, usernames []string, emptyMsg string) {
	switch len(usernames) {
	case 0:
		s.renderMyItemsError(w, emptyMsg)
	case 1:
		s.renderUserItems(w, r, usernames[0])
	default:
		s.Templates.Render(w, "my_items.html", &myItemsData{
			PageData:  PageData{Title: "My Items"},
			Usernames: usernames,
		})
	}
}

// renderUserItems renders the items belonging to one username.
func (s *Server) renderUserItems(w http.ResponseWriter, r *http.Request, username string) {
	items, err := store.ListItemsByUsername(r.Context(), s.DB, username)
	if err != nil {
		slog.Error("failed to list items by username", "error", err)
		s.renderMyItemsError(w, "Database error occurred.")
		return
	}

	s.Templates.Render(w, "my_items.html", &myItemsData{
		PageData:         PageData{Title: "My Items"},
		Items:            items,
		SelectedUsername: username,
	})
}

func (s *Server) renderMyItemsError(w http.ResponseWriter, msg string) {
	s.Templates.Render(w, "my_items.html", &myItemsData{
		PageData: PageData{Title: "My Items", Error: msg},
	})
}
