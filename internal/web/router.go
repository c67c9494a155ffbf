package web

import (
	"database/sql"
	"net/http"

	webembed "github.com/Deblish/fridge-app/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(db *sql.DB, uploadsDir string) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:         db,
		Templates:  templates,
		UploadsDir: uploadsDir,
	}

	mux := http.NewServeMux()

	// Static assets and stored photos.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))

	mux.HandleFunc("GET /{$}", s.IndexPage)
	mux.HandleFunc("POST /add-item", s.AddItemSubmit)

	mux.HandleFunc("GET /monitor", s.MonitorPage)
	mux.HandleFunc("POST /delete-item/{id}", s.DeleteItemSubmit)

	mux.HandleFunc("GET /my-items", s.MyItemsPage)
	mux.HandleFunc("POST /my-items", s.MyItemsSubmit)
	mux.HandleFunc("POST /my-items/select-username", s.SelectUsernameSubmit)

	return mux, nil
}
