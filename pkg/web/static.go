package web

import (
	"bytes"
	"io/fs"
	"net/http"
	"path"
	"time"

	"github.com/JaimeStill/weekly/pkg/routes"
)

// PublicFile serves one file from fsys. Content type is inferred from the
// extension.
func PublicFile(fsys fs.FS, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, path.Base(name), time.Time{}, bytes.NewReader(data))
	}
}

// PublicFileRoutes maps each file in dir to GET /<file>.
func PublicFileRoutes(fsys fs.FS, dir string, files ...string) routes.Group {
	group := routes.Group{Routes: make([]routes.Route, len(files))}
	for i, file := range files {
		group.Routes[i] = routes.Route{
			Method:  "GET",
			Pattern: "/" + file,
			Handler: PublicFile(fsys, path.Join(dir, file)),
		}
	}
	return group
}
