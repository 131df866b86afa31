package middleware

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/joorhq/joor/core/handler"
	"github.com/joorhq/joor/core/request"
	"github.com/joorhq/joor/core/response"
)

// StaticConfig maps a URL prefix onto a directory.
type StaticConfig struct {
	// RoutePath is the URL prefix, e.g. "/public".
	RoutePath string
	// Folder is the directory served under RoutePath.
	Folder string
	// Stream sends files as streams instead of ranged file responses.
	Stream bool
	// Download sends files as attachments.
	Download bool
}

// Static serves files from cfg.Folder for GET requests under cfg.RoutePath.
// Paths outside the prefix, missing files and directories yield 404, so the
// handler can be installed as the application fallback.
func Static(cfg StaticConfig) handler.Func {
	prefix := "/" + strings.Trim(cfg.RoutePath, "/")
	root := filepath.Clean(cfg.Folder)

	return func(req *request.Request) (*response.Response, error) {
		if req.Method() != http.MethodGet {
			return response.NotFound(), nil
		}

		rel, ok := strings.CutPrefix(path.Clean("/"+req.Path()), prefix)
		if !ok || (rel != "" && rel[0] != '/' && prefix != "/") {
			return response.NotFound(), nil
		}

		// path.Clean on a rooted path removes every "..", so the joined
		// path stays under root.
		file := filepath.Join(root, filepath.FromSlash(path.Clean("/"+rel)))
		info, err := os.Stat(file)
		if err != nil || info.IsDir() {
			return response.NotFound(), nil
		}

		res := response.ServeFile(file)
		if cfg.Stream {
			res.SendAsStream()
		}
		if cfg.Download {
			res.SendAsDownload()
		}
		return res, nil
	}
}
