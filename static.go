/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/julienschmidt/httprouter"
)

func serveHealthCheck(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		securityHeaders(cfg, w)

		_, err := w.Write([]byte("Ok\n"))
		if err != nil {
			errs <- err

			return
		}
	}
}

func serveRobots(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		securityHeaders(cfg, w)

		_, err := w.Write([]byte("User-agent: *\nDisallow: /\n"))
		if err != nil {
			errs <- err

			return
		}
	}
}

// servePublicFiles serves the single-page browser client out of public_dir.
// Unknown paths fall back to index.html so client-side routes like
// /game/1337 resolve.
func servePublicFiles(cfg *Config, errs chan<- error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := strings.TrimPrefix(r.URL.Path, cfg.prefix)
		p = path.Clean("/" + p)

		full := filepath.Join(cfg.publicDir, filepath.FromSlash(p))

		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			securityHeaders(cfg, w)
			http.ServeFile(w, r, full)

			logf(cfg, "SERVE: %s (%s) to %s", p, humanReadableSize(info.Size()), realIP(r))

			return
		}

		securityHeaders(cfg, w)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		http.ServeFile(w, r, filepath.Join(cfg.publicDir, "index.html"))
	})
}
