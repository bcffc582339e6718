// Package api serves the most recent trace document over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Api holds the latest serialized trace and serves it alongside a static viewer.
type Api struct {
	staticDir string
	logger    *zap.Logger

	mu      sync.RWMutex
	latest  []byte
	updated time.Time
}

// NewApi creates an Api serving files from staticDir at "/".
func NewApi(staticDir string, logger *zap.Logger) *Api {
	a := new(Api)
	a.staticDir = staticDir
	a.logger = logger
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	return a
}

// Update replaces the served document. The Api keeps b; callers must not modify it afterwards.
func (a *Api) Update(b []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.latest = b
	a.updated = time.Now()
}

// Handler returns the routes of the Api.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/trace.json", a.serveTrace)
	mux.Handle("/", http.FileServer(http.Dir(a.staticDir)))
	return mux
}

func (a *Api) serveTrace(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	a.mu.RLock()
	latest, updated := a.latest, a.updated
	a.mu.RUnlock()

	if latest == nil {
		http.Error(w, "no trace recorded yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Last-Modified", updated.UTC().Format(http.TimeFormat))
	if req.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(latest); err != nil {
		a.logger.Debug("write trace response", zap.Error(err))
	}
}

// Serve listens on addr until ctx is done.
func (a *Api) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
