package site

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/0xalexb/sitecfg/listener/middleware"
	"github.com/0xalexb/sitecfg/metrics"
)

// Paths served by NewHandler.
const (
	ConfigPath     = "/config.json"
	SidebarPath    = "/sidebar.json"
	DarkThemePath  = "/themes/dark.json"
	LightThemePath = "/themes/light.json"
	HealthPath     = "/healthz"
	MetricsPath    = "/metrics"
)

// NewHandler returns the read-only HTTP API over cfg. Response bodies are
// encoded once here, so requests are served without locks. A nil rec
// disables the metrics endpoint and request instrumentation.
func NewHandler(cfg *SiteConfig, rec *metrics.Recorder) (http.Handler, error) {
	mux := http.NewServeMux()

	documents := []struct {
		path  string
		value any
	}{
		{ConfigPath, cfg},
		{SidebarPath, nonNil(cfg.sidebar)},
		{DarkThemePath, cfg.themes.Dark},
		{LightThemePath, cfg.themes.Light},
		{HealthPath, map[string]string{"status": "ok", "title": cfg.title}},
	}

	for _, doc := range documents {
		body, err := json.Marshal(doc.value)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", doc.path, err)
		}

		mux.Handle("GET "+doc.path, staticJSON(body))
	}

	if rec != nil {
		mux.Handle("GET "+MetricsPath, rec.Handler())
	}

	return middleware.Chain(mux,
		middleware.RequestID(),
		middleware.Logging(HealthPath, MetricsPath),
		middleware.Recovery(),
		rec.Middleware(),
		middleware.Compress(),
	), nil
}

// staticJSON serves a fixed body with a content-hash ETag so clients can
// revalidate with If-None-Match.
func staticJSON(body []byte) http.Handler {
	sum := sha256.Sum256(body)
	etag := `"` + hex.EncodeToString(sum[:16]) + `"`

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "no-cache")

		http.ServeContent(w, r, "", time.Time{}, bytes.NewReader(body))
	})
}
