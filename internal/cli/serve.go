package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/versewall/versewall/pkg/render"
	"github.com/versewall/versewall/pkg/scripture"
	"github.com/versewall/versewall/pkg/state"
)

// serveCommand creates the serve command: a small HTTP endpoint other
// machines (or a wallpaper daemon) can poll for the current image.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the current wallpaper and reading status over HTTP",
		Long: `Serve exposes three endpoints:

  GET  /wallpaper.png   the most recently rendered wallpaper
  GET  /status          the cursor position and progress as JSON
  POST /advance         advance the cursor (honors the once-per-day rule;
                        ?force=1 overrides it)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Serve.Addr = addr
			}
			return c.runServe(cmd.Context(), &cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/versewall/config.toml)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8972)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg *Config) error {
	store, err := state.NewFileStore("")
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(c.requestLogger)

	r.Get("/wallpaper.png", func(w http.ResponseWriter, req *http.Request) {
		path := filepath.Join(store.Dir(), render.WallpaperFileName)
		if _, err := os.Stat(path); err != nil {
			http.Error(w, "no wallpaper rendered yet", http.StatusNotFound)
			return
		}
		http.ServeFile(w, req, path)
	})

	r.Get("/status", func(w http.ResponseWriter, req *http.Request) {
		st, err := store.Load()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, statusResponse(st))
	})

	r.Post("/advance", func(w http.ResponseWriter, req *http.Request) {
		st, err := store.Load()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		dbPath := cfg.DBPath
		if dbPath == "" {
			dbPath = st.DBPath
		}
		if dbPath == "" {
			http.Error(w, "no bible database configured", http.StatusConflict)
			return
		}
		repo, err := scripture.OpenSQLite(req.Context(), dbPath)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer repo.Close()

		force := req.URL.Query().Get("force") == "1"
		moved, err := state.AdvanceIfNeeded(req.Context(), &st, repo, force)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if err := store.Save(st); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		resp := statusResponse(st)
		resp["moved"] = moved
		writeJSON(w, http.StatusOK, resp)
	})

	srv := &http.Server{
		Addr:              cfg.Serve.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("listening on %s", cfg.Serve.Addr)
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

// requestLogger logs one line per request at debug level.
func (c *CLI) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, req)
		c.Logger.Debugf("%s %s (%s)", req.Method, req.URL.Path, time.Since(start).Round(time.Millisecond))
	})
}

func statusResponse(st state.AppState) map[string]any {
	return map[string]any{
		"translation": st.TranslationID,
		"mode":        st.Mode,
		"position": fmt.Sprintf("%s %d:%d",
			scripture.BookName(st.Cursor.Book), st.Cursor.Chapter, st.Cursor.Verse),
		"cursor":            st.Cursor,
		"last_advance_date": st.LastAdvanceDate,
		"palette":           st.Palette,
		"dark":              st.Dark,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
