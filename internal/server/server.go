// Package server hosts the interactive chart over HTTP: the page, the SVG,
// the keyword selection, pointer events and the active tooltip. It serves a
// single viewer; selection and hover state are shared by all requests.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"archive2svg/internal/chart"
	"archive2svg/internal/dataset"
	"archive2svg/internal/hover"
	"archive2svg/internal/keywords"
	"archive2svg/internal/logging"
	"archive2svg/internal/render"
)

// Server serves one dataset.
type Server struct {
	engine *chart.Engine
	ds     *dataset.Dataset
	byID   map[string]dataset.Article
	table  keywords.Table
	loop   *hover.Loop
	logger *slog.Logger

	mu  sync.Mutex
	sel keywords.Selection
}

// New creates a server. ds may be nil when normalization produced nothing;
// the chart then shows the empty-state placeholder.
func New(engine *chart.Engine, ds *dataset.Dataset, table keywords.Table, logger *slog.Logger) *Server {
	logger = logging.NewComponentLogger(logger, "server")
	cfg := engine.Config()
	s := &Server{
		engine: engine,
		ds:     ds,
		byID:   make(map[string]dataset.Article, ds.Len()),
		table:  table,
		logger: logger,
	}
	if ds != nil {
		for _, a := range ds.Articles {
			s.byID[a.ID] = a
		}
	}
	s.loop = hover.NewLoop(hover.Options{
		MarkGrace:    cfg.Hover.MarkGrace,
		TooltipGrace: cfg.Hover.TooltipGrace,
		Logger:       logging.NewComponentLogger(logger, "hover"),
	})
	return s
}

// StartLoop runs the hover loop until ctx is done.
func (s *Server) StartLoop(ctx context.Context) {
	go func() {
		if err := s.loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Error("hover loop stopped", logging.Error(err))
		}
	}()
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handlePage)
	mux.HandleFunc("/api/chart.svg", s.handleChart)
	mux.HandleFunc("/api/keywords", s.handleKeywords)
	mux.HandleFunc("/api/selection", s.handleSelection)
	mux.HandleFunc("/api/pointer", s.handlePointer)
	mux.HandleFunc("/api/tooltip", s.handleTooltip)
	return mux
}

// Run serves on bind until ctx is cancelled.
func (s *Server) Run(ctx context.Context, bind string) error {
	s.StartLoop(ctx)

	listener, err := net.Listen("tcp", bind)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("serving archive chart", slog.String("address", listener.Addr().String()))
	if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func (s *Server) selection() keywords.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel
}

func (s *Server) chartSVG(r *http.Request) (string, error) {
	if s.ds.Len() == 0 {
		return s.engine.Placeholder(), nil
	}
	width := s.engine.Config().Layout.Width
	if v := r.URL.Query().Get("width"); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil || w <= 0 {
			return "", fmt.Errorf("invalid width %q", v)
		}
		width = w
	}
	return s.engine.SVG(s.ds, width, s.selection())
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	svg, err := s.chartSVG(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write([]byte(svg))
}

type keywordsResponse struct {
	Keywords   []string `json:"keywords"`
	OptionsOne []string `json:"options_one"`
	OptionsTwo []string `json:"options_two"`
}

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var kws []string
	if s.ds != nil {
		kws = s.ds.Schema.Keywords
	}
	s.writeJSON(w, http.StatusOK, keywordsResponse{
		Keywords:   kws,
		OptionsOne: s.table.Options(keywords.PlaceholderOne, kws),
		OptionsTwo: s.table.Options(keywords.PlaceholderTwo, kws),
	})
}

type selectionRequest struct {
	Slot   int    `json:"slot"`
	Option string `json:"option"`
	Reset  bool   `json:"reset"`
}

type selectionResponse struct {
	One     string `json:"one"`
	Two     string `json:"two"`
	Caption string `json:"caption,omitempty"`
}

func (s *Server) handleSelection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
	case http.MethodPost:
		var req selectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid selection payload")
			return
		}
		kw := keywords.ParseOption(req.Option)
		s.mu.Lock()
		switch {
		case req.Reset:
			s.sel.Reset()
		case req.Slot == 1:
			s.sel.SetOne(kw)
		case req.Slot == 2:
			s.sel.SetTwo(kw)
		default:
			s.mu.Unlock()
			s.writeError(w, http.StatusBadRequest, "slot must be 1 or 2")
			return
		}
		s.mu.Unlock()
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	sel := s.selection()
	s.writeJSON(w, http.StatusOK, selectionResponse{
		One:     sel.One(),
		Two:     sel.Two(),
		Caption: render.IntersectionCaption(sel.One(), sel.Two()),
	})
}

func (s *Server) handlePointer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var ev hover.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid pointer event")
		return
	}
	if ev.ID != "" {
		if _, ok := s.byID[ev.ID]; !ok {
			s.writeError(w, http.StatusNotFound, "unknown article")
			return
		}
	}
	if err := s.loop.Dispatch(ev); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, hover.ErrStopped) {
			status = http.StatusServiceUnavailable
		}
		s.writeError(w, status, err.Error())
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleTooltip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	snap := s.loop.Snapshot()
	article, ok := s.byID[snap.ActiveID]
	if !snap.Visible() || !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	tip := render.NewTooltip(article, s.selection().Filters(), snap.Pointer, s.engine.Config())
	s.writeJSON(w, http.StatusOK, tip)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
