package web

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/midbel/scatter"
	"github.com/midbel/scatter/internal/session"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const pageTitle = "Scatter Plot of Iris Flower Dataset"

type Server struct {
	session *session.Session
	chart   scatter.Chart
}

func New(sess *session.Session, chart scatter.Chart) *Server {
	return &Server{
		session: sess,
		chart:   chart,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /plot.svg", s.handlePlot)
	mux.HandleFunc("POST /select", s.handleSelect)
	mux.HandleFunc("POST /toggle", s.handleToggle)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	return logRequest(mux)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	view, err := s.session.View(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := s.chart.Render(&buf, view); err != nil {
		s.fail(w, r, err)
		return
	}
	p := page{
		Title:    pageTitle,
		Loaded:   view.Loaded,
		Controls: view.Selector().Controls(),
		Plot:     template.HTML(buf.String()),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, p); err != nil {
		log.Error().Err(err).Msg("render page")
	}
}

func (s *Server) handlePlot(w http.ResponseWriter, r *http.Request) {
	view, err := s.session.View(r.Context())
	s.writePlot(w, r, view, err)
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	view, err := s.session.Select(r.Context(), r.FormValue("axis"), r.FormValue("attribute"))
	s.writePlot(w, r, view, err)
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.FormValue("index"))
	if err != nil {
		s.fail(w, r, errBadIndex)
		return
	}
	view, err := s.session.Toggle(r.Context(), index)
	s.writePlot(w, r, view, err)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

func (s *Server) writePlot(w http.ResponseWriter, r *http.Request, view scatter.View, err error) {
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := s.chart.Render(&buf, view); err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", scatter.MediaSVG)
	w.Write(buf.Bytes())
}

var errBadIndex = errors.New("index: not a number")

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, scatter.ErrUnknownAxis),
		errors.Is(err, scatter.ErrUnknownAttribute),
		errors.Is(err, session.ErrIndex),
		errors.Is(err, errBadIndex):
		code = http.StatusBadRequest
		log.Warn().Err(err).Str("path", r.URL.Path).Msg("bad request")
	case errors.Is(err, session.ErrClosed):
		code = http.StatusServiceUnavailable
		log.Warn().Err(err).Str("path", r.URL.Path).Msg("session closed")
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	http.Error(w, err.Error(), code)
}

func logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Dur("elapsed", time.Since(now)).Msg("request")
	})
}
