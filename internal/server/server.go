package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"git.lost.host/meutraa/rdstats/internal/batch"
	"git.lost.host/meutraa/rdstats/internal/level"
	"git.lost.host/meutraa/rdstats/internal/parser"
	"git.lost.host/meutraa/rdstats/internal/render"
	"git.lost.host/meutraa/rdstats/internal/stats"
	"git.lost.host/meutraa/rdstats/internal/store"
	"git.lost.host/meutraa/rdstats/internal/timeline"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

const (
	// MaxDescriptorSize bounds a posted descriptor
	MaxDescriptorSize = 16 << 20
	DefaultLimit      = 20
)

type Server struct {
	Parser   parser.Parser
	Renderer render.Renderer
	// Store is optional, without it nothing is recorded and history is unavailable.
	Store   store.Store
	Options []timeline.Option
	Logger  *log.Logger
}

func (s *Server) Handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	// sums are base64 and may contain slashes
	router.SkipClean(true)
	router.HandleFunc("/analyze", s.handleAnalyze).Methods("POST")
	router.HandleFunc("/reports", s.handleRecent).Methods("GET")
	router.HandleFunc("/reports/{sum:.+}", s.handleHistory).Methods("GET")
	return cors.Default().Handler(router)
}

// ListenAndServe serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			srv.Shutdown(context.Background())
		case <-done:
		}
	}()

	s.logger().Println("listening on", addr)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxDescriptorSize))
	if nil != err {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	lvl, err := s.Parser.Decode(data)
	if nil != err {
		status := http.StatusBadRequest
		if errors.Is(err, level.ErrIncomplete) {
			status = http.StatusUnprocessableEntity
		}
		s.writeError(w, status, err)
		return
	}

	report, err := batch.Analyze(lvl, s.Options...)
	if nil != err {
		status := http.StatusInternalServerError
		if errors.Is(err, level.ErrIncomplete) || errors.Is(err, stats.ErrUndefinedLength) || errors.Is(err, stats.ErrNoHits) {
			status = http.StatusUnprocessableEntity
		}
		s.writeError(w, status, err)
		return
	}

	res := AnalyzeResponse{
		Sum:         batch.Sum(data),
		Song:        report.Settings.Song,
		Author:      report.Settings.Author,
		Difficulty:  report.Settings.Difficulty,
		BPM:         report.BPM(),
		Ratings:     report.Ratings,
		Raw:         report.Raw,
		TotalHits:   report.Stats.TotalHits,
		RankMargins: report.RankMargins,
		Text:        s.Renderer.Report(report),
	}
	if nil != s.Store {
		run := uuid.New()
		if err := s.Store.Save(store.NewEntry(run, res.Sum, report)); nil != err {
			s.logger().Println(err)
		} else {
			res.Run = run.String()
		}
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	if nil == s.Store {
		s.writeError(w, http.StatusNotFound, errNoHistory)
		return
	}
	limit := DefaultLimit
	if value := r.URL.Query().Get("limit"); value != "" {
		l, err := strconv.Atoi(value)
		if nil != err || l < 0 {
			s.writeError(w, http.StatusBadRequest, errors.New("limit must be a non-negative integer"))
			return
		}
		limit = l
	}
	entries, err := s.Store.Recent(limit)
	if nil != err {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if nil == s.Store {
		s.writeError(w, http.StatusNotFound, errNoHistory)
		return
	}
	entries, err := s.Store.Load(mux.Vars(r)["sum"])
	if nil != err {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if len(entries) == 0 {
		s.writeError(w, http.StatusNotFound, errors.New("no reports for this descriptor"))
		return
	}
	s.writeJSON(w, http.StatusOK, entries)
}

var errNoHistory = errors.New("report history is disabled")

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger().Println(err)
	}
	s.writeJSON(w, status, ErrorResponse{Detail: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); nil != err {
		s.logger().Println("unable to write response", err)
	}
}

func (s *Server) logger() *log.Logger {
	if nil == s.Logger {
		return log.Default()
	}
	return s.Logger
}
