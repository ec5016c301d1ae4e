// Package server exposes the document-generation flow over HTTP: pick a
// form, optionally draft the body text, preview the assembled document,
// download it as PDF or DOCX.
package server

import (
	"context"
	"encoding/gob"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"formalgen/internal/document"
	"formalgen/internal/draft"
	"formalgen/internal/lookup"
)

// Session keys for the most recently assembled record of each kind. Each
// assembly overwrites the previous record unconditionally.
const (
	sessionKeyOfficeOrder = "office_order"
	sessionKeyCircular    = "circular"
)

func init() {
	// scs encodes session data with gob.
	gob.Register(document.OfficeOrder{})
	gob.Register(document.Circular{})
}

// PDFRenderer renders records to PDF byte sequences.
type PDFRenderer interface {
	OfficeOrder(ctx context.Context, doc document.OfficeOrder) ([]byte, error)
	Circular(ctx context.Context, doc document.Circular) ([]byte, error)
}

// DocxRenderer renders records to OOXML byte sequences.
type DocxRenderer interface {
	OfficeOrder(doc document.OfficeOrder) ([]byte, error)
	Circular(doc document.Circular) ([]byte, error)
}

// Deps are the collaborators a Server needs.
type Deps struct {
	Logger    *zap.Logger
	Lookup    *lookup.Store
	Assembler *document.Assembler
	Drafter   draft.Drafter
	PDF       PDFRenderer
	Docx      DocxRenderer
	Sessions  *scs.SessionManager
}

// Server handles the HTTP surface. It holds no per-request state of its
// own; the only mutable state is the injected session manager.
type Server struct {
	logger    *zap.Logger
	lookup    *lookup.Store
	assembler *document.Assembler
	drafter   draft.Drafter
	pdf       PDFRenderer
	docx      DocxRenderer
	sessions  *scs.SessionManager
	handler   http.Handler
}

func New(deps Deps) *Server {
	s := &Server{
		logger:    deps.Logger,
		lookup:    deps.Lookup,
		assembler: deps.Assembler,
		drafter:   deps.Drafter,
		pdf:       deps.PDF,
		docx:      deps.Docx,
		sessions:  deps.Sessions,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	// Action endpoints answer a wrong method with the JSON bad-request
	// error rather than a 405.
	r.MethodNotAllowed(s.handleInvalidMethod)

	r.Get("/", s.handleHome)
	r.Get("/office-order/", s.handleOfficeOrderForm)
	r.Post("/generate-body/", s.handleGenerateOrderBody)
	r.Post("/result/", s.handleOfficeOrderResult)
	r.Get("/result/", redirectTo("/"))
	r.Get("/download/pdf/", s.handleOfficeOrderPDF)
	r.Get("/download/docx/", s.handleOfficeOrderDocx)

	r.Get("/circular/", s.handleCircularForm)
	r.Post("/circular/generate-body/", s.handleGenerateCircularBody)
	r.Post("/circular/result/", s.handleCircularResult)
	r.Get("/circular/result/", redirectTo("/circular/"))
	r.Get("/circular/pdf/", s.handleCircularPDF)
	r.Get("/circular/docx/", s.handleCircularDocx)

	s.handler = s.sessions.LoadAndSave(r)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func redirectTo(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target, http.StatusFound)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
