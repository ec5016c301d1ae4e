package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"formalgen/internal/document"
	"formalgen/internal/draft"
	"formalgen/internal/lookup"

	"go.uber.org/zap"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderView(w, "home.html.tmpl", map[string]any{
		"Designations": s.lookup.DesignationKeys(),
		"People":       s.lookup.People(),
	})
}

func (s *Server) handleOfficeOrderForm(w http.ResponseWriter, r *http.Request) {
	s.renderView(w, "office_order_form.html.tmpl", map[string]any{
		"Designations": s.lookup.DesignationKeys(),
	})
}

func (s *Server) handleCircularForm(w http.ResponseWriter, r *http.Request) {
	s.renderView(w, "circular_form.html.tmpl", map[string]any{
		"Designations": s.lookup.DesignationKeys(),
		"People":       s.lookup.People(),
	})
}

func (s *Server) handleGenerateOrderBody(w http.ResponseWriter, r *http.Request) {
	s.generateBody(w, r, draft.KindOfficeOrder)
}

func (s *Server) handleGenerateCircularBody(w http.ResponseWriter, r *http.Request) {
	s.generateBody(w, r, draft.KindCircular)
}

func (s *Server) generateBody(w http.ResponseWriter, r *http.Request, kind draft.Kind) {
	if err := r.ParseForm(); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	topic := strings.TrimSpace(r.PostFormValue("body_prompt"))
	lang := lookup.ParseLanguage(r.PostFormValue("language"))

	text, err := s.drafter.Draft(r.Context(), topic, lang, kind)
	if err != nil {
		s.writeDraftError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(text))
}

func (s *Server) handleOfficeOrderResult(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	doc, err := s.assembler.OfficeOrder(document.OfficeOrderForm{
		Language:     r.PostFormValue("language"),
		Date:         r.PostFormValue("date"),
		Reference:    r.PostFormValue("reference"),
		Body:         r.PostFormValue("body"),
		FromPosition: r.PostFormValue("from_position"),
		ToRecipients: r.PostForm["to_recipients[]"],
	})
	if err != nil {
		s.writeAssemblyError(w, err)
		return
	}

	s.sessions.Put(r.Context(), sessionKeyOfficeOrder, doc)
	s.renderView(w, "result_office_order.html.tmpl", doc)
}

func (s *Server) handleCircularResult(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	doc, err := s.assembler.Circular(document.CircularForm{
		Language:     r.PostFormValue("language"),
		Date:         r.PostFormValue("date"),
		Subject:      r.PostFormValue("subject"),
		Body:         r.PostFormValue("body"),
		FromPosition: r.PostFormValue("from_position"),
		ToIDs:        r.PostForm["to[]"],
	})
	if err != nil {
		s.writeAssemblyError(w, err)
		return
	}

	s.sessions.Put(r.Context(), sessionKeyCircular, doc)
	s.renderView(w, "result_circular.html.tmpl", doc)
}

func (s *Server) handleOfficeOrderPDF(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.sessions.Get(r.Context(), sessionKeyOfficeOrder).(document.OfficeOrder)
	if !ok {
		http.Error(w, msgNoOfficeOrder, http.StatusBadRequest)
		return
	}
	out, err := s.pdf.OfficeOrder(r.Context(), doc)
	if err != nil {
		s.writeRenderError(w, err)
		return
	}
	sendAttachment(w, out, "application/pdf", "Office_Order.pdf")
}

func (s *Server) handleOfficeOrderDocx(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.sessions.Get(r.Context(), sessionKeyOfficeOrder).(document.OfficeOrder)
	if !ok {
		http.Error(w, msgNoOfficeOrder, http.StatusBadRequest)
		return
	}
	out, err := s.docx.OfficeOrder(doc)
	if err != nil {
		s.writeRenderError(w, err)
		return
	}
	sendAttachment(w, out, docxContentType, "Office_Order.docx")
}

func (s *Server) handleCircularPDF(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.sessions.Get(r.Context(), sessionKeyCircular).(document.Circular)
	if !ok {
		http.Error(w, msgNoCircular, http.StatusBadRequest)
		return
	}
	out, err := s.pdf.Circular(r.Context(), doc)
	if err != nil {
		s.writeRenderError(w, err)
		return
	}
	sendAttachment(w, out, "application/pdf", "Circular.pdf")
}

func (s *Server) handleCircularDocx(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.sessions.Get(r.Context(), sessionKeyCircular).(document.Circular)
	if !ok {
		http.Error(w, msgNoCircular, http.StatusBadRequest)
		return
	}
	out, err := s.docx.Circular(doc)
	if err != nil {
		s.writeRenderError(w, err)
		return
	}
	sendAttachment(w, out, docxContentType, "Circular.docx")
}

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

func sendAttachment(w http.ResponseWriter, data []byte, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

func (s *Server) renderView(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := viewTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("render view failed", zap.String("view", name), zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
