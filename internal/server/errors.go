package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"formalgen/internal/lookup"
)

const (
	msgNoOfficeOrder = "No office order generated"
	msgNoCircular    = "No circular generated"
)

// handleInvalidMethod is the router-wide wrong-method response for action
// endpoints.
func (s *Server) handleInvalidMethod(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, http.StatusBadRequest, "Invalid request")
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// writeAssemblyError maps an assembly failure to an HTTP response. Unknown
// designation keys are the caller's mistake (400); anything else is ours.
func (s *Server) writeAssemblyError(w http.ResponseWriter, err error) {
	var unknown *lookup.UnknownKeyError
	if errors.As(err, &unknown) {
		http.Error(w, unknown.Error(), http.StatusBadRequest)
		return
	}
	s.logger.Error("assembly failed", zap.Error(err))
	http.Error(w, "failed to assemble document", http.StatusInternalServerError)
}

// writeDraftError surfaces a completion-service failure as a 502. The
// underlying error is logged, not echoed to the client.
func (s *Server) writeDraftError(w http.ResponseWriter, err error) {
	s.logger.Error("draft service failed", zap.Error(err))
	http.Error(w, "body generation failed", http.StatusBadGateway)
}

func (s *Server) writeRenderError(w http.ResponseWriter, err error) {
	s.logger.Error("render failed", zap.Error(err))
	http.Error(w, "failed to render document", http.StatusInternalServerError)
}
