package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/motionforge/svg2lottie/internal/anim"
	"github.com/motionforge/svg2lottie/internal/convert"
	"github.com/motionforge/svg2lottie/internal/domain"
)

// errorResponse is the JSON shape of every non-2xx reply.
type errorResponse struct {
	Error              string   `json:"error"`
	Message            string   `json:"message"`
	Provided           string   `json:"provided,omitempty"`
	AvailableEndpoints []string `json:"available_endpoints,omitempty"`
}

// convertRequest is the POST /convert body. Pointer fields distinguish
// "absent" from "zero" so configuration defaults apply only when absent.
type convertRequest struct {
	Base64SVG     string                    `json:"base64_svg"`
	AnimationType string                    `json:"animation_type"`
	FPS           *int                      `json:"fps"`
	Duration      *int                      `json:"duration"`
	Effects       map[string]anim.SubEffect `json:"effects"`
	Shake         *shakeRequest             `json:"shake"`
	FitToCanvas   *bool                     `json:"fit_to_canvas"`
}

type shakeRequest struct {
	AmplitudeX float64 `json:"amplitude_x"`
	AmplitudeY float64 `json:"amplitude_y"`
	Loops      int     `json:"loops"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	system := map[string]any{
		"goroutines": runtime.NumGoroutine(),
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		system["memory_used_percent"] = vm.UsedPercent
	}
	if pct, err := cpu.Percent(0, false); err == nil && len(pct) > 0 {
		system["cpu_percent"] = pct[0]
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
		"system":  system,
	})
}

func (s *Server) handleAnimationTypes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"available_types": s.registry.List(),
		"default":         s.Config().DefaultType,
	})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	cfg := s.Config()

	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			s.writeError(w, http.StatusBadRequest, errorResponse{
				Error:   fmt.Sprintf("Invalid %s value", typeErr.Field),
				Message: fmt.Sprintf("%s has the wrong type", typeErr.Field),
			})
			return
		}
		s.writeError(w, http.StatusBadRequest, errorResponse{
			Error:   "No JSON data provided",
			Message: "Request body must contain valid JSON",
		})
		return
	}

	if req.Base64SVG == "" {
		s.writeError(w, http.StatusBadRequest, errorResponse{
			Error:   "Missing required field",
			Message: "base64_svg field is required",
		})
		return
	}

	animationType := req.AnimationType
	if animationType == "" {
		animationType = cfg.DefaultType
	}
	available := s.registry.List()
	if !contains(available, animationType) {
		s.writeError(w, http.StatusBadRequest, errorResponse{
			Error:    "Invalid animation type",
			Message:  fmt.Sprintf("animation_type must be one of: %s", strings.Join(available, ", ")),
			Provided: animationType,
		})
		return
	}

	fps := cfg.DefaultFPS
	if req.FPS != nil {
		fps = *req.FPS
	}
	if fps <= 0 {
		s.writeError(w, http.StatusBadRequest, errorResponse{
			Error:   "Invalid fps value",
			Message: "fps must be a positive integer",
		})
		return
	}

	duration := cfg.DefaultDuration
	if req.Duration != nil {
		duration = *req.Duration
	}
	if duration <= 0 {
		s.writeError(w, http.StatusBadRequest, errorResponse{
			Error:   "Invalid duration value",
			Message: "duration must be a positive integer",
		})
		return
	}

	fit := cfg.FitToCanvas
	if req.FitToCanvas != nil {
		fit = *req.FitToCanvas
	}

	creq := convert.Request{
		SVG:           req.Base64SVG,
		AnimationType: animationType,
		FrameRate:     fps,
		Duration:      duration,
		Effects:       req.Effects,
		FitToCanvas:   fit,
	}
	if req.Shake != nil {
		creq.Shake = &convert.ShakeParams{
			AmplitudeX: req.Shake.AmplitudeX,
			AmplitudeY: req.Shake.AmplitudeY,
			Loops:      req.Shake.Loops,
			Start:      req.Shake.Start,
			End:        req.Shake.End,
		}
	}

	doc, err := s.conv.Convert(creq)
	if err != nil {
		s.writeConvertError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, doc)
}

// writeConvertError maps converter errors onto the API's status codes.
func (s *Server) writeConvertError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrParse):
		s.writeError(w, http.StatusBadRequest, errorResponse{
			Error:   "Invalid input data",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrConversion):
		s.writeError(w, http.StatusUnprocessableEntity, errorResponse{
			Error:   "Conversion failed",
			Message: err.Error(),
		})
	default:
		s.log.Error().Err(err).Msg("Unexpected error in convert endpoint")
		s.writeError(w, http.StatusInternalServerError, errorResponse{
			Error:   "Internal server error",
			Message: "An unexpected error occurred",
		})
	}
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, http.StatusNotFound, errorResponse{
		Error:   "Endpoint not found",
		Message: "The requested endpoint does not exist",
		AvailableEndpoints: []string{
			"GET /health - Health check",
			"POST /convert - Convert SVG to Lottie",
			"GET /animation-types - Get available animation types",
		},
	})
}

// method wraps a handler and rejects other HTTP methods with a JSON 405.
func (s *Server) method(m string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != m {
			s.writeError(w, http.StatusMethodNotAllowed, errorResponse{
				Error:   "Method not allowed",
				Message: "The HTTP method is not supported for this endpoint",
			})
			return
		}
		next(w, r)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, resp errorResponse) {
	s.writeJSON(w, status, resp)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
