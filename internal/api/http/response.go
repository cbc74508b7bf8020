package httpapi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/outingclub/trip-lottery/internal/form"
	"github.com/outingclub/trip-lottery/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type errorResponse struct {
	Code       string           `json:"code"`
	Error      string           `json:"error"`
	RequestId  string           `json:"request_id,omitempty"`
	Violations []fieldViolation `json:"violations,omitempty"`
}

type fieldViolation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("can't encode response", slog.String("err", err.Error()))
	}
}

// writeError maps a status error to its HTTP code. Anything that is not a
// status error is reported as internal and logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	st := status.Convert(err)
	code := runtime.HTTPStatusFromCode(st.Code())
	if st.Code() == codes.Unknown || st.Code() == codes.Internal {
		slog.Default().ErrorContext(r.Context(), "request failed",
			slog.String("err", err.Error()),
			slog.String("path", r.URL.Path),
			slog.String("request_id", log.RequestIDFrom(r.Context())),
		)
		code = http.StatusInternalServerError
		st = status.New(codes.Internal, "internal error")
	}

	resp := errorResponse{
		Code:      st.Code().String(),
		Error:     st.Message(),
		RequestId: log.RequestIDFrom(r.Context()),
	}
	for _, fv := range form.Violations(err) {
		resp.Violations = append(resp.Violations, fieldViolation{
			Field:       fv.GetField(),
			Description: fv.GetDescription(),
		})
	}
	writeJSON(w, code, resp)
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return status.Errorf(codes.InvalidArgument, "can't decode request body: %v", err)
	}
	return nil
}

func pathId(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, status.Error(codes.InvalidArgument, fmt.Sprintf("%s must be a positive integer", name))
	}
	return id, nil
}
