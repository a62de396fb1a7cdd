package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/freshcart/freshcart/internal/otel"
)

// WriteJsonResponse writes body as JSON with the given status code. The
// status is an explicit argument because the order endpoint's response
// bodies are a fixed contract and cannot carry transport fields.
func WriteJsonResponse(c context.Context, w http.ResponseWriter, statusCode int, body interface{}) {
	c, span := otel.Tracer.Start(c, "WriteJsonResponse")
	defer span.End()

	logger := zerolog.Ctx(c).With().Str("tag", "WriteJsonResponse").Logger()

	w.Header().Add(HeaderContentType, HeaderValueJson)
	w.WriteHeader(statusCode)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
}

// WriteErrorResponse writes the `{"error": message}` body shared by the
// validation and server failure outcomes.
func WriteErrorResponse(c context.Context, w http.ResponseWriter, statusCode int, message string) {
	WriteJsonResponse(c, w, statusCode, map[string]interface{}{"error": message})
}
