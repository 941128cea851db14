package inbound

import (
	"context"
	"io"
	"net/http"

	"github.com/shandysiswandi/gostamp/internal/pkg/pkgrouter"
)

const helloBody = "<h1>Hello World!</h1>"

type HTTPEndpoint struct {
	uc uc
}

// Hello serves the HTML landing page. It bypasses the JSON codecs.
func (h *HTTPEndpoint) Hello(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, helloBody)
}

func (h *HTTPEndpoint) Now(ctx context.Context, _ *http.Request) (any, error) {
	result, err := h.uc.Now(ctx)
	if err != nil {
		return nil, err
	}

	return toConversionResponse(result), nil
}

func (h *HTTPEndpoint) Convert(ctx context.Context, _ *http.Request) (any, error) {
	result, err := h.uc.Convert(ctx, pkgrouter.GetParam(ctx, "date"))
	if err != nil {
		return nil, err
	}

	return toConversionResponse(result), nil
}
