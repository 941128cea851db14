package inbound

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/gostamp/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gostamp/internal/stamp/entity"
)

type uc interface {
	Now(ctx context.Context) (entity.Conversion, error)
	Convert(ctx context.Context, raw string) (entity.Conversion, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.Handle(http.MethodGet, "/", http.HandlerFunc(end.Hello))

	r.GET("/api", end.Now)
	r.GET("/api/:date", end.Convert)
}
