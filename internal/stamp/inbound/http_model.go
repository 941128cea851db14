package inbound

import (
	"github.com/shandysiswandi/gostamp/internal/stamp/entity"
)

type ConversionResponse struct {
	Unix int64  `json:"unix"`
	UTC  string `json:"utc"`
}

func toConversionResponse(c entity.Conversion) ConversionResponse {
	return ConversionResponse{
		Unix: c.Unix,
		UTC:  c.UTC,
	}
}
