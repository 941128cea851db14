package stamp

import (
	"github.com/shandysiswandi/gostamp/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gostamp/internal/stamp/inbound"
	"github.com/shandysiswandi/gostamp/internal/stamp/usecase"
)

type Dependency struct {
	Router *pkgrouter.Router
}

func New(dep Dependency) {
	uc := usecase.New(usecase.Dependency{})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)
}
