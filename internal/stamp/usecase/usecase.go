package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/shandysiswandi/gostamp/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gostamp/internal/stamp/entity"
)

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Clock Clock
}

type Usecase struct {
	clock Clock
}

func New(dep Dependency) *Usecase {
	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	return &Usecase{clock: clock}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Now returns the current clock time as a conversion. It never fails.
func (u *Usecase) Now(_ context.Context) (entity.Conversion, error) {
	return toConversion(u.clock.Now().UTC()), nil
}

// Convert resolves a raw date token into a conversion.
//
// Integer input is treated as Unix seconds and truncated to the start of its
// UTC calendar day; anything else must be a strict YYYY-MM-DD date. Every
// failure surfaces as the single Invalid Date error.
func (u *Usecase) Convert(ctx context.Context, raw string) (entity.Conversion, error) {
	date, err := parseDate(raw)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse date", "date", raw, "error", err)
		return entity.Conversion{}, pkgerror.NewInvalidDate(err)
	}

	return toConversion(date), nil
}

func toConversion(t time.Time) entity.Conversion {
	return entity.Conversion{
		Unix: t.Unix(),
		UTC:  t.UTC().Format(time.RFC1123Z),
	}
}
