// Package loader runs one load of the shares outstanding page: it resolves the
// requested CIK, fetches or reads the data, reduces it and resolves the view
// to content or error.
package loader

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/rshade/sharesout/internal/cik"
	"github.com/rshade/sharesout/internal/edgar"
	"github.com/rshade/sharesout/internal/shares"
	"github.com/rshade/sharesout/internal/view"
)

// StaticLoadMessage is shown when the default dataset cannot be used.
const StaticLoadMessage = "Failed to load initial company data."

// Fetcher retrieves the raw company-concept payload for an unpadded CIK.
type Fetcher interface {
	FetchConcept(ctx context.Context, id string) ([]byte, error)
}

// StaticSource returns the raw default dataset.
type StaticSource interface {
	Load(ctx context.Context) ([]byte, error)
}

// Source identifies which path produced an Outcome.
type Source int

const (
	// SourceStatic is the bundled default dataset.
	SourceStatic Source = iota
	// SourceRemote is the filings API.
	SourceRemote
)

// String returns "static" or "remote".
func (s Source) String() string {
	if s == SourceRemote {
		return "remote"
	}
	return "static"
}

// Outcome is the terminal result of one load: exactly one of Result and Err is set.
type Outcome struct {
	Source Source
	// CIK is the requested identifier; empty on the static path.
	CIK    string
	Result *shares.Extrema
	Err    error
}

// OK reports whether the load produced content.
func (o Outcome) OK() bool {
	return o.Err == nil && o.Result != nil
}

// Loader wires the fetcher, the default dataset and the normalizer together.
type Loader struct {
	fetcher Fetcher
	static  StaticSource
	cutoff  int
}

// New returns a Loader reducing remote data with the given fiscal-year cutoff.
func New(fetcher Fetcher, static StaticSource, cutoff int) *Loader {
	return &Loader{fetcher: fetcher, static: static, cutoff: cutoff}
}

// Load resolves the CIK parameter in query and runs the matching path.
// An absent or malformed CIK falls back to the default dataset.
func (l *Loader) Load(ctx context.Context, query url.Values, vm *view.ViewModel) Outcome {
	if id, ok := cik.ResolveQuery(query); ok {
		return l.LoadCIK(ctx, id, vm)
	}
	if raw := query.Get(cik.QueryKey); raw != "" {
		zerolog.Ctx(ctx).Debug().Str("component", "loader").Str("raw_cik", raw).
			Msg("ignoring malformed CIK, using default dataset")
	}
	return l.LoadDefault(ctx, vm)
}

// LoadCIK fetches and reduces the disclosures for id.
func (l *Loader) LoadCIK(ctx context.Context, id string, vm *view.ViewModel) Outcome {
	log := zerolog.Ctx(ctx).With().Str("component", "loader").Str("cik", id).Logger()
	vm.ShowLoading()

	out := Outcome{Source: SourceRemote, CIK: id}

	body, err := l.fetcher.FetchConcept(ctx, id)
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Msg("fetch failed")
		out.Err = err
		vm.ShowError(Message(out))
		return out
	}

	result, err := shares.ProcessConcept(body, l.cutoff)
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Msg("could not process shares data")
		out.Err = err
		vm.ShowError(Message(out))
		return out
	}

	log.Info().Ctx(ctx).
		Str("entity", result.EntityName).
		Stringer("max", result.Max).
		Stringer("min", result.Min).
		Msg("shares data loaded")
	out.Result = &result
	vm.ShowContent(result)
	return out
}

// LoadDefault reads the default dataset and shows it without recomputing values.
func (l *Loader) LoadDefault(ctx context.Context, vm *view.ViewModel) Outcome {
	log := zerolog.Ctx(ctx).With().Str("component", "loader").Logger()
	vm.ShowLoading()

	out := Outcome{Source: SourceStatic}

	body, err := l.static.Load(ctx)
	if err == nil {
		var result shares.Extrema
		result, err = shares.ProcessDefault(body)
		if err == nil {
			out.Result = &result
			vm.ShowContent(result)
			return out
		}
		err = fmt.Errorf("%w: %w", edgar.ErrStaticLoad, err)
	}

	log.Error().Ctx(ctx).Err(err).Msg("initial load failed")
	out.Err = err
	vm.ShowError(Message(out))
	return out
}

// Message maps a failed Outcome to the text shown in the error panel.
func Message(o Outcome) string {
	if o.Err == nil {
		return ""
	}
	if o.Source == SourceStatic {
		return StaticLoadMessage
	}

	var fe *edgar.FetchError
	switch {
	case errors.As(o.Err, &fe):
		return fe.Error()
	case errors.Is(o.Err, shares.ErrMalformedPayload), errors.Is(o.Err, shares.ErrEmptyWindow):
		return fmt.Sprintf("Could not process data for CIK %s. "+
			"The data might be in an unexpected format or missing required fields.", o.CIK)
	default:
		return fmt.Sprintf("An error occurred while fetching data for CIK %s. "+
			"Please check the CIK and try again.", o.CIK)
	}
}
