package cli

import (
	"context"
	"net/http"

	"github.com/rshade/sharesout/internal/config"
	"github.com/rshade/sharesout/internal/edgar"
	"github.com/rshade/sharesout/internal/loader"
	"github.com/rshade/sharesout/internal/view"
)

// pipeline bundles the pieces every command needs to run a load.
type pipeline struct {
	client *edgar.Client
	static *edgar.StaticLoader
	loader *loader.Loader
	locale string
}

// newPipeline builds the fetch, default-dataset and reduce pipeline from cfg.
func newPipeline(cfg *config.Config) *pipeline {
	timeout := cfg.API.TimeoutDuration()

	client := edgar.NewClient(
		edgar.WithTimeout(timeout),
		edgar.WithBaseURL(cfg.API.BaseURL),
		edgar.WithRelayURL(cfg.API.RelayURL),
		edgar.WithUserAgent(cfg.API.UserAgent),
	)
	static := edgar.NewStaticLoader(cfg.Display.DefaultData, &http.Client{Timeout: timeout})

	return &pipeline{
		client: client,
		static: static,
		loader: loader.New(client, static, cfg.Display.CutoffYear),
		locale: cfg.Display.Locale,
	}
}

// loadFunc adapts the loader to the TUI's LoadFunc for a fixed CIK query.
func (p *pipeline) loadFunc(cikValue string) func(ctx context.Context, vm *view.ViewModel) error {
	return func(ctx context.Context, vm *view.ViewModel) error {
		return p.loader.Load(ctx, cikQuery(cikValue), vm).Err
	}
}
