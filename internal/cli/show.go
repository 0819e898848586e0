package cli

import (
	"errors"
	"fmt"
	"io"
	"net/url"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/sharesout/internal/cik"
	"github.com/rshade/sharesout/internal/config"
	"github.com/rshade/sharesout/internal/tui"
	"github.com/rshade/sharesout/internal/view"
)

// Output formats accepted by show --output.
const (
	outputAuto   = "auto"
	outputPlain  = "plain"
	outputStyled = "styled"
	outputJSON   = "json"
	outputHTML   = "html"
)

// errLoadFailed marks a show run whose view ended in the error state.
var errLoadFailed = errors.New("load failed")

// showParams holds the flags of the show command.
type showParams struct {
	cik     string
	output  string
	noColor bool
}

// NewShowCmd creates the show command, which runs one load and renders the view.
func NewShowCmd() *cobra.Command {
	var params showParams

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the largest and smallest shares outstanding for a company",
		Long: `Loads a company's shares outstanding disclosures and shows the largest and
smallest values reported after the configured fiscal-year cutoff.

Without --cik (or with a CIK that is not 1-10 digits) the default dataset is shown.`,
		Example: `  # Default dataset
  sharesout show

  # Apple Inc.
  sharesout show --cik 320193

  # Render the page as HTML
  sharesout show --cik 320193 --output html > shares.html`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.cik, "cik", "", "company CIK (1-10 digits)")
	cmd.Flags().StringVarP(&params.output, "output", "o", outputAuto,
		"output format: auto, plain, styled, json or html")
	cmd.Flags().BoolVar(&params.noColor, "no-color", false, "disable colored output")

	return cmd
}

func runShow(cmd *cobra.Command, params showParams) error {
	cfg := config.GetGlobalConfig()
	p := newPipeline(cfg)
	ctx := cmd.Context()

	format := params.output
	if format == outputAuto {
		switch tui.DetectOutputMode(false, params.noColor, false) {
		case tui.OutputModeInteractive:
			return runInteractive(cmd, p, params.cik)
		case tui.OutputModeStyled:
			format = outputStyled
		default:
			format = outputPlain
		}
	}

	vm := view.New(p.locale)
	outcome := p.loader.Load(ctx, cikQuery(params.cik), vm)

	if err := renderView(cmd.OutOrStdout(), vm, format); err != nil {
		return err
	}

	if !outcome.OK() {
		return &ExitError{Code: 1, Err: fmt.Errorf("%w: %w", errLoadFailed, outcome.Err), Silent: true}
	}
	return nil
}

// renderView writes vm in the given non-interactive format.
func renderView(w io.Writer, vm *view.ViewModel, format string) error {
	switch format {
	case outputPlain:
		return view.RenderPlain(w, vm)
	case outputStyled:
		_, err := fmt.Fprintln(w, tui.RenderShares(vm, 0))
		return err
	case outputJSON:
		return view.RenderJSON(w, vm)
	case outputHTML:
		return view.RenderHTML(w, vm)
	default:
		return fmt.Errorf("unsupported output format %q (want auto, plain, styled, json or html)", format)
	}
}

// runInteractive runs the Bubble Tea view until the user quits.
func runInteractive(cmd *cobra.Command, p *pipeline, cikValue string) error {
	model := tui.NewSharesModel(cmd.Context(), p.locale, p.loadFunc(cikValue))
	model.SetCaption(loadingCaption(cikValue))

	final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
	if err != nil {
		return fmt.Errorf("running interactive view: %w", err)
	}

	if m, ok := final.(*tui.SharesModel); ok && m.Err() != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("%w: %w", errLoadFailed, m.Err()), Silent: true}
	}
	return nil
}

// loadingCaption names what an interactive load is waiting on.
func loadingCaption(cikValue string) string {
	if id, ok := cik.Resolve(cikValue); ok {
		return fmt.Sprintf("Fetching CIK %s...", id)
	}
	return "Loading default company data..."
}

// cikQuery returns the query a page request would carry for value.
// The value is passed through unchecked so malformed input takes the default path.
func cikQuery(value string) url.Values {
	q := url.Values{}
	if value != "" {
		q.Set(cik.QueryKey, value)
	}
	return q
}
