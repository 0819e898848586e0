package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/sharesout/internal/cik"
	"github.com/rshade/sharesout/internal/config"
	"github.com/rshade/sharesout/internal/loader"
	"github.com/rshade/sharesout/internal/view"
)

// NewFetchCmd creates the fetch command, which reduces one company's
// disclosures to the default dataset shape.
func NewFetchCmd() *cobra.Command {
	var (
		cikValue string
		savePath string
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch a company and print its reduced shares data as JSON",
		Long: `Fetches a company's shares outstanding disclosures and prints the largest and
smallest observations in the default dataset format. With --save the result is
also written to a file usable as display.default_data.`,
		Example: `  # Print Microsoft's reduced data
  sharesout fetch --cik 789019

  # Save it as a default dataset
  sharesout fetch --cik 789019 --save data.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFetch(cmd, cikValue, savePath)
		},
	}

	cmd.Flags().StringVar(&cikValue, "cik", "", "company CIK (1-10 digits)")
	cmd.Flags().StringVar(&savePath, "save", "", "also write the result to this file")
	_ = cmd.MarkFlagRequired("cik")

	return cmd
}

func runFetch(cmd *cobra.Command, cikValue, savePath string) error {
	id, ok := cik.Resolve(cikValue)
	if !ok {
		return fmt.Errorf("invalid CIK %q: must be 1 to %d digits", cikValue, cik.Width)
	}

	p := newPipeline(config.GetGlobalConfig())
	vm := view.New(p.locale)
	outcome := p.loader.LoadCIK(cmd.Context(), id, vm)
	if !outcome.OK() {
		return errors.New(loader.Message(outcome))
	}

	data, err := json.MarshalIndent(outcome.Result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	data = append(data, '\n')

	if _, err = cmd.OutOrStdout().Write(data); err != nil {
		return err
	}

	if savePath != "" {
		if err = os.WriteFile(savePath, data, 0o600); err != nil {
			return fmt.Errorf("saving %s: %w", savePath, err)
		}
		cmd.PrintErrf("Saved %s\n", savePath)
	}
	return nil
}
