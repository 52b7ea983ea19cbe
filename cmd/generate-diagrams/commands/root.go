package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcoan/airsoft-suitcase/circuits"
	"github.com/rcoan/airsoft-suitcase/export"
)

type options struct {
	out        string
	dpi        float64
	formats    string
	jobs       int
	only       []string
	background string
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var opts options
	def := export.DefaultConfig()

	root := &cobra.Command{
		Use:          "generate-diagrams",
		Short:        "Generate the wiring diagrams of the airsoft suitcase",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			jobs, err := selectJobs(opts.only)
			if err != nil {
				return err
			}
			_, err = export.Run(cmd.Context(), cfg, jobs, cmd.OutOrStdout())
			return err
		},
	}

	root.Flags().StringVar(&opts.out, "out", def.Dir, "output directory")
	root.Flags().Float64Var(&opts.dpi, "dpi", def.DPI, "resolution of PNG outputs")
	root.Flags().StringVar(&opts.formats, "format", export.JoinFormats(def.Formats), "comma separated output formats (svg, png, pdf, dot)")
	root.Flags().IntVar(&opts.jobs, "jobs", def.Jobs, "number of diagrams generated concurrently")
	root.Flags().StringArrayVar(&opts.only, "only", nil, "generate only the named diagram (repeatable)")
	root.Flags().StringVar(&opts.background, "background", def.Background, `background of PNG outputs, "none" for transparent`)

	root.AddCommand(listCmd())
	return root
}

func (opts options) config() (export.Config, error) {
	formats, err := export.ParseFormats(opts.formats)
	if err != nil {
		return export.Config{}, fmt.Errorf("--format: %w", err)
	}
	return export.Config{
		Dir:        opts.out,
		DPI:        opts.dpi,
		Formats:    formats,
		Jobs:       opts.jobs,
		Background: opts.background,
	}, nil
}

// selectJobs returns the airsoft diagrams, restricted to only when not empty.
func selectJobs(only []string) ([]export.Job, error) {
	all := circuits.Airsoft()
	if len(only) == 0 {
		jobs := make([]export.Job, len(all))
		for i, dg := range all {
			jobs[i] = export.Job{Name: dg.Name, Build: dg.Build}
		}
		return jobs, nil
	}

	jobs := make([]export.Job, 0, len(only))
	for _, name := range only {
		dg, ok := circuits.Lookup(name)
		if !ok {
			names := make([]string, len(all))
			for i, dg := range all {
				names[i] = dg.Name
			}
			return nil, fmt.Errorf("unknown diagram %q (expected one of %s)", name, strings.Join(names, ", "))
		}
		jobs = append(jobs, export.Job{Name: dg.Name, Build: dg.Build})
	}
	return jobs, nil
}
