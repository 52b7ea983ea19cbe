package commands

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rcoan/airsoft-suitcase/circuits"
	"github.com/rcoan/airsoft-suitcase/export"
	"github.com/rcoan/airsoft-suitcase/svgraster"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var (
		out     string
		dpi     float64
		formats string
	)

	root := &cobra.Command{
		Use:          "arduino-diagram",
		Short:        "Draw the Arduino Uno schematic",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := export.ParseFormats(formats)
			if err != nil {
				return fmt.Errorf("--format: %w", err)
			}
			w := cmd.OutOrStdout()
			export.Progress(w, "Creating Arduino Uno diagram...\n")

			if err := os.MkdirAll(out, 0o755); err != nil {
				return err
			}
			dg := circuits.Arduino()
			d, err := dg.Build()
			if err != nil {
				return fmt.Errorf("arduino diagram: %w", err)
			}
			for _, f := range fs {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				path := filepath.Join(out, dg.Name+"."+string(f))
				if err := export.WriteFile(path, d, f, &svgraster.Options{DPI: dpi, Background: color.White}); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
				export.Progress(w, "Arduino Uno diagram created: %s\n", path)
			}
			return nil
		},
	}

	root.Flags().StringVar(&out, "out", ".", "output directory")
	root.Flags().Float64Var(&dpi, "dpi", 300, "resolution of PNG outputs")
	root.Flags().StringVar(&formats, "format", "svg", "comma separated output formats (svg, png, pdf, dot)")
	return root
}
