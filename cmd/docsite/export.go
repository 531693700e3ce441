package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/docsite"
)

func newExportCmd(a *app) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the validated config in the generator's format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.load()
			if err != nil {
				return err
			}
			f := docsite.ExportFormat(format)
			if out == "" || out == "-" {
				return docsite.Export(cmd.OutOrStdout(), cfg, f)
			}
			if err := docsite.ExportFile(out, cfg, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", string(docsite.ExportVitePress), "output format: json, yaml or vitepress")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}
