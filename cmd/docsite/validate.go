package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/docsite"
)

func newValidateCmd(a *app) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the site config and report every problem",
		Long: `validate builds the site config and lists every violated constraint.
When the docs directory exists it also checks that internal links resolve to
markdown pages and that the logo can be read.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			cfg, err := a.load()
			var verr *docsite.ValidationError
			if errors.As(err, &verr) {
				for _, fe := range verr.Errors() {
					fmt.Fprintf(out, "  %s: %s\n", fe.Field, fe.Message)
				}
				return fmt.Errorf("%s: %d problem(s)", a.settings.File, len(verr.Errors()))
			}
			if err != nil {
				return err
			}

			warnings := 0
			if docs := a.docsFS(); docs != nil {
				for _, p := range cfg.CheckLinks(docs) {
					fmt.Fprintf(out, "  warning: %s\n", p)
					warnings++
				}
				if _, err := cfg.InspectLogo(docs); err != nil {
					fmt.Fprintf(out, "  warning: logo: %v\n", err)
					warnings++
				}
			}
			if strict && warnings > 0 {
				return fmt.Errorf("%s: %d warning(s) in strict mode", a.settings.File, warnings)
			}
			fmt.Fprintf(out, "ok %s %q (%s)\n", a.settings.File, cfg.Title(), cfg.Digest()[:12])
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "treat link and logo warnings as errors")
	return cmd
}
