package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/docsite/scaffold"
)

func newInitCmd(_ *app) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "init <dir>",
		Short: "Create a starter site config and docs tree",
		Example: `  docsite init my-docs
  docsite init github.com/acme/my-docs --lang de-DE`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data := scaffold.NewData(args[0], lang)
			dir := data.Dir
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Creating new docs site: %s\n\n", dir)
			files, err := scaffold.Generate(dir, data)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintf(out, "  created %s/%s\n", dir, f)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Done! Next steps:")
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  cd %s\n", dir)
			fmt.Fprintln(out, "  docsite validate")
			fmt.Fprintln(out, "  docsite serve")
			return nil
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "en-US", "site language (BCP 47)")
	return cmd
}
