package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newSidebarCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "sidebar <path>",
		Short: "Show the sidebar a route resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			prefix, groups, ok := cfg.MatchSidebar(args[0])
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{"prefix": prefix, "matched": ok, "groups": groups})
			}
			if !ok {
				fmt.Fprintf(out, "no sidebar for %s\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "%s\n", prefix)
			for _, g := range groups {
				fmt.Fprintf(out, "  %s\n", g.Text)
				for _, item := range g.Items {
					fmt.Fprintf(out, "    %s -> %s\n", item.Text, item.Link)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newLinksCmd(a *app) *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "links",
		Short: "List every link in the config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, ref := range cfg.Links() {
				kind := "internal"
				if ref.External {
					kind = "external"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", kind, ref.Link, ref.Text, ref.Location)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if !check {
				return nil
			}
			docs := a.docsFS()
			if docs == nil {
				return fmt.Errorf("docs directory %q not found", a.settings.Docs)
			}
			problems := cfg.CheckLinks(docs)
			for _, p := range problems {
				fmt.Fprintf(out, "broken: %s\n", p)
			}
			if len(problems) > 0 {
				return errors.New("broken internal links")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "verify internal links against the docs directory")
	return cmd
}

func newSitemapCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Print a sitemap of the pages the config links to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			siteURL := a.settings.SiteURL
			if siteURL == "" {
				return errors.New("--site-url is required")
			}
			cfg, err := a.load()
			if err != nil {
				return err
			}
			return cfg.WriteSitemap(cmd.OutOrStdout(), siteURL)
		},
	}
	cmd.Flags().String("site-url", "", "canonical site URL, e.g. https://docs.example.com")
	return cmd
}
