package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/docsite"
)

func newSnapshotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record and compare versions of the site config",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "save",
			Short: "Record the current config unless an identical one exists",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := a.load()
				if err != nil {
					return err
				}
				store, err := a.openStore()
				if err != nil {
					return err
				}
				defer store.Close()
				snap, created, err := store.Save(cfg, a.settings.File)
				if err != nil {
					return err
				}
				verb := "saved"
				if !created {
					verb = "unchanged, existing"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, snap.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List recorded snapshots, newest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				store, err := a.openStore()
				if err != nil {
					return err
				}
				defer store.Close()
				snaps, err := store.List()
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tCREATED\tDIGEST\tTITLE")
				for _, s := range snaps {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.ID, s.CreatedAt.Format(time.RFC3339), s.Digest[:12], s.Title)
				}
				return tw.Flush()
			},
		},
		newSnapshotShowCmd(a),
		&cobra.Command{
			Use:   "diff <id> [id]",
			Short: "Show what changed between a snapshot and another one or the current config",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := a.openStore()
				if err != nil {
					return err
				}
				defer store.Close()
				old, err := store.Get(args[0])
				if err != nil {
					return snapshotErr(args[0], err)
				}
				var next *docsite.SiteConfig
				if len(args) == 2 {
					snap, err := store.Get(args[1])
					if err != nil {
						return snapshotErr(args[1], err)
					}
					next = snap.Config
				} else if next, err = a.load(); err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				changes := docsite.Diff(old.Config, next)
				if len(changes) == 0 {
					fmt.Fprintln(out, "no changes")
					return nil
				}
				for _, ch := range changes {
					fmt.Fprintf(out, "%s\n  - %s\n  + %s\n", ch.Path, ch.Old, ch.New)
				}
				return nil
			},
		},
	)
	return cmd
}

func newSnapshotShowCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a recorded snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			snap, err := store.Get(args[0])
			if err != nil {
				return snapshotErr(args[0], err)
			}
			return docsite.Export(cmd.OutOrStdout(), snap.Config, docsite.ExportFormat(format))
		},
	}
	cmd.Flags().StringVar(&format, "format", string(docsite.ExportYAML), "output format: json, yaml or vitepress")
	return cmd
}

func snapshotErr(id string, err error) error {
	if errors.Is(err, docsite.ErrSnapshotNotFound) {
		return fmt.Errorf("snapshot %s: %w", id, err)
	}
	return err
}
