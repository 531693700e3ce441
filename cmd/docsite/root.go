package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/docsite"
	xlog "github.com/eringen/docsite/internal/log"
)

// settings are the CLI's own options, layered from flags, .docsite.yaml and
// DOCSITE_* environment variables.
type settings struct {
	File      string `mapstructure:"file"`
	Docs      string `mapstructure:"docs"`
	DB        string `mapstructure:"db"`
	Addr      string `mapstructure:"addr"`
	SiteURL   string `mapstructure:"site-url"`
	LogLevel  string `mapstructure:"log-level"`
	LogPretty bool   `mapstructure:"log-pretty"`
}

type app struct {
	v        *viper.Viper
	settings settings
	cfgFile  string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "docsite",
		Short: "Validate, inspect and export documentation site configs",
		Long: `docsite checks a documentation site's configuration (title, nav,
sidebars, social links and footer) before it reaches the static-site
generator, and exports it in the generator's own format.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "settings", "", "settings file (default is ./.docsite.yaml)")
	pf.StringP("file", "f", "site.yaml", "site config file (.yaml, .yml or .json)")
	pf.String("docs", "docs", "markdown source directory used for link and logo checks")
	pf.String("db", ".docsite/snapshots.db", "snapshot database path")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.Bool("log-pretty", false, "human-readable console logs")

	root.AddCommand(
		newValidateCmd(a),
		newExportCmd(a),
		newSidebarCmd(a),
		newLinksCmd(a),
		newSitemapCmd(a),
		newServeCmd(a),
		newInitCmd(a),
		newSnapshotCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) initialize(cmd *cobra.Command) error {
	v := a.v
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(".docsite")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("DOCSITE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || a.cfgFile != "" {
			return fmt.Errorf("read settings: %w", err)
		}
	}

	if err := v.Unmarshal(&a.settings); err != nil {
		return fmt.Errorf("decode settings: %w", err)
	}

	xlog.Configure(xlog.Config{
		Level:  a.settings.LogLevel,
		Output: cmd.ErrOrStderr(),
		Pretty: a.settings.LogPretty,
	})
	return nil
}

// load reads and validates the site config named by --file.
func (a *app) load() (*docsite.SiteConfig, error) {
	return docsite.LoadFile(a.settings.File)
}

// docsFS returns the docs directory, or nil when it does not exist.
func (a *app) docsFS() fs.FS {
	if a.settings.Docs == "" {
		return nil
	}
	info, err := os.Stat(a.settings.Docs)
	if err != nil || !info.IsDir() {
		return nil
	}
	return os.DirFS(a.settings.Docs)
}

func (a *app) openStore() (*docsite.Store, error) {
	store, err := docsite.NewStore(a.settings.DB)
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}
	return store, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the docsite version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "docsite %s\n", version)
		},
	}
}
