package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"kcphysics/aiCompanySite/internal/assets"
	"kcphysics/aiCompanySite/internal/config"
	"kcphysics/aiCompanySite/internal/content"
	"kcphysics/aiCompanySite/internal/logger"
	"kcphysics/aiCompanySite/internal/pagegen"
	"kcphysics/aiCompanySite/internal/s3deploy"
	"kcphysics/aiCompanySite/internal/server"
	"kcphysics/aiCompanySite/internal/theme"
)

// brandColorCount is how many logo colours become CSS variables.
const brandColorCount = 5

// app carries what every subcommand needs once the root pre-run has built it.
type app struct {
	v          *viper.Viper
	configFile string
	verbose    bool

	cfg *config.Config
	log *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "site",
		Short: "Generate, preview and deploy the company website",
		Long: `site renders the Home, About and Contact pages from a YAML content file
(and an optional team roster CSV) into static HTML.

Run without a subcommand to build the site.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(a.verbose)
			if err != nil {
				return err
			}
			a.log = log

			cfg, err := config.Load(a.v, a.configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBuild()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ./site.config.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.String("content", "", "YAML content file")
	flags.String("team-csv", "", "CSV roster that replaces the About page team")
	flags.String("output", "", "output directory")
	flags.String("static", "", "static files copied into the output")
	flags.String("logo", "", "logo image used to derive brand colours")
	flags.String("analytics-id", "", "Google Analytics measurement ID")
	bindFlags(a.v, rootCmd, map[string]string{
		"content":      "content_file",
		"team-csv":     "team_csv",
		"output":       "output_dir",
		"static":       "static_dir",
		"logo":         "logo_path",
		"analytics-id": "analytics_id",
	})

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the static site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBuild()
		},
	}

	deployCmd := &cobra.Command{
		Use:   "deploy",
		Short: "Build the site, upload it to S3 and ensure a CloudFront distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDeploy(cmd.Context())
		},
	}
	deployCmd.Flags().String("bucket", "", "S3 bucket name to deploy to")
	bindFlags(a.v, deployCmd, map[string]string{"bucket": "bucket"})

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live preview of the site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe(cmd.Context())
		},
	}
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	bindFlags(a.v, serveCmd, map[string]string{"addr": "listen_addr"})

	rootCmd.AddCommand(buildCmd, deployCmd, serveCmd)
	return rootCmd
}

// bindFlags binds flags to config keys. Only flags the user set override
// the file and environment.
func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	for flag, key := range keys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			f = cmd.PersistentFlags().Lookup(flag)
		}
		if err := v.BindPFlag(key, f); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", flag, err))
		}
	}
}

func (a *app) newGenerator() (*pagegen.Generator, error) {
	site, err := content.LoadSite(a.cfg.ContentFile, a.cfg.TeamCSV)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	return pagegen.New(site, pagegen.Options{
		AnalyticsID: a.cfg.AnalyticsID,
		Stylesheet:  assets.StylesheetPath,
	}, a.log)
}

// prepareAssets fills the output directory with static files, the
// stylesheet and the brand colours.
func (a *app) prepareAssets() error {
	if err := os.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	n, err := assets.CopyDir(a.cfg.StaticDir, a.cfg.OutputDir)
	if err != nil {
		return err
	}
	a.log.Info("Static assets copied", zap.String("from", a.cfg.StaticDir), zap.Int("files", n))

	cssPath, err := assets.EnsureStylesheet(a.cfg.OutputDir)
	if err != nil {
		return err
	}

	if a.cfg.LogoPath == "" {
		return nil
	}
	vars, err := theme.Apply(a.cfg.LogoPath, cssPath, brandColorCount)
	if err != nil {
		return fmt.Errorf("failed to generate color scheme: %w", err)
	}
	a.log.Info("Generated color scheme", zap.String("css", cssPath), zap.Strings("vars", vars))
	return nil
}

func (a *app) runBuild() error {
	a.log.Info("Starting static site generation", zap.String("output", a.cfg.OutputDir))

	gen, err := a.newGenerator()
	if err != nil {
		return err
	}
	if err := a.prepareAssets(); err != nil {
		return err
	}
	if _, err := gen.GenerateAll(a.cfg.OutputDir); err != nil {
		return err
	}

	a.log.Info("Static site generation complete")
	return nil
}

func (a *app) runDeploy(ctx context.Context) error {
	if a.cfg.Bucket == "" {
		return errors.New("S3 bucket name is required for deploy: use --bucket <bucket-name> or SITE_BUCKET")
	}
	if err := a.runBuild(); err != nil {
		return err
	}

	deployer, err := s3deploy.NewFromEnv(ctx, a.log)
	if err != nil {
		return err
	}
	if _, err := deployer.Upload(ctx, a.cfg.Bucket, a.cfg.OutputDir); err != nil {
		return err
	}

	distID, err := deployer.EnsureDistribution(ctx, a.cfg.Bucket)
	if err != nil {
		return err
	}
	a.log.Info("CloudFront distribution ready", zap.String("id", distID))
	return nil
}

func (a *app) runServe(ctx context.Context) error {
	gen, err := a.newGenerator()
	if err != nil {
		return err
	}
	if err := a.prepareAssets(); err != nil {
		return err
	}

	srv := server.New(a.cfg.ListenAddr, gen, a.cfg.OutputDir, a.log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("Shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down preview server: %w", err)
	}
	return <-errCh
}
