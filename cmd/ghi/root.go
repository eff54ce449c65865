package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johncf/ghi/internal/config"
	"github.com/johncf/ghi/internal/github"
	"github.com/johncf/ghi/internal/install"
	"github.com/johncf/ghi/internal/platform"
	"github.com/johncf/ghi/internal/prompt"
)

// Version is set at build time via -ldflags.
var Version = "v0.1.0-dev"

type rootFlags struct {
	tag  string
	name string
	dir  string
	yes  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "ghi <owner>/<repo>",
		Short: "Install executables from GitHub releases",
		Long: `ghi resolves a GitHub repository's release, picks the asset matching
your platform, and extracts a single executable into your install
directory. Downloads are cached, so repeated installs are cheap.`,
		Version:       Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.tag, "tag", "t", "", "install a specific release tag instead of the latest")
	cmd.Flags().StringVarP(&flags.name, "name", "n", "", "name for the installed executable")
	cmd.Flags().StringVarP(&flags.dir, "dir", "d", "", "install directory (overrides config)")
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "skip prompts and take the best-ranked candidates")

	cmd.AddCommand(newCleanCmd())
	return cmd
}

func runInstall(cmd *cobra.Command, repoArg string, flags *rootFlags) error {
	owner, repo, err := splitRepo(repoArg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	detector := platform.NewDetector()
	info, err := detector.Detect(ctx)
	if err != nil {
		return fmt.Errorf("detect platform: %w", err)
	}

	cfg, err := config.Load(info)
	if err != nil {
		return err
	}
	if flags.dir != "" {
		cfg.InstallDir = flags.dir
	}

	keywords := platform.KeywordsFor(info)
	positive := append(keywords.Positive, cfg.ExtraPositive...)
	negative := append(keywords.Negative, cfg.ExtraNegative...)

	manager := install.NewManager(
		github.NewClient(),
		install.NewDownloader(cfg.CacheDir),
		prompt.NewPrompter(os.Stdin, os.Stderr),
		os.Stderr,
	)

	dest, err := manager.Run(ctx, install.Options{
		Owner:      owner,
		Repo:       repo,
		Tag:        flags.tag,
		OutputName: flags.name,
		InstallDir: cfg.InstallDir,
		Yes:        flags.yes,
		Positive:   positive,
		Negative:   negative,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Installed %s\n", dest)
	return nil
}

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove all cached downloads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Cleanup only needs the cache dir; skip platform detection
			// and let any config file run without the platform table.
			cfg, err := config.Load(nil)
			if err != nil {
				return err
			}
			if err := install.NewDownloader(cfg.CacheDir).CleanCache(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleaned %s\n", cfg.CacheDir)
			return nil
		},
	}
}

// splitRepo parses an "owner/repo" argument.
func splitRepo(arg string) (owner, repo string, err error) {
	parts := strings.Split(arg, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("expected <owner>/<repo>, got %q", arg)
	}
	return parts[0], parts[1], nil
}
