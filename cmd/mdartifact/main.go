// Command mdartifact resolves GitLab CI artifact references in markdown
// files. Links whose title is "gitlab-artifact|{projectId}|{jobName}"
// have the referenced artifact archive downloaded and unpacked next to
// the file (or into --dest).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/mdartifact"
	"github.com/randalmurphal/mdartifact/config"
	"github.com/randalmurphal/mdartifact/fetch"
)

var (
	configPath string
	baseURL    string
	token      string
	destDir    string
	watchMode  bool
)

var rootCmd = &cobra.Command{
	Use:   "mdartifact <file.md>...",
	Short: "Resolve GitLab CI artifact references in markdown files",
	Long: `mdartifact scans markdown files for links whose title carries a
GitLab artifact reference:

  [build report](https://ci.example.com "gitlab-artifact|123|build")

For each reference, the artifact archive of the newest master job is
downloaded and unpacked alongside the file. A broken reference is
reported and left in place; it never stops the other links or the run.`,
	Args:         cobra.MinimumNArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	rootCmd.Flags().StringVar(&baseURL, "base-url", "", "GitLab instance URL (default gitlab.com)")
	rootCmd.Flags().StringVar(&token, "token", "", "GitLab access token")
	rootCmd.Flags().StringVar(&destDir, "dest", "", "directory to unpack artifacts into (default: alongside each file)")
	rootCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "keep running and re-process files on change")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if token != "" {
		cfg.Token = token
	}
	if destDir != "" {
		cfg.DestinationDir = destDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := fetch.NewClient(cfg.BaseURL, cfg.Token)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	transformer := mdartifact.NewTransformer(client)
	ctx := cmd.Context()

	// Per-link failures land in the report and are logged; only failing
	// to read a file at all fails the command.
	for _, path := range args {
		if err := processFile(ctx, logger, transformer, cfg, path); err != nil {
			return err
		}
	}

	if watchMode {
		return watchFiles(ctx, logger, transformer, cfg, args)
	}
	return nil
}

func processFile(
	ctx context.Context,
	logger *slog.Logger,
	transformer *mdartifact.Transformer,
	cfg *config.Config,
	path string,
) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	doc := mdartifact.ParseDocument(path, source)
	doc.Meta.DestinationDir = cfg.DestinationDir
	transformer.Transform(ctx, doc)

	for _, entry := range doc.Report.Entries() {
		attrs := []any{
			"file", path,
			"line", entry.Position.Line,
			"column", entry.Position.Column,
			"source", entry.Source,
		}
		if entry.Kind == mdartifact.KindError {
			logger.Error(entry.Message, attrs...)
		} else {
			logger.Info(entry.Message, attrs...)
		}
	}
	return nil
}

// watchFiles re-processes each file on every write until ctx is done.
// Failures inside a file are reported exactly like one-shot mode; they
// never stop the watch loop.
func watchFiles(
	ctx context.Context,
	logger *slog.Logger,
	transformer *mdartifact.Transformer,
	cfg *config.Config,
	paths []string,
) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(paths))
	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		watched[path] = true
	}
	logger.Info("watching for changes", "files", len(paths))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[event.Name] || !event.Has(fsnotify.Write) {
				continue
			}
			if err := processFile(ctx, logger, transformer, cfg, event.Name); err != nil {
				logger.Error("process failed", "file", event.Name, "error", err)
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", watchErr)
		}
	}
}
