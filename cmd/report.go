package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/backlogr/plex"
	"github.com/s0up4200/backlogr/report"
	"github.com/s0up4200/backlogr/sonarr"
)

var (
	sectionKey  string
	lowerBound  int
	upperBound  int
	yellowLimit int
	redLimit    int
	filterExpr  string
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the unwatched-episode backlog of a TV section",
	Long: `Print the shows of a Plex TV section sorted by unwatched-episode count.

Shows outside the [lower, upper] bounds are skipped. Counts at or above
the yellow limit render yellow, at or above the red limit red. Without
--section the TV section is resolved interactively when the server has
more than one.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&sectionKey, "section", "s", "", "library section key (skips interactive selection)")
	reportCmd.Flags().IntVar(&lowerBound, "lower", -1, "minimum unwatched count to include")
	reportCmd.Flags().IntVar(&upperBound, "upper", -1, "maximum unwatched count to include")
	reportCmd.Flags().IntVar(&yellowLimit, "yellow", -1, "unwatched count rendered as a warning")
	reportCmd.Flags().IntVar(&redLimit, "red", -1, "unwatched count rendered as critical")
	reportCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression, e.g. 'Unwatched > 10'")
}

// applyThresholdOverrides copies changed threshold flags into the config
// so they are validated together with the file values
func applyThresholdOverrides(cmd *cobra.Command) {
	if cmd.Flags().Changed("lower") {
		cfg.Thresholds.Lower = lowerBound
	}
	if cmd.Flags().Changed("upper") {
		cfg.Thresholds.Upper = upperBound
	}
	if cmd.Flags().Changed("yellow") {
		cfg.Thresholds.Yellow = yellowLimit
	}
	if cmd.Flags().Changed("red") {
		cfg.Thresholds.Red = redLimit
	}
	if cmd.Flags().Changed("filter") {
		cfg.Output.Filter = filterExpr
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Compile the show filter before any fetch so a bad expression
	// fails immediately
	var showFilter *report.ShowFilter
	if cfg.Output.Filter != "" {
		var err error
		showFilter, err = report.CompileShowFilter(cfg.Output.Filter)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	section, err := resolveSection(ctx)
	if err != nil {
		return err
	}

	logger.Info().Str("section", section.Title).Str("key", section.Key).Msg("Fetching shows")

	shows, monitored, err := fetchShows(ctx, section.Key)
	if err != nil {
		return err
	}

	items := make([]report.Item, 0, len(shows))
	for _, show := range shows {
		items = append(items, report.Item{
			Title:           show.Title,
			TotalEpisodes:   show.LeafCount,
			WatchedEpisodes: show.ViewedLeafCount,
			Monitored:       sonarr.Lookup(monitored, show.Title),
		})
	}

	thresholds := report.Thresholds{
		Lower:  cfg.Thresholds.Lower,
		Upper:  cfg.Thresholds.Upper,
		Yellow: cfg.Thresholds.Yellow,
		Red:    cfg.Thresholds.Red,
	}

	color := cfg.Output.Color && isatty.IsTerminal(os.Stdout.Fd())
	renderer := report.NewRenderer(color, monitored != nil)

	rows, err := renderer.Render(os.Stdout, items, thresholds, showFilter)
	if err != nil {
		return err
	}

	if rows == 0 {
		fmt.Println("No shows matched the report criteria.")
		return nil
	}

	logger.Info().Int("shows", rows).Int("total", len(shows)).Msg("Report complete")
	return nil
}

// resolveSection picks the TV section to report on, interactively when
// no --section flag was given and the server has several
func resolveSection(ctx context.Context) (plex.Section, error) {
	sections, err := plexClient.GetSections(ctx)
	if err != nil {
		return plex.Section{}, err
	}

	if sectionKey != "" {
		return plex.FindSection(sections, sectionKey)
	}

	return plex.ResolveTVSection(sections, os.Stdin, os.Stdout)
}

// fetchShows retrieves the section's shows, in parallel with the Sonarr
// series list when enrichment is enabled. Sonarr failures degrade to a
// report without the monitored column.
func fetchShows(ctx context.Context, key string) ([]plex.Show, map[string]bool, error) {
	if sonarrClient == nil {
		shows, err := plexClient.GetShows(ctx, key)
		return shows, nil, err
	}

	var (
		shows     []plex.Show
		monitored map[string]bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		shows, err = plexClient.GetShows(gctx, key)
		return err
	})
	g.Go(func() error {
		var err error
		monitored, err = sonarrClient.MonitoredByTitle(gctx)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to get Sonarr series, continuing without monitored status")
			monitored = nil
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return shows, monitored, nil
}
