package main

import (
	"fmt"

	"github.com/foragehq/forage"
	"github.com/foragehq/forage/extract"
	"github.com/foragehq/forage/goquery"
	foragehttp "github.com/foragehq/forage/http"
	"github.com/foragehq/forage/rod"
	"github.com/foragehq/forage/scrape"
	forageslog "github.com/foragehq/forage/slog"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	opts := scrape.Options{
		Group:         c.Group,
		Days:          c.Days,
		Since:         c.Since,
		Until:         c.Until,
		Limit:         c.Limit,
		Delay:         c.Delay,
		DelayVariance: c.DelayVariance,
		SkipComments:  c.SkipComments,
		MinReactions:  c.MinReactions,
		TopComments:   c.TopComments,
		Headless:      !c.Headed,
	}

	groupID := scrape.NormalizeGroupIdentifier(opts.Group)
	if groupID == "" {
		return forage.Errorf(forage.EINVALID, "group identifier required")
	}

	fetcher, layout, err := c.buildFetcher(deps, groupID, opts.Headless)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	deps.Logger.Info("scraping group", "group", groupID, "layout", string(layout))

	extractor := forageslog.NewLoggingExtractor(extract.ForLayout(layout), deps.Logger)
	scraper := scrape.NewScraper(fetcher, extractor, layout, opts, deps.Logger)

	result, err := scraper.Run(deps.Ctx)
	if err != nil {
		return err
	}

	store := forageslog.NewLoggingStore(deps.Store, deps.Logger)
	if err := store.SaveResult(deps.Ctx, result); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Scraped %d posts from %s\n", len(result.Posts), result.Group.ID)

	if c.Out != "" {
		if err := exportCSV(deps, result, c.Out); err != nil {
			return err
		}
	}
	return nil
}

// buildFetcher picks the page source. The static path skips the browser
// entirely and only works with the legacy layout; otherwise a browser
// is launched and the layout is resolved from the flag or detected from
// the rendered page.
func (c *ScrapeCmd) buildFetcher(deps *Dependencies, groupID string, headless bool) (forage.Fetcher, forage.Layout, error) {
	if c.Static {
		if c.Layout == "modern" {
			return nil, forage.LayoutUnknown, forage.Errorf(forage.EINVALID, "--static only supports the basic layout")
		}
		return foragehttp.NewFetcher(), forage.LayoutBasic, nil
	}

	fetcher, err := rod.NewFetcher(headless)
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
		return nil, forage.LayoutUnknown, fmt.Errorf("failed to start browser: %w", err)
	}

	layout, err := c.resolveLayout(deps, fetcher, groupID)
	if err != nil {
		fetcher.Close()
		return nil, forage.LayoutUnknown, err
	}
	return fetcher, layout, nil
}

// resolveLayout picks the extraction strategy. An explicit flag wins;
// auto fetches the modern surface once and inspects its markers,
// falling back to modern when the page is inconclusive.
func (c *ScrapeCmd) resolveLayout(deps *Dependencies, fetcher *rod.Fetcher, groupID string) (forage.Layout, error) {
	switch c.Layout {
	case "modern":
		return forage.LayoutModern, nil
	case "basic":
		return forage.LayoutBasic, nil
	}

	html, err := fetcher.FetchHTML(deps.Ctx, "https://www.facebook.com/groups/"+groupID)
	if err != nil {
		return forage.LayoutUnknown, fmt.Errorf("failed to fetch group page for layout detection: %w", err)
	}

	layout := goquery.NewDetector().Detect(html)
	if layout == forage.LayoutUnknown {
		deps.Logger.Warn("layout detection inconclusive, assuming modern")
		layout = forage.LayoutModern
	}
	return layout, nil
}
