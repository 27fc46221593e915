package main

import (
	"fmt"

	"github.com/foragehq/forage"
	"github.com/foragehq/forage/fs"
	"github.com/foragehq/forage/scrape"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	groupID := scrape.NormalizeGroupIdentifier(c.Group)
	if groupID == "" {
		return forage.Errorf(forage.EINVALID, "group identifier required")
	}

	result, err := deps.Store.Result(deps.Ctx, groupID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", forage.ErrorMessage(err))
		return err
	}

	return exportCSV(deps, result, c.Out)
}

func exportCSV(deps *Dependencies, result *forage.ScrapeResult, path string) error {
	if err := fs.NewCSVExporter().Export(result, path); err != nil {
		return fmt.Errorf("failed to export CSV: %w", err)
	}
	fmt.Fprintf(deps.Stdout, "Exported %d posts to %s (comments in %s)\n",
		len(result.Posts), path, fs.CommentsPath(path))
	return nil
}
