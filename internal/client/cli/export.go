package cli

import (
	"context"

	"github.com/dmitrijs2005/kitchenkeeper/internal/client/export"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/models"
)

// Export writes the first page of recipes and of pantry items to an .xlsx
// workbook.
func (a *App) Export(ctx context.Context, args []string) error {
	path := "kitchen.xlsx"
	if len(args) > 0 {
		path = args[0]
	}

	recipes, pantry, err := a.loaders.Snapshot(ctx)
	if err != nil {
		return err
	}
	abs, err := export.WriteFile(path, recipes, pantry, models.DateOf(a.now()))
	if err != nil {
		a.log.Error(ctx, "export", "path", path, "error", err)
		a.println("Export failed:", err)
		return err
	}
	a.printf("Exported %d recipes and %d pantry items to %s\n", len(recipes), len(pantry), abs)
	return nil
}
