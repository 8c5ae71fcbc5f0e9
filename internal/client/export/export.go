// Package export writes recipes and pantry items to an .xlsx workbook.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dmitrijs2005/kitchenkeeper/internal/client/models"
	"github.com/dmitrijs2005/kitchenkeeper/internal/filex"
)

const (
	SheetRecipes = "Recipes"
	SheetPantry  = "Pantry"
)

var (
	recipeHeader = []any{"ID", "Title", "Description", "Tags", "Cook time (min)", "Ingredients", "Steps"}
	pantryHeader = []any{"ID", "Ingredient", "Amount", "Expires on", "Status"}
)

// Workbook builds a workbook with one sheet of recipes and one of pantry
// items. Pantry status is classified against today.
func Workbook(recipes []models.Recipe, pantry []models.PantryItem, today models.Date) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetRecipes); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetPantry); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("new sheet: %w", err)
	}

	rows := make([][]any, 0, len(recipes))
	for _, r := range recipes {
		rows = append(rows, recipeRow(r))
	}
	if err := writeSheet(f, SheetRecipes, recipeHeader, rows); err != nil {
		_ = f.Close()
		return nil, err
	}

	rows = rows[:0]
	for _, it := range pantry {
		rows = append(rows, pantryRow(it, today))
	}
	if err := writeSheet(f, SheetPantry, pantryHeader, rows); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

// WriteFile saves the workbook to path, creating parent directories.
func WriteFile(path string, recipes []models.Recipe, pantry []models.PantryItem, today models.Date) (string, error) {
	abs, err := filex.PrepareFile(path)
	if err != nil {
		return "", err
	}
	f, err := Workbook(recipes, pantry, today)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := f.SaveAs(abs); err != nil {
		return "", fmt.Errorf("save %s: %w", abs, err)
	}
	return abs, nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("stream writer %s: %w", sheet, err)
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("%s header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+2, err)
		}
	}
	return sw.Flush()
}

func recipeRow(r models.Recipe) []any {
	var cook any = ""
	if r.CookTimeMin != nil {
		cook = *r.CookTimeMin
	}
	ingredients := make([]string, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, ing.Name+" - "+ing.Quantity)
	}
	return []any{
		r.ID,
		r.Title,
		r.Description,
		strings.Join(r.TagList(), ", "),
		cook,
		strings.Join(ingredients, "; "),
		strings.Join(r.StepList(), "\n"),
	}
}

func pantryRow(it models.PantryItem, today models.Date) []any {
	expires := ""
	if it.ExpiresOn != nil {
		expires = it.ExpiresOn.String()
	}
	return []any{it.ID, it.IngredientName, it.Amount, expires, it.Status(today).String()}
}
