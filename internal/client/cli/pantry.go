package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/dmitrijs2005/kitchenkeeper/internal/client/loaders"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/models"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/view"
)

func isWriteError(err error) bool {
	var we *loaders.WriteError
	return errors.As(err, &we)
}

func (a *App) Pantry(ctx context.Context) error {
	return a.loaders.Pantry(ctx, a.ctrl.ShowPantry())
}

// Expiring lists pantry items expiring within the given number of days.
func (a *App) Expiring(ctx context.Context, args []string) error {
	days := loaders.DefaultExpiringDays
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			a.println("Usage: expiring [days]")
			return errors.New("invalid days")
		}
		days = n
	}
	a.printf("Items expiring within %d days:\n", days)
	return a.loaders.Expiring(ctx, a.ctrl.ShowPantry(), days)
}

// AddItem opens the pantry form. A failed submit keeps the form open and
// offers to edit the draft and try again.
func (a *App) AddItem(ctx context.Context) error {
	if a.ctrl.Page() != view.Pantry {
		a.ctrl.ShowPantry()
	}
	a.ctrl.OpenForm(view.PantryForm)
	defer a.ctrl.CloseForm()

	var d pantryDraft
	for {
		if err := a.editPantryItem(&d); err != nil {
			return err
		}
		item, err := d.toNewPantryItem()
		if err != nil {
			a.println(err)
		} else {
			created, err := a.loaders.CreatePantryItem(ctx, item)
			if err == nil {
				a.printf("Pantry item #%d added.\n", created.ID)
				return nil
			}
			a.println(loaders.Message(err))
			if !isWriteError(err) || a.ctrl.OpenedForm() != view.PantryForm {
				return err
			}
		}
		if !a.confirm("Edit and resubmit?") {
			return nil
		}
	}
}

func (a *App) editPantryItem(d *pantryDraft) error {
	var err error
	if d.Name, err = GetTextWithDefault(a.reader, "Ingredient name", d.Name, a.out); err != nil {
		return err
	}
	if d.Amount, err = GetTextWithDefault(a.reader, "Amount", d.Amount, a.out); err != nil {
		return err
	}
	if d.ExpiresOn, err = GetTextWithDefault(a.reader, "Best before, YYYY-MM-DD (optional)", d.ExpiresOn, a.out); err != nil {
		return err
	}
	return nil
}

// UpdateItem changes the amount and/or best-before date of a pantry item.
// Empty answers leave a field unchanged.
func (a *App) UpdateItem(ctx context.Context, args []string) error {
	id, err := parseID(args, "update-item <id>")
	if err != nil {
		a.println(err)
		return err
	}
	if a.ctrl.Page() != view.Pantry {
		a.ctrl.ShowPantry()
	}

	var u models.PantryUpdate
	amount, err := GetSimpleText(a.reader, "New amount (empty keeps the current one)", a.out)
	if err != nil {
		return err
	}
	if amount != "" {
		u.Amount = &amount
	}
	expires, err := GetSimpleText(a.reader, "New best-before date, YYYY-MM-DD (empty keeps the current one)", a.out)
	if err != nil {
		return err
	}
	if expires != "" {
		date, err := models.ParseDate(expires)
		if err != nil {
			a.println("Best-before date must be YYYY-MM-DD.")
			return err
		}
		u.ExpiresOn = &date
	}
	if u.Amount == nil && u.ExpiresOn == nil {
		a.println("Nothing to update.")
		return nil
	}

	if _, err := a.loaders.UpdatePantryItem(ctx, id, u); err != nil {
		if isWriteError(err) {
			a.println(loaders.Message(err))
		}
		return err
	}
	a.printf("Pantry item #%d updated.\n", id)
	return nil
}

func (a *App) DeleteItem(ctx context.Context, args []string) error {
	id, err := parseID(args, "delete-item <id>")
	if err != nil {
		a.println(err)
		return err
	}
	if a.ctrl.Page() != view.Pantry {
		a.ctrl.ShowPantry()
	}
	deleted, err := a.loaders.DeletePantryItem(ctx, id, a.confirm)
	if err != nil {
		if isWriteError(err) {
			a.println(loaders.Message(err))
		}
		return err
	}
	if !deleted {
		a.println("Cancelled.")
	}
	return nil
}
