package forms

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/osse101/Stockroom_Go/internal/domain"
	"github.com/osse101/Stockroom_Go/internal/repository"
)

// ItemForm is the item create/edit schema. Raw submitted strings are kept
// alongside the parsed values so an invalid form re-renders exactly what the
// user typed.
type ItemForm struct {
	Name       string `validate:"required,max=100"`
	Quantity   int    `validate:"gte=0"`
	CategoryID int64

	RawQuantity   string
	RawCategoryID string
}

// ParseItemForm decodes an item form from submitted values. Parse failures
// are reported by Validate, not here, so handlers always get a form to
// re-render.
func ParseItemForm(values url.Values) ItemForm {
	form := ItemForm{
		Name:          values.Get("name"),
		RawQuantity:   values.Get("quantity"),
		RawCategoryID: values.Get("category_id"),
	}
	if qty, err := strconv.Atoi(form.RawQuantity); err == nil {
		form.Quantity = qty
	}
	if id, err := strconv.ParseInt(form.RawCategoryID, 10, 64); err == nil {
		form.CategoryID = id
	}
	return form
}

// FromItem pre-populates the form with an existing record's values for the
// edit flow.
func FromItem(item domain.InventoryItem) ItemForm {
	return ItemForm{
		Name:          item.Name,
		Quantity:      item.Quantity,
		CategoryID:    item.CategoryID,
		RawQuantity:   strconv.Itoa(item.Quantity),
		RawCategoryID: strconv.FormatInt(item.CategoryID, 10),
	}
}

// Validate returns field-level errors, or an empty map when the form is
// valid. The category reference must resolve against the category repository.
func (f ItemForm) Validate(ctx context.Context, categories repository.Category) map[string]string {
	errs := map[string]string{}
	if err := validate.Struct(f); err != nil {
		errs = FormatValidationError(err)
	}

	if _, err := strconv.Atoi(f.RawQuantity); err != nil {
		errs["quantity"] = "Enter a whole number"
	}

	if f.CategoryID == 0 {
		errs["category_id"] = "Select a category"
	} else if _, err := categories.GetCategoryByID(ctx, f.CategoryID); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			errs["category_id"] = "Select a valid category"
		} else {
			errs["form"] = "Could not verify the category, try again"
		}
	}

	return errs
}
