package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
)

func validateOptionalDate(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.ParseInLocation(dateLayout, value, time.Local); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func validateRequired(value string) error {
	if value == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// dateInput returns a huh.Input for an optional date field with YYYY-MM-DD
// validation.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2026-06-30").
		Value(value).
		Validate(validateOptionalDate)
}

// arrowForm collects the fields for a new arrow interactively.
func arrowForm(name, owner, start, end *string, status *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(name).Validate(validateRequired),
			huh.NewInput().Title("Owner (blank for none)").Value(owner),
			dateInput("Start date (blank for none)", start),
			dateInput("End date (blank for none)", end),
			huh.NewSelect[string]().
				Title("Status").
				Options(
					huh.NewOption("Not started", "not_started"),
					huh.NewOption("In progress", "in_progress"),
					huh.NewOption("Done", "done"),
				).
				Value(status),
		),
	).WithShowHelp(false)
}
