package entity

import "fmt"

// Choice pairs the code stored in the database with its display label,
// e.g. "ph" -> "Phones".
type Choice struct {
	Code  string
	Label string
}

// labelOf returns the display label for code, or "Unknown" when the stored
// value matches none of the choices.
func labelOf(choices []Choice, code string) string {
	for _, ch := range choices {
		if ch.Code == code {
			return ch.Label
		}
	}
	return "Unknown"
}

// validateChoice rejects any code outside the assigned choices. Only the
// full-validation path (services) calls this; raw repository writes skip it.
func validateChoice(field string, choices []Choice, code string) error {
	for _, ch := range choices {
		if ch.Code == code {
			return nil
		}
	}
	return fmt.Errorf("%s: %q is not a valid choice", field, code)
}
