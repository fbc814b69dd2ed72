package cli

import (
	"errors"
	"strings"
	"time"

	"github.com/Sgowda7697/Dream2Reality/internal/cli/formatter"
	"github.com/Sgowda7697/Dream2Reality/internal/domain"
	"github.com/Sgowda7697/Dream2Reality/internal/flights"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// plannerTheme styles huh forms with the formatter palette.
func plannerTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateCity(s string) error {
	if len([]rune(strings.TrimSpace(s))) < 3 {
		return errors.New("enter a city name of at least 3 characters")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse(domain.DateLayout, strings.TrimSpace(s)); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

// validateDateRange checks both dates and that end is strictly after start.
func validateDateRange(start, end string) error {
	s, err := time.Parse(domain.DateLayout, strings.TrimSpace(start))
	if err != nil {
		return errors.New("start date: use YYYY-MM-DD")
	}
	e, err := time.Parse(domain.DateLayout, strings.TrimSpace(end))
	if err != nil {
		return errors.New("end date: use YYYY-MM-DD")
	}
	if !e.After(s) {
		return errors.New("end date must be after the start date")
	}
	return nil
}

// flightSearchInput holds the values a flights form collects.
type flightSearchInput struct {
	Origin      string
	Destination string
	StartDate   string
	EndDate     string
	Preference  string
}

// complete reports whether every field needed for a search is set.
func (in flightSearchInput) complete() bool {
	return in.Origin != "" && in.Destination != "" && in.StartDate != "" && in.EndDate != ""
}

func cityInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Suggestions(citySuggestions()).
		Value(value).
		Validate(validateCity)
}

// citySuggestions lists the cities with a known airport, capitalised for
// display. Other cities are still accepted.
func citySuggestions() []string {
	cities := flights.KnownCities()
	for i, c := range cities {
		cities[i] = strings.ToUpper(c[:1]) + c[1:]
	}
	return cities
}

func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(time.Now().AddDate(0, 1, 0).Format(domain.DateLayout)).
		Value(value).
		Validate(validateDate)
}

// flightSearchForm asks for the fields missing from in. The end date field
// also checks the range against the start date.
func flightSearchForm(in *flightSearchInput) *huh.Form {
	var fields []huh.Field
	if in.Origin == "" {
		fields = append(fields, cityInput("From", "Bangalore", &in.Origin))
	}
	if in.Destination == "" {
		fields = append(fields, cityInput("To", "Goa", &in.Destination))
	}
	if in.StartDate == "" {
		fields = append(fields, dateInput("Departure (YYYY-MM-DD)", &in.StartDate))
	}
	if in.EndDate == "" {
		end := dateInput("Return (YYYY-MM-DD)", &in.EndDate)
		end.Validate(func(s string) error { return validateDateRange(in.StartDate, s) })
		fields = append(fields, end)
	}
	if in.Preference == "" {
		in.Preference = string(domain.PreferenceGoodTiming)
	}
	fields = append(fields, huh.NewSelect[string]().
		Title("Prefer").
		Options(
			huh.NewOption("Good timing", string(domain.PreferenceGoodTiming)),
			huh.NewOption("Cheapest", string(domain.PreferenceCheapest)),
		).
		Value(&in.Preference))

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(plannerTheme()).
		WithShowHelp(false)
}
