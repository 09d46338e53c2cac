package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"wedge/keyboard"
	"wedge/profile"
)

// job is everything needed to start one run.
type job struct {
	Backend   string
	Codes     []string
	InitialMs uint64
	ItemMs    uint64
}

// parseCodes splits text the same way a plain code list file is read.
func parseCodes(text string) []string {
	p, err := profile.Parse(strings.NewReader(text), profile.Plain)
	if err != nil {
		return nil
	}
	return p.Codes
}

func parseMs(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("enter a number of milliseconds")
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a non-negative whole number", s)
	}
	return v, nil
}

func validateMs(s string) error {
	_, err := parseMs(s)
	return err
}

func validateCodes(s string) error {
	if len(parseCodes(s)) == 0 {
		return errors.New("enter at least one code")
	}
	return nil
}

// runForm lets the user edit j interactively. It returns huh.ErrUserAborted
// when the form is cancelled.
func runForm(j job) (job, error) {
	codes := strings.Join(j.Codes, "\n")
	initial := strconv.FormatUint(j.InitialMs, 10)
	item := strconv.FormatUint(j.ItemMs, 10)
	backend := j.Backend

	options := make([]huh.Option[string], 0, len(keyboard.Names()))
	for _, name := range keyboard.Names() {
		options = append(options, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Codes").
				Description("One code per line; each is typed then followed by Enter").
				Lines(8).
				Value(&codes).
				Validate(validateCodes),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Initial delay (ms)").
				Description("Time to focus the target window").
				Value(&initial).
				Validate(validateMs),
			huh.NewInput().
				Title("Delay between codes (ms)").
				Value(&item).
				Validate(validateMs),
			huh.NewSelect[string]().
				Title("Input backend").
				Options(options...).
				Value(&backend),
		),
	).WithTheme(formTheme()).WithShowHelp(true)

	if err := form.Run(); err != nil {
		return j, err
	}

	out := job{Backend: backend, Codes: parseCodes(codes)}
	out.InitialMs, _ = parseMs(initial)
	out.ItemMs, _ = parseMs(item)
	return out, nil
}

func formTheme() *huh.Theme {
	t := huh.ThemeBase()
	primary := lipgloss.Color("4")
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(lipgloss.Color("241"))
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(primary)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary)
	return t
}
