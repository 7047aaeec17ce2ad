package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/gemdesk/internal/cli/formatter"
	"github.com/alexanderramin/gemdesk/internal/domain"
)

// gemdeskHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func gemdeskHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validatePositiveAmount accepts a positive decimal number.
func validatePositiveAmount(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter an amount greater than zero")
	}
	return nil
}

// validateNonBlank rejects empty or whitespace-only input.
func validateNonBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("this field is required")
	}
	return nil
}

// ledgerEntryForm collects a new ledger transaction.
func ledgerEntryForm(amount, txType, note *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Placeholder("500.00").
				Value(amount).
				Validate(validatePositiveAmount),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Credit (payment received)", string(domain.TransactionCredit)),
					huh.NewOption("Debit (charge)", string(domain.TransactionDebit)),
				).
				Value(txType),
			huh.NewInput().
				Title("Note").
				Placeholder("advance payment").
				Value(note).
				Validate(validateNonBlank),
		),
	).WithTheme(gemdeskHuhTheme()).WithShowHelp(false)
}

// trackingForm collects a tracking id before shipping.
func trackingForm(tracking *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Tracking ID").
				Placeholder("1Z999AA10123456784").
				Value(tracking).
				Validate(validateNonBlank),
		),
	).WithTheme(gemdeskHuhTheme()).WithShowHelp(false)
}

// confirmDelete asks before a hard delete; deleting a parent takes its
// final quotations with it.
func confirmDelete(q *domain.Quotation) (bool, error) {
	title := fmt.Sprintf("Delete quotation %s (%s)?", q.ID, q.Status)
	if q.HasFinalQuotations() {
		title = fmt.Sprintf("Delete quotation %s and its final quotation?", q.ID)
	}
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Delete").
				Negative("Keep").
				Value(&confirmed),
		),
	).WithTheme(gemdeskHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
