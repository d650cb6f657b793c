package ui

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// SelectEventType shows the observed event types and returns the chosen
// one.
func SelectEventType(options []EventTypeOption) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no recent activity to choose from")
	}

	items := make([]string, len(options))
	for i, opt := range options {
		items[i] = fmt.Sprintf(
			"%s %s %s",
			PadRight(opt.Type, 30),
			PadRight(fmt.Sprintf("%d", opt.Count), 5),
			PadRight(opt.Sample, 40),
		)
	}

	prompt := promptui.Select{
		Label: "Select event type",
		Items: items,
		Size:  12,
		Searcher: func(input string, index int) bool {
			return strings.Contains(strings.ToLower(items[index]), input)
		},
		StartInSearchMode: true,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return options[idx].Type, nil
}
