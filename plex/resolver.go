package plex

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ResolveTVSection picks the TV section to report on. With a single
// show-type section it is selected automatically; with several, the user
// chooses from a numbered list read line by line from in. The prompt
// repeats until the input is a valid 1-based index, there is no timeout.
func ResolveTVSection(sections []Section, in io.Reader, out io.Writer) (Section, error) {
	var candidates []Section
	for _, section := range sections {
		if section.IsTV() {
			candidates = append(candidates, section)
		}
	}

	switch len(candidates) {
	case 0:
		return Section{}, ErrNoTVSections
	case 1:
		fmt.Fprintf(out, "Using TV section: %s (key %s)\n", candidates[0].Title, candidates[0].Key)
		return candidates[0], nil
	}

	fmt.Fprintf(out, "Multiple TV sections found:\n")
	for i, section := range candidates {
		fmt.Fprintf(out, "  %d. %s (key %s)\n", i+1, section.Title, section.Key)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "Select a section [1-%d]: ", len(candidates))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return Section{}, fmt.Errorf("failed to read selection: %w", err)
			}
			return Section{}, fmt.Errorf("no section selected")
		}

		choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || choice < 1 || choice > len(candidates) {
			fmt.Fprintf(out, "Invalid selection, enter a number between 1 and %d.\n", len(candidates))
			continue
		}

		selected := candidates[choice-1]
		fmt.Fprintf(out, "Using TV section: %s (key %s)\n", selected.Title, selected.Key)
		return selected, nil
	}
}

// FindSection returns the section with the given key, TV or not, so an
// explicit --section flag bypasses the type check and the prompt.
func FindSection(sections []Section, key string) (Section, error) {
	for _, section := range sections {
		if section.Key == key {
			return section, nil
		}
	}
	return Section{}, fmt.Errorf("section with key %s not found", key)
}
