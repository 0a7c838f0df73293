// Package selector prompts for a data file choice on a terminal.
//
// The retry logic is a small state machine over an io.Reader/io.Writer
// pair so it can be tested without a real terminal. There are three
// terminal outcomes: an explicit selection, the default via empty
// input, and the default via attempt exhaustion.
package selector

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/datawalker/backend/internal/models"
)

// DefaultMaxAttempts bounds invalid-input retries before falling back
// to the default file.
const DefaultMaxAttempts = 5

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	listStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	defaultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Choose displays files and reads a numeric selection from in.
//
// Empty input selects the entry named defaultName if present, else the
// first entry. Invalid input consumes one attempt and redisplays the
// list; exhausting maxAttempts falls back the same way empty input
// does. A read failure (e.g. the user interrupting input) is returned
// immediately without consuming an attempt.
func Choose(files []models.DataFile, defaultName string, maxAttempts int, in io.Reader, out io.Writer) (models.DataFile, error) {
	if len(files) == 0 {
		return models.DataFile{}, fmt.Errorf("no files to choose from")
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	defaultIndex := 0 // 1-based; 0 means no default present
	for i, f := range files {
		if f.Name == defaultName {
			defaultIndex = i + 1
			break
		}
	}

	displayList(files, defaultIndex, out)
	prompt := fmt.Sprintf("Enter file number (1-%d): ", len(files))
	if defaultIndex > 0 {
		prompt = fmt.Sprintf("Enter file number (1-%d) or press Enter for default [%s]: ", len(files), defaultName)
	}

	reader := bufio.NewReader(in)
	for attempt := 0; attempt < maxAttempts; {
		fmt.Fprint(out, prompt)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			// Cancelled or input closed; propagate without burning an attempt.
			return models.DataFile{}, err
		}

		input := strings.TrimSpace(line)
		if input == "" {
			chosen := fallback(files, defaultIndex)
			if defaultIndex > 0 {
				fmt.Fprintln(out, okStyle.Render("Using default file: "+chosen.Name))
			} else {
				fmt.Fprintln(out, okStyle.Render("No default available. Using first file: "+chosen.Name))
			}
			return chosen, nil
		}

		selection, convErr := strconv.Atoi(input)
		if convErr != nil {
			attempt++
			fmt.Fprintln(out, errStyle.Render(fmt.Sprintf(
				"Invalid input: enter a number between 1-%d or press Enter for default.", len(files))))
			if attempt < maxAttempts {
				displayList(files, defaultIndex, out)
			}
			continue
		}
		if selection < 1 || selection > len(files) {
			attempt++
			fmt.Fprintln(out, errStyle.Render(fmt.Sprintf(
				"Invalid selection: %d is out of range 1-%d.", selection, len(files))))
			if attempt < maxAttempts {
				displayList(files, defaultIndex, out)
			}
			continue
		}

		chosen := files[selection-1]
		fmt.Fprintln(out, okStyle.Render("Selected file: "+chosen.Name))
		return chosen, nil
	}

	chosen := fallback(files, defaultIndex)
	fmt.Fprintln(out, errStyle.Render(fmt.Sprintf(
		"Maximum attempts reached (%d). Using %s.", maxAttempts, chosen.Name)))
	return chosen, nil
}

func fallback(files []models.DataFile, defaultIndex int) models.DataFile {
	if defaultIndex > 0 {
		return files[defaultIndex-1]
	}
	return files[0]
}

func displayList(files []models.DataFile, defaultIndex int, out io.Writer) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(out)
	fmt.Fprintln(out, headerStyle.Render(rule))
	fmt.Fprintln(out, headerStyle.Render("Data Explorer - File Selection"))
	fmt.Fprintln(out, headerStyle.Render(rule))
	fmt.Fprintln(out)

	for i, f := range files {
		ext := strings.ToUpper(strings.TrimPrefix(f.Extension, "."))
		line := fmt.Sprintf("  %d. %s (%s) [%s]", i+1, f.Name, f.SizeFormatted, ext)
		if defaultIndex == i+1 {
			fmt.Fprintln(out, defaultStyle.Render(line+" [DEFAULT]"))
		} else {
			fmt.Fprintln(out, listStyle.Render(line))
		}
	}
	fmt.Fprintln(out)
}
