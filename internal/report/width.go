package report

import (
	"os"

	"golang.org/x/term"

	"github.com/sweqa/scoreagg/internal/contract"
)

// MaxNameWidth calculates the maximum width for trajectory names in
// progress notices based on terminal width. Width only shapes console
// notices; persisted reports always carry full names.
func MaxNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the score, label and emoji portions of the notice
	available := termWidth - 40
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}
