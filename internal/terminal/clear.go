// Package terminal provides small terminal manipulation helpers.
package terminal

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/term"
)

// ClearPreviousLines erases the lines a just-entered prompt occupied, so
// confirmation prompts do not linger above command output. textLength is
// the total character count of prompt plus typed input; wrapping is
// computed from the current terminal width (80 when undetectable).
func ClearPreviousLines(textLength int) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	lines := int(math.Ceil(float64(textLength) / float64(width)))
	if lines < 1 {
		lines = 1
	}
	// Enter leaves the cursor on a fresh line below the input.
	lines++

	for i := 0; i < lines; i++ {
		fmt.Print("\r\x1b[2K")
		if i < lines-1 {
			fmt.Print("\x1b[1A")
		}
	}
}
