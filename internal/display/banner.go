package display

import (
	"fmt"
	"os"

	"github.com/backmassage/palfix/internal/logging"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if logging.Magenta != "" {
		fmt.Fprint(os.Stdout, "\033[1;95m")
	}
	fmt.Fprint(os.Stdout, ` ____       _ _____ _
|  _ \ __ _| |  ___(_)_  __
| |_) / _`+"`"+` | | |_  | \ \/ /
|  __/ (_| | |  _| | |>  <
|_|   \__,_|_|_|   |_/_/\_\
`)
	if logging.Magenta != "" {
		fmt.Fprintln(os.Stdout, logging.NC)
	}
}
