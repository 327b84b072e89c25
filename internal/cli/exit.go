package cli

import (
	"errors"

	"github.com/0xalexb/sitecfg/siteerr"
)

// Exit codes returned by the sitecfg binary.
const (
	ExitOK      = 0
	ExitGeneral = 1
	ExitSchema  = 2
	ExitIO      = 3
	ExitTheme   = 4
)

// ExitCode maps an error to the process exit code. When an error carries
// several categories, IO wins over theme parsing, which wins over schema.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, siteerr.ErrIO):
		return ExitIO
	case errors.Is(err, siteerr.ErrThemeParse):
		return ExitTheme
	case errors.Is(err, siteerr.ErrConfigSchema):
		return ExitSchema
	default:
		return ExitGeneral
	}
}
