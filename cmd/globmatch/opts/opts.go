package opts

import (
	"github.com/walteh/globmatch/cmd/globmatch/ui"
)

// RootOpts carries the dependencies shared by all subcommands.
type RootOpts struct {
	UserLogger *ui.UserLogger
}
