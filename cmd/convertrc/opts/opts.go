// Package opts holds the shared dependencies handed to every subcommand.
package opts

import (
	"github.com/walteh/convertrc/pkg/config"
	"github.com/walteh/convertrc/pkg/log"
	"github.com/walteh/convertrc/pkg/status"
)

// 🎯 RootOpts contains the dependencies built once per invocation
type RootOpts struct {
	// Config is the loaded run configuration
	Config *config.Config
	// StatusMgr records per-file outcomes
	StatusMgr *status.Manager
	// UserLogger prints user-friendly per-file feedback
	UserLogger *status.UserLogger
	// Console prints headers and summaries
	Console *log.Logger
	// Yes skips interactive confirmation prompts
	Yes bool
}
