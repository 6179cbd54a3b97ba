package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/marcus/kanafont/internal/config"
)

// backendFlag restricts --backend to known store backends.
type backendFlag string

var _ pflag.Value = (*backendFlag)(nil)

func (b *backendFlag) String() string { return string(*b) }

func (b *backendFlag) Set(s string) error {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case config.BackendJSON, config.BackendSQLite, config.BackendMemory:
		*b = backendFlag(s)
		return nil
	default:
		return fmt.Errorf("must be one of %s, %s, %s", config.BackendJSON, config.BackendSQLite, config.BackendMemory)
	}
}

func (b *backendFlag) Type() string { return "backend" }
