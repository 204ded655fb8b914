package registry

import (
	"context"

	"github.com/spf13/cobra"
)

// CommandHandler defines the interface for command business logic.
type CommandHandler interface {
	Execute(ctx context.Context) error
	ValidateFlags() error
}

// FlagValidator defines validation and flag registration behaviour.
type FlagValidator interface {
	Validate() error
	RegisterFlags(cmd *cobra.Command)
}
