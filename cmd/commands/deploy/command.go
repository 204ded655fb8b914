package deploy

import (
	"github.com/stackforge/cfndeploy/cmd/registry"
	services "github.com/stackforge/cfndeploy/cmd/services"
	"github.com/stackforge/cfndeploy/config"
	"github.com/spf13/cobra"
)

// CommandBuilder constructs the deploy command using the BaseCommandBuilder.
type CommandBuilder struct {
	*registry.BaseCommandBuilder
	flags *Flags
}

// NewCommandBuilder creates a new deploy command builder with injected services.
// BaseCommandBuilder already validates flags (via WithValidator) before
// invoking the handler, so no separate flag-validation middleware is needed.
func NewCommandBuilder(factory services.ServiceFactory, middlewares ...registry.Middleware) *CommandBuilder {
	flagGroup := NewFlags()
	builder := registry.NewBaseCommandBuilder(
		"deploy",
		"Deploy a CloudFormation stack",
		`deploy allows you to deploy a CloudFormation stack

It does so by creating a ChangeSet and then asking you for approval before continuing. You can automatically approve or only create or deploy a changeset by using flags.

A name for the changeset will automatically be generated based on your preferred name, but can be overwritten as well.

When providing tag and/or parameter files, you can add multiple files for each. These are parsed in the order provided and later values will override earlier ones.
`,
	)
	var cfg *config.Config
	if cp, ok := factory.(services.ConfigProvider); ok {
		cfg = cp.AppConfig()
	}
	handler := NewHandler(flagGroup, factory, cfg)

	base := builder.WithHandler(handler).WithValidator(flagGroup)
	for _, mw := range middlewares {
		base = base.WithMiddleware(mw)
	}

	return &CommandBuilder{
		BaseCommandBuilder: base,
		flags:              flagGroup,
	}
}

// BuildCommand creates the cobra command.
func (b *CommandBuilder) BuildCommand() *cobra.Command {
	return b.BaseCommandBuilder.BuildCommand()
}

// GetHandler returns the command handler associated with the builder.
func (b *CommandBuilder) GetHandler() registry.CommandHandler {
	return b.BaseCommandBuilder.GetHandler()
}
