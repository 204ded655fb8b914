package cmd

import (
	"context"

	deploycmd "github.com/stackforge/cfndeploy/cmd/commands/deploy"
	ferr "github.com/stackforge/cfndeploy/cmd/errors"
	cmdmiddleware "github.com/stackforge/cfndeploy/cmd/middleware"
	"github.com/stackforge/cfndeploy/cmd/services"
	"github.com/stackforge/cfndeploy/cmd/services/factory"
	"github.com/stackforge/cfndeploy/cmd/ui"
	"github.com/stackforge/cfndeploy/config"
)

// registerDeployCommand attaches the registry-based "deploy" command (backed
// by the lib apply/change-set engine) to rootCmd. It is kept in its own
// function, called from root.go's init(), so the AWS configuration it needs
// is resolved lazily through lazyAWSServiceFactory rather than at package
// init time, when no flags or fog.yaml have been parsed yet.
func registerDeployCommand() {
	console := ui.NewConsoleUI(false)
	formatter := ferr.NewConsoleErrorFormatter(false, false)
	builder := deploycmd.NewCommandBuilder(
		&lazyAWSServiceFactory{cfg: settings},
		cmdmiddleware.NewRecoveryMiddleware(console),
		cmdmiddleware.NewErrorHandlingMiddleware(formatter, console, false),
	)
	rootCmd.AddCommand(builder.BuildCommand())
}

// lazyAWSServiceFactory defers AWS configuration resolution (profile,
// region, credentials) to the first call of CreateDeploymentService, which
// happens inside a command's Execute, long after cobra has parsed flags and
// loaded fog.yaml. Building a services.ServiceFactory.aws config eagerly at
// init time would permanently bake in the zero-value config instead.
type lazyAWSServiceFactory struct {
	cfg *config.Config
}

func (f *lazyAWSServiceFactory) CreateDeploymentService() services.DeploymentService {
	awsCfg, err := loadAWSConfig(*f.cfg)
	if err != nil {
		return failingDeploymentService{
			err: ferr.WrapError(
				ferr.NewErrorContext("CreateDeploymentService", "cli"),
				err,
				ferr.ErrAWSAuthentication,
				"failed to load AWS configuration",
			),
		}
	}
	return factory.NewServiceFactory(f.cfg, &awsCfg).CreateDeploymentService()
}

func (f *lazyAWSServiceFactory) CreateDriftService() services.DriftService { return nil }
func (f *lazyAWSServiceFactory) CreateStackService() services.StackService { return nil }
func (f *lazyAWSServiceFactory) AppConfig() *config.Config                 { return f.cfg }
func (f *lazyAWSServiceFactory) AWSConfig() *config.AWSConfig              { return nil }

// failingDeploymentService reports the same error from every DeploymentService
// method, used when AWS configuration could not be resolved.
type failingDeploymentService struct{ err ferr.FogError }

func (s failingDeploymentService) PrepareDeployment(ctx context.Context, opts services.DeploymentOptions) (*services.DeploymentPlan, ferr.FogError) {
	return nil, s.err
}

func (s failingDeploymentService) ValidateDeployment(ctx context.Context, plan *services.DeploymentPlan) ferr.FogError {
	return s.err
}

func (s failingDeploymentService) CreateChangeset(ctx context.Context, plan *services.DeploymentPlan) (*services.ChangesetResult, ferr.FogError) {
	return nil, s.err
}

func (s failingDeploymentService) ExecuteDeployment(ctx context.Context, plan *services.DeploymentPlan, changeset *services.ChangesetResult) (*services.DeploymentResult, ferr.FogError) {
	return nil, s.err
}
