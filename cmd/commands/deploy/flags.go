package deploy

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Flags holds the flag values for the registry-based deploy command. It
// carries the fields of the former legacy deploy flag set plus
// DeployChangeset, which the registry handler needs to execute a
// previously-created changeset rather than always creating a new one.
type Flags struct {
	StackName       string
	Template        string
	Parameters      string
	Tags            string
	DefaultTags     bool
	Bucket          string
	ChangesetName   string
	DeploymentFile  string
	Dryrun          bool
	NonInteractive  bool
	CreateChangeset bool
	DeployChangeset bool
}

// NewFlags creates a zero-valued Flags, ready for RegisterFlags to bind to a command.
func NewFlags() *Flags { return &Flags{} }

// RegisterFlags registers the deployment flags on the command.
func (f *Flags) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.StackName, "stackname", "s", "", "The name of the stack you want to deploy")
	cmd.Flags().StringVarP(&f.Template, "template", "t", "", "The filename for the template, either locally or in an S3 bucket")
	cmd.Flags().StringVarP(&f.Parameters, "parameters", "p", "", "The filename(s) for the parameters, comma-separated")
	cmd.Flags().StringVar(&f.Tags, "tags", "", "The filename(s) for the tags, comma-separated")
	cmd.Flags().BoolVar(&f.DefaultTags, "default-tags", false, "Use only the default tags configured in fog.yaml")
	cmd.Flags().StringVarP(&f.Bucket, "bucket", "b", "", "The S3 bucket where the template should be uploaded to")
	cmd.Flags().StringVarP(&f.ChangesetName, "changeset", "c", "", "The name of the changeset")
	cmd.Flags().StringVarP(&f.DeploymentFile, "deployment-file", "f", "", "The deployment settings file to use")
	cmd.Flags().BoolVar(&f.Dryrun, "dry-run", false, "Only show the changeset, don't deploy it")
	cmd.Flags().BoolVarP(&f.NonInteractive, "non-interactive", "y", false, "Don't ask for confirmation before deploying")
	cmd.Flags().BoolVar(&f.CreateChangeset, "create-changeset", false, "Only create the changeset, don't deploy it")
	cmd.Flags().BoolVar(&f.DeployChangeset, "deploy-changeset", false, "Deploy a changeset that was already created, rather than creating a new one")
}

// Validate checks that the flag combination makes sense. It satisfies
// registry.FlagValidator's 0-arg Validate contract.
func (f *Flags) Validate() error {
	if f.StackName == "" {
		return fmt.Errorf("stackname is a required flag")
	}
	if f.Template != "" && f.DeploymentFile != "" {
		return fmt.Errorf("template and deployment-file are conflicting flags, only one can be provided")
	}
	if f.Dryrun && f.CreateChangeset {
		return fmt.Errorf("dry-run and create-changeset are conflicting flags, only one can be provided")
	}
	return nil
}
