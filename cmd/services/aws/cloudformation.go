package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// CloudFormation wraps the AWS SDK CloudFormation client. Its method
// set satisfies both services.CloudFormationClient and lib.DeployClient,
// so the same wrapper can be handed to the deployment service and
// directly to lib.ApplyStack/lib.DeleteStack.
type CloudFormation struct{ client *cloudformation.Client }

// NewCloudFormation creates a new CloudFormation wrapper.
func NewCloudFormation(c *cloudformation.Client) *CloudFormation { return &CloudFormation{client: c} }

func (c *CloudFormation) DescribeStacks(ctx context.Context, input *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error) {
	return c.client.DescribeStacks(ctx, input, optFns...)
}

func (c *CloudFormation) DescribeStackResources(ctx context.Context, input *cloudformation.DescribeStackResourcesInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStackResourcesOutput, error) {
	return c.client.DescribeStackResources(ctx, input, optFns...)
}

func (c *CloudFormation) CreateChangeSet(ctx context.Context, input *cloudformation.CreateChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.CreateChangeSetOutput, error) {
	return c.client.CreateChangeSet(ctx, input, optFns...)
}

func (c *CloudFormation) ExecuteChangeSet(ctx context.Context, input *cloudformation.ExecuteChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ExecuteChangeSetOutput, error) {
	return c.client.ExecuteChangeSet(ctx, input, optFns...)
}

func (c *CloudFormation) DescribeChangeSet(ctx context.Context, input *cloudformation.DescribeChangeSetInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeChangeSetOutput, error) {
	return c.client.DescribeChangeSet(ctx, input, optFns...)
}

func (c *CloudFormation) DescribeStackEvents(ctx context.Context, input *cloudformation.DescribeStackEventsInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStackEventsOutput, error) {
	return c.client.DescribeStackEvents(ctx, input, optFns...)
}

func (c *CloudFormation) DeleteStack(ctx context.Context, input *cloudformation.DeleteStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error) {
	return c.client.DeleteStack(ctx, input, optFns...)
}

func (c *CloudFormation) ValidateTemplate(ctx context.Context, input *cloudformation.ValidateTemplateInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ValidateTemplateOutput, error) {
	return c.client.ValidateTemplate(ctx, input, optFns...)
}
