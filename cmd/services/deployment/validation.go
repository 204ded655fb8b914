package deployment

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"

	ferr "github.com/stackforge/cfndeploy/cmd/errors"
	"github.com/stackforge/cfndeploy/cmd/services"
	"github.com/stackforge/cfndeploy/lib"
)

// validateStackState checks if the stack is in a valid state for deployment.
// It classifies the current status through the same vocabulary the deploy
// engine itself uses (lib.ParseStatus), so a stack blocked for the engine
// is rejected here before a change set is ever built.
func (s *Service) validateStackState(ctx context.Context, plan *services.DeploymentPlan) ferr.FogError {
	errorCtx := ferr.GetErrorContext(ctx)

	output, err := s.cfnClient.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(plan.StackName),
	})
	if err != nil || len(output.Stacks) == 0 {
		plan.IsNewStack = true
		return nil
	}

	stack := output.Stacks[0]
	status, perr := lib.ParseStatus(string(stack.StackStatus))
	if perr != nil {
		return ferr.ContextualError(errorCtx, ferr.ErrStackInvalidState,
			fmt.Sprintf("stack %s has an unrecognised status %s", plan.StackName, stack.StackStatus))
	}

	if status == lib.StatusReviewInProgress {
		plan.IsNewStack = true
		return nil
	}
	plan.IsNewStack = false

	if status.IsBlocked() {
		return ferr.ContextualError(errorCtx, ferr.ErrStackInvalidState,
			fmt.Sprintf("stack %s is in state %s which does not allow updates", plan.StackName, status))
	}

	return nil
}
