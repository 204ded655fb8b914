package deployment

import (
	"context"
	"errors"
	"fmt"

	cfnTypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"

	ferr "github.com/stackforge/cfndeploy/cmd/errors"
	"github.com/stackforge/cfndeploy/cmd/services"
	"github.com/stackforge/cfndeploy/lib"
)

// createChangeSet is a helper used by Service.CreateChangeset. It plans
// the deploy through the lib engine and stores the resulting handle on
// the plan so ExecuteDeployment drives the very same change set rather
// than building a second one from scratch.
func (s *Service) createChangeSet(ctx context.Context, plan *services.DeploymentPlan) (*services.ChangesetResult, ferr.FogError) {
	errorCtx := ferr.GetErrorContext(ctx)

	input := lib.DeployInput{
		StackName:  plan.StackName,
		Parameters: plan.Parameters,
		Tags:       plan.Tags,
	}
	if plan.Template.S3URL != "" {
		input.TemplateURL = plan.Template.S3URL
	} else if plan.Template.Content != "" {
		input.Template = plan.Template.Content
	} else {
		return nil, ferr.ContextualError(errorCtx, ferr.ErrTemplateInvalid, "template content or S3 URL is required")
	}

	plan.Engine = lib.ApplyStack(ctx, s.cfnClient, input)

	cs, err := plan.Engine.ChangeSet()
	if err != nil {
		var blocked *lib.ErrBlocked
		if errors.As(err, &blocked) {
			return nil, ferr.ContextualError(errorCtx, ferr.ErrStackInvalidState,
				fmt.Sprintf("stack is blocked in state %s", blocked.Status))
		}
		return nil, ferr.ContextualError(errorCtx, ferr.ErrChangesetFailed, fmt.Sprintf("failed to create changeset: %v", err))
	}

	return s.buildChangesetResult(plan.ChangesetName, cs), nil
}

// buildChangesetResult converts a planned lib.ChangeSet into the
// cmd-layer ChangesetResult shape, including a console deep-link when
// a region is configured.
func (s *Service) buildChangesetResult(name string, cs *lib.ChangeSet) *services.ChangesetResult {
	result := &services.ChangesetResult{
		Name:    name,
		ID:      cs.ID,
		StackID: cs.StackID,
		Status:  cfnTypes.ChangeSetStatusCreateComplete,
		Changes: make([]cfnTypes.Change, 0, len(cs.Changes)),
	}
	if cs.Effect == lib.EffectSkip {
		result.Status = cfnTypes.ChangeSetStatusFailed
		result.StatusReason = "The submitted information didn't contain changes."
	}
	for _, c := range cs.Changes {
		logicalID, physicalID, resourceType := c.LogicalID, c.PhysicalID, c.ResourceType
		result.Changes = append(result.Changes, cfnTypes.Change{
			ResourceChange: &cfnTypes.ResourceChange{
				Action:             resourceChangeActionToSDK(c.Action),
				LogicalResourceId:  &logicalID,
				PhysicalResourceId: &physicalID,
				ResourceType:       &resourceType,
			},
		})
	}

	if s.config != nil {
		region := s.config.GetString("region")
		if region != "" {
			result.ConsoleURL = fmt.Sprintf("https://console.aws.amazon.com/cloudformation/home?region=%s#/stacks/changesets/changes?stackId=%s&changeSetId=%s",
				region, result.StackID, result.ID)
		}
	}

	return result
}

func resourceChangeActionToSDK(a lib.ResourceChangeAction) cfnTypes.ChangeAction {
	switch a {
	case lib.ResourceChangeAdd:
		return cfnTypes.ChangeActionAdd
	case lib.ResourceChangeRemove:
		return cfnTypes.ChangeActionRemove
	default:
		return cfnTypes.ChangeActionModify
	}
}

// executeChangeset drives the change set already planned by
// createChangeSet to completion, streaming its events through the lib
// engine and classifying the terminal outcome.
func (s *Service) executeChangeset(ctx context.Context, plan *services.DeploymentPlan, changeset *services.ChangesetResult) (*services.DeploymentResult, ferr.FogError) {
	errorCtx := ferr.GetErrorContext(ctx)

	if plan.Engine == nil {
		return nil, ferr.ContextualError(errorCtx, ferr.ErrDeploymentFailed, "changeset must be created before execution")
	}

	outcome, err := plan.Engine.Await()
	if err != nil {
		return nil, ferr.ContextualError(errorCtx, ferr.ErrDeploymentFailed, fmt.Sprintf("failed to execute changeset: %v", err))
	}

	result := &services.DeploymentResult{
		StackID:      changeset.StackID,
		Status:       cfnTypes.StackStatus(outcome.StackStatus),
		Success:      outcome.Kind == lib.OutcomeSuccess || outcome.Kind == lib.OutcomeWarning,
		ErrorMessage: outcome.StackStatusReason,
	}
	if len(outcome.Outputs) > 0 {
		result.Outputs = make([]cfnTypes.Output, 0, len(outcome.Outputs))
		for k, v := range outcome.Outputs {
			key, value := k, v
			result.Outputs = append(result.Outputs, cfnTypes.Output{OutputKey: &key, OutputValue: &value})
		}
	}
	return result, nil
}
