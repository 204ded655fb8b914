package lib

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
)

// ChangeSetEffect records what a ChangeSet will do when executed.
type ChangeSetEffect int

const (
	// EffectSkip means applying produces no diff; nothing is executed.
	EffectSkip ChangeSetEffect = iota
	EffectCreate
	EffectUpdate
	EffectDelete
)

func (e ChangeSetEffect) String() string {
	switch e {
	case EffectCreate:
		return "Create"
	case EffectUpdate:
		return "Update"
	case EffectDelete:
		return "Delete"
	default:
		return "Skip"
	}
}

// ResourceChangeAction mirrors CloudFormation's change-set action enum.
type ResourceChangeAction int

const (
	ResourceChangeAdd ResourceChangeAction = iota
	ResourceChangeModify
	ResourceChangeRemove
)

// ResourceChange is one line of a ChangeSet's diff.
type ResourceChange struct {
	Action       ResourceChangeAction
	LogicalID    string
	PhysicalID   string
	ResourceType string
}

// ChangeSet is the materialised view of an intended stack transition.
// Invariants: for create/update, Effect == EffectSkip iff Changes is
// empty; for delete, Effect is EffectSkip only when the stack does not
// exist, and EffectDelete otherwise even if Changes is empty (an
// existing, resourceless stack still needs DeleteStack called on it).
// Effect == EffectDelete implies every change has Action ==
// ResourceChangeRemove (synthesised from DescribeStackResources, since
// CloudFormation has no native delete-change-set); if Effect is Create
// or Update, ID is a change-set ARN in state AVAILABLE.
type ChangeSet struct {
	Effect    ChangeSetEffect
	ID        string
	StackName string
	StackID   string
	Changes   []ResourceChange
}

// changeSetPollInterval is the tick used while waiting for a change
// set to leave CREATE_PENDING/CREATE_IN_PROGRESS.
const changeSetPollInterval = 1 * time.Second

// buildCreateOrUpdateChangeSetClient is the AWS surface needed to
// create and describe a change set.
type buildCreateOrUpdateChangeSetClient interface {
	CloudFormationCreateChangeSetAPI
	CloudFormationDescribeChangeSetAPI
}

// BuildCreateOrUpdateChangeSet creates a change set for a create or
// update deploy and waits for it to become available, or to resolve
// to a no-op. It never calls ExecuteChangeSet; that is the deploy
// driver's job once the plan has been handed to the caller.
func BuildCreateOrUpdateChangeSet(ctx context.Context, client buildCreateOrUpdateChangeSetClient, input DeployInput, isNew bool) (*ChangeSet, error) {
	return buildCreateOrUpdateChangeSet(ctx, client, input, isNew, changeSetPollInterval)
}

func buildCreateOrUpdateChangeSet(ctx context.Context, client buildCreateOrUpdateChangeSetClient, input DeployInput, isNew bool, pollInterval time.Duration) (*ChangeSet, error) {
	changeSetType := types.ChangeSetTypeUpdate
	if isNew {
		changeSetType = types.ChangeSetTypeCreate
	}

	name := fmt.Sprintf("cfn-deploy-%d", time.Now().UnixNano())
	createInput := &cloudformation.CreateChangeSetInput{
		StackName:     aws.String(input.StackName),
		ChangeSetName: aws.String(name),
		ChangeSetType: changeSetType,
		Capabilities:  input.Capabilities,
	}
	switch {
	case input.TemplateURL != "":
		createInput.TemplateURL = aws.String(input.TemplateURL)
	case input.Template != "":
		createInput.TemplateBody = aws.String(input.Template)
	}
	if len(input.Parameters) > 0 {
		createInput.Parameters = input.Parameters
	}
	if len(input.Tags) > 0 {
		createInput.Tags = input.Tags
	}
	if input.RoleARN != "" {
		createInput.RoleARN = aws.String(input.RoleARN)
	}
	if input.ClientRequestToken != "" {
		createInput.ClientToken = aws.String(input.ClientRequestToken)
	}

	createOut, err := client.CreateChangeSet(ctx, createInput)
	if err != nil {
		return nil, &ErrCloudFormationAPI{Err: err}
	}

	describeInput := &cloudformation.DescribeChangeSetInput{
		ChangeSetName: createOut.Id,
		StackName:     aws.String(input.StackName),
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		describeOut, err := client.DescribeChangeSet(ctx, describeInput)
		if err != nil {
			return nil, &ErrCloudFormationAPI{Err: err}
		}

		switch describeOut.Status {
		case types.ChangeSetStatusCreatePending, types.ChangeSetStatusCreateInProgress:
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-ticker.C:
			}
			continue
		case types.ChangeSetStatusFailed:
			reason := aws.ToString(describeOut.StatusReason)
			if IsNoOpChangeSetReason(reason) {
				return &ChangeSet{
					Effect:    EffectSkip,
					StackName: input.StackName,
					StackID:   aws.ToString(describeOut.StackId),
				}, nil
			}
			return nil, &ErrCreateChangeSetFailed{Status: string(describeOut.Status), StatusReason: reason}
		default:
			if describeOut.ExecutionStatus != types.ExecutionStatusAvailable {
				return nil, &ErrCreateChangeSetFailed{
					Status:       string(describeOut.Status),
					StatusReason: aws.ToString(describeOut.StatusReason),
				}
			}
			effect := EffectUpdate
			if isNew {
				effect = EffectCreate
			}
			changes := make([]ResourceChange, 0, len(describeOut.Changes))
			for _, c := range describeOut.Changes {
				if c.ResourceChange == nil {
					continue
				}
				changes = append(changes, ResourceChange{
					Action:       resourceChangeActionFrom(c.ResourceChange.Action),
					LogicalID:    aws.ToString(c.ResourceChange.LogicalResourceId),
					PhysicalID:   aws.ToString(c.ResourceChange.PhysicalResourceId),
					ResourceType: aws.ToString(c.ResourceChange.ResourceType),
				})
			}
			return &ChangeSet{
				Effect:    effect,
				ID:        aws.ToString(describeOut.ChangeSetId),
				StackName: input.StackName,
				StackID:   aws.ToString(describeOut.StackId),
				Changes:   changes,
			}, nil
		}
	}
}

func resourceChangeActionFrom(a types.ChangeAction) ResourceChangeAction {
	switch a {
	case types.ChangeActionAdd:
		return ResourceChangeAdd
	case types.ChangeActionRemove:
		return ResourceChangeRemove
	default:
		return ResourceChangeModify
	}
}

// BuildDeleteChangeSet synthesises a "deletion change set" by listing
// the stack's current resources, since CloudFormation has no native
// delete-change-set. The result is advisory: resources may be added
// or removed between this call and the real DeleteStack; callers must
// not treat it as authoritative.
func BuildDeleteChangeSet(ctx context.Context, client CloudFormationDescribeStackResourcesAPI, stackID string) (*ChangeSet, error) {
	out, err := client.DescribeStackResources(ctx, &cloudformation.DescribeStackResourcesInput{StackName: aws.String(stackID)})
	if err != nil {
		return nil, &ErrCloudFormationAPI{Err: err}
	}

	changes := make([]ResourceChange, 0, len(out.StackResources))
	for _, r := range out.StackResources {
		changes = append(changes, ResourceChange{
			Action:       ResourceChangeRemove,
			LogicalID:    aws.ToString(r.LogicalResourceId),
			PhysicalID:   aws.ToString(r.PhysicalResourceId),
			ResourceType: aws.ToString(r.ResourceType),
		})
	}

	return &ChangeSet{
		Effect:  EffectDelete,
		StackID: stackID,
		Changes: changes,
	}, nil
}
