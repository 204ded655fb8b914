package lib

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/google/uuid"
)

// DeployInput describes the desired end-state of a stack. It is the
// single argument ApplyStack and DeleteStack take; which fields matter
// depends on the operation (DeleteStack reads only StackName and
// ClientRequestToken).
type DeployInput struct {
	StackName string

	// Exactly one of Template or TemplateURL should be set for apply.
	Template    string
	TemplateURL string

	Parameters   []types.Parameter
	Tags         []types.Tag
	Capabilities []types.Capability
	RoleARN      string

	// ClientRequestToken deduplicates retried calls at the CloudFormation
	// API level. If empty, a random one is generated.
	ClientRequestToken string
}

// DeployClient is the AWS surface the deploy engine drives a stack
// through: enough to inspect current state, build and execute a change
// set, stream events, and delete.
type DeployClient interface {
	CloudFormationDescribeStacksAPI
	CloudFormationDescribeStackResourcesAPI
	CloudFormationCreateChangeSetAPI
	CloudFormationDescribeChangeSetAPI
	CloudFormationExecuteChangeSetAPI
	CloudFormationDescribeStackEventsAPI
	CloudFormationDeleteStackAPI
}

// planResult is the outcome of the one-time planning phase shared by
// Apply and Delete.
type planResult struct {
	changeSet *ChangeSet
	stackID   string
	err       error
}

// Apply is a handle onto a single create-or-update deploy. The plan
// (ChangeSet) is produced exactly once and execution starts exactly
// once, regardless of which projection — ChangeSet, Events or Await —
// the caller reaches for first; they all drive the same underlying
// sync.Once-guarded state machine.
type Apply struct {
	ctx      context.Context
	client   DeployClient
	input    DeployInput
	interval time.Duration

	planOnce sync.Once
	plan     planResult

	execOnce sync.Once
	events   chan DeployEvent
	outcome  Outcome
	outErr   error
	done     chan struct{}
}

// WithEventPollInterval overrides the interval used while streaming
// events during execution. Must be called before Events or Await.
func (a *Apply) WithEventPollInterval(d time.Duration) *Apply {
	a.interval = d
	return a
}

// ApplyStack plans and, once driven, executes a create or update of
// the named stack against the given template. Planning and execution
// do not start until ChangeSet, Events or Await is called.
func ApplyStack(ctx context.Context, client DeployClient, input DeployInput) *Apply {
	if input.ClientRequestToken == "" {
		input.ClientRequestToken = uuid.NewString()
	}
	return &Apply{
		ctx:      ctx,
		client:   client,
		input:    input,
		interval: DefaultEventPollInterval,
		events:   make(chan DeployEvent),
		done:     make(chan struct{}),
	}
}

// plan runs DescribeStacks to classify the stack's current state, then
// builds the corresponding change set. It runs exactly once.
func (a *Apply) plan() planResult {
	a.planOnce.Do(func() {
		stack, err := describeStack(a.ctx, a.client, a.input.StackName)
		if err != nil && !isStackNotFoundError(err) {
			a.plan = planResult{err: &ErrCloudFormationAPI{Err: err}}
			return
		}

		isNew := err != nil
		if !isNew {
			status, perr := ParseStatus(string(stack.StackStatus))
			if perr != nil {
				a.plan = planResult{err: perr}
				return
			}
			switch {
			case status == StatusReviewInProgress:
				isNew = true
			case status.IsBlocked():
				a.plan = planResult{err: &ErrBlocked{Status: status}}
				return
			case status == StatusCreateFailed:
				res, rerr := a.client.DescribeStackResources(a.ctx, &cloudformation.DescribeStackResourcesInput{StackName: stack.StackId})
				if rerr != nil {
					a.plan = planResult{err: &ErrCloudFormationAPI{Err: rerr}}
					return
				}
				if len(res.StackResources) == 0 {
					a.plan = planResult{err: &ErrBlocked{Status: status}}
					return
				}
			}
		}

		var stackID string
		if !isNew {
			stackID = aws.ToString(stack.StackId)
		}

		cs, err := BuildCreateOrUpdateChangeSet(a.ctx, a.client, a.input, isNew)
		if err != nil {
			a.plan = planResult{err: err}
			return
		}
		if stackID == "" {
			stackID = cs.StackID
		}
		a.plan = planResult{changeSet: cs, stackID: stackID}
	})
	return a.plan
}

// ChangeSet returns the plan for this apply, computing it on first
// call. A *ErrBlocked or *ErrCreateChangeSetFailed indicates the stack
// cannot be applied in its current state.
func (a *Apply) ChangeSet() (*ChangeSet, error) {
	p := a.plan()
	return p.changeSet, p.err
}

// Events returns a channel of stack events observed while driving the
// deploy to completion. Starting to read from it begins execution, if
// it has not already begun. The channel closes when the stack reaches
// a terminal state or an error occurs; check Await for the final
// classification.
func (a *Apply) Events() <-chan DeployEvent {
	a.start()
	return a.events
}

// Await blocks until the deploy reaches a terminal state and returns
// the classified outcome. It drains any events not already consumed
// from Events.
func (a *Apply) Await() (Outcome, error) {
	a.start()
	for range a.events {
	}
	<-a.done
	return a.outcome, a.outErr
}

// start triggers execution exactly once: plan, then (unless the plan
// is a no-op) ExecuteChangeSet followed by streaming events until the
// stack's terminal event.
func (a *Apply) start() {
	a.execOnce.Do(func() {
		go a.run()
	})
}

func (a *Apply) run() {
	defer close(a.events)
	defer close(a.done)

	p := a.plan()
	if p.err != nil {
		a.outErr = p.err
		return
	}

	if p.changeSet.Effect == EffectSkip {
		stack, err := describeStack(a.ctx, a.client, p.stackID)
		if err != nil {
			a.outErr = &ErrCloudFormationAPI{Err: err}
			return
		}
		status, err := ParseStatus(string(stack.StackStatus))
		if err != nil {
			a.outErr = err
			return
		}
		event, err := lastStackEvent(a.ctx, a.client, p.stackID)
		if err != nil {
			a.outErr = &ErrCloudFormationAPI{Err: err}
			return
		}
		a.events <- event
		a.outcome = ClassifyOutcome(status, "", nil, outputsFromStack(stack))
		return
	}

	_, err := a.client.ExecuteChangeSet(a.ctx, &cloudformation.ExecuteChangeSetInput{
		ChangeSetName:      aws.String(p.changeSet.ID),
		StackName:          aws.String(p.stackID),
		ClientRequestToken: aws.String(a.input.ClientRequestToken),
	})
	if err != nil {
		a.outErr = &ErrCloudFormationAPI{Err: err}
		return
	}

	events, errc := NewEventPoller(a.client, p.stackID).WithInterval(a.interval).Poll(a.ctx, zeroTime)
	var resourceErrors []ResourceError
	var terminal Status
	var terminalReason string
	for e := range events {
		a.events <- e
		if e.Status.Sentiment() == SentimentNegative && e.PhysicalID != p.stackID {
			resourceErrors = append(resourceErrors, ResourceError{
				LogicalID:    e.LogicalID,
				PhysicalID:   e.PhysicalID,
				ResourceType: e.ResourceType,
				Status:       e.Status,
				StatusReason: e.StatusReason,
				Detail:       ParseStatusReason(e.StatusReason),
			})
		}
		if e.IsTerminalForStack(p.stackID) {
			terminal = e.Status
			terminalReason = e.StatusReason
		}
	}
	if err := <-errc; err != nil {
		a.outErr = err
		return
	}

	var outputs map[string]string
	if !terminal.IsError() {
		stack, serr := describeStack(a.ctx, a.client, p.stackID)
		if serr == nil {
			outputs = outputsFromStack(stack)
		}
	}
	a.outcome = ClassifyOutcome(terminal, terminalReason, resourceErrors, outputs)
}

// Delete is a handle onto a single stack deletion, mirroring Apply's
// plan-once/execute-once contract.
type Delete struct {
	ctx      context.Context
	client   DeployClient
	input    DeployInput
	interval time.Duration

	planOnce sync.Once
	plan     planResult

	execOnce sync.Once
	events   chan DeployEvent
	done     chan struct{}
	outcome  Outcome
	outErr   error
}

// WithEventPollInterval overrides the interval used while streaming
// events during execution. Must be called before Events or Await.
func (d *Delete) WithEventPollInterval(interval time.Duration) *Delete {
	d.interval = interval
	return d
}

// DeleteStack plans and, once driven, executes deletion of the named
// stack. Deleting an already-absent stack is treated as an idempotent
// success (DeleteStack is itself idempotent in the CloudFormation API);
// the synthesised change set is simply empty in that case.
func DeleteStack(ctx context.Context, client DeployClient, input DeployInput) *Delete {
	if input.ClientRequestToken == "" {
		input.ClientRequestToken = uuid.NewString()
	}
	return &Delete{
		ctx:      ctx,
		client:   client,
		input:    input,
		interval: DefaultEventPollInterval,
		events:   make(chan DeployEvent),
		done:     make(chan struct{}),
	}
}

func (d *Delete) plan() planResult {
	d.planOnce.Do(func() {
		stack, err := describeStack(d.ctx, d.client, d.input.StackName)
		if err != nil {
			if isStackNotFoundError(err) {
				d.plan = planResult{changeSet: &ChangeSet{Effect: EffectSkip, StackName: d.input.StackName}}
				return
			}
			d.plan = planResult{err: &ErrCloudFormationAPI{Err: err}}
			return
		}
		stackID := aws.ToString(stack.StackId)
		cs, err := BuildDeleteChangeSet(d.ctx, d.client, stackID)
		if err != nil {
			d.plan = planResult{err: err}
			return
		}
		cs.StackName = d.input.StackName
		d.plan = planResult{changeSet: cs, stackID: stackID}
	})
	return d.plan
}

// ChangeSet returns the synthesised deletion plan, computing it on
// first call.
func (d *Delete) ChangeSet() (*ChangeSet, error) {
	p := d.plan()
	return p.changeSet, p.err
}

// Events returns the stream of events observed while the delete runs.
// Reading from it (or calling Await) starts execution.
func (d *Delete) Events() <-chan DeployEvent {
	d.start()
	return d.events
}

// Await blocks until the delete completes and returns its outcome.
func (d *Delete) Await() (Outcome, error) {
	d.start()
	for range d.events {
	}
	<-d.done
	return d.outcome, d.outErr
}

func (d *Delete) start() {
	d.execOnce.Do(func() {
		go d.run()
	})
}

func (d *Delete) run() {
	defer close(d.events)
	defer close(d.done)

	p := d.plan()
	if p.err != nil {
		d.outErr = p.err
		return
	}

	if p.changeSet.Effect == EffectSkip {
		d.outcome = Outcome{Kind: OutcomeSuccess, StackStatus: StatusDeleteComplete}
		return
	}

	_, err := d.client.DeleteStack(d.ctx, &cloudformation.DeleteStackInput{
		StackName:          aws.String(p.stackID),
		ClientRequestToken: aws.String(d.input.ClientRequestToken),
	})
	if err != nil {
		d.outErr = &ErrCloudFormationAPI{Err: err}
		return
	}

	events, errc := NewEventPoller(d.client, p.stackID).WithInterval(d.interval).Poll(d.ctx, zeroTime)
	var resourceErrors []ResourceError
	var terminal Status
	var terminalReason string
	for e := range events {
		d.events <- e
		if e.Status.Sentiment() == SentimentNegative && e.PhysicalID != p.stackID {
			resourceErrors = append(resourceErrors, ResourceError{
				LogicalID:    e.LogicalID,
				PhysicalID:   e.PhysicalID,
				ResourceType: e.ResourceType,
				Status:       e.Status,
				StatusReason: e.StatusReason,
				Detail:       ParseStatusReason(e.StatusReason),
			})
		}
		if e.IsTerminalForStack(p.stackID) {
			terminal = e.Status
			terminalReason = e.StatusReason
		}
	}
	if err := <-errc; err != nil {
		d.outErr = err
		return
	}
	d.outcome = ClassifyOutcome(terminal, terminalReason, resourceErrors, nil)
}

// zeroTime is the "since" value passed to a fresh EventPoller so that
// every event currently on the stack is considered new.
var zeroTime time.Time

func describeStack(ctx context.Context, client CloudFormationDescribeStacksAPI, nameOrID string) (types.Stack, error) {
	out, err := client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{StackName: aws.String(nameOrID)})
	if err != nil {
		return types.Stack{}, err
	}
	if len(out.Stacks) == 0 {
		return types.Stack{}, &ErrCloudFormationAPI{Err: errNoSuchStack}
	}
	return out.Stacks[0], nil
}

var errNoSuchStack = errors.New("cloudformation: no stack in DescribeStacks response")

func outputsFromStack(stack types.Stack) map[string]string {
	outputs := make(map[string]string, len(stack.Outputs))
	for _, o := range stack.Outputs {
		outputs[aws.ToString(o.OutputKey)] = aws.ToString(o.OutputValue)
	}
	return outputs
}
