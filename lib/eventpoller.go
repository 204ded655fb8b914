package lib

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// DeployEvent is a single CloudFormation stack or resource event,
// normalised from the wire representation and carrying a parsed
// Status instead of a raw string.
type DeployEvent struct {
	Timestamp    time.Time
	PhysicalID   string
	LogicalID    string
	ResourceType string
	Status       Status
	StatusReason string
}

// IsTerminalForStack reports whether this event is the terminal event
// of the stack itself, as opposed to one of its resources.
func (e DeployEvent) IsTerminalForStack(stackID string) bool {
	return e.PhysicalID == stackID && e.Status.IsTerminal()
}

// DefaultEventPollInterval is the steady-ticker interval used by
// EventPoller when none is configured. CloudFormation stacks can run
// for hours; 5s keeps polling cheap without feeling laggy to a human
// watching the stream.
const DefaultEventPollInterval = 5 * time.Second

// EventPoller long-polls DescribeStackEvents for a single stack,
// yielding DeployEvents in ascending timestamp order and terminating
// once it has yielded the stack's own terminal event.
type EventPoller struct {
	client   CloudFormationDescribeStackEventsAPI
	stackID  string
	interval time.Duration
}

// NewEventPoller builds a poller for the given stack id (not name —
// callers must resolve to id first so a delete/recreate race doesn't
// cause the poller to follow a different stack mid-stream).
func NewEventPoller(client CloudFormationDescribeStackEventsAPI, stackID string) *EventPoller {
	return &EventPoller{client: client, stackID: stackID, interval: DefaultEventPollInterval}
}

// WithInterval overrides the poll interval; used by tests to avoid
// real sleeps.
func (p *EventPoller) WithInterval(d time.Duration) *EventPoller {
	p.interval = d
	return p
}

// Poll starts the long poll in a goroutine and returns a channel of
// events plus a channel that receives at most one error. The events
// channel is closed when the stream ends, whether by reaching the
// stack-terminal event or by an error. Cancelling ctx stops the ticker
// and abandons any in-flight request.
func (p *EventPoller) Poll(ctx context.Context, since time.Time) (<-chan DeployEvent, <-chan error) {
	events := make(chan DeployEvent)
	errc := make(chan error, 1)

	go func() {
		defer close(events)
		defer close(errc)

		highWater := since
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			case <-ticker.C:
			}

			batch, newHighWater, done, err := p.fetchSince(ctx, highWater)
			if err != nil {
				errc <- err
				return
			}
			highWater = newHighWater

			for _, e := range batch {
				select {
				case events <- e:
				case <-ctx.Done():
					errc <- ctx.Err()
					return
				}
			}

			if done {
				return
			}
		}
	}()

	return events, errc
}

// errNoStackEvents is returned by lastStackEvent when DescribeStackEvents
// comes back empty, which should not happen for a stack that exists.
var errNoStackEvents = errors.New("cloudformation: stack has no events")

// lastStackEvent fetches the single most-recent event recorded against
// stackID. It backs the no-op apply path (P4): even when a change set
// resolves to EffectSkip, exactly one event must still be forwarded so
// the event stream keeps its terminal-closure contract.
func lastStackEvent(ctx context.Context, client CloudFormationDescribeStackEventsAPI, stackID string) (DeployEvent, error) {
	out, err := client.DescribeStackEvents(ctx, &cloudformation.DescribeStackEventsInput{StackName: aws.String(stackID)})
	if err != nil {
		return DeployEvent{}, err
	}
	if len(out.StackEvents) == 0 {
		return DeployEvent{}, errNoStackEvents
	}
	// CloudFormation returns events newest-first.
	raw := out.StackEvents[0]
	status, err := ParseStatus(string(raw.ResourceStatus))
	if err != nil {
		return DeployEvent{}, err
	}
	return DeployEvent{
		Timestamp:    aws.ToTime(raw.Timestamp),
		PhysicalID:   aws.ToString(raw.PhysicalResourceId),
		LogicalID:    aws.ToString(raw.LogicalResourceId),
		ResourceType: aws.ToString(raw.ResourceType),
		Status:       status,
		StatusReason: aws.ToString(raw.ResourceStatusReason),
	}, nil
}

// fetchSince performs one DescribeStackEvents page walk, returning the
// events strictly newer than since in ascending order, the new
// high-water timestamp, and whether the newest event observed was the
// stack's own terminal event.
func (p *EventPoller) fetchSince(ctx context.Context, since time.Time) ([]DeployEvent, time.Time, bool, error) {
	input := &cloudformation.DescribeStackEventsInput{StackName: &p.stackID}
	paginator := cloudformation.NewDescribeStackEventsPaginator(p.client, input)

	var all []DeployEvent
	highWater := since
	done := false
	first := true

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, since, false, err
		}
		for _, raw := range page.StackEvents {
			ts := aws.ToTime(raw.Timestamp)
			if !ts.After(since) {
				// CloudFormation returns events newest-first; once we
				// hit the high-water mark the rest of this page (and
				// all subsequent pages) are events we've already seen.
				continue
			}
			status, err := ParseStatus(string(raw.ResourceStatus))
			if err != nil {
				return nil, since, false, err
			}
			event := DeployEvent{
				Timestamp:    ts,
				PhysicalID:   aws.ToString(raw.PhysicalResourceId),
				LogicalID:    aws.ToString(raw.LogicalResourceId),
				ResourceType: aws.ToString(raw.ResourceType),
				Status:       status,
				StatusReason: aws.ToString(raw.ResourceStatusReason),
			}
			if first {
				// The newest event across all pages determines whether
				// this poll cycle is done; checked once per page walk.
				if event.IsTerminalForStack(p.stackID) {
					done = true
				}
				if ts.After(highWater) {
					highWater = ts
				}
				first = false
			}
			all = append(all, event)
		}
	}

	// Reverse into ascending time order for the consumer (P1).
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}

	return all, highWater, done, nil
}
