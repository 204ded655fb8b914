package lib

import (
	"regexp"
	"strings"
)

// StatusReasonDetail is the structured shape CloudFormation's free-text
// status reasons are parsed into. Kind says which of the variant fields
// below are populated; Raw is always set.
type StatusReasonDetail struct {
	Kind StatusReasonKind

	// Populated when Kind == StatusReasonMissingPermission.
	Principal  string
	Permission string

	// Populated when Kind == StatusReasonResourceErrors.
	LogicalIDs []string

	// Raw always holds the original text, for display and for Kind ==
	// StatusReasonOther.
	Raw string
}

// StatusReasonKind discriminates the StatusReasonDetail variants.
type StatusReasonKind int

const (
	StatusReasonOther StatusReasonKind = iota
	StatusReasonMissingPermission
	StatusReasonCreationCancelled
	StatusReasonResourceErrors
)

var (
	// "User: arn:aws:iam::1:user/X is not authorized to perform: s3:CreateBucket"
	// The "User: <arn>" prefix is optional; CloudFormation sometimes
	// omits the principal when it can't resolve one.
	missingPermissionRe = regexp.MustCompile(`(?i)(?:User:\s*(\S+)\s+)?is not authorized to perform:\s*([A-Za-z0-9_:\-\*]+)`)

	// "The following resource(s) failed to create: [A, B, C]." / "... failed to update: [...]"
	resourceErrorsRe = regexp.MustCompile(`(?i)the following resource\(s\) failed to (?:create|update|delete):\s*\[([^\]]*)\]`)

	creationCancelledRe = regexp.MustCompile(`(?i)resource creation cancelled`)
)

// ParseStatusReason extracts structured detail from a CloudFormation
// status reason string. It never fails: an unrecognised shape degrades
// to StatusReasonOther carrying the raw text, since these messages are
// not a documented, stable API surface.
func ParseStatusReason(reason string) StatusReasonDetail {
	detail := StatusReasonDetail{Raw: reason}

	if m := missingPermissionRe.FindStringSubmatch(reason); m != nil {
		detail.Kind = StatusReasonMissingPermission
		detail.Principal = m[1]
		detail.Permission = m[2]
		return detail
	}

	if creationCancelledRe.MatchString(reason) {
		detail.Kind = StatusReasonCreationCancelled
		return detail
	}

	if m := resourceErrorsRe.FindStringSubmatch(reason); m != nil {
		detail.Kind = StatusReasonResourceErrors
		ids := strings.Split(m[1], ",")
		for i, id := range ids {
			ids[i] = strings.TrimSpace(id)
		}
		detail.LogicalIDs = ids
		return detail
	}

	detail.Kind = StatusReasonOther
	return detail
}

// Hint returns a human-actionable suggestion derived from the detail,
// or "" for StatusReasonOther (the raw reason is the best we can do).
func (d StatusReasonDetail) Hint() string {
	switch d.Kind {
	case StatusReasonCreationCancelled:
		return "See preceding resource errors"
	case StatusReasonMissingPermission:
		principal := d.Principal
		if principal == "" {
			principal = "yourself"
		}
		return "Give " + principal + " the " + d.Permission + " permission"
	case StatusReasonResourceErrors:
		return "See resource error(s) for " + strings.Join(d.LogicalIDs, ", ")
	default:
		return ""
	}
}

// Substrings CloudFormation uses in a FAILED change-set's StatusReason
// to signal "there is nothing to do" rather than a real failure. Kept
// isolated here, per the one-place-to-match design note: the API gives
// no structured way to distinguish these from a genuine failure.
const (
	noChangesReasonSubstring = "didn't contain changes"
	noUpdatesReasonSubstring = "No updates are to be performed"
)

// IsNoOpChangeSetReason reports whether a FAILED change-set's status
// reason indicates an empty diff rather than a real creation failure.
func IsNoOpChangeSetReason(reason string) bool {
	return strings.Contains(reason, noChangesReasonSubstring) ||
		strings.Contains(reason, noUpdatesReasonSubstring)
}
