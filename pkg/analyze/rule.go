package analyze

// Rule describes a check and the finding it emits.
type Rule struct {
	ID          string
	Description string
	Message     string
	Severity    Severity
}

var (
	RuleWorkflowPermissionsMissing = &Rule{ //nolint:gochecknoglobals
		ID:          "workflow-permissions-missing",
		Description: "Workflow permissions are not set",
		Message:     "Workflow permissions are not set; defaults may grant more access than needed.",
		Severity:    SeverityInfo,
	}
	RulePullRequestTarget = &Rule{ //nolint:gochecknoglobals
		ID:          "pull-request-target",
		Description: "Workflow is triggered by pull_request_target",
		Message:     "pull_request_target trigger is present; ensure untrusted contributions cannot write to protected resources.",
		Severity:    SeverityWarn,
	}
	RuleJobPermissionsMissing = &Rule{ //nolint:gochecknoglobals
		ID:          "job-permissions-missing",
		Description: "Job permissions are not set",
		Message:     "Job permissions are not set; defaults may be broader than necessary.",
		Severity:    SeverityInfo,
	}
	RuleMatrixFailFast = &Rule{ //nolint:gochecknoglobals
		ID:          "matrix-fail-fast",
		Description: "Matrix fail-fast is enabled explicitly",
		Message:     "Matrix fail-fast is enabled; this can hide failures in later configurations.",
		Severity:    SeverityInfo,
	}
	RuleUnpinnedAction = &Rule{ //nolint:gochecknoglobals
		ID:          "unpinned-action",
		Description: "Action is not version pinned",
		Message:     "Action is not version pinned; prefer explicit versions or commit SHAs.",
		Severity:    SeverityWarn,
	}
	RuleMajorVersionPin = &Rule{ //nolint:gochecknoglobals
		ID:          "major-version-pin",
		Description: "Action is pinned only to a major version",
		Message:     "Action is pinned only to a major version; consider pinning to a minor version or commit SHA.",
		Severity:    SeverityWarn,
	}
	RuleMutableBranchRef = &Rule{ //nolint:gochecknoglobals
		ID:          "mutable-branch-ref",
		Description: "Action references a mutable branch",
		Message:     "Action references a mutable branch; prefer immutable tags or SHAs.",
		Severity:    SeverityWarn,
	}
)

// Rules returns all rules in the order they are checked.
func Rules() []*Rule {
	return []*Rule{
		RuleWorkflowPermissionsMissing,
		RulePullRequestTarget,
		RuleJobPermissionsMissing,
		RuleMatrixFailFast,
		RuleUnpinnedAction,
		RuleMajorVersionPin,
		RuleMutableBranchRef,
	}
}
