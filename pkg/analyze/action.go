package analyze

import (
	"regexp"
	"strings"

	"github.com/hashicorp/go-version"
)

// RefKind classifies the ref of an action reference.
type RefKind string

const (
	RefKindLocal        RefKind = "local"
	RefKindUnpinned     RefKind = "unpinned"
	RefKindMajorVersion RefKind = "major_version"
	RefKindBranch       RefKind = "branch"
	RefKindVersion      RefKind = "version"
	RefKindCommitSHA    RefKind = "commit_sha"
	RefKindOther        RefKind = "other"
)

var (
	majorVersionPattern = regexp.MustCompile(`^v?\d+$`)
	fullSHAPattern      = regexp.MustCompile(`^[0-9a-f]{40}$`)
	mutableBranches     = map[string]struct{}{ //nolint:gochecknoglobals
		"main":   {},
		"master": {},
		"HEAD":   {},
	}
)

// ActionRef is a parsed action reference such as actions/checkout@v4.
type ActionRef struct {
	Raw  string
	Name string
	// Ref is empty if Raw has no @.
	Ref  string
	Kind RefKind
}

// ParseActionRef parses the value of uses.
// Raw is split on the last @, so a name containing @ keeps it.
func ParseActionRef(uses string) *ActionRef {
	ref := &ActionRef{
		Raw:  uses,
		Name: uses,
	}
	if strings.HasPrefix(uses, "./") {
		ref.Kind = RefKindLocal
		return ref
	}
	idx := strings.LastIndex(uses, "@")
	if idx == -1 {
		ref.Kind = RefKindUnpinned
		return ref
	}
	ref.Name = uses[:idx]
	ref.Ref = uses[idx+1:]
	ref.Kind = classifyRef(ref.Ref)
	return ref
}

func classifyRef(ref string) RefKind {
	if majorVersionPattern.MatchString(ref) {
		return RefKindMajorVersion
	}
	if _, ok := mutableBranches[ref]; ok {
		return RefKindBranch
	}
	if fullSHAPattern.MatchString(ref) {
		return RefKindCommitSHA
	}
	if _, err := version.NewVersion(ref); err == nil {
		return RefKindVersion
	}
	return RefKindOther
}

// ActionPin checks the pinning of an action reference.
// It returns nil if the reference is local or pinned to a minor or patch version, a commit SHA,
// or any other ref which is neither a major version nor a mutable branch.
func ActionPin(uses string) *Finding {
	return actionRefFinding(ParseActionRef(uses))
}

func actionRefFinding(ref *ActionRef) *Finding {
	var rule *Rule
	switch ref.Kind {
	case RefKindUnpinned:
		rule = RuleUnpinnedAction
	case RefKindMajorVersion:
		rule = RuleMajorVersionPin
	case RefKindBranch:
		rule = RuleMutableBranchRef
	default:
		return nil
	}
	f := newFinding(rule, ref.Raw)
	return &f
}
