package analyze

import "github.com/suzuki-shunsuke/wfdiag/pkg/document"

// NormalizeTriggers converts the value of the on key to a list of event names.
// Event filters of a mapping are discarded.
// Duplicated names are kept in their source order.
func NormalizeTriggers(raw *document.Value) []string {
	switch raw.Kind() {
	case document.KindNull:
		return []string{}
	case document.KindSequence:
		seq, _ := raw.AsSequence()
		triggers := make([]string, len(seq))
		for i, v := range seq {
			triggers[i] = v.String()
		}
		return triggers
	case document.KindMapping:
		m, _ := raw.AsMapping()
		triggers := make([]string, m.Len())
		copy(triggers, m.Keys())
		return triggers
	default:
		return []string{raw.String()}
	}
}
