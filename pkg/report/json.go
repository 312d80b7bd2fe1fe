package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/suzuki-shunsuke/wfdiag/pkg/analyze"
)

// JSON renders summaries as an indented JSON array. No workflows are rendered as [].
type JSON struct{}

func (JSON) Report(w io.Writer, summaries []*analyze.WorkflowSummary) error {
	if summaries == nil {
		summaries = []*analyze.WorkflowSummary{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summaries); err != nil {
		return fmt.Errorf("encode summaries as JSON: %w", err)
	}
	return nil
}
