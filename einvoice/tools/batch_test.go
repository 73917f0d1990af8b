package tools

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/einvoicedev/einvoice-mcp/einvoice/model"
)

func TestRenderBatch_MixedOutcomes(t *testing.T) {
	out := renderBatch(&model.BatchResponse{
		Results: []model.BatchResult{
			{ID: "a", Success: true, Output: json.RawMessage(`"<Invoice/>"`)},
			{ID: "b", Success: false, Error: "unsupported source format"},
			{ID: "c", Success: true, Output: json.RawMessage(`{"invoice_number":"RE-9"}`)},
		},
		Summary: model.BatchSummary{Total: 3, Successful: 2, Failed: 1},
	})

	assert.Contains(t, out, "Batch complete: 2/3 successful.")
	assert.Contains(t, out, `[a] OK:`)
	assert.Contains(t, out, `[b] FAILED: unsupported source format`)
	assert.Contains(t, out, `[c] OK:`)

	// b's failure does not change how a and c are reported
	assert.NotContains(t, out, "[a] FAILED")
	assert.NotContains(t, out, "[c] FAILED")
}

func TestRenderBatch_SummaryComesFromResponse(t *testing.T) {
	// the headline trusts the response's own counts, it never re-counts
	out := renderBatch(&model.BatchResponse{
		Results: []model.BatchResult{{ID: "a", Success: true}},
		Summary: model.BatchSummary{Total: 5, Successful: 4, Failed: 1},
	})
	assert.Contains(t, out, "4/5 successful")
}

func TestRenderBatch_FailureWithoutReason(t *testing.T) {
	out := renderBatch(&model.BatchResponse{
		Results: []model.BatchResult{{ID: "x", Success: false}},
		Summary: model.BatchSummary{Total: 1, Failed: 1},
	})
	assert.Contains(t, out, "[x] FAILED: unknown error")
}

func TestPreview_Truncation(t *testing.T) {
	long := strings.Repeat("a", 500)
	got := preview(long)
	assert.Len(t, got, previewLength+3)
	assert.True(t, strings.HasSuffix(got, "..."))

	// whitespace collapses so one result stays on one line
	assert.Equal(t, "a b c", preview("a\n  b\t\nc"))
}
