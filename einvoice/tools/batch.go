package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/einvoicedev/einvoice-mcp/einvoice/model"
	"github.com/einvoicedev/einvoice-mcp/einvoice/schema"
)

const previewLength = 80

// RegisterBatchTools registers the heterogeneous batch conversion tool.
func RegisterBatchTools(s *server.MCPServer, d *Deps) {
	s.AddTool(
		mcp.NewTool("batch_convert",
			mcp.WithDescription("Run 1-100 conversion operations in a single request. Operations "+
				"succeed or fail independently; the result lists every outcome."),
			mcp.WithArray("operations",
				mcp.Required(),
				mcp.Description("Conversion operations to run"),
				mcp.MinItems(1),
				mcp.MaxItems(schema.MaxBatchOperations),
				mcp.Items(schema.BatchOperationSchema()),
			),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.GetArguments()

			ops, err := schema.DecodeBatchOperations(args["operations"])
			if err != nil {
				return errResult(err), nil
			}

			res, err := d.Batch.Convert(ctx, ops)
			if err != nil {
				return errResult(err), nil
			}
			return mcp.NewToolResultText(renderBatch(res)), nil
		},
	)
}

// renderBatch produces the per-operation summary. One operation's failure
// never alters how the others are reported; the headline counts come from
// the response's own summary, not from re-counting results.
func renderBatch(res *model.BatchResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Batch complete: %d/%d successful.", res.Summary.Successful, res.Summary.Total)

	for _, r := range res.Results {
		if r.Success {
			fmt.Fprintf(&b, "\n[%s] OK: %s", r.ID, preview(string(r.Output)))
		} else {
			reason := r.Error
			if reason == "" {
				reason = "unknown error"
			}
			fmt.Fprintf(&b, "\n[%s] FAILED: %s", r.ID, reason)
		}
	}
	return b.String()
}

func preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > previewLength {
		return s[:previewLength] + "..."
	}
	return s
}
