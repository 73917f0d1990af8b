package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterExtractionTools registers the two document extraction tools.
func RegisterExtractionTools(s *server.MCPServer, d *Deps) {
	s.AddTool(
		mcp.NewTool("extract_invoice",
			mcp.WithDescription("Extract a structured invoice JSON document from a PDF or image "+
				"(scan or photo) using the remote extraction pipeline."),
			mcp.WithString("file_path", mcp.Required(), mcp.Description("Path to the PDF or image file")),
			mcp.WithString("output_path", mcp.Description("Optional path to save the extracted JSON to")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.GetArguments()

			data, contentType, err := fileInput(args, "file_path")
			if err != nil {
				return errResult(err), nil
			}

			raw, err := d.Extraction.ExtractInvoice(ctx, data, contentType)
			if err != nil {
				return errResult(err), nil
			}
			return deliverText(args, prettyJSON(raw))
		},
	)

	s.AddTool(
		mcp.NewTool("extract_qr",
			mcp.WithDescription("Extract the payload of a QR code found in an invoice image. "+
				"Optionally parses EPC payment QR payloads into structured payment data."),
			mcp.WithString("image_path", mcp.Required(), mcp.Description("Path to the image file")),
			mcp.WithBoolean("extract_payment_data",
				mcp.Description("Also parse the payload into structured payment fields"),
				mcp.DefaultBool(false),
			),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.GetArguments()

			data, contentType, err := fileInput(args, "image_path")
			if err != nil {
				return errResult(err), nil
			}

			res, err := d.Extraction.ExtractQR(ctx, data, contentType, boolArg(args, "extract_payment_data"))
			if err != nil {
				return errResult(err), nil
			}

			if !res.Found {
				return mcp.NewToolResultText("No QR code found in the image."), nil
			}

			var b strings.Builder
			b.WriteString("QR payload:\n")
			b.WriteString(res.Payload)
			if len(res.PaymentData) > 0 {
				b.WriteString("\n\nPayment data:\n")
				b.WriteString(prettyJSON(res.PaymentData))
			}
			return mcp.NewToolResultText(b.String()), nil
		},
	)
}
