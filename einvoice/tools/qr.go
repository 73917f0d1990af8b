package tools

import (
	"context"
	"fmt"
	"os"

	"github.com/go-faster/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/einvoicedev/einvoice-mcp/einvoice/qr"
)

// RegisterQRTools registers the local payment QR generator. This is the only
// tool that never talks to the remote API.
func RegisterQRTools(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("generate_payment_qr",
			mcp.WithDescription("Generate an EPC 069-12 payment QR code (GiroCode) for a SEPA "+
				"credit transfer and save it as PNG. Works offline, costs no credits."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Beneficiary name (max 70 characters)")),
			mcp.WithString("iban", mcp.Required(), mcp.Description("Beneficiary IBAN")),
			mcp.WithString("bic", mcp.Description("Beneficiary BIC (optional)")),
			mcp.WithNumber("amount", mcp.Description("Amount in EUR; omit to leave the amount open")),
			mcp.WithString("remittance", mcp.Description("Unstructured remittance info, e.g. the invoice number (max 140 characters)")),
			mcp.WithString("output_path", mcp.Required(), mcp.Description("Path to save the PNG to")),
			mcp.WithNumber("size", mcp.Description("Image size in pixels, default 300")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.GetArguments()

			amount, _ := args["amount"].(float64)
			size, _ := args["size"].(float64)

			data := qr.PaymentData{
				Name:       stringArg(args, "name"),
				IBAN:       stringArg(args, "iban"),
				BIC:        stringArg(args, "bic"),
				Amount:     amount,
				Remittance: stringArg(args, "remittance"),
			}

			png, err := qr.PNG(data, int(size))
			if err != nil {
				return errResult(err), nil
			}

			outputPath := stringArg(args, "output_path")
			if outputPath == "" {
				return errResult(errors.New("output_path is required")), nil
			}
			if err := os.WriteFile(outputPath, png, 0o644); err != nil {
				return errResult(errors.Wrapf(err, "write %s", outputPath)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Saved payment QR code to %s (%d bytes)", outputPath, len(png))), nil
		},
	)
}
