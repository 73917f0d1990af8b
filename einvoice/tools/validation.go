package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/einvoicedev/einvoice-mcp/einvoice/model"
)

// RegisterValidationTools registers the three XML validation tools. All of
// them check against the XRechnung 3.0.2 / EN 16931 rule sets remotely.
func RegisterValidationTools(s *server.MCPServer, d *Deps) {
	register := func(name, desc string, validate func(context.Context, string) (*model.ValidationResponse, error)) {
		s.AddTool(
			mcp.NewTool(name,
				mcp.WithDescription(desc),
				mcp.WithString("xml_content", mcp.Description("XML content to validate (alternative to xml_path)")),
				mcp.WithString("xml_path", mcp.Description("Path to an XML file to validate (alternative to xml_content)")),
			),
			func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				args := req.GetArguments()

				xml, err := xmlInput(args)
				if err != nil {
					return errResult(err), nil
				}

				res, err := validate(ctx, xml)
				if err != nil {
					return errResult(err), nil
				}
				return mcp.NewToolResultText(renderValidation(res)), nil
			},
		)
	}

	register("validate_ubl",
		"Validate a UBL XML invoice against the XRechnung 3.0.2 / EN 16931 rules.",
		d.Validation.ValidateUBL)
	register("validate_cii",
		"Validate a CII XML invoice against the XRechnung 3.0.2 / EN 16931 rules.",
		d.Validation.ValidateCII)
	register("validate_xml",
		"Validate an XML invoice against the XRechnung 3.0.2 / EN 16931 rules. "+
			"The document type (UBL or CII) is detected automatically.",
		d.Validation.ValidateXML)
}

// renderValidation turns the {valid, errors[]} response into a pass/fail
// narrative. A failure with no reported errors still yields a non-empty line.
func renderValidation(res *model.ValidationResponse) string {
	if res.Valid {
		return "Validation passed: the document conforms to XRechnung 3.0.2 / EN 16931."
	}

	if len(res.Errors) == 0 {
		return "Validation failed, but the service reported no error details."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Validation failed with %d error(s):", len(res.Errors))
	for i, e := range res.Errors {
		fmt.Fprintf(&b, "\n%d. ", i+1)
		if e.RuleID != "" {
			fmt.Fprintf(&b, "[%s] ", e.RuleID)
		}
		b.WriteString(e.Message)
		if e.Location != "" {
			fmt.Fprintf(&b, " (at %s)", e.Location)
		}
	}
	return b.String()
}
