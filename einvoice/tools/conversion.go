package tools

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/einvoicedev/einvoice-mcp/einvoice/model"
	"github.com/einvoicedev/einvoice-mcp/einvoice/schema"
)

// RegisterConversionTools registers the seven format conversion tools.
func RegisterConversionTools(s *server.MCPServer, d *Deps) {
	s.AddTool(
		mcp.NewTool("convert_json_to_ubl",
			mcp.WithDescription("Convert an invoice JSON document to UBL XML. "+
				"Returns the XML inline, or saves it when output_path is given."),
			mcp.WithObject("invoice",
				mcp.Required(),
				mcp.Description("Invoice document to convert"),
				mcp.Properties(schema.InvoiceProperties()),
			),
			mcp.WithString("output_path", mcp.Description("Optional path to save the UBL XML to")),
		),
		jsonToXMLHandler(d.Conversion.JSONToUBL),
	)

	s.AddTool(
		mcp.NewTool("convert_json_to_cii",
			mcp.WithDescription("Convert an invoice JSON document to CII (Cross-Industry Invoice) XML. "+
				"Returns the XML inline, or saves it when output_path is given."),
			mcp.WithObject("invoice",
				mcp.Required(),
				mcp.Description("Invoice document to convert"),
				mcp.Properties(schema.InvoiceProperties()),
			),
			mcp.WithString("output_path", mcp.Description("Optional path to save the CII XML to")),
		),
		jsonToXMLHandler(d.Conversion.JSONToCII),
	)

	s.AddTool(
		mcp.NewTool("convert_ubl_to_json",
			mcp.WithDescription("Convert a UBL XML invoice to the JSON invoice format."),
			mcp.WithString("xml_content", mcp.Description("UBL XML content (alternative to xml_path)")),
			mcp.WithString("xml_path", mcp.Description("Path to a UBL XML file (alternative to xml_content)")),
			mcp.WithString("output_path", mcp.Description("Optional path to save the JSON to")),
		),
		xmlToJSONHandler(d.Conversion.UBLToJSON),
	)

	s.AddTool(
		mcp.NewTool("convert_cii_to_json",
			mcp.WithDescription("Convert a CII XML invoice to the JSON invoice format."),
			mcp.WithString("xml_content", mcp.Description("CII XML content (alternative to xml_path)")),
			mcp.WithString("xml_path", mcp.Description("Path to a CII XML file (alternative to xml_content)")),
			mcp.WithString("output_path", mcp.Description("Optional path to save the JSON to")),
		),
		xmlToJSONHandler(d.Conversion.CIIToJSON),
	)

	s.AddTool(
		mcp.NewTool("convert_json_to_xlsx",
			mcp.WithDescription("Render one or more invoice JSON documents as an XLSX spreadsheet "+
				"saved to output_path."),
			mcp.WithArray("invoices",
				mcp.Required(),
				mcp.Description("Invoices to include in the spreadsheet"),
				mcp.Items(schema.InvoiceSchema()),
			),
			mcp.WithString("output_path", mcp.Required(), mcp.Description("Path to save the .xlsx file to")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.GetArguments()

			list, ok := args["invoices"].([]interface{})
			if !ok || len(list) == 0 {
				return errResult(errors.New("invoices must be a non-empty array")), nil
			}
			invoices := make([]model.Invoice, 0, len(list))
			for i, entry := range list {
				inv, err := schema.DecodeInvoice(entry)
				if err != nil {
					return errResult(errors.Wrapf(err, "invoices[%d]", i)), nil
				}
				invoices = append(invoices, *inv)
			}

			data, err := d.Conversion.JSONToXLSX(ctx, invoices)
			if err != nil {
				return errResult(err), nil
			}
			return deliverBinary(args, data)
		},
	)

	s.AddTool(
		mcp.NewTool("convert_json_to_zugferd",
			mcp.WithDescription("Embed an invoice JSON document into a PDF, producing a hybrid "+
				"ZUGFeRD / Factur-X PDF saved to output_path."),
			mcp.WithObject("invoice",
				mcp.Required(),
				mcp.Description("Invoice document to embed"),
				mcp.Properties(schema.InvoiceProperties()),
			),
			mcp.WithString("pdf_path", mcp.Required(), mcp.Description("Path to the human-readable PDF to embed into")),
			mcp.WithString("output_path", mcp.Required(), mcp.Description("Path to save the resulting PDF to")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.GetArguments()

			inv, err := schema.DecodeInvoice(args["invoice"])
			if err != nil {
				return errResult(err), nil
			}

			pdfPath := stringArg(args, "pdf_path")
			if pdfPath == "" {
				return errResult(errors.New("pdf_path is required")), nil
			}
			pdf, err := os.ReadFile(pdfPath)
			if err != nil {
				return errResult(errors.Wrapf(err, "read %s", pdfPath)), nil
			}

			data, err := d.Conversion.JSONToZugferd(ctx, &model.ZugferdRequest{
				File: model.FilePayload{
					Content:     base64.StdEncoding.EncodeToString(pdf),
					ContentType: "application/pdf",
					FileName:    filepath.Base(pdfPath),
				},
				Invoice: inv,
			})
			if err != nil {
				return errResult(err), nil
			}
			return deliverBinary(args, data)
		},
	)

	s.AddTool(
		mcp.NewTool("convert_zugferd_to_json",
			mcp.WithDescription("Extract the embedded invoice data from a ZUGFeRD / Factur-X PDF "+
				"as an invoice JSON document."),
			mcp.WithString("pdf_path", mcp.Required(), mcp.Description("Path to the ZUGFeRD PDF")),
			mcp.WithString("output_path", mcp.Description("Optional path to save the JSON to")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := req.GetArguments()

			pdf, _, err := fileInput(args, "pdf_path")
			if err != nil {
				return errResult(err), nil
			}

			raw, err := d.Conversion.ZugferdToJSON(ctx, pdf)
			if err != nil {
				return errResult(err), nil
			}
			return deliverText(args, prettyJSON(raw))
		},
	)
}

// jsonToXMLHandler shared handler shape of the two invoice-to-XML tools.
func jsonToXMLHandler(convert func(context.Context, *model.Invoice) (string, error)) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()

		inv, err := schema.DecodeInvoice(args["invoice"])
		if err != nil {
			return errResult(err), nil
		}

		xml, err := convert(ctx, inv)
		if err != nil {
			return errResult(err), nil
		}
		return deliverText(args, xml)
	}
}

// xmlToJSONHandler shared handler shape of the two XML-to-invoice tools.
func xmlToJSONHandler(convert func(context.Context, string) (json.RawMessage, error)) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()

		xml, err := xmlInput(args)
		if err != nil {
			return errResult(err), nil
		}

		res, err := convert(ctx, xml)
		if err != nil {
			return errResult(err), nil
		}
		return deliverText(args, prettyJSON(res))
	}
}
