// Package tools defines the MCP tool surface: every tool declares its input
// schema, stages local files into memory when needed, makes exactly one
// transport call and renders the outcome as tool-result content. Failures
// never propagate as Go errors to the host - they come back as error-flagged
// text produced by the classifier.
package tools

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/einvoicedev/einvoice-mcp/einvoice/api"
)

var logger = logrus.WithField("component", "einvoice.tools")

// Deps endpoint services shared by all tool groups. Handlers hold no other
// state, concurrent invocations are independent.
type Deps struct {
	Conversion api.ConversionService
	Validation api.ValidationService
	Extraction api.ExtractionService
	User       api.UserService
	Batch      api.BatchService
}

// NewDeps builds all endpoint services on top of one transport client.
func NewDeps(client api.Client) *Deps {
	return &Deps{
		Conversion: api.NewConversionService(client),
		Validation: api.NewValidationService(client),
		Extraction: api.NewExtractionService(client),
		User:       api.NewUserService(client),
		Batch:      api.NewBatchService(client),
	}
}

// RegisterAll registers every tool group against the server.
func RegisterAll(s *server.MCPServer, d *Deps) {
	RegisterConversionTools(s, d)
	RegisterValidationTools(s, d)
	RegisterExtractionTools(s, d)
	RegisterUserTools(s, d)
	RegisterBatchTools(s, d)
	RegisterQRTools(s)
}

// errResult converts any handler failure into an error-flagged text result.
func errResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(api.Classify(err))
}

func stringArg(args map[string]interface{}, name string) string {
	v, _ := args[name].(string)
	return v
}

func boolArg(args map[string]interface{}, name string) bool {
	v, _ := args[name].(bool)
	return v
}

// xmlInput resolves the xml_content / xml_path argument pair: exactly one of
// them must be present, a path is read into memory.
func xmlInput(args map[string]interface{}) (string, error) {
	content := stringArg(args, "xml_content")
	path := stringArg(args, "xml_path")

	switch {
	case content != "" && path != "":
		return "", errors.New("provide either xml_content or xml_path, not both")
	case content != "":
		return content, nil
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.Wrapf(err, "read %s", path)
		}
		return string(data), nil
	default:
		return "", errors.New("either xml_content or xml_path is required")
	}
}

// fileInput reads the file named by the given path argument and guesses its
// content type from the extension.
func fileInput(args map[string]interface{}, arg string) ([]byte, string, error) {
	path := stringArg(args, arg)
	if path == "" {
		return nil, "", errors.Errorf("%s is required", arg)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "read %s", path)
	}
	return data, contentTypeByExt(path), nil
}

func contentTypeByExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".xml":
		return "application/xml"
	default:
		return "application/octet-stream"
	}
}

// deliverText either writes the content to output_path (returning a
// confirmation naming the path) or returns it inline when no path was given.
func deliverText(args map[string]interface{}, content string) (*mcp.CallToolResult, error) {
	outputPath := stringArg(args, "output_path")
	if outputPath == "" {
		return mcp.NewToolResultText(content), nil
	}
	if err := os.WriteFile(outputPath, []byte(content), 0o644); err != nil {
		return errResult(errors.Wrapf(err, "write %s", outputPath)), nil
	}
	logger.Debugf("wrote %d bytes to %s", len(content), outputPath)
	return mcp.NewToolResultText(fmt.Sprintf("Saved to %s (%d bytes)", outputPath, len(content))), nil
}

// deliverBinary writes binary output to the required output_path.
func deliverBinary(args map[string]interface{}, data []byte) (*mcp.CallToolResult, error) {
	outputPath := stringArg(args, "output_path")
	if outputPath == "" {
		return errResult(errors.New("output_path is required for binary output")), nil
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return errResult(errors.Wrapf(err, "write %s", outputPath)), nil
	}
	logger.Debugf("wrote %d bytes to %s", len(data), outputPath)
	return mcp.NewToolResultText(fmt.Sprintf("Saved to %s (%d bytes)", outputPath, len(data))), nil
}

// prettyJSON re-indents a raw JSON document for display. Unparseable input is
// returned as-is rather than dropped.
func prettyJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
