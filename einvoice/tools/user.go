package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterUserTools registers the account info tool.
func RegisterUserTools(s *server.MCPServer, d *Deps) {
	s.AddTool(
		mcp.NewTool("get_user_info",
			mcp.WithDescription("Show the account behind the configured API key: email, role "+
				"and credit balances."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			info, err := d.User.Info(ctx)
			if err != nil {
				return errResult(err), nil
			}

			text := fmt.Sprintf(
				"Email: %s\nRole: %s\nCredits:\n  available: %d\n  used: %d\n  monthly quota: %d\n  extra: %d",
				info.Email, info.Role,
				info.Credits.Available, info.Credits.Used,
				info.Credits.MonthlyQuota, info.Credits.Extra,
			)
			return mcp.NewToolResultText(text), nil
		},
	)
}
