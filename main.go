package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/einvoicedev/einvoice-mcp/einvoice"
	"github.com/einvoicedev/einvoice-mcp/einvoice/api"
	"github.com/einvoicedev/einvoice-mcp/einvoice/tools"
)

const (
	serverName    = "einvoice"
	serverVersion = "1.2.0"
)

func main() {

	// best effort, the environment itself wins over .env
	_ = godotenv.Load()

	cfg, err := einvoice.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "einvoice-mcp: %v\n", err)
		fmt.Fprintln(os.Stderr, "Set EINVOICE_API_KEY to your API key and restart. Keys are managed in the account dashboard.")
		os.Exit(1)
	}
	cfg.SetupLogging()

	client := api.New(cfg.BaseURL, cfg.APIKey, cfg.Debug)
	deps := tools.NewDeps(client)

	s := server.NewMCPServer(serverName, serverVersion)
	tools.RegisterAll(s, deps)

	logrus.WithField("base_url", cfg.BaseURL).Debug("serving MCP on stdio")

	if err := server.ServeStdio(s); err != nil {
		logrus.WithError(err).Error("server terminated")
		os.Exit(1)
	}
}
