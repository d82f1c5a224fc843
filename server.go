package main

import (
	"context"
	"encoding/json"

	"github.com/gamma-omg/key-detector/keywords"
	"github.com/gamma-omg/key-detector/report"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const version = "0.1.0"

type keyDetector interface {
	Detect(ctx context.Context, pkg string, keywords []string) (*Detection, error)
}

func NewDetectorServer(detector keyDetector) *server.MCPServer {
	tool := mcp.NewTool("find_key_assignments",
		mcp.WithDescription("Decompiles an Android package and lists source lines that assign values to identifiers containing any of the given keywords"),
		mcp.WithString("package",
			mcp.Required(),
			mcp.Description("Path to the package file on the server"),
		),
		mcp.WithString("keywords",
			mcp.Required(),
			mcp.Description("Comma separated keywords, e.g. apikey,secret,token"),
		))

	srv := server.NewMCPServer("Key Detector", version, server.WithToolCapabilities(false))
	srv.AddTool(tool, findKeyAssignments(detector))

	return srv
}

func findKeyAssignments(detector keyDetector) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		pkg, err := request.RequireString("package")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		csv, err := request.RequireString("keywords")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		words, err := keywords.Resolve(csv, "")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		det, err := detector.Detect(ctx, pkg, words)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		raw, err := json.Marshal(report.NewDocument(det.Package, det.Results))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(string(raw)), nil
	}
}
