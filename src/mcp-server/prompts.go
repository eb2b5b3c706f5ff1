// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// createPrompts creates and returns all MCP prompt definitions with their handlers
func createPrompts() []server.ServerPrompt {
	return []server.ServerPrompt{
		{
			Prompt: mcp.NewPrompt("pem-review",
				mcp.WithPromptDescription("Review a PEM bundle: list its blocks, summarize certificates and explain diagnostics"),
				mcp.WithArgument("document_path",
					mcp.ArgumentDescription("Path to the PEM document to review"),
					mcp.RequiredArgument(),
				),
			),
			Handler: handlePEMReviewPrompt,
		},
	}
}

// handlePEMReviewPrompt handles the PEM review workflow prompt
func handlePEMReviewPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	path := request.Params.Arguments["document_path"]
	if path == "" {
		return nil, fmt.Errorf("document_path argument is required")
	}

	messages := []mcp.PromptMessage{
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(fmt.Sprintf("I'll review the PEM document at: %s", path)),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(fmt.Sprintf(`1. Use the "analyze_pem_document" tool with document %q and sections "outline,diagnostics" to list every block with its label and line range.`, path)),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`2. For each certificate block, report subject, issuer, validity window and public key algorithm. Point out certificates whose Not After date has passed.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`3. Explain every diagnostic: errors are certificate blocks that could not be decoded, warnings are END labels that differ from their BEGIN label.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(`4. Summarize what the bundle contains and whether its blocks look complete and well formed.`),
		),
	}

	return mcp.NewGetPromptResult("PEM Document Review", messages), nil
}
