// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Resource URIs served by the default resources.
const (
	uriConfigTemplate = "config://template"
	uriVersion        = "info://version"
	uriOIDMnemonics   = "info://oid-mnemonics"
	uriPEMFormat      = "docs://pem-format"
)

// createResources creates the static resources of the server.
//
// Handlers read deps when a resource is requested, so the resources reflect
// whatever the builder holds after Build applied its defaults.
func createResources(deps *ServerDependencies) []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(uriConfigTemplate, "Configuration Template",
				mcp.WithResourceDescription("Annotated example configuration with every key at its default value"),
				mcp.WithMIMEType("application/yaml"),
			),
			Handler: handleConfigResource,
		},
		{
			Resource: mcp.NewResource(uriVersion, "Version Information",
				mcp.WithResourceDescription("Server name, version, tools, resources and output formats"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: versionResourceHandler(deps),
		},
		{
			Resource: mcp.NewResource(uriOIDMnemonics, "OID Mnemonics",
				mcp.WithResourceDescription("Short names used for distinguished name attributes and public key algorithms"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleOIDMnemonicsResource,
		},
		{
			Resource: mcp.NewResource(uriPEMFormat, "PEM Format Reference",
				mcp.WithResourceDescription("How PEM documents are classified into blocks, content and comments"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: pemFormatResourceHandler(deps),
		},
	}
}
