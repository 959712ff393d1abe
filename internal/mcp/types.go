package mcp

import "github.com/JTruax/BOIM-WP-MCP/pkg/protocol"

type Request = protocol.JSONRPCRequest
type Response = protocol.JSONRPCResponse

type ClientInfo struct {
	Name    string
	Version string
}
