package version

// Version is the server release version.
const Version = "0.4.0"

// ServerName is reported to clients during the initialize handshake.
const ServerName = "BOIM WordPress MCP Server"

// ProtocolVersion is the MCP protocol revision the server prefers.
const ProtocolVersion = "2025-03-26"

// SupportedProtocolVersions lists every revision the server can speak,
// newest first.
var SupportedProtocolVersions = []string{
	"2025-06-18",
	"2025-03-26",
	"2024-11-05",
}
