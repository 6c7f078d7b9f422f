// Package transcriptserver registers the transcript MCP tools.
package transcriptserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all transcript tools on the given MCP server:
// youtube_transcript, youtube_transcript_languages.
func RegisterTools(server *mcp.Server) {
	registerTranscript(server)
	registerTranscriptLanguages(server)
}
