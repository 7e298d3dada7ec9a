package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fracto-labs/fracto-cli/internal/core/domain"
)

// SplitTextInput is the input schema for the split_text tool.
type SplitTextInput struct {
	Text         string `json:"text" jsonschema:"the text to split into chunks"`
	ChunkSize    int    `json:"chunk_size,omitempty" jsonschema:"target chunk size in characters (default 1000)"`
	ChunkOverlap int    `json:"chunk_overlap,omitempty" jsonschema:"overlap between consecutive chunks in characters, -1 for none (default 200)"`
	Language     string `json:"language,omitempty" jsonschema:"separator preset: markdown, latex or html"`
}

// SplitTextOutput is the output schema for the split_text tool.
type SplitTextOutput struct {
	Chunks []ChunkOutput `json:"chunks"`
	Count  int           `json:"count"`
}

// ChunkOutput represents a single emitted chunk.
type ChunkOutput struct {
	Content  string `json:"content"`
	Position int    `json:"position"`
	FromLine int    `json:"from_line"`
	ToLine   int    `json:"to_line"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "split_text",
		Description: "Split text into bounded-size, overlapping chunks with line ranges",
	}, s.handleSplitText)
}

// handleSplitText handles the split_text tool invocation.
func (s *Server) handleSplitText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SplitTextInput,
) (*mcp.CallToolResult, SplitTextOutput, error) {
	settings := s.requestSettings(input)

	service, err := s.ports.Split(settings)
	if err != nil {
		return nil, SplitTextOutput{}, err
	}

	docs, err := service.CreateDocuments(ctx, []string{input.Text}, nil)
	if err != nil {
		return nil, SplitTextOutput{}, err
	}

	output := SplitTextOutput{
		Chunks: make([]ChunkOutput, len(docs)),
		Count:  len(docs),
	}

	for i := range docs {
		lines, _ := docs[i].Lines()
		output.Chunks[i] = ChunkOutput{
			Content:  docs[i].Content,
			Position: i,
			FromLine: lines.From,
			ToLine:   lines.To,
		}
	}

	return nil, output, nil
}

// requestSettings merges tool-call parameters over the persisted defaults.
func (s *Server) requestSettings(input SplitTextInput) domain.SplitterSettings {
	settings := domain.DefaultSplitterSettings()
	if s.ports.Settings != nil {
		if stored, err := s.ports.Settings.Get(); err == nil {
			settings = *stored
		}
	}

	if input.ChunkSize > 0 {
		settings.ChunkSize = input.ChunkSize
	}
	// Zero means "not provided"; -1 requests no overlap explicitly.
	if input.ChunkOverlap > 0 {
		settings.ChunkOverlap = input.ChunkOverlap
	} else if input.ChunkOverlap == -1 {
		settings.ChunkOverlap = 0
	}
	if input.Language != "" {
		settings.Language = domain.Language(input.Language)
	}

	return settings
}
