package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gravatar-fdw/internal/core/domain"
)

// LookupInput is the input schema for the profile_lookup tool.
type LookupInput struct {
	Email string `json:"email" jsonschema:"the email address to look up"`
}

// LookupOutput is the output schema for the profile_lookup tool.
type LookupOutput struct {
	Found       bool            `json:"found"`
	Hash        string          `json:"hash,omitempty"`
	Email       string          `json:"email,omitempty"`
	DisplayName string          `json:"display_name,omitempty"`
	ProfileURL  string          `json:"profile_url,omitempty"`
	AvatarURL   string          `json:"avatar_url,omitempty"`
	Location    string          `json:"location,omitempty"`
	JobTitle    string          `json:"job_title,omitempty"`
	Company     string          `json:"company,omitempty"`
	Profile     json.RawMessage `json:"profile,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "profile_lookup",
		Description: "Look up the Gravatar profile for an email address",
	}, s.handleLookup)
}

// handleLookup handles the profile_lookup tool invocation.
// It drives a full scan: begin, at most one row, end.
func (s *Server) handleLookup(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LookupInput,
) (*mcp.CallToolResult, LookupOutput, error) {
	scanner, err := s.ports.NewScanner()
	if err != nil {
		return nil, LookupOutput{}, err
	}
	defer scanner.End()

	quals := []domain.Qual{
		{Column: domain.KeyColumn, Operator: domain.OpEqual, Value: input.Email},
	}
	if err := scanner.Begin(ctx, quals, domain.Columns()); err != nil {
		return nil, LookupOutput{}, err
	}

	row, err := scanner.Next(ctx)
	if err != nil {
		return nil, LookupOutput{}, err
	}
	if row == nil {
		return nil, LookupOutput{Found: false}, nil
	}

	return nil, LookupOutput{
		Found:       true,
		Hash:        row.Hash,
		Email:       row.Email,
		DisplayName: strValue(row.DisplayName),
		ProfileURL:  strValue(row.ProfileURL),
		AvatarURL:   strValue(row.AvatarURL),
		Location:    strValue(row.Location),
		JobTitle:    strValue(row.JobTitle),
		Company:     strValue(row.Company),
		Profile:     row.Document,
	}, nil
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
