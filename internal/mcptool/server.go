// Package mcptool exposes the ranking pipeline as Model Context Protocol
// tools so agent hosts can call lexirank directly over stdio. Two tools are
// offered: rank_terms (the full pipeline) and generate_sentences (practice
// sentences from a word list).
package mcptool

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/MrWong99/lexirank/internal/rank"
)

// TermRanker is the ranking capability the server exposes. *rank.Ranker
// satisfies it.
type TermRanker interface {
	Rank(ctx context.Context, contextText string, n int) (*rank.Result, error)
}

// SentenceGenerator is the sentence-building capability the server exposes.
// *sentences.Generator satisfies it.
type SentenceGenerator interface {
	Generate(ctx context.Context, words []string) ([]string, error)
}

// RankTermsArgs are the arguments of the rank_terms tool.
type RankTermsArgs struct {
	// Context is the scenario description to rank vocabulary for.
	Context string `json:"context"`

	// Count is the target number of terms. Zero uses the configured default.
	Count int `json:"count,omitempty"`
}

// GenerateSentencesArgs are the arguments of the generate_sentences tool.
type GenerateSentencesArgs struct {
	// Words is the ordered word list the sentences must use.
	Words []string `json:"words"`
}

// GenerateSentencesResult is the structured result of generate_sentences.
type GenerateSentencesResult struct {
	Sentences []string `json:"sentences"`
}

// Server wires the ranking tools into an MCP server.
type Server struct {
	ranker    TermRanker
	sentences SentenceGenerator
	log       *slog.Logger
	version   string
}

// NewServer creates a Server. A nil log falls back to slog.Default.
func NewServer(ranker TermRanker, sentences SentenceGenerator, version string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{ranker: ranker, sentences: sentences, log: log, version: version}
}

// MCPServer builds the underlying mcp.Server with both tools registered.
// Exposed separately from Run so tests can connect in-memory transports.
func (s *Server) MCPServer() *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: "lexirank", Version: s.version}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "rank_terms",
		Description: "Generate a ranked, category-balanced vocabulary list for a scenario description.",
	}, s.rankTerms)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "generate_sentences",
		Description: "Compose short practice sentences from an ordered word list, adding only function words.",
	}, s.generateSentences)

	return srv
}

// Run serves the tools over stdio until ctx is cancelled or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info("mcp server starting", "transport", "stdio")
	if err := s.MCPServer().Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("mcptool: serve: %w", err)
	}
	return nil
}

func (s *Server) rankTerms(ctx context.Context, req *mcp.CallToolRequest, args RankTermsArgs) (*mcp.CallToolResult, any, error) {
	if args.Context == "" {
		return nil, nil, fmt.Errorf("context is required")
	}
	result, err := s.ranker.Rank(ctx, args.Context, args.Count)
	if err != nil {
		s.log.Error("rank_terms failed", "error", err)
		return nil, nil, err
	}
	return nil, result, nil
}

func (s *Server) generateSentences(ctx context.Context, req *mcp.CallToolRequest, args GenerateSentencesArgs) (*mcp.CallToolResult, any, error) {
	if len(args.Words) == 0 {
		return nil, nil, fmt.Errorf("words are required")
	}
	out, err := s.sentences.Generate(ctx, args.Words)
	if err != nil {
		s.log.Error("generate_sentences failed", "error", err)
		return nil, nil, err
	}
	return nil, GenerateSentencesResult{Sentences: out}, nil
}
