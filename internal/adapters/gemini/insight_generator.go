// Package gemini produces financial commentary with the Gemini text generation API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"golang.org/x/time/rate"
	"google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"

	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/utils"
)

const DefaultModel = "gemini-2.5-flash"

// textClient sends a single prompt and returns the concatenated reply.
type textClient interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}

// InsightGenerator asks Gemini for a short health report of the cooperative finances.
type InsightGenerator struct {
	client  textClient
	model   string
	limiter *rate.Limiter
}

var _ portssvc.InsightGenerator = (*InsightGenerator)(nil)

// NewInsightGenerator builds a generator authenticated with apiKey.
// ratePerMinute caps outbound calls; zero or less disables the cap.
func NewInsightGenerator(ctx context.Context, apiKey, model string, ratePerMinute int) (*InsightGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("missing Gemini API key")
	}
	svc, err := generativelanguage.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create generative language service: %w", err)
	}
	return newInsightGenerator(&apiClient{svc: svc}, model, ratePerMinute), nil
}

func newInsightGenerator(client textClient, model string, ratePerMinute int) *InsightGenerator {
	if model == "" {
		model = DefaultModel
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if ratePerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(ratePerMinute)), ratePerMinute)
	}
	return &InsightGenerator{client: client, model: model, limiter: limiter}
}

// Generate implements portssvc.InsightGenerator.
func (g *InsightGenerator) Generate(ctx context.Context, summary domain.FinancialSummary) (string, error) {
	ctx, span := otel.Tracer("gemini").Start(ctx, "InsightGenerator.Generate")
	defer span.End()

	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: insight rate limit: %v", apperrors.ErrExternalService, err)
	}

	start := time.Now()
	text, err := g.client.GenerateText(ctx, g.model, BuildPrompt(summary))
	if err != nil {
		slog.ErrorContext(ctx, "Gemini request failed", "model", g.model, "error", err)
		return "", fmt.Errorf("%w: %v", apperrors.ErrExternalService, err)
	}

	slog.InfoContext(ctx, "Gemini insight generated",
		"model", g.model,
		"chars", len(text),
		"duration", time.Since(start))
	return text, nil
}

// BuildPrompt renders the advisor prompt for summary.
func BuildPrompt(summary domain.FinancialSummary) string {
	var b strings.Builder
	b.WriteString("Act as a financial advisor for a cooperative named \"CoopPartners\".\n")
	b.WriteString("Analyze the following data:\n")
	fmt.Fprintf(&b, "- Active Members: %d\n", summary.ActiveMembers)
	fmt.Fprintf(&b, "- Total Contributions Collected: %s\n", utils.FormatAmount(summary.TotalContributions))
	fmt.Fprintf(&b, "- Total Loans Issued: %s\n", utils.FormatAmount(summary.TotalLoans))
	fmt.Fprintf(&b, "- Outstanding Loan Amount (Risk): %s\n", utils.FormatAmount(summary.OutstandingLoans))
	fmt.Fprintf(&b, "- Project Expenses: %s\n", utils.FormatAmount(summary.ProjectExpenses))
	fmt.Fprintf(&b, "- Project Earnings: %s\n", utils.FormatAmount(summary.ProjectEarnings))
	b.WriteString("\nPlease provide a concise financial health report (max 200 words).\n")
	b.WriteString("Include:\n")
	b.WriteString("1. Overall Health Status (Good/Caution/Critical).\n")
	b.WriteString("2. A specific observation about the loan-to-contribution ratio.\n")
	b.WriteString("3. One actionable recommendation for the President.\n")
	b.WriteString("\nFormat with clear headings using Markdown.\n")
	return b.String()
}

type apiClient struct {
	svc *generativelanguage.Service
}

func (c *apiClient) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	req := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{{
			Role:  "user",
			Parts: []*generativelanguage.Part{{Text: prompt}},
		}},
	}
	resp, err := c.svc.Models.GenerateContent("models/"+model, req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return extractText(resp), nil
}

// extractText joins the text parts of the first candidate.
func extractText(resp *generativelanguage.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	c := resp.Candidates[0]
	if c == nil || c.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range c.Content.Parts {
		if p != nil {
			b.WriteString(p.Text)
		}
	}
	return strings.TrimSpace(b.String())
}
