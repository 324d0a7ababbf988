package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/generativelanguage/v1beta"

	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
)

type mockTextClient struct {
	mock.Mock
}

func (m *mockTextClient) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	args := m.Called(ctx, model, prompt)
	return args.String(0), args.Error(1)
}

func sampleSummary() domain.FinancialSummary {
	return domain.FinancialSummary{
		ActiveMembers:      4,
		TotalContributions: decimal.NewFromInt(1200000),
		TotalLoans:         decimal.NewFromInt(300000),
		OutstandingLoans:   decimal.NewFromInt(110000),
		ProjectExpenses:    decimal.NewFromInt(45000),
		ProjectEarnings:    decimal.NewFromInt(90000),
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(sampleSummary())

	assert.Contains(t, prompt, "- Active Members: 4")
	assert.Contains(t, prompt, "- Total Contributions Collected: 1,200,000 RWF")
	assert.Contains(t, prompt, "- Outstanding Loan Amount (Risk): 110,000 RWF")
	assert.Contains(t, prompt, "max 200 words")
	assert.Contains(t, prompt, "recommendation for the President")
}

func TestGenerate_UsesModelAndPrompt(t *testing.T) {
	client := new(mockTextClient)
	summary := sampleSummary()
	client.On("GenerateText", mock.Anything, "gemini-test", BuildPrompt(summary)).Return("## Health: Good", nil)

	g := newInsightGenerator(client, "gemini-test", 0)
	text, err := g.Generate(context.Background(), summary)

	require.NoError(t, err)
	assert.Equal(t, "## Health: Good", text)
	client.AssertExpectations(t)
}

func TestGenerate_WrapsClientErrors(t *testing.T) {
	client := new(mockTextClient)
	client.On("GenerateText", mock.Anything, DefaultModel, mock.Anything).Return("", errors.New("API key not valid"))

	g := newInsightGenerator(client, "", 6)
	_, err := g.Generate(context.Background(), sampleSummary())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrExternalService)
}

func TestGenerate_CancelledWhileThrottled(t *testing.T) {
	client := new(mockTextClient)
	client.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).Return("ok", nil).Once()

	g := newInsightGenerator(client, "", 1)
	_, err := g.Generate(context.Background(), sampleSummary())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.Generate(ctx, sampleSummary())
	assert.ErrorIs(t, err, apperrors.ErrExternalService)
	client.AssertNumberOfCalls(t, "GenerateText", 1)
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		resp *generativelanguage.GenerateContentResponse
		want string
	}{
		{name: "nil response", resp: nil, want: ""},
		{name: "no candidates", resp: &generativelanguage.GenerateContentResponse{}, want: ""},
		{
			name: "candidate without content",
			resp: &generativelanguage.GenerateContentResponse{Candidates: []*generativelanguage.Candidate{{}}},
			want: "",
		},
		{
			name: "joins parts of first candidate",
			resp: &generativelanguage.GenerateContentResponse{Candidates: []*generativelanguage.Candidate{
				{Content: &generativelanguage.Content{Parts: []*generativelanguage.Part{{Text: "## Status\n"}, {Text: "Good "}}}},
				{Content: &generativelanguage.Content{Parts: []*generativelanguage.Part{{Text: "ignored"}}}},
			}},
			want: "## Status\nGood",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractText(tt.resp))
		})
	}
}
