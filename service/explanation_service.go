package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"sci-simulator/domain"
)

const (
	defaultLLMModel   = "gpt-4o-mini"
	defaultLLMTimeout = 10 * time.Second
)

// ExplanationConfig configures the OpenAI-compatible chat endpoint. An empty
// APIKey disables the remote call.
type ExplanationConfig struct {
	APIKey  string
	APIURL  string
	Model   string
	Timeout time.Duration
}

type ExplanationService struct {
	apiKey     string
	apiURL     string
	model      string
	enabled    bool
	timeout    time.Duration
	httpClient *http.Client
	logger     *logrus.Logger
}

type ChatRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func NewExplanationService(cfg ExplanationConfig, logger *logrus.Logger) *ExplanationService {
	if logger == nil {
		logger = logrus.New()
	}
	model := cfg.Model
	if model == "" {
		model = defaultLLMModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultLLMTimeout
	}

	return &ExplanationService{
		apiKey:  cfg.APIKey,
		apiURL:  cfg.APIURL,
		model:   model,
		enabled: cfg.APIKey != "" && cfg.APIURL != "",
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// ExplainComparison describes which regime wins over the horizon. It always
// returns a usable text: the deterministic verdict is used when the remote
// model is disabled or fails.
func (s *ExplanationService) ExplainComparison(
	ctx context.Context,
	input domain.ProjectInputs,
	projection domain.Projection,
) string {
	if !s.enabled {
		return Verdict(projection.Summary)
	}

	sum := projection.Summary
	prompt := fmt.Sprintf(`Analyse cette simulation de SCI financée par emprunt et explique le résultat à un investisseur particulier.

PROJET :
- Prix d'achat : %s
- Coût total du projet : %s
- Apport personnel : %s (%.1f%% du projet)
- Montant emprunté : %s sur %d ans à %.2f%%
- Mensualité totale (crédit + assurance) : %s
- Loyer annuel hors charges : %s, revalorisé de %.1f%% par an, vacance %.1f%%

FISCALITÉ :
- TMI du porteur : %.0f%%, prélèvements sociaux %s
- Amortissement annuel à l'IS : %s

RÉSULTATS SUR %d ANS :
- Trésorerie cumulée SCI à l'IR : %s
- Trésorerie cumulée SCI à l'IS : %s
- Écart (IS - IR) : %s

INSTRUCTIONS :
1. Indique clairement quel régime est le plus avantageux en trésorerie cumulée et de combien.
2. Explique le rôle de l'amortissement et du report de déficit à l'IS.
3. Rappelle que la simulation ignore la fiscalité de la revente et la distribution de dividendes.

Réponds en 3 à 4 phrases simples.`,
		FormatEuros(input.PurchasePrice),
		FormatEuros(sum.TotalCost),
		FormatEuros(input.Contribution), sum.ContributionRatio*100,
		FormatEuros(sum.LoanPrincipal), input.LoanYears, input.InterestRate*100,
		FormatEuros(sum.MonthlyPayment),
		FormatEuros(input.AnnualRent), input.RentGrowthRate*100, input.VacancyRate*100,
		input.MarginalTaxRate*100, socialContributionsLabel(input.SocialContributions),
		FormatEuros(sum.AnnualDepreciation),
		HorizonYears,
		FormatEuros(sum.TransparentCumulative),
		FormatEuros(sum.CorporateCumulative),
		FormatEuros(sum.Difference),
	)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	explanation, err := s.callLLM(callCtx, prompt)
	if err != nil {
		s.logger.WithError(err).Warn("explanation model call failed, using verdict")
		return Verdict(sum)
	}

	return explanation
}

// Verdict is the deterministic comparison sentence.
func Verdict(sum domain.Summary) string {
	if sum.Difference > 0 {
		return fmt.Sprintf("L'IS est plus avantageux de %s sur %d ans en termes de trésorerie cumulée.",
			FormatEuros(sum.Difference), HorizonYears)
	}
	return fmt.Sprintf("L'IR est plus avantageux de %s sur %d ans en termes de trésorerie cumulée.",
		FormatEuros(math.Abs(sum.Difference)), HorizonYears)
}

// FormatEuros renders a whole-euro amount with space-grouped thousands,
// e.g. "695 120 €".
func FormatEuros(value float64) string {
	rounded := math.Round(value)
	if rounded == 0 {
		// avoids "-0 €"
		rounded = 0
	}
	digits := strconv.FormatFloat(math.Abs(rounded), 'f', 0, 64)

	var b strings.Builder
	if rounded < 0 {
		b.WriteByte('-')
	}
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(c)
	}
	b.WriteString(" €")
	return b.String()
}

func socialContributionsLabel(applicable bool) string {
	if applicable {
		return "applicables (17,2 %)"
	}
	return "non applicables"
}

func (s *ExplanationService) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := ChatRequest{
		Model: s.model,
		Messages: []Message{
			{
				Role:    "system",
				Content: "Tu es un conseiller en gestion de patrimoine spécialisé dans l'immobilier locatif détenu en SCI. Tu compares l'imposition à l'IR et à l'IS de façon factuelle, en français, sans jargon inutile, en citant les montants fournis.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response from model")
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}
