package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/espressoflow/pos-backend/internal/cfg"
	"github.com/espressoflow/pos-backend/internal/usecase"
	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/espressoflow/pos-backend/pkg/jitter"
	"github.com/espressoflow/pos-backend/pkg/logger"
	"google.golang.org/genai"
)

// Ответ по умолчанию, когда модель вернула пустой текст.
const emptyAnswer = "I couldn't generate an insight at this moment."

// Insight — клиент внешней текстовой модели для вопросов о бизнесе.
type Insight struct {
	client *genai.Client
	cfg    *cfg.GeminiCfg
	logger logger.Logger
}

func NewInsight(ctx context.Context, cfg *cfg.GeminiCfg, logger logger.Logger) (*Insight, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, e.Wrap("gemini.NewInsight", err)
	}

	return &Insight{
		client: client,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// GenerateInsight выполняет запрос к модели с retry-логикой и экспоненциальной задержкой.
func (g *Insight) GenerateInsight(ctx context.Context, req *usecase.InsightReq) (string, error) {
	const (
		op         = "Insight.GenerateInsight"
		baseJitter = 1 * time.Second
		maxJitter  = 15 * time.Second
	)

	prompt := buildPrompt(req)

	for attempt := 0; attempt < g.cfg.MaxRetries; attempt++ {
		answer, err := g.generate(ctx, prompt)
		if err == nil {
			return answer, nil
		}

		if attempt == g.cfg.MaxRetries-1 {
			return "", e.Wrap(op, fmt.Errorf("all %d attempts failed: %w", g.cfg.MaxRetries, err))
		}

		sleepTime := jitter.ExponentialBackoff(
			baseJitter,
			maxJitter,
			attempt,
			jitter.DefaultJitter,
		)

		g.logger.Warnf("insight request failed, retrying in %v (attempt %d)", sleepTime, attempt+1)
		select {
		case <-time.After(sleepTime):
		case <-ctx.Done():
			return "", e.Wrap(op, ctx.Err())
		}
	}

	return "", e.Wrap(op, fmt.Errorf("unreachable"))
}

func (g *Insight) generate(ctx context.Context, prompt string) (string, error) {
	res, err := g.client.Models.GenerateContent(ctx, g.cfg.Model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	text := res.Text()
	if strings.TrimSpace(text) == "" {
		return emptyAnswer, nil
	}

	return text, nil
}

// buildPrompt формирует единый промпт: роль ассистента, сводка данных и вопрос.
func buildPrompt(req *usecase.InsightReq) string {
	var b strings.Builder

	b.WriteString("You are an expert Coffee Shop Manager AI Assistant.\n")
	b.WriteString("Analyze the following context and answer the user's question.\n")
	b.WriteString("Keep the answer concise, professional, and actionable.\n\n")

	b.WriteString("Context Data:\n")
	fmt.Fprintf(&b, "Total Sales Records: %d\n", req.Context.SalesCount)
	fmt.Fprintf(&b, "Top Selling Product Context: %s\n", strings.Join(req.Context.Products, ", "))
	fmt.Fprintf(&b, "Supply Status: %s\n\n", strings.Join(req.Context.Supplies, ", "))

	fmt.Fprintf(&b, "User Question: %s\n", req.Prompt)

	return b.String()
}
