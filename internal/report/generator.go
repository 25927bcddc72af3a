package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/miyakoshi/septade/internal/errors"
	"github.com/miyakoshi/septade/internal/models"
	"github.com/sashabaranov/go-openai"
)

const systemPrompt = `あなたは「性格診断×タロット×四柱推命レポートJSON」を生成するエンジンです。必ず次を守ってください。

【最重要】
- 出力はJSONのみ（前後に説明文・コードフェンス・注釈は禁止）
- 指定された件数を厳守（charts/itemsの数は固定）
- 文字数上限を厳守（超えない）
- valueは0〜100の整数
- 日本語で、読みやすく、具体的で、断定しすぎず、行動提案を含める
- 同じ表現の連発を避ける（語彙の重複を減らす）
- 個人情報や医療/法律/投資の断定助言は禁止（一般的助言に留める）
- 四柱推命は「傾向の読み解き」に留め、吉凶断定・未来の断言は避ける

【出力JSONスキーマ】
{
  "tarotExplanation": "",
  "astrology": "",
  "section1": { "content": "..." },
  "section2": {
    "content": "...",
    "charts": [
      { "title": "...", "value": 0, "desc": "..." }
    ],
    "items": [
      { "title": "...", "desc": "..." }
    ]
  },
  "section3": {
    "content": "...",
    "charts": [
      { "title": "...", "value": 0, "desc": "..." }
    ],
    "items": [
      { "title": "...", "desc": "..." }
    ]
  },
  "fourPillars": {
    "chart": { ... },
    "basic": "...",
    "charts": [
      { "title": "木", "value": 0, "desc": "..." }
    ],
    "itemsA": [
      { "title": "...", "desc": "..." }
    ],
    "itemsB": [
      { "title": "...", "desc": "..." }
    ],
    "itemsC": [
      { "title": "...", "desc": "..." }
    ]
  },
  "section4": {
    "content": "...",
    "charts": [
      { "title": "...", "value": 0, "desc": "..." }
    ],
    "items": [
      { "title": "...", "desc": "..." }
    ]
  }
}

【文字数ルール】
- tarotExplanation：500文字以内
- astrology：590〜600文字以内
- section1.content：400文字以内
- section2.content：400文字以内
- section2.charts：4項目。各 { titleは12文字以内, valueは整数, descは200〜300文字 }
- section2.items：24項目。各 { titleは12文字以内, descは80文字以内 }
- section3.content：400文字以内
- section3.charts：4項目。各 { titleは12文字以内, valueは整数, descは150文字以内 }
- section3.items：24項目。各 { titleは12文字以内, descは150文字以内 }
- fourPillars.basic：400文字以内
- fourPillars.charts：5項目固定（木火土金水）。各 { titleは2文字以内, valueは0〜100整数, descは100〜150文字 }
- fourPillars.itemsA/B/C：各6項目固定。各 { titleは12文字以内, descは80文字以内 }
- section4.content：400文字以内
- section4.charts：4項目。各 { titleは12文字以内, valueは整数, descは200文字以内 }
- section4.items：18項目。各 { titleは12文字以内, descは200文字以内 }`

const maxTokens = 4000

// completionClient is the slice of the OpenAI client the generator needs.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Generator struct {
	client completionClient
	logger *slog.Logger
}

func NewGenerator(apiKey string, logger *slog.Logger) *Generator {
	return &Generator{
		client: openai.NewClient(apiKey),
		logger: logger.With("source", "Generator"),
	}
}

// NewGeneratorWithClient is used in tests to stub out the OpenAI API.
func NewGeneratorWithClient(client completionClient, logger *slog.Logger) *Generator {
	return &Generator{
		client: client,
		logger: logger.With("source", "Generator"),
	}
}

// Generate produces the full reading for one diagnosis.
func (g *Generator) Generate(ctx context.Context, payload Payload) (*models.GPTReport, error) {
	scores, err := json.Marshal(payload.Scores)
	if err != nil {
		return nil, errors.Wrap(err, "marshal scores")
	}
	percents, err := json.Marshal(payload.Percents)
	if err != nil {
		return nil, errors.Wrap(err, "marshal percents")
	}
	chart, err := json.Marshal(payload.FourPillars.Chart)
	if err != nil {
		return nil, errors.Wrap(err, "marshal four pillars chart")
	}

	userPrompt := fmt.Sprintf(`【入力データ】
tarot: %s（%s）
userId: %s
name: %s
gender: %s
birthday: %s
worryText: %s
type17: %s
scores: %s
percents: %s
fourPillarsChart: %s

それでは、上記スキーマに厳密に従ってJSONのみを出力してください。`,
		payload.Tarot.Name, payload.Tarot.Meaning,
		payload.UserID,
		payload.Profile.Name,
		payload.Profile.Gender,
		payload.Profile.Birthday,
		payload.WorryText,
		payload.Type17,
		scores,
		percents,
		chart,
	)

	completion, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{ //nolint:exhaustruct // this is better for readability
		Model:       openai.GPT4o,
		MaxTokens:   maxTokens,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "create chat completion")
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("completion has no choices")
	}

	report, err := parseReport(completion.Choices[0].Message.Content)
	if err != nil {
		return nil, errors.Wrap(err, "parse generated report")
	}
	return report, nil
}

// parseReport decodes the completion content. Models occasionally wrap the
// JSON in code fences or prose, so on failure it retries with the outermost
// brace-delimited slice.
func parseReport(content string) (*models.GPTReport, error) {
	var report models.GPTReport
	if err := json.Unmarshal([]byte(content), &report); err == nil {
		return &report, nil
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end <= start {
		return nil, errors.New("no JSON object in completion")
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), &report); err != nil {
		return nil, errors.Wrap(err, "unmarshal extracted JSON")
	}
	return &report, nil
}
