package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/linkedpost/post_go_server/config"
	"github.com/linkedpost/post_go_server/internal/model"
	"github.com/linkedpost/post_go_server/internal/pkg/gemini"
)

var (
	ErrTimeout      = errors.New("генерация заняла слишком много времени")
	ErrParseFailed  = errors.New("не удалось разобрать ответ модели")
	ErrNoValidPosts = errors.New("ответ модели не содержит валидных постов")
)

// MaxPosts 单次生成返回的帖子上限
const MaxPosts = 5

// 提取 ```json ... ``` 或 ``` ... ``` 代码块
var fenceRegexp = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// 贪婪匹配首个大括号到最后一个大括号
var braceRegexp = regexp.MustCompile(`(?s)\{.*\}`)

type GenerateService struct {
	client  *gemini.Client
	timeout time.Duration
}

func NewGenerateService(client *gemini.Client, cfg *config.Config) *GenerateService {
	return &GenerateService{
		client:  client,
		timeout: time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second,
	}
}

// Generate 按主题与风格生成最多 5 条帖子
func (s *GenerateService) Generate(ctx context.Context, topic, style string) ([]model.Post, error) {
	prompt := buildPrompt(topic, Style(style))

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, err
	}

	parsed, err := parseGeminiResponse(raw)
	if err != nil {
		return nil, err
	}

	// 过滤缺字段的帖子
	valid := make([]model.Post, 0, len(parsed.Posts))
	for _, p := range parsed.Posts {
		if p.Valid() {
			valid = append(valid, p)
		}
	}

	if len(valid) == 0 {
		return nil, ErrNoValidPosts
	}

	// 超过 5 条时截断，不视为错误
	if len(valid) > MaxPosts {
		valid = valid[:MaxPosts]
	}

	return valid, nil
}

// buildPrompt 组装发给模型的完整提示词
func buildPrompt(topic string, style Style) string {
	return fmt.Sprintf(`
Ты - эксперт по созданию вирусных постов для LinkedIn на русском языке.
Твоя задача: создать 5 уникальных постов на тему: "%s"

%s

ВАЖНЫЕ ПРАВИЛА:
1. Каждый пост должен быть 150-200 слов
2. Структура поста:
   - hook: первая строка, которая цепляет внимание (1-2 предложения, интригующие)
   - body: основной текст (короткие абзацы по 1-2 предложения, переносы строк между абзацами)
   - cta: призыв к действию в конце (вопрос или призыв)
3. Используй эмодзи уместно (2-5 на пост)
4. Короткие абзацы для лёгкого чтения
5. Все тексты на русском языке
6. Каждый пост должен быть УНИКАЛЬНЫМ, с разным углом зрения

ФОРМАТ ОТВЕТА (строго JSON):
{
  "posts": [
    {
      "hook": "цепляющая первая строка",
      "body": "основной текст поста с переносами строк",
      "cta": "призыв к действию"
    }
  ]
}

Создай ровно 5 постов. Ответ ТОЛЬКО в формате JSON, без markdown блоков.
`, topic, guidelineFor(style))
}

type parsedResponse struct {
	Posts []model.Post `json:"posts"`
}

// parseGeminiResponse 解析模型的自由文本输出
// 模型偶尔会无视指令包上 markdown 代码块，这里做两级剥离
func parseGeminiResponse(text string) (*parsedResponse, error) {
	cleanText := strings.TrimSpace(text)

	if m := fenceRegexp.FindStringSubmatch(cleanText); m != nil {
		cleanText = strings.TrimSpace(m[1])
	}

	if !strings.HasPrefix(cleanText, "{") {
		if m := braceRegexp.FindString(cleanText); m != "" {
			cleanText = m
		}
	}

	var parsed parsedResponse
	if err := json.Unmarshal([]byte(cleanText), &parsed); err != nil {
		preview := cleanText
		if len(preview) > 500 {
			preview = preview[:500]
		}
		log.Printf("Failed to parse gemini response: %v, text: %s", err, preview)
		return nil, ErrParseFailed
	}

	if len(parsed.Posts) == 0 {
		return nil, ErrNoValidPosts
	}

	return &parsed, nil
}
