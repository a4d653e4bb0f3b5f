package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// PostsJSON 构造包含 n 条有效帖子的 {"posts":[...]} 文档
func PostsJSON(n int) string {
	posts := make([]map[string]string, n)
	for i := 0; i < n; i++ {
		posts[i] = map[string]string{
			"hook": fmt.Sprintf("Хук номер %d 🚀", i+1),
			"body": fmt.Sprintf("Основной текст поста %d.\n\nВторой абзац.", i+1),
			"cta":  fmt.Sprintf("Что вы думаете? (%d)", i+1),
		}
	}

	doc, err := json.Marshal(map[string]interface{}{"posts": posts})
	if err != nil {
		panic(err)
	}
	return string(doc)
}

// FencedJSON 把文档包进 markdown 代码块
func FencedJSON(doc string) string {
	return "```json\n" + doc + "\n```"
}

// GeminiBody 把模型输出文本包进 generateContent 的响应信封
func GeminiBody(text string) string {
	body, err := json.Marshal(map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"role": "model",
					"parts": []map[string]string{
						{"text": text},
					},
				},
				"finishReason": "STOP",
			},
		},
	})
	if err != nil {
		panic(err)
	}
	return string(body)
}

// NewGeminiStub 启动一个返回固定模型输出的假上游
// 返回的计数器指针记录收到的请求数
func NewGeminiStub(t *testing.T, text string) (*httptest.Server, *int) {
	t.Helper()

	calls := new(int)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		if !strings.Contains(r.URL.Path, ":generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, GeminiBody(text))
	}))
	t.Cleanup(srv.Close)

	return srv, calls
}

// NewGeminiStubFunc 启动自定义行为的假上游（延迟、错误响应等）
func NewGeminiStubFunc(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}
