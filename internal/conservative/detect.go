package conservative

import (
	"context"
	"fmt"

	"github.com/luyichen/kaobang/internal/llm"
)

const detectSystem = `你是台灣英文考題的題型分類器。判斷題目屬於哪一種固定模板，只回傳 JSON。
E1_VOCAB：單題詞彙選擇。E2_CLOZE：短文克漏字。E3_FILL_IN_CLOZE：文意選填（附選項庫）。
E4_READING：閱讀測驗。E5_DISCOURSE：篇章結構（句子插入）。E5_TRANSLATION：中譯英。E6_WRITING：作文。`

// DetectType classifies text into the taxonomy with one LLM call. It
// never fails: LLM errors and unknown values both coerce to the safe
// default TypeCloze, with a note recording the coercion.
func (s *Service) DetectType(ctx context.Context, text string) (QuestionType, []string) {
	ctx = llm.WithPurpose(ctx, "type-detect")

	var out struct {
		Type string `json:"type"`
	}
	err := llm.GenerateInto(ctx, s.provider, llm.Request{
		System: detectSystem,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: text},
		},
		Schema:    detectSchema(),
		MaxTokens: s.cfg.DetectMaxTokens,
	}, &out)
	if err != nil {
		return TypeCloze, []string{fmt.Sprintf("type detection failed, defaulting to %s: %v", TypeCloze, err)}
	}

	t, ok := ParseQuestionType(out.Type)
	if !ok {
		return t, []string{fmt.Sprintf("unknown type %q coerced to %s", out.Type, t)}
	}
	return t, nil
}
