package conservative

import (
	"context"
	"fmt"
	"strings"

	"github.com/luyichen/kaobang/internal/llm"
	"github.com/luyichen/kaobang/internal/qset"
)

var explainSystems = map[QuestionType]string{
	TypeVocab: `你是台灣英文科的解題老師。這是一題單字詞彙選擇題。
回傳正確選項字母、該單字的意思、一句話的理由，並對每個錯誤選項各給一條不選的理由。只回傳 JSON。`,
	TypeCloze: `你是台灣英文科的解題老師。這是一篇克漏字短文。
每個空格回傳一個 slot：index 為空格編號、answer 為正確選項字母、one_line_reason 為一句話理由，
distractor_rejects 必須涵蓋該空格「所有」錯誤選項，每個選項一條理由。只回傳 JSON。`,
	TypeFillInCloze: `你是台灣英文科的解題老師。這是一題文意選填（選項庫配空格）。
每個空格回傳一個 slot：index 為空格編號、answer 為正確選項字母、one_line_reason 為一句話理由，
distractor_rejects 必須涵蓋該空格「所有」錯誤選項，每個選項一條理由。只回傳 JSON。`,
	TypeReading: `你是台灣英文科的解題老師。這是一題閱讀測驗。
回傳正確選項字母、一句話理由，以及 evidence_sentence：必須是原文中「一字不改」的一個句子。只回傳 JSON。`,
	TypeDiscourse: `你是台灣英文科的解題老師。這是一題篇章結構（句子插入）。
每個空格回傳一個 slot：index 為空格編號、answer 為正確選項字母、one_line_reason 為一句話理由，
distractor_rejects 必須涵蓋該空格「所有」錯誤選項，每個選項一條理由。只回傳 JSON。`,
	TypeTranslation: `你是台灣英文科的解題老師。這是一題中譯英。
回傳 translation（自然通順的英文翻譯）與 key_points（評分重點，逐條列出）。只回傳 JSON。`,
	TypeWriting: `你是台灣英文科的解題老師。這是一題英文作文。
回傳 outline（段落大綱，逐條列出）與 sample_opening（示範開頭段）。只回傳 JSON。`,
}

// Explain requests the strictly-shaped explanation for one taxonomy
// value. It never fails: LLM errors, shape mismatches and incomplete
// distractor coverage all fall back to the typed minimal answer, with
// a note recording why.
func (s *Service) Explain(ctx context.Context, text string, t QuestionType) (Answer, []string) {
	ctx = llm.WithPurpose(ctx, "conservative-explain")

	req := llm.Request{
		System: explainSystems[t],
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: text},
		},
		Schema:    explainSchema(t),
		MaxTokens: s.cfg.ExplainMaxTokens,
	}

	answer := Answer{Type: t}
	var err error

	switch t {
	case TypeVocab:
		var v VocabAnswer
		if err = llm.GenerateInto(ctx, s.provider, req, &v); err == nil {
			answer.Vocab = &v
		}
	case TypeCloze, TypeFillInCloze:
		var c ClozeAnswer
		if err = llm.GenerateInto(ctx, s.provider, req, &c); err == nil {
			if err = checkSlotCoverage(text, c.Slots); err == nil {
				answer.Cloze = &c
			}
		}
	case TypeReading:
		var r ReadingAnswer
		if err = llm.GenerateInto(ctx, s.provider, req, &r); err == nil {
			answer.Reading = &r
		}
	case TypeDiscourse:
		var d DiscourseAnswer
		if err = llm.GenerateInto(ctx, s.provider, req, &d); err == nil {
			if err = checkSlotCoverage(text, d.Slots); err == nil {
				answer.Discourse = &d
			}
		}
	case TypeTranslation:
		var tr TranslationAnswer
		if err = llm.GenerateInto(ctx, s.provider, req, &tr); err == nil {
			answer.Translation = &tr
		}
	case TypeWriting:
		var w WritingAnswer
		if err = llm.GenerateInto(ctx, s.provider, req, &w); err == nil {
			answer.Writing = &w
		}
	}

	if err != nil {
		return FallbackAnswer(t), []string{fmt.Sprintf("explanation for %s failed, using fallback: %v", t, err)}
	}
	return answer, nil
}

// checkSlotCoverage verifies that every slot's distractor_rejects
// covers every option letter except the slot's own answer. Coverage is
// only checkable when the question text yields lettered options.
func checkSlotCoverage(text string, slots []ClozeSlot) error {
	labels := optionLabels(text)
	if len(labels) == 0 {
		return nil
	}

	for _, slot := range slots {
		rejected := make(map[string]bool, len(slot.DistractorRejects))
		for _, dr := range slot.DistractorRejects {
			rejected[strings.ToUpper(strings.TrimSpace(dr.Option))] = true
		}
		answer := strings.ToUpper(strings.TrimSpace(slot.Answer))
		for _, label := range labels {
			if label == answer {
				continue
			}
			if !rejected[label] {
				return fmt.Errorf("slot %d: option %s has no rejection reason", slot.Index, label)
			}
		}
	}
	return nil
}

func optionLabels(text string) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, opt := range qset.ExtractOptions(text) {
		if !seen[opt.Label] {
			seen[opt.Label] = true
			labels = append(labels, opt.Label)
		}
	}
	return labels
}
