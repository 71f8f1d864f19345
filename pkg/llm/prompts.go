package llm

import (
	"fmt"
	"strings"
)

func summarizePrompt(articles []Article) string {
	var sb strings.Builder
	sb.WriteString("다음은 수집한 뉴스 기사들입니다:\n\n")
	for i, a := range articles {
		fmt.Fprintf(&sb, "[기사 %d]\n제목: %s\n내용: %s\n\n", i+1, a.Title, a.Summary)
	}

	return fmt.Sprintf(`다음 뉴스 기사들을 읽고 전체적인 요약을 한국어로 작성해주세요.
요약은 3-5문장 정도로 간결하게 작성하고, 주요 내용과 핵심 포인트를 포함해주세요.

%s

요약:`, sb.String())
}

func chatPrompt(articles []Article, message string) string {
	var sb strings.Builder
	sb.WriteString("다음은 수집한 뉴스 기사들입니다:\n\n")
	for i, a := range articles {
		fmt.Fprintf(&sb, "[기사 %d]\n제목: %s\n발행일: %s\n내용: %s\n\n", i+1, a.Title, a.Published, a.Summary)
	}

	return fmt.Sprintf(`당신은 뉴스 분석 전문가입니다. 사용자가 제공한 뉴스 기사들을 바탕으로 질문에 답변해주세요.
뉴스 기사 내용을 참고하여 정확하고 도움이 되는 답변을 한국어로 작성해주세요.

%s

사용자 질문: %s

답변:`, sb.String(), message)
}
