package llm

import (
	"context"
	"fmt"
	"strings"
)

// ValidationResult is the user-facing outcome of a key check.
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Details string `json:"details"`
}

const validationPrompt = "테스트"

// ValidateKey checks a candidate API key. Blank keys and keys that do not
// match the provider's prefix convention are rejected without any network
// call; otherwise a single trial generation decides.
func (g *Gateway) ValidateKey(ctx context.Context, candidate string) ValidationResult {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return ValidationResult{
			Valid:   false,
			Message: "❌ API 키가 입력되지 않았습니다.",
			Details: "API 키를 입력해주세요.",
		}
	}

	client := g.newClient(candidate)
	if !strings.HasPrefix(candidate, client.KeyPrefix()) {
		return ValidationResult{
			Valid:   false,
			Message: "❌ API 키 형식이 올바르지 않습니다.",
			Details: fmt.Sprintf("%s API 키는 '%s'로 시작해야 합니다.", client.Name(), client.KeyPrefix()),
		}
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	if _, err := client.Generate(ctx, validationPrompt); err != nil {
		return classifyKeyError(err)
	}

	return ValidationResult{
		Valid:   true,
		Message: "✅ API 키가 유효합니다! 정상적으로 작동합니다.",
		Details: "API 키 검증 성공. 모델 응답 확인 완료.",
	}
}

// classifyKeyError buckets a failed trial call by sniffing the upstream
// error text. Brittle on purpose; keeping it in one place means the
// heuristic can be swapped without touching call sites.
func classifyKeyError(err error) ValidationResult {
	errText := err.Error()
	lower := strings.ToLower(errText)

	switch {
	case strings.Contains(lower, "invalid"):
		return ValidationResult{
			Valid:   false,
			Message: "❌ API 키가 유효하지 않습니다.",
			Details: fmt.Sprintf("오류 내용: %s\n\n올바른 API 키를 입력해주세요.", errText),
		}
	case strings.Contains(lower, "quota") || strings.Contains(lower, "limit"):
		return ValidationResult{
			Valid:   false,
			Message: "⚠️ API 키는 유효하지만 사용량 한도에 도달했습니다.",
			Details: fmt.Sprintf("오류 내용: %s\n\nAPI 사용량을 확인해주세요.", errText),
		}
	default:
		return ValidationResult{
			Valid:   false,
			Message: "❌ API 키 검증 중 오류가 발생했습니다.",
			Details: fmt.Sprintf("오류 내용: %s\n\n네트워크 연결을 확인하거나 잠시 후 다시 시도해주세요.", errText),
		}
	}
}
