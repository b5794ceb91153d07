package ai

import "strings"

const analyzeSystemPrompt = "You are an expert PC gaming crash troubleshooting assistant. " +
	"You diagnose crash logs and provide likely causes with probabilities and concrete fix steps."

// analyzePromptTemplate pins the response format so the breakdown section
// can be extracted afterwards. The headings must not change without
// updating pkg/breakdown.
const analyzePromptTemplate = `You are a professional PC gaming crash analyst.

Always respond in this EXACT format (use the headings exactly):

Quick Fix First:
- (3 bullets max: fastest high-impact fixes first)

Issue:
(1-2 sentence summary of what the error likely means)

Confidence Level:
(Low / Medium / High)

Probability Breakdown:
- Driver/software issue: __%
- Overheating/thermal: __%
- API conflict (DX11/DX12/Vulkan): __%
- Power/PSU/unstable clocks: __%
- Hardware failure: __%
(Percentages must sum to 100)

Most Likely Cause:
- (bullets)

Recommended Fix Steps:
1. (numbered steps, clear actions)

Need More Info:
- (ONLY if information is insufficient)

Context (if provided):
- Game: {{game}}
- GPU: {{gpu}}
- Driver: {{driver}}
- Graphics API Mode: {{apiMode}}

Crash Log / Error:
{{log}}`

// AnalyzeContext carries the optional request metadata echoed into the
// prompt's context block.
type AnalyzeContext struct {
	GameTitle     string
	GPUModel      string
	DriverVersion string
	APIMode       string
}

// SystemPrompt returns the system prompt for crash analysis.
func SystemPrompt() string {
	return analyzeSystemPrompt
}

// GetAnalyzePrompt builds the user prompt for a crash log and its context.
func GetAnalyzePrompt(crashLog string, meta AnalyzeContext) string {
	return strings.NewReplacer(
		"{{game}}", orUnknown(meta.GameTitle),
		"{{gpu}}", orUnknown(meta.GPUModel),
		"{{driver}}", orUnknown(meta.DriverVersion),
		"{{apiMode}}", orUnknown(meta.APIMode),
		"{{log}}", strings.TrimSpace(crashLog),
	).Replace(analyzePromptTemplate)
}

func orUnknown(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "Unknown"
	}
	return value
}
