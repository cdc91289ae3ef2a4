package llm

import (
	"fmt"
	"unicode/utf8"
)

const commitPromptTemplate = `You are a commit message generator.
Based on the following git diff, generate a concise and descriptive commit message.
The message should follow the Conventional Commits format (e.g., feat: ..., fix: ...).
Use %s for the commit message.
Only output the commit message, no other text.

Git Diff:
%s
`

const branchPromptTemplate = `You are a git branch name generator.
Based on the following description, generate a short, concise branch name suffix (kebab-case).
Do NOT include "feature/" or "hotfix/" prefix.
Only output the branch name suffix.

Description: %s
`

func BuildCommitPrompt(diff, language string) string {
	return fmt.Sprintf(commitPromptTemplate, language, TruncateDiff(diff, DiffCharLimit))
}

func BuildBranchPrompt(description string) string {
	return fmt.Sprintf(branchPromptTemplate, description)
}

// TruncateDiff keeps at most limit characters of diff, never splitting a rune.
func TruncateDiff(diff string, limit int) string {
	if utf8.RuneCountInString(diff) <= limit {
		return diff
	}
	count := 0
	for i := range diff {
		if count == limit {
			return diff[:i]
		}
		count++
	}
	return diff
}
