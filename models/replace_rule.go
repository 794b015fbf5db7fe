package models

// ReplaceRule maps a word found in comment text to its replacement (usually a Discord mention)
type ReplaceRule struct {
	Word        string `json:"word"`
	Replacement string `json:"replacement"`
}
