package models

// Template is a parameterized contract source with <PLACEHOLDER> tokens.
type Template struct {
	Name   string `json:"template_name"`
	Source string `json:"template_code"`
}
