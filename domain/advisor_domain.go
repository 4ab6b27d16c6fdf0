package domain

import "errors"

var (
	MessageSuccessAdvisorReply = "advisor reply generated successfully"
	MessageFailedAdvisorReply  = "failed to generate advisor reply"

	ErrEmptyQuestion = errors.New("question must not be empty")
)

// Advisor reply sources.
const (
	AdvisorSourceAI       = "ai"
	AdvisorSourceRuleBase = "rule_based"
)

type (
	AskAdvisorRequest struct {
		Question string `json:"message" validate:"required,min=1,max=2000"`
	}

	AdvisorResponse struct {
		Reply  string `json:"reply"`
		Source string `json:"source"`
		Intent string `json:"intent"`
	}
)
