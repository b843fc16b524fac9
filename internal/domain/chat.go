package domain

import "time"

// ChatExchange is one stored question/answer pair from the assistant.
type ChatExchange struct {
	ExchangeID string    `json:"id" dynamodbav:"exchange_id"`
	Query      string    `json:"query" dynamodbav:"query"`
	Response   string    `json:"response" dynamodbav:"response"`
	CreatedAt  time.Time `json:"created_at" dynamodbav:"created_at"`
}

// ChatRequest is the payload for an assistant query.
type ChatRequest struct {
	Query string `json:"query" validate:"required"`
}
