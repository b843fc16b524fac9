package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-inventory-agent/internal/domain"
)

// ChatHistoryRepo provides typed DynamoDB operations for the chat_history table.
type ChatHistoryRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewChatHistoryRepo(client *dynamodb.Client, tableName string) *ChatHistoryRepo {
	return &ChatHistoryRepo{client: client, tableName: tableName}
}

func (r *ChatHistoryRepo) Put(ctx context.Context, e *domain.ChatExchange) error {
	item, err := attributevalue.MarshalMap(e)
	if err != nil {
		return fmt.Errorf("marshal chat exchange: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}
