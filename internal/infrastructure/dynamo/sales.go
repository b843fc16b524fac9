package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-inventory-agent/internal/domain"
)

// SaleRepo provides typed DynamoDB operations for the sales table.
type SaleRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewSaleRepo(client *dynamodb.Client, tableName string) *SaleRepo {
	return &SaleRepo{client: client, tableName: tableName}
}

func (r *SaleRepo) Put(ctx context.Context, s *domain.Sale) error {
	item, err := attributevalue.MarshalMap(s)
	if err != nil {
		return fmt.Errorf("marshal sale: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// Scan returns a point-in-time snapshot of all sales records.
func (r *SaleRepo) Scan(ctx context.Context) ([]domain.Sale, error) {
	var sales []domain.Sale
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var page []domain.Sale
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		sales = append(sales, page...)
		if out.LastEvaluatedKey == nil {
			return sales, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// ListByProduct queries the product_id GSI.
func (r *SaleRepo) ListByProduct(ctx context.Context, productID string) ([]domain.Sale, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("product_id-index"),
		KeyConditionExpression: aws.String("product_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: productID},
		},
	})
	if err != nil {
		return nil, err
	}
	var sales []domain.Sale
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}
