package sns

import (
	"context"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/go-inventory-agent/internal/config"
)

// AlertPublisher pushes inventory alerts to an SNS topic.
type AlertPublisher interface {
	PublishAlert(ctx context.Context, title, body string, alertCount int) error
}

type publisher struct {
	client   *sns.Client
	topicARN string
}

func NewPublisher(cfg *config.Config) (AlertPublisher, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, err
	}
	return &publisher{client: sns.NewFromConfig(awsCfg), topicARN: cfg.SNSTopicARN}, nil
}

// PublishAlert sends the alert payload: title as subject, body as message,
// timestamp and alert_count as message attributes.
func (p *publisher) PublishAlert(ctx context.Context, title, body string, alertCount int) error {
	_, err := p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Subject:  aws.String(title),
		Message:  aws.String(body),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"timestamp": {
				DataType:    aws.String("String"),
				StringValue: aws.String(time.Now().UTC().Format(time.RFC3339)),
			},
			"alert_count": {
				DataType:    aws.String("Number"),
				StringValue: aws.String(strconv.Itoa(alertCount)),
			},
		},
	})
	return err
}
