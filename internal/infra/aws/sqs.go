package aws

import (
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"abohawa-api/pkg/resource"
)

// NewSqsClient builds an SQS client, pointing it at the custom endpoint
// (LocalStack) when one is configured.
func NewSqsClient() *sqs.Client {
	return sqs.NewFromConfig(Config, func(o *sqs.Options) {
		if endpoint := resource.GetString("app.cloud.aws-endpoint"); endpoint != "" {
			o.BaseEndpoint = &endpoint
		}
	})
}
