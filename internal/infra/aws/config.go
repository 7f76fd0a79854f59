package aws

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"abohawa-api/pkg/resource"
)

var Config aws.Config

func init() {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(resource.GetString("app.cloud.aws-region")),
	}

	// Check if custom credentials are provided (LocalStack or CI); otherwise
	// the SDK falls back to its default credential chain.
	if accessKey := resource.GetString("app.cloud.aws-access-key-id"); accessKey != "" {
		secretKey := resource.GetString("app.cloud.aws-secret-access-key")
		if secretKey != "" {
			opts = append(opts, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
		}
	}

	cfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		log.Fatalf("Failed to load AWS configuration: %v", err)
	}

	Config = cfg
}
