package s3common

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go/metrics/smithyotelmetrics"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/archivelift/bucketmigrate/internal/protocutils"
)

// connectionIDNamespace namespaces the UUIDv5 used to derive a stable,
// loggable connection id from a set of credentials without ever logging
// the secret key itself.
var connectionIDNamespace = uuid.MustParse("8676c88d-b3f7-44b2-b645-11c28d6bb4c8")

// Credentials identifies one S3-compatible endpoint and bucket.
type Credentials struct {
	Endpoint  string
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
}

// NewAPI constructs a fresh AWS SDK v2 S3 client for these credentials. The
// region is a synthetic label; the endpoint URL is authoritative (spec §6).
func NewAPI(c Credentials) API {
	options := awss3.Options{
		Region:        c.Region,
		BaseEndpoint:  aws.String(protocutils.BuildAddress(c.Endpoint, 0)),
		Credentials:   credentialsProvider(c),
		MeterProvider: smithyotelmetrics.Adapt(otel.GetMeterProvider()),
	}
	return awss3.New(options)
}

func credentialsProvider(c Credentials) aws.CredentialsProviderFunc {
	return func(context.Context) (aws.Credentials, error) {
		return aws.Credentials{
			AccessKeyID:     c.AccessKey,
			SecretAccessKey: c.SecretKey,
		}, nil
	}
}

// ConnectionID returns a stable identifier for this set of credentials,
// suitable for log correlation across a migration run.
func (c Credentials) ConnectionID() string {
	return uuid.NewSHA1(
		connectionIDNamespace,
		[]byte(fmt.Sprintf("%s:%s:%s:%s", c.Endpoint, c.Bucket, c.Region, c.AccessKey)),
	).String()
}

// URI returns a short, scheme-free "host/bucket" label for logging.
func (c Credentials) URI() string {
	endpoint := c.Endpoint
	for _, scheme := range []string{"https", "http"} {
		endpoint = strings.TrimPrefix(endpoint, scheme+"://")
	}
	return fmt.Sprintf("%s/%s", endpoint, c.Bucket)
}
