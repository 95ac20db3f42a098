package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// ClientSet loads one shared AWS configuration and hands out service clients
// bound to it.
type ClientSet struct {
	cfg aws.Config
}

// NewClientSet loads the shared configuration for the given profile and
// region. An empty profile falls back to the SDK default chain.
func NewClientSet(ctx context.Context, profile, region string) (*ClientSet, error) {
	opts := []func(*config.LoadOptions) error{}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for profile %q: %w", profile, err)
	}
	return &ClientSet{cfg: cfg}, nil
}

// VerifyIdentity resolves the caller's account id through STS. Report runs call
// it up front so credential problems surface before any query is started.
func (c *ClientSet) VerifyIdentity(ctx context.Context) (string, error) {
	out, err := sts.NewFromConfig(c.cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("failed to resolve caller identity: %w", err)
	}
	return aws.ToString(out.Account), nil
}

func (c *ClientSet) athena() *athena.Client {
	return athena.NewFromConfig(c.cfg)
}

func (c *ClientSet) s3() *s3.Client {
	return s3.NewFromConfig(c.cfg)
}

func (c *ClientSet) sesv2() *sesv2.Client {
	return sesv2.NewFromConfig(c.cfg)
}
