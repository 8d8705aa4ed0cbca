package main

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/hupe1980/idkey/blobstore"
	"github.com/hupe1980/idkey/blobstore/minio"
	"github.com/hupe1980/idkey/blobstore/s3"
	"github.com/hupe1980/idkey/internal/config"
)

// openStore builds the catalog store and the CURRENT pointer store of the
// configured backend.
func openStore(ctx context.Context, cfg config.StoreConfig) (blobstore.Store, blobstore.PointerStore, error) {
	switch cfg.Backend {
	case config.BackendLocal:
		store := blobstore.NewLocalStore(cfg.Path)
		return store, blobstore.NewBlobPointerStore(store, ""), nil

	case config.BackendS3:
		var opts []s3.Option
		if cfg.Prefix != "" {
			opts = append(opts, s3.WithPrefix(cfg.Prefix))
		}
		if cfg.Region != "" {
			opts = append(opts, s3.WithRegion(cfg.Region))
		}
		store, err := s3.New(ctx, cfg.Bucket, opts...)
		if err != nil {
			return nil, nil, err
		}
		if cfg.PointerTable == "" {
			return store, blobstore.NewBlobPointerStore(store, ""), nil
		}

		var loadOpts []func(*awsconfig.LoadOptions) error
		if cfg.Region != "" {
			loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, nil, fmt.Errorf("load AWS config: %w", err)
		}
		ddb := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			o.RetryMaxAttempts = 5
		})
		baseURI := "s3://" + cfg.Bucket + "/" + cfg.Prefix
		return store, s3.NewPointerStore(ddb, cfg.PointerTable, baseURI), nil

	case config.BackendMinio:
		store, err := minio.Dial(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, cfg.Secure, cfg.Bucket, cfg.Prefix)
		if err != nil {
			return nil, nil, err
		}
		return store, blobstore.NewBlobPointerStore(store, ""), nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
