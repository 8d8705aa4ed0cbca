// Package s3 provides Amazon S3 implementations of the blobstore interfaces.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("keys/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
//	pointers := s3.NewPointerStore(dynamodb.NewFromConfig(cfg), "idkey-pointers", "s3://my-bucket/keys/")
//
// # Features
//
//   - Multipart uploads for large catalogs via the S3 transfer manager
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
//   - DynamoDB conditional writes for the CURRENT pointer
package s3
