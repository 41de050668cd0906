package helpers

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// NewGCSClient creates a Google Cloud Storage client. If credsPath is empty, ADC is used.
func NewGCSClient(ctx context.Context, credsPath string) (*storage.Client, error) {
	if credsPath == "" {
		return storage.NewClient(ctx)
	}
	return storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
}

// SignedGetURL issues a short-lived V4 signed URL for reading bucket/objectPath.
// With ADC the client signs via the IAM credentials API.
func SignedGetURL(client *storage.Client, bucket, objectPath string, ttl time.Duration) (string, time.Time, error) {
	expires := time.Now().Add(ttl)
	url, err := client.Bucket(bucket).SignedURL(objectPath, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: expires,
	})
	if err != nil {
		return "", time.Time{}, err
	}
	return url, expires, nil
}
