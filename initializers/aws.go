package initializers

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/lithammer/shortuuid/v4"
)

// Presigner mints short-lived PUT URLs so clients can upload bytes
// straight to the bucket; this service only ever stores the object key.
type Presigner struct {
	presign *s3.PresignClient
	bucket  string
}

func NewPresigner(ctx context.Context, region, bucket string) (*Presigner, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}

	return &Presigner{
		presign: s3.NewPresignClient(s3.NewFromConfig(cfg)),
		bucket:  bucket,
	}, nil
}

func (p *Presigner) UploadURL(ctx context.Context, key, contentType string) (string, error) {
	req, err := p.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// ObjectKey builds a collision-safe bucket key for an uploaded file.
func ObjectKey(filename string) string {
	return shortuuid.New() + "_" + filename
}
