package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/vero/internal/config"
	"github.com/MKhiriev/vero/internal/logger"
	"github.com/MKhiriev/vero/internal/utils"
	"github.com/MKhiriev/vero/internal/validators"
	"github.com/MKhiriev/vero/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// objectPresigner is the part of *s3.PresignClient used by the media service.
type objectPresigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type mediaService struct {
	presigner objectPresigner
	bucket    string
	expiry    time.Duration

	validator validators.Validator
	ids       utils.IDGenerator
	now       func() time.Time

	logger *logger.Logger
}

// NewMediaService builds a presigning client for the configured
// S3-compatible endpoint. Signing is local; no request is sent to the
// endpoint until the client uploads.
func NewMediaService(ctx context.Context, cfg config.Media, logger *logger.Logger) (MediaService, error) {
	if !cfg.Enabled() {
		return nil, ErrMediaDisabled
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("error loading object storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return newMediaService(s3.NewPresignClient(client), cfg, logger), nil
}

func newMediaService(presigner objectPresigner, cfg config.Media, logger *logger.Logger) *mediaService {
	expiry := cfg.UploadExpiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	return &mediaService{
		presigner: presigner,
		bucket:    cfg.Bucket,
		expiry:    expiry,
		validator: validators.NewChatValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

// PresignUpload reserves a storage key for an image or voice message and
// returns a presigned PUT URL for it. The key is the mediaId the client
// sends along with the message.
func (m *mediaService) PresignUpload(ctx context.Context, session models.Session, req models.MediaUploadRequest) (models.MediaUpload, error) {
	if session.IsZero() {
		return models.MediaUpload{}, ErrUnauthenticated
	}

	if err := m.validator.Validate(ctx, req); err != nil {
		return models.MediaUpload{}, err
	}

	id, err := m.ids.Generate()
	if err != nil {
		return models.MediaUpload{}, err
	}

	now := m.now().UTC()
	key := mediaKey(req.Kind, now, id)

	presigned, err := m.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(m.expiry))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("key", key).Msg("presigning upload failed")
		return models.MediaUpload{}, fmt.Errorf("presigning upload failed: %w", err)
	}

	return models.MediaUpload{
		MediaRef:  key,
		UploadURL: presigned.URL,
		ExpiresAt: now.Add(m.expiry),
	}, nil
}

// mediaKey returns media/<kind>/<yyyy>/<mm>/<dd>/<id>.
func mediaKey(kind models.MessageKind, at time.Time, id string) string {
	return fmt.Sprintf("media/%s/%s/%s", kind, at.Format("2006/01/02"), id)
}
