package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/UltimateTournament/backoff/v4"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/danthegoodman1/hgcalntuple/gologger"
	"github.com/danthegoodman1/hgcalntuple/utils"
	"github.com/rs/zerolog"
)

var (
	logger = gologger.NewLogger()

	ErrNotS3URL = utils.PermError("not an s3:// url")
	ErrNoKey    = utils.PermError("s3 url has no object key")
)

// IsRemote reports whether p points at object storage rather than the local disk.
func IsRemote(p string) bool {
	return strings.HasPrefix(p, "s3://")
}

// ParseS3URL splits s3://bucket/some/key.root into its bucket and key.
func ParseS3URL(p string) (bucket, key string, err error) {
	u, err := url.Parse(p)
	if err != nil {
		return "", "", fmt.Errorf("error in url.Parse: %s %w", err.Error(), ErrNotS3URL)
	}
	if u.Scheme != "s3" || u.Host == "" {
		return "", "", ErrNotS3URL
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", ErrNoKey
	}
	return u.Host, key, nil
}

func newSession() (*session.Session, error) {
	s3Config := &aws.Config{
		Region: aws.String(utils.AWS_DEFAULT_REGION),
	}
	// without explicit keys the sdk's default chain (profiles, instance roles) applies
	if utils.AWS_ACCESS_KEY_ID != "" {
		s3Config.Credentials = credentials.NewStaticCredentials(utils.AWS_ACCESS_KEY_ID, utils.AWS_SECRET_ACCESS_KEY, "")
	}
	if utils.S3_ENDPOINT != "" {
		s3Config.Endpoint = aws.String(utils.S3_ENDPOINT)
		s3Config.S3ForcePathStyle = aws.Bool(true)
	}

	s3Session, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("error making new session: %w", err)
	}
	return s3Session, nil
}

// NewS3Client builds an s3 client from the environment configuration.
func NewS3Client() (*s3.S3, error) {
	sess, err := newSession()
	if err != nil {
		return nil, err
	}
	return s3.New(sess), nil
}

// Download copies s3://bucket/key to a uniquely named file under FETCH_DIR,
// retrying transient failures. The returned cleanup removes the copy.
func Download(ctx context.Context, bucket, key string) (string, func(), error) {
	ctx = logger.WithContext(ctx)
	logger := zerolog.Ctx(ctx)

	s3Session, err := newSession()
	if err != nil {
		return "", nil, err
	}
	downloader := s3manager.NewDownloader(s3Session)

	localPath := filepath.Join(utils.FETCH_DIR, utils.GenKSortedID("ntuple_")+path.Ext(key))
	cleanup := func() {
		if err := os.Remove(localPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Warn().Err(err).Str("path", localPath).Msg("failed to remove downloaded ntuple")
		}
	}

	s := time.Now()
	attempt := 0
	op := func() error {
		attempt++
		f, err := os.Create(localPath)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("error in os.Create: %w", err))
		}
		defer f.Close()

		_, err = downloader.DownloadWithContext(ctx, f, &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			if isMissingObject(err) {
				return backoff.Permanent(fmt.Errorf("error downloading s3://%s/%s: %w", bucket, key, utils.PermError(err.Error())))
			}
			logger.Warn().Err(err).Int("attempt", attempt).Str("key", key).Msg("download failed, retrying")
			return fmt.Errorf("error downloading s3://%s/%s: %w", bucket, key, err)
		}
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(utils.FETCH_MAX_RETRIES)), ctx)
	if err := backoff.Retry(op, b); err != nil {
		cleanup()
		return "", nil, err
	}

	d := time.Since(s)
	logger.Debug().Str("key", key).Str("localPath", localPath).Int64("durationNS", d.Nanoseconds()).Str("durationHuman", d.String()).Msg("downloaded ntuple from s3")

	return localPath, cleanup, nil
}

func isMissingObject(err error) bool {
	var aerr awserr.Error
	if errors.As(err, &aerr) {
		switch aerr.Code() {
		case s3.ErrCodeNoSuchKey, s3.ErrCodeNoSuchBucket, "NotFound":
			return true
		}
	}
	return false
}
