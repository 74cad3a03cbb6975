// Package s3deploy publishes the generated site to S3 and fronts it with a
// CloudFront distribution.
package s3deploy

import (
	"context"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// Uploader is the subset of manager.Uploader the deployer needs.
type Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// DistributionAPI is the subset of the CloudFront client the deployer needs.
type DistributionAPI interface {
	cloudfront.ListDistributionsAPIClient
	CreateDistribution(ctx context.Context, params *cloudfront.CreateDistributionInput, optFns ...func(*cloudfront.Options)) (*cloudfront.CreateDistributionOutput, error)
}

// Deployer uploads a generated site to S3 and fronts it with CloudFront.
type Deployer struct {
	uploader Uploader
	cf       DistributionAPI
	log      *zap.Logger
	now      func() time.Time
}

// New returns a Deployer using the given clients. A nil log discards output.
func New(uploader Uploader, cf DistributionAPI, log *zap.Logger) *Deployer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Deployer{uploader: uploader, cf: cf, log: log.Named("s3deploy"), now: time.Now}
}

// NewFromEnv builds a Deployer from the default AWS credential chain.
func NewFromEnv(ctx context.Context, log *zap.Logger) (*Deployer, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}
	return New(manager.NewUploader(s3.NewFromConfig(cfg)), cloudfront.NewFromConfig(cfg), log), nil
}

// ContentType returns the MIME type for a file name, falling back to
// application/octet-stream.
func ContentType(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// Upload copies every file under outputDir to the bucket, keyed by its
// slash-separated path relative to outputDir. It returns the keys uploaded.
func (d *Deployer) Upload(ctx context.Context, bucketName, outputDir string) ([]string, error) {
	d.log.Info("Starting deployment", zap.String("bucket", bucketName), zap.String("dir", outputDir))

	var keys []string
	err := filepath.WalkDir(outputDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(outputDir, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(relPath)

		if err := d.uploadFile(ctx, bucketName, key, path); err != nil {
			return err
		}
		d.log.Debug("Uploaded file", zap.String("key", key), zap.String("bucket", bucketName))
		keys = append(keys, key)
		return nil
	})
	if err != nil {
		return keys, fmt.Errorf("deployment failed: %w", err)
	}

	d.log.Info("Deployment complete", zap.Int("files", len(keys)))
	return keys, nil
}

func (d *Deployer) uploadFile(ctx context.Context, bucketName, key, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	_, err = d.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(ContentType(path)),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to S3: %w", key, err)
	}
	return nil
}

func originDomain(bucketName string) string {
	return fmt.Sprintf("%s.s3.amazonaws.com", bucketName)
}

// FindDistribution returns the ID of a distribution whose origin is the
// bucket, or "" when there is none.
func (d *Deployer) FindDistribution(ctx context.Context, bucketName string) (string, error) {
	want := originDomain(bucketName)

	paginator := cloudfront.NewListDistributionsPaginator(d.cf, &cloudfront.ListDistributionsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to list CloudFront distributions: %w", err)
		}
		if page.DistributionList == nil {
			continue
		}
		for _, dist := range page.DistributionList.Items {
			if dist.Origins == nil {
				continue
			}
			for _, origin := range dist.Origins.Items {
				if aws.ToString(origin.DomainName) == want {
					return aws.ToString(dist.Id), nil
				}
			}
		}
	}
	return "", nil
}

// EnsureDistribution returns the existing distribution for the bucket or
// creates one.
func (d *Deployer) EnsureDistribution(ctx context.Context, bucketName string) (string, error) {
	distID, err := d.FindDistribution(ctx, bucketName)
	if err != nil {
		return "", fmt.Errorf("failed to check for existing CloudFront distribution: %w", err)
	}
	if distID != "" {
		d.log.Info("CloudFront distribution already exists", zap.String("bucket", bucketName), zap.String("id", distID))
		return distID, nil
	}

	resp, err := d.cf.CreateDistribution(ctx, d.distributionInput(bucketName))
	if err != nil {
		return "", fmt.Errorf("failed to create CloudFront distribution: %w", err)
	}
	if resp.Distribution == nil {
		return "", fmt.Errorf("failed to create CloudFront distribution: empty response")
	}

	d.log.Info("Created CloudFront distribution",
		zap.String("id", aws.ToString(resp.Distribution.Id)),
		zap.String("domain", aws.ToString(resp.Distribution.DomainName)),
	)
	return aws.ToString(resp.Distribution.Id), nil
}

func (d *Deployer) distributionInput(bucketName string) *cloudfront.CreateDistributionInput {
	return &cloudfront.CreateDistributionInput{
		DistributionConfig: &types.DistributionConfig{
			CallerReference: aws.String(fmt.Sprintf("companySite-%d", d.now().Unix())),
			Comment:         aws.String(fmt.Sprintf("CloudFront distribution for S3 bucket %s", bucketName)),
			Enabled:         aws.Bool(true),
			DefaultCacheBehavior: &types.DefaultCacheBehavior{
				TargetOriginId:       aws.String(bucketName),
				ViewerProtocolPolicy: types.ViewerProtocolPolicyRedirectToHttps,
				TrustedSigners:       &types.TrustedSigners{Enabled: aws.Bool(false), Quantity: aws.Int32(0)},
				ForwardedValues: &types.ForwardedValues{
					QueryString: aws.Bool(false),
					Cookies:     &types.CookiePreference{Forward: types.ItemSelectionNone},
				},
				MinTTL: aws.Int64(0),
			},
			Origins: &types.Origins{
				Quantity: aws.Int32(1),
				Items: []types.Origin{
					{
						Id:         aws.String(bucketName),
						DomainName: aws.String(originDomain(bucketName)),
						S3OriginConfig: &types.S3OriginConfig{
							OriginAccessIdentity: aws.String(""),
						},
					},
				},
			},
			PriceClass:        types.PriceClassPriceClass100,
			DefaultRootObject: aws.String("index.html"),
			Restrictions: &types.Restrictions{
				GeoRestriction: &types.GeoRestriction{
					RestrictionType: types.GeoRestrictionTypeNone,
					Quantity:        aws.Int32(0),
				},
			},
			ViewerCertificate: &types.ViewerCertificate{
				CloudFrontDefaultCertificate: aws.Bool(true),
				MinimumProtocolVersion:       types.MinimumProtocolVersionTLSv12016,
				CertificateSource:            types.CertificateSourceCloudfront,
			},
		},
	}
}
