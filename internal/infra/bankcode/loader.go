// Package bankcode loads the SWIFT/BIC reference dataset into an immutable set.
package bankcode

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"payverify/config"
	"payverify/internal/domain/entity"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
)

// Location is a dataset source split into a bucket URL and an object key.
type Location struct {
	BucketURL string
	Key       string
}

// ParseSource resolves a local path or blob URL into a bucket and key.
// Local paths are made absolute and served through fileblob.
func ParseSource(source string) (Location, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return Location{}, errors.New("bank code source is empty")
	}

	if !strings.Contains(source, "://") {
		abs, err := filepath.Abs(source)
		if err != nil {
			return Location{}, errors.Wrapf(err, "resolve %s", source)
		}

		return Location{
			BucketURL: "file://" + filepath.ToSlash(filepath.Dir(abs)),
			Key:       filepath.Base(abs),
		}, nil
	}

	u, err := url.Parse(source)
	if err != nil {
		return Location{}, errors.Wrapf(err, "parse bank code source %s", source)
	}

	var dir, key string
	switch u.Scheme {
	case "file":
		dir, key = path.Split(u.Path)
		dir = "file://" + strings.TrimSuffix(dir, "/")
	default:
		// scheme://bucket/path/to/object
		key = strings.TrimPrefix(u.Path, "/")
		dir = u.Scheme + "://" + u.Host
	}
	if key == "" {
		return Location{}, errors.Errorf("bank code source %s has no object key", source)
	}
	if u.RawQuery != "" {
		dir += "?" + u.RawQuery
	}

	return Location{BucketURL: dir, Key: key}, nil
}

// Load reads the JSON array of dataset records at source and builds the reference set.
func Load(ctx context.Context, source string) (*entity.BankCodeSet, error) {
	loc, err := ParseSource(source)
	if err != nil {
		return nil, err
	}

	bucket, err := blob.OpenBucket(ctx, loc.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", loc.BucketURL)
	}
	defer bucket.Close()

	reader, err := bucket.NewReader(ctx, loc.Key, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", loc.Key)
	}
	defer reader.Close()

	var records []entity.BankCodeRecord
	if err := json.NewDecoder(reader).Decode(&records); err != nil {
		return nil, errors.Wrapf(err, "decode %s", loc.Key)
	}

	return entity.NewBankCodeSet(records), nil
}

// NewReferenceSet loads the dataset once at startup and applies the configured failure policy:
// with failFast the error stops startup, otherwise an empty set is used.
func NewReferenceSet(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*entity.BankCodeSet, error) {
	source := cfg.BankCodes.Source
	start := time.Now()

	set, err := Load(ctx, source)
	if err != nil {
		if cfg.BankCodes.FailFast {
			return nil, errors.Wrap(err, "load bank code reference set")
		}
		logger.Error("Failed to load bank code reference set, continuing with an empty set",
			slog.String("source", source),
			slog.Any("error", err),
		)

		return entity.EmptyBankCodeSet(), nil
	}

	logger.Info("Loaded bank code reference set",
		slog.String("source", source),
		slog.Int("codes", set.Len()),
		slog.Duration("elapsed", time.Since(start)),
	)

	return set, nil
}
