package bankcode

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"payverify/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDataset = `[
  {"id": 1, "bank_name": "NATIONAL WESTMINSTER BANK PLC", "bic": "GB29NWBK60161331926819", "country_code": "GB"},
  {"id": 2, "bank_name": "DEUTSCHE BANK AG", "bic": "deutdeff"},
  {"id": 3, "bank_name": "NO CODE"},
  {"id": 4, "bic": "SBZAZAJJ"}
]`

func writeDataset(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "AllCountries_v3.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestParseSource(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		want    Location
		wantErr bool
	}{
		{
			name:   "file url",
			source: "file:///srv/data/AllCountries_v3.json",
			want:   Location{BucketURL: "file:///srv/data", Key: "AllCountries_v3.json"},
		},
		{
			name:   "gcs url",
			source: "gs://reference-data/swift/AllCountries_v3.json",
			want:   Location{BucketURL: "gs://reference-data", Key: "swift/AllCountries_v3.json"},
		},
		{name: "empty", source: "  ", wantErr: true},
		{name: "bucket without key", source: "gs://reference-data", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSource(tt.source)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSource_LocalPath(t *testing.T) {
	path := writeDataset(t, sampleDataset)

	got, err := ParseSource(path)
	require.NoError(t, err)
	assert.Equal(t, "file://"+filepath.ToSlash(filepath.Dir(path)), got.BucketURL)
	assert.Equal(t, "AllCountries_v3.json", got.Key)
}

func TestLoad(t *testing.T) {
	path := writeDataset(t, sampleDataset)

	set, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains(" gb29nwbk60161331926819 "))
	assert.True(t, set.Contains("DEUTDEFF"))
	assert.False(t, set.Contains("CHASUS33"))
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Load(context.Background(), writeDataset(t, `{"bic":`))
		assert.Error(t, err)
	})
}

func TestNewReferenceSet_FailurePolicy(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")

	t.Run("degrades to empty set", func(t *testing.T) {
		cfg := &config.Config{BankCodes: &config.BankCodesConfig{Source: missing}}

		set, err := NewReferenceSet(context.Background(), cfg, slog.Default())
		require.NoError(t, err)
		assert.Equal(t, 0, set.Len())
	})

	t.Run("fail fast", func(t *testing.T) {
		cfg := &config.Config{BankCodes: &config.BankCodesConfig{Source: missing, FailFast: true}}

		set, err := NewReferenceSet(context.Background(), cfg, slog.Default())
		assert.Error(t, err)
		assert.Nil(t, set)
	})

	t.Run("loads configured source", func(t *testing.T) {
		cfg := &config.Config{BankCodes: &config.BankCodesConfig{Source: writeDataset(t, sampleDataset)}}

		set, err := NewReferenceSet(context.Background(), cfg, slog.Default())
		require.NoError(t, err)
		assert.Equal(t, 3, set.Len())
	})
}
