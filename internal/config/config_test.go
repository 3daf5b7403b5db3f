package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("POSTGRES_USER", "store")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("PAYMENT_GATEWAY_SECRET_KEY", "sk_test")
	t.Setenv("PAYMENT_GATEWAY_PUBLIC_KEY", "pk_test")
	t.Setenv("MAIL_API_KEY", "re_test")
	t.Setenv("MAIL_ADMIN_EMAIL", "admin@example.com")
}

func TestNew_Defaults(t *testing.T) {
	setRequired(t)

	conf := config.New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, "development", conf.Env)
	assert.Equal(t, "fs", conf.Receipts.Backend)
	assert.Equal(t, 2*time.Hour, conf.Checkout.SessionTTL)
	assert.Equal(t, []string{"localhost:9092"}, conf.Kafka.Brokers)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{
			name:    "s3 backend requires bucket",
			env:     map[string]string{"RECEIPTS_BACKEND": "s3", "RECEIPTS_S3_REGION": "eu-west-1"},
			wantErr: true,
		},
		{
			name: "s3 backend with bucket and region",
			env: map[string]string{
				"RECEIPTS_BACKEND":   "s3",
				"RECEIPTS_S3_BUCKET": "receipts",
				"RECEIPTS_S3_REGION": "eu-west-1",
			},
		},
		{
			name:    "unknown receipts backend",
			env:     map[string]string{"RECEIPTS_BACKEND": "gcs"},
			wantErr: true,
		},
		{
			name:    "short jwt secret",
			env:     map[string]string{"AUTH_JWT_SECRET": "short"},
			wantErr: true,
		},
		{
			name:    "unknown env",
			env:     map[string]string{"ENV": "dev"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			err := config.New().Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
