package entities_test

import (
	"bytes"
	"testing"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeFile(header string, size int) []byte {
	data := make([]byte, size)
	copy(data, header)
	return data
}

func TestReceiptFile_Validate(t *testing.T) {
	testCases := []struct {
		name     string
		data     []byte
		wantErr  bool
		wantMIME string
	}{
		{name: "jpeg", data: fakeFile("\xFF\xD8\xFF\xE0", 2<<20), wantMIME: "image/jpeg"},
		{name: "png", data: fakeFile("\x89PNG\r\n\x1a\n", 1024), wantMIME: "image/png"},
		{name: "pdf", data: fakeFile("%PDF-1.7\n", 1024), wantMIME: "application/pdf"},
		{name: "exactly 5MB", data: fakeFile("%PDF-1.4\n", entities.MaxReceiptSize), wantMIME: "application/pdf"},
		{name: "too large", data: fakeFile("\xFF\xD8\xFF\xE0", 6<<20), wantErr: true},
		{name: "plain text", data: []byte("transfer done, trust me"), wantErr: true},
		{name: "gif", data: fakeFile("GIF89a", 512), wantErr: true},
		{name: "empty", data: nil, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mtype, err := entities.ReceiptFile{Name: "receipt", Data: tc.data}.Validate()
			if tc.wantErr {
				var ve *entities.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, "receipt", ve.Field)
				return
			}
			require.NoError(t, err)
			assert.True(t, mtype.Is(tc.wantMIME), "detected %s", mtype.String())
		})
	}
}

func TestReceiptFile_ValidateDoesNotTrustName(t *testing.T) {
	_, err := entities.ReceiptFile{Name: "receipt.pdf", Data: bytes.Repeat([]byte("a"), 100)}.Validate()
	assert.Error(t, err)
}
