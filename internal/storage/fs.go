package storage

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/go-chi/chi/v5"
)

const fsRoute = "/receipts"

// FSStorage keeps receipts on local disk and serves them under /receipts.
type FSStorage struct {
	dir     string
	baseURL string
	now     func() time.Time
}

func NewFSStorage(dir, publicBaseURL string) *FSStorage {
	return &FSStorage{
		dir:     dir,
		baseURL: publicBaseURL + fsRoute,
		now:     time.Now,
	}
}

func (s *FSStorage) Upload(_ context.Context, orderID string, file entities.ReceiptFile) (string, error) {
	mtype, err := file.Validate()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create receipts dir: %w", err)
	}

	key := ReceiptKey(orderID, mtype.Extension(), s.now())
	if err := os.WriteFile(filepath.Join(s.dir, key), file.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write receipt %s: %w", key, err)
	}

	return joinURL(s.baseURL, key), nil
}

func (s *FSStorage) Init(r chi.Router) {
	fs := http.StripPrefix(fsRoute, http.FileServer(http.Dir(s.dir)))
	r.Get(fsRoute+"/*", fs.ServeHTTP)
}
