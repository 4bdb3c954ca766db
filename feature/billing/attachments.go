package billing

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"admin-setor/feature/billing/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// attachmentPrefix returns the object key prefix for an invoice's files.
func attachmentPrefix(invoiceID uint) string {
	return fmt.Sprintf("invoices/%d/", invoiceID)
}

// UploadAttachment stores a file for an invoice and returns its descriptor.
// The object key is prefixed with a random UUID so repeated uploads of the
// same filename never collide.
func (s *Service) UploadAttachment(ctx context.Context, invoiceID uint, filename string, r io.Reader, size int64, contentType string) (*models.Attachment, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}
	if _, err := s.GetInvoice(ctx, invoiceID); err != nil {
		return nil, err
	}

	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == "/" {
		name = "attachment"
	}
	object := attachmentPrefix(invoiceID) + uuid.NewString() + "_" + name

	info, err := s.storage.PutObject(ctx, s.bucket, object, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}

	return &models.Attachment{
		Object:      strings.TrimPrefix(object, attachmentPrefix(invoiceID)),
		Name:        name,
		Size:        info.Size,
		ContentType: contentType,
	}, nil
}

// ListAttachments returns the descriptors of all files stored for an invoice.
func (s *Service) ListAttachments(ctx context.Context, invoiceID uint) ([]models.Attachment, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}
	if _, err := s.GetInvoice(ctx, invoiceID); err != nil {
		return nil, err
	}

	prefix := attachmentPrefix(invoiceID)
	attachments := []models.Attachment{}
	for info := range s.storage.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list attachments: %w", info.Err)
		}
		object := strings.TrimPrefix(info.Key, prefix)
		attachments = append(attachments, models.Attachment{
			Object:       object,
			Name:         attachmentName(object),
			Size:         info.Size,
			ContentType:  info.ContentType,
			LastModified: info.LastModified,
		})
	}
	return attachments, nil
}

// OpenAttachment returns a reader for a stored file plus its descriptor. The
// caller must close the reader.
func (s *Service) OpenAttachment(ctx context.Context, invoiceID uint, object string) (io.ReadCloser, *models.Attachment, error) {
	if s.storage == nil {
		return nil, nil, ErrStorageDisabled
	}
	key, err := s.attachmentKey(ctx, invoiceID, object)
	if err != nil {
		return nil, nil, err
	}

	info, err := s.storage.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, nil, ErrAttachmentNotFound
	}

	reader, err := s.storage.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open attachment: %w", err)
	}

	return reader, &models.Attachment{
		Object:       object,
		Name:         attachmentName(object),
		Size:         info.Size,
		ContentType:  info.ContentType,
		LastModified: info.LastModified,
	}, nil
}

// DeleteAttachment removes a single stored file.
func (s *Service) DeleteAttachment(ctx context.Context, invoiceID uint, object string) error {
	if s.storage == nil {
		return ErrStorageDisabled
	}
	key, err := s.attachmentKey(ctx, invoiceID, object)
	if err != nil {
		return err
	}

	if _, err := s.storage.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		return ErrAttachmentNotFound
	}
	if err := s.storage.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}

// attachmentKey validates the object name and builds the full object key.
func (s *Service) attachmentKey(ctx context.Context, invoiceID uint, object string) (string, error) {
	if _, err := s.GetInvoice(ctx, invoiceID); err != nil {
		return "", err
	}
	// Reject anything that could escape the invoice's prefix.
	if object == "" || strings.Contains(object, "/") || strings.Contains(object, "..") {
		return "", ErrAttachmentNotFound
	}
	return attachmentPrefix(invoiceID) + object, nil
}

// removeAllAttachments drains the invoice's prefix through RemoveObjects.
func (s *Service) removeAllAttachments(ctx context.Context, invoiceID uint) error {
	prefix := attachmentPrefix(invoiceID)

	objectsCh := make(chan minio.ObjectInfo)
	go func() {
		defer close(objectsCh)
		for info := range s.storage.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
			if info.Err != nil {
				continue
			}
			objectsCh <- info
		}
	}()

	for rmErr := range s.storage.RemoveObjects(ctx, s.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if rmErr.Err != nil {
			return fmt.Errorf("failed to delete attachment %q: %w", rmErr.ObjectName, rmErr.Err)
		}
	}
	return nil
}

// attachmentName strips the UUID prefix from a stored object name.
func attachmentName(object string) string {
	if i := strings.Index(object, "_"); i >= 0 && i+1 < len(object) {
		return object[i+1:]
	}
	return object
}
