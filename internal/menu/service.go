package menu

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// lastUpdated uses millisecond UTC timestamps, e.g. 2026-02-16T09:30:00.000Z.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var ErrEmptyMenu = errors.New("menu document is required")

// Storage archives uploaded workbooks. It is optional.
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
	now     func() time.Time
}

// NewService wires the menu service. storage may be nil, in which case
// uploads are parsed and published without being archived.
func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage, now: time.Now}
}

// --------------------------------------------------
// Current published menu
// --------------------------------------------------
func (s *Service) Current(ctx context.Context) (*Document, error) {
	return s.repo.Get(ctx, CurrentKey)
}

func (s *Service) HasMenu(ctx context.Context) (bool, error) {
	_, err := s.repo.Get(ctx, CurrentKey)
	if errors.Is(err, ErrMenuNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// --------------------------------------------------
// Publish (stamp + replace the current menu)
// --------------------------------------------------
func (s *Service) Publish(
	ctx context.Context,
	doc *Document,
	username string,
) (*Document, error) {

	if doc == nil {
		return nil, ErrEmptyMenu
	}

	stamped := *doc
	stamped.LastUpdated = s.now().UTC().Format(timestampLayout)
	stamped.UpdatedBy = username

	if err := s.repo.Upsert(ctx, CurrentKey, &stamped); err != nil {
		return nil, fmt.Errorf("store menu: %w", err)
	}

	log.Printf("✅ menu published by %s (%d sheets)", username, len(stamped.Sheets))
	return &stamped, nil
}

// --------------------------------------------------
// Preview (parse only, nothing stored)
// --------------------------------------------------
func (s *Service) Preview(data []byte) (*Document, error) {
	return Parse(data)
}

// --------------------------------------------------
// Upload workbook (parse, archive, publish)
// --------------------------------------------------
func (s *Service) UploadMenu(
	ctx context.Context,
	data []byte,
	filename string,
	username string,
) (*Document, error) {

	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if s.storage != nil {
		key := archiveKey(filename)
		if _, err := s.storage.Upload(ctx, key, bytes.NewReader(data), xlsxContentType); err != nil {
			// the parsed menu is still published
			log.Printf("⚠️ archive %s failed: %v", key, err)
		} else {
			log.Printf("✅ archived %s as %s", filename, key)
		}
	}

	return s.Publish(ctx, doc, username)
}

func archiveKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".xlsx"
	}
	return fmt.Sprintf("menus/%s%s", uuid.New().String(), ext)
}
