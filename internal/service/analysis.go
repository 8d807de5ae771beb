package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"readapi/internal/model"
	"readapi/internal/readability"
	"readapi/internal/repository"
	"readapi/internal/storage"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrIDRequired    = errors.New("id is required")
	ErrNotFound      = errors.New("document not found")
	ErrReaderNil     = errors.New("reader is nil")
)

// DocumentListResult is the service-level DTO for paginated documents.
type DocumentListResult struct {
	Items []model.Document `json:"data"`
	Total int              `json:"total"`
}

// AnalyzedDocument pairs a stored document with its readability record.
type AnalyzedDocument struct {
	Document *model.Document          `json:"document"`
	Result   *model.ReadabilityResult `json:"result"`
}

// AnalysisService defines the use cases for scoring and managing documents.
type AnalysisService interface {
	// Upload stores the document text in object storage, scores it, and
	// persists both the metadata row and the readability record. The object
	// is rolled back if any database save fails. A text that yields zero
	// sentences is rejected with readability.ErrNoSentences.
	Upload(ctx context.Context, title string, r io.Reader, contentType string) (*AnalyzedDocument, error)

	// Analyze scores a batch of ad-hoc (title, text) pairs without touching
	// storage. Every input gets an outcome; a failing document never hides
	// the others.
	Analyze(ctx context.Context, inputs []readability.Input) []readability.Outcome

	// List returns stored documents using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*DocumentListResult, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// Result returns the stored readability record for a document.
	Result(ctx context.Context, id string) (*model.ReadabilityResult, error)

	// Reanalyze re-reads the document text from storage, recomputes the
	// readability record, and replaces the stored one.
	Reanalyze(ctx context.Context, id string) (*model.ReadabilityResult, error)

	// DownloadURL returns a pre-signed URL for fetching the raw text.
	DownloadURL(ctx context.Context, id string, expiry time.Duration) (string, error)

	// Delete removes a document from both storage and the repository; the
	// readability record cascades.
	Delete(ctx context.Context, id string) error
}

// analysisService is a concrete implementation of AnalysisService.
type analysisService struct {
	store   storage.Storage
	docs    repository.DocumentRepository
	results repository.ResultRepository
	scorer  *readability.Scorer
	workers int
	metrics *Metrics
}

// NewAnalysisService constructs a new AnalysisService. metrics may be nil.
func NewAnalysisService(
	store storage.Storage,
	docs repository.DocumentRepository,
	results repository.ResultRepository,
	scorer *readability.Scorer,
	workers int,
	metrics *Metrics,
) AnalysisService {
	if scorer == nil {
		scorer = readability.NewScorer(nil)
	}
	return &analysisService{
		store:   store,
		docs:    docs,
		results: results,
		scorer:  scorer,
		workers: workers,
		metrics: metrics,
	}
}

func (s *analysisService) Upload(ctx context.Context, title string, r io.Reader, contentType string) (*AnalyzedDocument, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if title == "" {
		return nil, ErrTitleRequired
	}

	// The text is needed twice, for scoring and for storage, so it is read
	// up front rather than streamed.
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document text: %w", err)
	}

	// Score before writing anywhere; an empty document never reaches
	// storage or the database.
	res, err := s.scorer.Score(title, string(text))
	if err != nil {
		s.metrics.observe(err)
		return nil, err
	}

	id := uuid.New().String()
	key := filepath.ToSlash(filepath.Join("documents", id+".txt"))

	objInfo, err := s.store.Put(ctx, key, bytes.NewReader(text), storage.PutObjectOptions{
		Size:        int64(len(text)),
		ContentType: contentType,
		Metadata: map[string]string{
			"title": title,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	doc := &model.Document{
		ID:          id,
		Title:       title,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		ContentType: objInfo.ContentType,
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.docs.Create(ctx, doc)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	record, err := s.results.Upsert(ctx, resultRecord(stored.ID, res))
	if err != nil {
		// Compensate both earlier writes; a document without its record
		// would report 404 on the readability endpoint forever.
		if delErr := s.docs.Delete(ctx, stored.ID); delErr != nil {
			return nil, fmt.Errorf("result save failed: %v; rollback document failed: %v", err, delErr)
		}
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("result save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("result save failed: %w", err)
	}

	s.metrics.observe(nil)
	return &AnalyzedDocument{Document: stored, Result: record}, nil
}

// Analyze scores the batch on the configured worker pool.
func (s *analysisService) Analyze(ctx context.Context, inputs []readability.Input) []readability.Outcome {
	out := s.scorer.ScoreBatch(ctx, inputs, s.workers)
	for _, o := range out {
		s.metrics.observe(o.Err)
	}
	return out
}

// List returns paginated documents without exposing repository types.
func (s *analysisService) List(ctx context.Context, limit, offset int) (*DocumentListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.docs.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &DocumentListResult{Items: res.Items, Total: res.Total}, nil
}

// Get returns a document by ID.
func (s *analysisService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// Result returns the stored readability record for a document.
func (s *analysisService) Result(ctx context.Context, id string) (*model.ReadabilityResult, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	res, err := s.results.FindByDocumentID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

// Reanalyze recomputes the record from the stored text.
func (s *analysisService) Reanalyze(ctx context.Context, id string) (*model.ReadabilityResult, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rc, _, err := s.store.Get(ctx, doc.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("fetch document text: %w", err)
	}
	defer rc.Close()

	text, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read document text: %w", err)
	}

	res, err := s.scorer.Score(doc.Title, string(text))
	s.metrics.observe(err)
	if err != nil {
		return nil, err
	}
	return s.results.Upsert(ctx, resultRecord(doc.ID, res))
}

// DownloadURL returns a pre-signed GET URL for the raw document text.
func (s *analysisService) DownloadURL(ctx context.Context, id string, expiry time.Duration) (string, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return s.store.PresignGet(ctx, doc.StoragePath, expiry)
}

// Delete removes a document from storage, then deletes its record.
func (s *analysisService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	// Delete from storage first; if this fails, keep the DB row so the
	// object reference is not lost.
	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.docs.Delete(ctx, id)
}

func resultRecord(docID string, res *readability.Result) *model.ReadabilityResult {
	return &model.ReadabilityResult{
		DocumentID:    docID,
		Title:         res.Title,
		Sentences:     res.Sentences,
		Polysyllables: res.Polysyllables,
		SMOG:          res.SMOG,
		AnalyzedAt:    time.Now().UTC(),
	}
}
