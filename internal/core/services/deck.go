package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/custodia-labs/slidedeck/internal/core/domain"
	"github.com/custodia-labs/slidedeck/internal/core/ports/driven"
	"github.com/custodia-labs/slidedeck/internal/core/ports/driving"
	"github.com/custodia-labs/slidedeck/internal/logger"
)

// Ensure DeckService implements the interface.
var _ driving.DeckService = (*DeckService)(nil)

// StateKey is the state store key holding the persisted deck.
const StateKey = "slides"

const defaultRenderBase = "presentation"

var tracer = otel.Tracer("slidedeck/services")

// DeckService owns the editing session. All access goes through a single
// mutex so the TUI, the MCP server and a file watcher can share one service.
type DeckService struct {
	mu      sync.RWMutex
	session *domain.Session

	states   driven.StateStore
	files    driven.DocumentFile
	codec    driven.MarkdownCodec
	renderer driven.DeckRenderer

	exportFileName string
}

// NewDeckService creates a deck service holding the default deck.
// Call Load to restore persisted state. states, files and renderer may be nil;
// operations that need them then return domain.ErrNotImplemented, except
// persistence which is skipped.
func NewDeckService(
	states driven.StateStore,
	files driven.DocumentFile,
	codec driven.MarkdownCodec,
	renderer driven.DeckRenderer,
) *DeckService {
	return &DeckService{
		session:        domain.NewSession(domain.DefaultDeck()),
		states:         states,
		files:          files,
		codec:          codec,
		renderer:       renderer,
		exportFileName: domain.DefaultExportFileName,
	}
}

// SetExportFileName sets the file Export writes when no path is given.
func (s *DeckService) SetExportFileName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name != "" {
		s.exportFileName = name
	}
}

// Load restores the persisted deck.
func (s *DeckService) Load(ctx context.Context) (err error) {
	ctx, span := tracer.Start(ctx, "DeckService.Load")
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.states == nil {
		s.session = domain.NewSession(domain.DefaultDeck())
		return nil
	}

	data, err := s.states.Get(ctx, StateKey)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		logger.Debug("no saved deck, using default slides")
		s.session = domain.NewSession(domain.DefaultDeck())
		return nil
	case err != nil:
		return fmt.Errorf("reading saved deck: %w", err)
	}

	deck, decodeErr := domain.DecodeDocument(data)
	if decodeErr != nil {
		logger.Warn("saved deck is unreadable, using default slides: %v", decodeErr)
		s.session = domain.NewSession(domain.DefaultDeck())
		return nil
	}

	logger.Debug("loaded %d slides", len(deck))
	s.session = domain.NewSession(deck)
	span.SetAttributes(attribute.Int("deck.slides", len(deck)))
	return nil
}

// Slides returns a copy of the deck.
func (s *DeckService) Slides() domain.Deck {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Slides.Clone()
}

// Slide returns a copy of the slide at index.
func (s *DeckService) Slide(index int) (domain.Slide, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkIndex(index); err != nil {
		return nil, err
	}
	return domain.CloneSlide(s.session.Slides[index]), nil
}

// Len returns the number of slides.
func (s *DeckService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Len()
}

// Add appends the default slide of type t.
func (s *DeckService) Add(ctx context.Context, t domain.SlideType) (index int, err error) {
	ctx, span := tracer.Start(ctx, "DeckService.Add",
		trace.WithAttributes(attribute.String("slide.type", t.String())))
	defer func() { endSpan(span, err) }()

	slide, err := domain.NewSlide(t)
	if err != nil {
		return -1, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	index = s.session.Append(slide)
	s.persist(ctx)
	return index, nil
}

// Update applies a form edit to the slide at index.
func (s *DeckService) Update(ctx context.Context, index int, edit domain.SlideEdit) (err error) {
	ctx, span := tracer.Start(ctx, "DeckService.Update",
		trace.WithAttributes(attribute.Int("slide.index", index)))
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkIndex(index); err != nil {
		return err
	}

	updated, err := edit.Apply(s.session.Slides[index])
	if err != nil {
		return err
	}
	if err := s.session.Replace(index, updated); err != nil {
		return err
	}
	s.persist(ctx)
	return nil
}

// Replace swaps the slide at index.
func (s *DeckService) Replace(ctx context.Context, index int, slide domain.Slide) (err error) {
	ctx, span := tracer.Start(ctx, "DeckService.Replace",
		trace.WithAttributes(attribute.Int("slide.index", index)))
	defer func() { endSpan(span, err) }()

	if slide == nil {
		return fmt.Errorf("%w: slide is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.session.Replace(index, domain.CloneSlide(slide)); err != nil {
		return err
	}
	s.persist(ctx)
	return nil
}

// Delete removes the slide at index.
func (s *DeckService) Delete(ctx context.Context, index int) (err error) {
	ctx, span := tracer.Start(ctx, "DeckService.Delete",
		trace.WithAttributes(attribute.Int("slide.index", index)))
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.session.Delete(index); err != nil {
		return err
	}
	s.persist(ctx)
	return nil
}

// Markdown renders the deck as a markdown document.
func (s *DeckService) Markdown() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.codec.Serialize(s.session.Slides)
}

// CommitMarkdown replaces the deck with the slides parsed from doc.
func (s *DeckService) CommitMarkdown(ctx context.Context, doc string) (err error) {
	ctx, span := tracer.Start(ctx, "DeckService.CommitMarkdown")
	defer func() { endSpan(span, err) }()

	deck := s.codec.Parse(doc)
	span.SetAttributes(attribute.Int("deck.slides", len(deck)))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Slides = deck
	s.session.Clamp()
	s.persist(ctx)
	return nil
}

// Export writes the deck as a presentation document.
func (s *DeckService) Export(ctx context.Context, path string) (written string, err error) {
	ctx, span := tracer.Start(ctx, "DeckService.Export")
	defer func() { endSpan(span, err) }()

	if s.files == nil {
		return "", domain.ErrNotImplemented
	}

	s.mu.RLock()
	if path == "" {
		path = s.exportFileName
	}
	data, err := domain.EncodeDocument(s.session.Slides)
	s.mu.RUnlock()
	if err != nil {
		return "", err
	}

	span.SetAttributes(attribute.String("file.path", path))
	if err := s.files.WriteFile(ctx, path, data); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Info("exported deck to %s", path)
	return path, nil
}

// Import replaces the deck with the presentation document at path.
// On failure the error is logged and the deck is left unchanged.
func (s *DeckService) Import(ctx context.Context, path string) (err error) {
	ctx, span := tracer.Start(ctx, "DeckService.Import",
		trace.WithAttributes(attribute.String("file.path", path)))
	defer func() { endSpan(span, err) }()

	if s.files == nil {
		return domain.ErrNotImplemented
	}

	data, err := s.files.ReadFile(ctx, path)
	if err != nil {
		logger.Error("import %s: %v", path, err)
		return fmt.Errorf("reading %s: %w", path, err)
	}

	deck, err := domain.DecodeDocument(data)
	if err != nil {
		logger.Error("import %s: %v", path, err)
		return fmt.Errorf("importing %s: %w", path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.ReplaceAll(deck)
	s.persist(ctx)
	logger.Info("imported %d slides from %s", len(deck), path)
	return nil
}

// Render writes a standalone rendition of the deck.
func (s *DeckService) Render(ctx context.Context, path string) (written string, err error) {
	ctx, span := tracer.Start(ctx, "DeckService.Render")
	defer func() { endSpan(span, err) }()

	if s.renderer == nil || s.files == nil {
		return "", domain.ErrNotImplemented
	}
	if path == "" {
		path = defaultRenderBase + s.renderer.Extension()
	}

	data, err := s.renderer.Render(s.Slides())
	if err != nil {
		return "", fmt.Errorf("rendering deck: %w", err)
	}

	span.SetAttributes(attribute.String("file.path", path))
	if err := s.files.WriteFile(ctx, path, data); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// Current returns the index of the displayed slide.
func (s *DeckService) Current() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Current
}

// Next advances one slide.
func (s *DeckService) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Next()
}

// Prev retreats one slide.
func (s *DeckService) Prev() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Prev()
}

// GoTo moves to index, clamped to the deck.
func (s *DeckService) GoTo(index int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.GoTo(index)
}

// StartPresenting enters presentation mode.
func (s *DeckService) StartPresenting() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Presenting = true
}

// StopPresenting leaves presentation mode.
func (s *DeckService) StopPresenting() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Presenting = false
}

// Presenting reports whether presentation mode is active.
func (s *DeckService) Presenting() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Presenting
}

// persist writes the whole deck to the state store. Failures are logged
// and otherwise ignored. Callers must hold the write lock.
func (s *DeckService) persist(ctx context.Context) {
	if s.states == nil {
		return
	}

	data, err := domain.EncodeDocument(s.session.Slides)
	if err != nil {
		logger.Warn("could not encode deck for saving: %v", err)
		return
	}
	if err := s.states.Put(ctx, StateKey, data); err != nil {
		logger.Warn("could not save deck: %v", err)
		trace.SpanFromContext(ctx).AddEvent("persist failed",
			trace.WithAttributes(attribute.String("error", err.Error())))
	}
}

func (s *DeckService) checkIndex(index int) error {
	if index < 0 || index >= s.session.Len() {
		return fmt.Errorf("%w: slide %d (deck has %d)", domain.ErrNotFound, index+1, s.session.Len())
	}
	return nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
