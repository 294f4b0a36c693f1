package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/dolarame/ativos/internal/core/domain"
	"github.com/dolarame/ativos/internal/core/ports"
)

// ImportEntry is one record of an import file. Valor is decoded loosely so
// that a non-numeric value is reported per entry instead of failing the file.
type ImportEntry struct {
	Nome  string `yaml:"nome"`
	Valor any    `yaml:"valor"`
	Data  string `yaml:"data"`
}

// Candidate converts the entry into raw form fields
func (e ImportEntry) Candidate() domain.Candidate {
	value := ""
	if e.Valor != nil {
		value = fmt.Sprint(e.Valor)
	}
	return domain.Candidate{Name: e.Nome, Value: value, Date: e.Data}
}

type importFile struct {
	Ativos []ImportEntry `yaml:"ativos"`
}

// ParseImportFile decodes a YAML (or JSON) import file. Both a top-level list
// of entries and a mapping with an "ativos" list are accepted.
func ParseImportFile(data []byte) ([]domain.Candidate, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse import file: %w", err)
	}
	if len(root.Content) == 0 {
		return []domain.Candidate{}, nil
	}

	var entries []ImportEntry
	switch root.Content[0].Kind {
	case yaml.SequenceNode:
		if err := root.Content[0].Decode(&entries); err != nil {
			return nil, fmt.Errorf("failed to decode entries: %w", err)
		}
	case yaml.MappingNode:
		var f importFile
		if err := root.Content[0].Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to decode entries: %w", err)
		}
		entries = f.Ativos
	default:
		return nil, fmt.Errorf("import file must contain a list of ativos")
	}

	return lo.Map(entries, func(e ImportEntry, _ int) domain.Candidate {
		return e.Candidate()
	}), nil
}

// ImportService registers many ativos at once
type ImportService struct {
	gateway    ports.AssetGateway
	store      *AssetStore
	maxWorkers int
	logger     *zap.Logger
}

// NewImportService creates a new import service. Requests run with at most
// maxWorkers in flight.
func NewImportService(gateway ports.AssetGateway, store *AssetStore, maxWorkers int, logger *zap.Logger) *ImportService {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{
		gateway:    gateway,
		store:      store,
		maxWorkers: maxWorkers,
		logger:     logger,
	}
}

// ImportRequest represents a batch of candidates to register
type ImportRequest struct {
	Candidates []domain.Candidate
}

// ImportResult is the outcome of a single entry
type ImportResult struct {
	Index     int
	Candidate domain.Candidate
	Err       error
}

// OK reports whether the entry was created
func (r ImportResult) OK() bool {
	return r.Err == nil
}

// ImportResponse summarizes an import run
type ImportResponse struct {
	Results []ImportResult
	Created int
	Failed  int
}

// Execute validates every candidate and creates the valid ones. A failing
// entry does not stop the others. The store is refreshed once at the end
// when anything was created.
func (s *ImportService) Execute(ctx context.Context, req ImportRequest) (*ImportResponse, error) {
	results := make([]ImportResult, len(req.Candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)

	for i, c := range req.Candidates {
		c = c.Normalize()
		results[i] = ImportResult{Index: i, Candidate: c}

		if err := domain.ValidateCandidate(c); err != nil {
			results[i].Err = err
			continue
		}

		g.Go(func() error {
			if err := s.gateway.Create(gctx, c.ToAsset()); err != nil {
				s.logger.Warn("import entry failed",
					zap.Int("index", i),
					zap.String("nome", c.Name),
					zap.Error(err))
				results[i].Err = err
			}
			// Entries fail independently
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	created := lo.CountBy(results, func(r ImportResult) bool { return r.OK() })
	resp := &ImportResponse{
		Results: results,
		Created: created,
		Failed:  len(results) - created,
	}

	if created > 0 && s.store != nil {
		// Refresh reports its own failures
		_ = s.store.Refresh(ctx)
	}

	return resp, nil
}

// Summary renders a one-line description of the run
func (r *ImportResponse) Summary() string {
	parts := []string{fmt.Sprintf("%d criado(s)", r.Created)}
	if r.Failed > 0 {
		parts = append(parts, fmt.Sprintf("%d com erro", r.Failed))
	}
	return strings.Join(parts, ", ")
}
