package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/dolarame/ativos/internal/core/domain"
	"github.com/dolarame/ativos/internal/core/ports"
)

// Notification messages emitted by the store
const (
	MsgLoadFailed = "Erro ao carregar ativos."
	MsgCreated    = "Ativo adicionado com sucesso!"
)

// Snapshot is an immutable view of the store state
type Snapshot struct {
	Assets     []domain.Asset
	Filtered   []domain.Asset // Assets matching SearchTerm, derived
	SearchTerm string
	Loading    bool
	Draft      domain.Candidate
	Version    uint64 // Increases with every state change
}

// NotFound reports whether the list view should render its empty state.
// Loading takes precedence.
func (s Snapshot) NotFound() bool {
	return !s.Loading && len(s.Filtered) == 0
}

// Listener receives a snapshot after every state change
type Listener func(Snapshot)

// NotifyListener receives every notification emitted by the store
type NotifyListener func(domain.Notification)

// AssetStore holds the current list of ativos, the search term, the loading
// flag and the form draft. It owns the fetch-and-refresh cycle.
type AssetStore struct {
	gateway ports.AssetGateway
	logger  *zap.Logger

	mu         sync.RWMutex
	assets     []domain.Asset
	searchTerm string
	loading    bool
	draft      domain.Candidate
	version    uint64

	// pubMu orders deliveries: listeners never see an older snapshot
	// after a newer one
	pubMu sync.Mutex

	subMu     sync.Mutex
	nextSubID int
	listeners map[int]Listener
	notifiers map[int]NotifyListener
}

// NewAssetStore creates a new store backed by gateway
func NewAssetStore(gateway ports.AssetGateway, logger *zap.Logger) *AssetStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssetStore{
		gateway:   gateway,
		logger:    logger,
		assets:    []domain.Asset{},
		listeners: make(map[int]Listener),
		notifiers: make(map[int]NotifyListener),
	}
}

// Subscribe registers fn to be called after every state change.
// The returned function removes the subscription.
func (s *AssetStore) Subscribe(fn Listener) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.listeners[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.listeners, id)
	}
}

// OnNotify registers fn to be called for every notification.
// The returned function removes the subscription.
func (s *AssetStore) OnNotify(fn NotifyListener) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.notifiers[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.notifiers, id)
	}
}

// Snapshot returns the current state with the filtered projection
func (s *AssetStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assets := make([]domain.Asset, len(s.assets))
	copy(assets, s.assets)

	return Snapshot{
		Assets:     assets,
		Filtered:   FilterByName(assets, s.searchTerm),
		SearchTerm: s.searchTerm,
		Loading:    s.loading,
		Draft:      s.draft,
		Version:    s.version,
	}
}

// Refresh fetches the full list from the service and replaces the current
// one. On failure the previous list is kept and an error notification is
// emitted. There is no retry.
func (s *AssetStore) Refresh(ctx context.Context) error {
	s.update(func() { s.loading = true })

	assets, err := s.gateway.List(ctx)
	if err != nil {
		s.update(func() { s.loading = false })

		// A cancelled context means the caller went away; nobody is left to notify
		if errors.Is(err, context.Canceled) {
			return err
		}

		s.logger.Error("failed to load ativos", zap.Error(err))
		s.notify(domain.NewError(MsgLoadFailed))
		return fmt.Errorf("failed to load ativos: %w", err)
	}

	if assets == nil {
		assets = []domain.Asset{}
	}

	s.update(func() {
		s.assets = assets
		s.loading = false
	})
	s.logger.Debug("ativos loaded", zap.Int("count", len(assets)))

	return nil
}

// Create validates the candidate and registers it with the service. Invalid
// candidates never reach the network. On success the draft is cleared and
// the list is refreshed; the in-memory list is never modified optimistically.
func (s *AssetStore) Create(ctx context.Context, candidate domain.Candidate) error {
	candidate = candidate.Normalize()

	if err := domain.ValidateCandidate(candidate); err != nil {
		s.notify(domain.NewError(err.Error()))
		return err
	}

	asset := candidate.ToAsset()
	if err := s.gateway.Create(ctx, asset); err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}

		s.logger.Warn("failed to create ativo",
			zap.String("nome", asset.Name),
			zap.Error(err))
		s.notify(domain.NewError(err.Error()))
		return err
	}

	s.logger.Info("ativo created", zap.String("nome", asset.Name))

	s.update(func() { s.draft = domain.Candidate{} })
	s.notify(domain.NewSuccess(MsgCreated))

	// Refresh reports its own failures
	_ = s.Refresh(ctx)

	return nil
}

// SetSearchTerm replaces the search term
func (s *AssetStore) SetSearchTerm(term string) {
	s.update(func() { s.searchTerm = term })
}

// SetDraft replaces the form draft
func (s *AssetStore) SetDraft(c domain.Candidate) {
	s.update(func() { s.draft = c })
}

// Draft returns the current form draft
func (s *AssetStore) Draft() domain.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft
}

// update applies fn under the write lock and publishes the new snapshot.
// Listeners run outside the state lock but must not modify the store.
func (s *AssetStore) update(fn func()) {
	s.mu.Lock()
	fn()
	s.version++
	s.mu.Unlock()

	s.publish()
}

func (s *AssetStore) publish() {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	snap := s.Snapshot()

	s.subMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.subMu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}

func (s *AssetStore) notify(n domain.Notification) {
	s.subMu.Lock()
	notifiers := make([]NotifyListener, 0, len(s.notifiers))
	for _, fn := range s.notifiers {
		notifiers = append(notifiers, fn)
	}
	s.subMu.Unlock()

	for _, fn := range notifiers {
		fn(n)
	}
}
