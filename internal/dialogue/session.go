package dialogue

import (
	"context"
	"sync"
	"time"

	"github.com/orderdesk/internal/cache"
)

// Wizard steps. The step plus the draft is the whole conversation state;
// transitions never consult anything else.
const (
	StepRoot                  = "root"
	StepAuthPassword          = "auth_password"
	StepAuthRole              = "auth_role"
	StepSelectProduct         = "select_product"
	StepSelectPeriod          = "select_period"
	StepSelectPaymentMethod   = "select_payment_method"
	StepSelectPlatform        = "select_platform"
	StepEnterContactInfo      = "enter_contact_info"
	StepEnterComments         = "enter_comments"
	StepConfirmOrder          = "confirm_order"
	StepDeliverySelectOrder   = "delivery_select_order"
	StepDeliveryViewOrder     = "delivery_view_order"
	StepDeliveryEnterComments = "delivery_enter_comments"
)

// DraftOrder is the transient, unpersisted order being assembled by the
// agent wizard. Back-navigation keeps already-entered fields.
type DraftOrder struct {
	Product       string  `json:"product"`
	Period        string  `json:"period"`
	PaymentMethod string  `json:"payment_method"`
	Platform      string  `json:"platform"`
	ContactInfo   string  `json:"contact_info"`
	Comments      *string `json:"comments,omitempty"`
}

// Session is one user's conversation state. It is passed into each
// transition and written back afterwards; handlers never share state.
type Session struct {
	UserID          int64       `json:"user_id"`
	Step            string      `json:"step"`
	Draft           *DraftOrder `json:"draft,omitempty"`
	SelectedOrderNo string      `json:"selected_order_no,omitempty"`
	CompleteOrderNo string      `json:"complete_order_no,omitempty"`
}

// SessionStore owns conversation sessions keyed by user id. A missing
// session yields (nil, nil).
type SessionStore interface {
	Get(ctx context.Context, userID int64) (*Session, error)
	Put(ctx context.Context, session *Session) error
	Delete(ctx context.Context, userID int64) error
}

// MemorySessionStore is the default in-process store.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewMemorySessionStore creates an empty in-memory store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[int64]*Session)}
}

// Get returns a copy of the stored session.
func (s *MemorySessionStore) Get(ctx context.Context, userID int64) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[userID]
	if !ok {
		return nil, nil
	}
	copied := *session
	if session.Draft != nil {
		draft := *session.Draft
		copied.Draft = &draft
	}
	return &copied, nil
}

// Put stores the session.
func (s *MemorySessionStore) Put(ctx context.Context, session *Session) error {
	if session == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	if session.Draft != nil {
		draft := *session.Draft
		copied.Draft = &draft
	}
	s.sessions[session.UserID] = &copied
	return nil
}

// Delete removes a session.
func (s *MemorySessionStore) Delete(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}

const cacheSessionTTL = 24 * time.Hour

// CacheSessionStore keeps sessions in the shared cache so a restarted
// process resumes conversations. Used only when the cache is enabled.
type CacheSessionStore struct{}

// NewCacheSessionStore creates a cache-backed store.
func NewCacheSessionStore() *CacheSessionStore {
	return &CacheSessionStore{}
}

// Get reads the session snapshot; a cache miss yields (nil, nil).
func (s *CacheSessionStore) Get(ctx context.Context, userID int64) (*Session, error) {
	var session Session
	hit, err := cache.GetJSON(ctx, cache.SessionKey(userID), &session)
	if err != nil || !hit {
		return nil, err
	}
	return &session, nil
}

// Put writes the session snapshot.
func (s *CacheSessionStore) Put(ctx context.Context, session *Session) error {
	if session == nil {
		return nil
	}
	return cache.SetJSON(ctx, cache.SessionKey(session.UserID), session, cacheSessionTTL)
}

// Delete removes the session snapshot.
func (s *CacheSessionStore) Delete(ctx context.Context, userID int64) error {
	return cache.Del(ctx, cache.SessionKey(userID))
}
