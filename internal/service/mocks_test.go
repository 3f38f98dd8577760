package service

import (
	"context"
	"sync"
	"time"

	"homefeed-server/internal/domain"
	"homefeed-server/internal/websocket"
)

// mockItems plays the role of the items table for the entity mocks.
type mockItems map[domain.ItemType]map[int64]*domain.Item

func (m mockItems) put(item *domain.Item) {
	if m[item.Type] == nil {
		m[item.Type] = make(map[int64]*domain.Item)
	}
	copied := *item
	m[item.Type][item.RefID] = &copied
}

func (m mockItems) get(itemType domain.ItemType, refID int64) *domain.Item {
	return m[itemType][refID]
}

func (m mockItems) count() int {
	n := 0
	for _, byRef := range m {
		n += len(byRef)
	}
	return n
}

type mockNoteRepo struct {
	notes  map[int64]*domain.Note
	items  mockItems
	nextID int64
}

func newMockNoteRepo() *mockNoteRepo {
	return &mockNoteRepo{
		notes: make(map[int64]*domain.Note),
		items: make(mockItems),
	}
}

func (m *mockNoteRepo) Create(ctx context.Context, note *domain.Note, item *domain.Item) error {
	m.nextID++
	note.ID = m.nextID
	item.RefID = note.ID
	copied := *note
	m.notes[note.ID] = &copied
	m.items.put(item)
	return nil
}

func (m *mockNoteRepo) Update(ctx context.Context, note *domain.Note, item *domain.Item) error {
	if _, exists := m.notes[note.ID]; !exists {
		return domain.ErrNotFound
	}
	copied := *note
	m.notes[note.ID] = &copied
	item.RefID = note.ID
	m.items.put(item)
	return nil
}

func (m *mockNoteRepo) FindByID(ctx context.Context, id int64) (*domain.Note, error) {
	if n, exists := m.notes[id]; exists {
		return n, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockNoteRepo) Delete(ctx context.Context, id int64) error {
	delete(m.notes, id)
	delete(m.items[domain.ItemTypeNote], id)
	return nil
}

type mockTodoRepo struct {
	todos  map[int64]*domain.Todo
	items  mockItems
	nextID int64
}

func newMockTodoRepo() *mockTodoRepo {
	return &mockTodoRepo{
		todos: make(map[int64]*domain.Todo),
		items: make(mockItems),
	}
}

func (m *mockTodoRepo) Create(ctx context.Context, todo *domain.Todo, item *domain.Item) error {
	m.nextID++
	todo.ID = m.nextID
	item.RefID = todo.ID
	copied := *todo
	m.todos[todo.ID] = &copied
	m.items.put(item)
	return nil
}

func (m *mockTodoRepo) Update(ctx context.Context, todo *domain.Todo, item *domain.Item) error {
	if _, exists := m.todos[todo.ID]; !exists {
		return domain.ErrNotFound
	}
	copied := *todo
	m.todos[todo.ID] = &copied
	item.RefID = todo.ID
	m.items.put(item)
	return nil
}

func (m *mockTodoRepo) FindByID(ctx context.Context, id int64) (*domain.Todo, error) {
	if t, exists := m.todos[id]; exists {
		return t, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockTodoRepo) Delete(ctx context.Context, id int64) error {
	delete(m.todos, id)
	delete(m.items[domain.ItemTypeTodo], id)
	return nil
}

type mockBudgetRepo struct {
	budgets map[int64]*domain.Budget
	items   mockItems
	nextID  int64
}

func newMockBudgetRepo() *mockBudgetRepo {
	return &mockBudgetRepo{
		budgets: make(map[int64]*domain.Budget),
		items:   make(mockItems),
	}
}

func (m *mockBudgetRepo) Create(ctx context.Context, budget *domain.Budget, item *domain.Item) error {
	m.nextID++
	budget.ID = m.nextID
	item.RefID = budget.ID
	copied := *budget
	m.budgets[budget.ID] = &copied
	m.items.put(item)
	return nil
}

func (m *mockBudgetRepo) Update(ctx context.Context, budget *domain.Budget, item *domain.Item) error {
	if _, exists := m.budgets[budget.ID]; !exists {
		return domain.ErrNotFound
	}
	copied := *budget
	m.budgets[budget.ID] = &copied
	item.RefID = budget.ID
	m.items.put(item)
	return nil
}

func (m *mockBudgetRepo) FindByID(ctx context.Context, id int64) (*domain.Budget, error) {
	if b, exists := m.budgets[id]; exists {
		return b, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockBudgetRepo) Delete(ctx context.Context, id int64) error {
	delete(m.budgets, id)
	delete(m.items[domain.ItemTypeBudget], id)
	return nil
}

type mockReminderRepo struct {
	reminders map[int64]*domain.Reminder
	notes     map[int64]bool
	nextID    int64
}

func newMockReminderRepo(noteIDs ...int64) *mockReminderRepo {
	m := &mockReminderRepo{
		reminders: make(map[int64]*domain.Reminder),
		notes:     make(map[int64]bool),
	}
	for _, id := range noteIDs {
		m.notes[id] = true
	}
	return m
}

func (m *mockReminderRepo) Create(ctx context.Context, reminder *domain.Reminder) error {
	if !m.notes[reminder.NoteID] {
		return domain.ErrNotFound
	}
	m.nextID++
	reminder.ID = m.nextID
	copied := *reminder
	m.reminders[reminder.ID] = &copied
	return nil
}

func (m *mockReminderRepo) ListPending(ctx context.Context, noteID int64) ([]*domain.Reminder, error) {
	var out []*domain.Reminder
	for id := int64(1); id <= m.nextID; id++ {
		if r, ok := m.reminders[id]; ok && r.NoteID == noteID && !r.IsSent {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockReminderRepo) ListDue(ctx context.Context, now time.Time) ([]*domain.Reminder, error) {
	var out []*domain.Reminder
	for id := int64(1); id <= m.nextID; id++ {
		if r, ok := m.reminders[id]; ok && !r.IsSent && !r.RemindAt.After(now) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockReminderRepo) MarkSent(ctx context.Context, id int64) (bool, error) {
	r, ok := m.reminders[id]
	if !ok || r.IsSent {
		return false, nil
	}
	r.IsSent = true
	return true, nil
}

func (m *mockReminderRepo) Delete(ctx context.Context, id int64) (int64, error) {
	r, ok := m.reminders[id]
	if !ok {
		return 0, nil
	}
	delete(m.reminders, id)
	return r.NoteID, nil
}

type mockSubscriptionRepo struct {
	subs []string
}

func (m *mockSubscriptionRepo) Create(ctx context.Context, subData string) (bool, error) {
	for _, s := range m.subs {
		if s == subData {
			return false, nil
		}
	}
	m.subs = append(m.subs, subData)
	return true, nil
}

func (m *mockSubscriptionRepo) List(ctx context.Context) ([]*domain.Subscription, error) {
	out := make([]*domain.Subscription, 0, len(m.subs))
	for i, s := range m.subs {
		out = append(out, &domain.Subscription{ID: int64(i + 1), SubData: s})
	}
	return out, nil
}

func (m *mockSubscriptionRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

type publishedEvent struct {
	Type    websocket.MessageType
	Payload interface{}
}

type mockPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (m *mockPublisher) Publish(msgType websocket.MessageType, payload interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, publishedEvent{Type: msgType, Payload: payload})
}

func fixedClock(t time.Time) clock {
	return func() time.Time { return t }
}
