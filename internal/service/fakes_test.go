package service

import (
	"context"
	"sort"
	"sync"

	"foodcourt-system/internal/domain"

	"github.com/shopspring/decimal"
)

// memCatalog is an in-memory double for both repository interfaces. It
// mirrors the Postgres repositories' semantics, with a single mutex playing
// the part of the row locks: validate-then-deduct runs as one critical
// section, so concurrent orders serialize exactly as they do under
// SELECT ... FOR UPDATE.
type memItem struct {
	item         domain.MenuItem
	quantity     int
	hasInventory bool
}

type memCatalog struct {
	mu       sync.Mutex
	nextID   int
	stores   map[int]domain.Store
	items    map[int]*memItem
	failWith error // forced storage failure for every call
}

func newMemCatalog() *memCatalog {
	return &memCatalog{
		nextID: 1,
		stores: make(map[int]domain.Store),
		items:  make(map[int]*memItem),
	}
}

func (m *memCatalog) addStore(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.stores[id] = domain.Store{ID: id, Name: name}
	return id
}

func (m *memCatalog) addItem(storeID int, name string, price string, isActive bool, quantity int, hasInventory bool) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.items[id] = &memItem{
		item: domain.MenuItem{
			ID:       id,
			StoreID:  storeID,
			Name:     name,
			Price:    decimal.RequireFromString(price),
			IsActive: isActive,
		},
		quantity:     quantity,
		hasInventory: hasInventory,
	}
	return id
}

func (m *memCatalog) quantityOf(itemID int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[itemID].quantity
}

func (m *memCatalog) CreateStore(ctx context.Context, name string) (domain.Store, error) {
	if m.failWith != nil {
		return domain.Store{}, m.failWith
	}
	id := m.addStore(name)
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stores[id], nil
}

func (m *memCatalog) DeleteStore(ctx context.Context, storeID int) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.stores[storeID]; !ok {
		return &domain.NotFoundError{Resource: "store"}
	}
	delete(m.stores, storeID)
	for id, it := range m.items {
		if it.item.StoreID == storeID {
			delete(m.items, id)
		}
	}
	return nil
}

func (m *memCatalog) StoreExists(ctx context.Context, storeID int) (bool, error) {
	if m.failWith != nil {
		return false, m.failWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.stores[storeID]
	return ok, nil
}

func (m *memCatalog) CreateMenuItem(ctx context.Context, storeID int, name string, price decimal.Decimal, isActive bool) (domain.MenuItem, error) {
	if m.failWith != nil {
		return domain.MenuItem{}, m.failWith
	}
	if ok, _ := m.StoreExists(ctx, storeID); !ok {
		return domain.MenuItem{}, &domain.NotFoundError{Resource: "store"}
	}
	id := m.addItem(storeID, name, price.String(), isActive, 0, false)
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[id].item, nil
}

func (m *memCatalog) ListMenu(ctx context.Context, storeID int) ([]domain.MenuRow, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.MenuRow, 0)
	for _, it := range m.items {
		if it.item.StoreID == storeID {
			out = append(out, domain.MenuRow{Item: it.item, Quantity: it.quantity})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Item.ID < out[j].Item.ID })
	return out, nil
}

func (m *memCatalog) SetQuantity(ctx context.Context, menuItemID, quantity int) (domain.MenuRow, error) {
	if m.failWith != nil {
		return domain.MenuRow{}, m.failWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[menuItemID]
	if !ok {
		return domain.MenuRow{}, &domain.NotFoundError{Resource: "menu item"}
	}
	it.quantity = quantity
	it.hasInventory = true
	return domain.MenuRow{Item: it.item, Quantity: it.quantity}, nil
}

func (m *memCatalog) PlaceOrder(ctx context.Context, storeID int, lines []domain.OrderLine) ([]domain.PlacedLine, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.stores[storeID]; !ok {
		return nil, &domain.NotFoundError{Resource: "store"}
	}

	placed := make([]domain.PlacedLine, 0, len(lines))
	remaining := make(map[int]int)
	for _, line := range lines {
		it, ok := m.items[line.MenuItemID]
		if !ok || it.item.StoreID != storeID {
			return nil, &domain.NotFoundError{Resource: "menu item"}
		}
		if _, seen := remaining[line.MenuItemID]; !seen {
			remaining[line.MenuItemID] = it.quantity
		}
		if err := domain.CheckOrderLine(it.item, remaining[line.MenuItemID], line.Quantity); err != nil {
			return nil, err
		}
		remaining[line.MenuItemID] -= line.Quantity
		placed = append(placed, domain.PlacedLine{
			MenuItemID: it.item.ID,
			Name:       it.item.Name,
			Quantity:   line.Quantity,
			Remaining:  remaining[line.MenuItemID],
		})
	}

	for id, left := range remaining {
		m.items[id].quantity = left
	}
	return placed, nil
}

// capturePublisher records published events; failWith simulates a broker
// outage.
type capturePublisher struct {
	mu       sync.Mutex
	keys     []string
	bodies   [][]byte
	failWith error
}

func (p *capturePublisher) Publish(ctx context.Context, key string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failWith != nil {
		return p.failWith
	}
	p.keys = append(p.keys, key)
	p.bodies = append(p.bodies, body)
	return nil
}

func (p *capturePublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.keys...)
}
