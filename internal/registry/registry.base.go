// Package registry cung cấp registry pattern với generic type, thread-safe.
// Dùng cho các singleton của ứng dụng: database và collection MongoDB.
package registry

import (
	"fmt"
	"sync"

	"github.com/NareeyaChenu/rfm-project/internal/common"
)

// Registry là một thread-safe generic registry.
//
// Example:
//
//	colRegistry := NewRegistry[*mongo.Collection]()
//	colRegistry.Register("sales_orders", col)
//	if col, exists := colRegistry.Get("sales_orders"); exists {
//	    ...
//	}
type Registry[T any] struct {
	items map[string]T
	mu    sync.RWMutex
}

// NewRegistry tạo và trả về một registry mới
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register đăng ký một item vào registry, ghi đè nếu name đã tồn tại.
// Trả về isNew = true nếu là item mới.
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get lấy item theo tên.
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}
