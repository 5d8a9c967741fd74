package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
)

// MenuItemRepository reads menu items. Menus are owned by another system.
type MenuItemRepository interface {
	// GetByIDs resolves all ids in a single lookup. Unknown ids are skipped,
	// so the result may be shorter than the input.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.MenuItem, error)
}
