package masterdata

import (
	"context"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/masterdata"
	"github.com/procure/backend/internal/domain/shared"
)

// ItemService handles item-related business operations
type ItemService struct {
	itemRepo masterdata.ItemRepository
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo masterdata.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// Create creates a new item
func (s *ItemService) Create(ctx context.Context, tenantID uuid.UUID, req CreateItemRequest) (*ItemResponse, error) {
	existing, err := s.itemRepo.FindByCode(ctx, tenantID, req.Code)
	if err != nil && err != shared.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Item with this code already exists")
	}

	item, err := masterdata.NewItem(tenantID, req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	item.Description = req.Description
	if req.UOMID != nil {
		item.SetUOM(*req.UOMID)
	}
	if req.StandardPrice != nil {
		if err := item.SetStandardPrice(*req.StandardPrice); err != nil {
			return nil, err
		}
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// GetByID retrieves an item scoped to the caller's tenant
func (s *ItemService) GetByID(ctx context.Context, tenantID, itemID uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByIDForTenant(ctx, tenantID, itemID)
	if err != nil {
		return nil, err
	}
	response := ToItemResponse(item)
	return &response, nil
}

// List returns the items of a tenant
func (s *ItemService) List(ctx context.Context, tenantID uuid.UUID, req ListFilter) (*shared.Paginated[ItemResponse], error) {
	filter := buildFilter(req)
	items, total, err := s.itemRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = ToItemResponse(&items[i])
	}
	result := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update updates an item
func (s *ItemService) Update(ctx context.Context, tenantID, itemID uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByIDForTenant(ctx, tenantID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.UOMID != nil {
		item.SetUOM(*req.UOMID)
	}
	if req.StandardPrice != nil {
		if err := item.SetStandardPrice(*req.StandardPrice); err != nil {
			return nil, err
		}
	}
	if req.IsActive != nil {
		if *req.IsActive {
			item.Activate()
		} else {
			item.Deactivate()
		}
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// Delete removes an item
func (s *ItemService) Delete(ctx context.Context, tenantID, itemID uuid.UUID) error {
	return s.itemRepo.Delete(ctx, tenantID, itemID)
}
