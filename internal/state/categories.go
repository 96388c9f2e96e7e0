package state

import (
	"context"

	"github.com/ovenworks/bakeryadmin/internal/models"
)

func (s *Store) FetchCategories(ctx context.Context) error {
	s.mu.Lock()
	s.categories = pending(s.categories)
	s.mu.Unlock()

	items, err := s.client.ListCategories(ctx)
	if err != nil {
		s.mu.Lock()
		s.categories = rejected(s.categories, errMessage(err))
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.categories = fulfilledList(s.categories, items)
	s.mu.Unlock()
	return nil
}

func (s *Store) FetchCategoryByID(ctx context.Context, id uint) error {
	s.mu.Lock()
	s.categories = pending(s.categories)
	s.mu.Unlock()

	category, err := s.client.GetCategory(ctx, id)
	if err != nil {
		s.mu.Lock()
		s.categories = rejected(s.categories, errMessage(err))
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.categories = fulfilledGet(s.categories, category)
	s.mu.Unlock()
	return nil
}

func (s *Store) CreateCategory(ctx context.Context, payload models.CategoryPayload) error {
	s.mu.Lock()
	s.categories = pending(s.categories)
	s.mu.Unlock()

	category, err := s.client.CreateCategory(ctx, payload)
	if err != nil {
		s.mu.Lock()
		s.categories = rejected(s.categories, errMessage(err))
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.categories = fulfilledCreate(s.categories, category)
	s.mu.Unlock()
	return nil
}

func (s *Store) UpdateCategory(ctx context.Context, id uint, payload models.CategoryPayload) error {
	s.mu.Lock()
	s.categories = pending(s.categories)
	s.mu.Unlock()

	category, err := s.client.UpdateCategory(ctx, id, payload)
	if err != nil {
		s.mu.Lock()
		s.categories = rejected(s.categories, errMessage(err))
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.categories = fulfilledUpdate(s.categories, category)
	s.mu.Unlock()
	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, id uint) error {
	s.mu.Lock()
	s.categories = pending(s.categories)
	s.mu.Unlock()

	deleted, err := s.client.DeleteCategory(ctx, id)
	if err != nil {
		s.mu.Lock()
		s.categories = rejected(s.categories, errMessage(err))
		s.mu.Unlock()
		return err
	}

	// Deleting a category does not cascade into products; a dangling
	// category_id is resolved as CategoryNotFound at display time.
	s.mu.Lock()
	s.categories = fulfilledDelete(s.categories, deleted)
	s.mu.Unlock()
	return nil
}

func (s *Store) ClearCategoriesError() {
	s.mu.Lock()
	s.categories = clearError(s.categories)
	s.mu.Unlock()
}

func (s *Store) ClearSelectedCategory() {
	s.mu.Lock()
	s.categories = clearSelected(s.categories)
	s.mu.Unlock()
}
