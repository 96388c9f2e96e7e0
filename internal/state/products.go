package state

import (
	"context"

	"github.com/ovenworks/bakeryadmin/internal/models"
)

func (s *Store) FetchProducts(ctx context.Context) error {
	s.mu.Lock()
	s.products = pending(s.products)
	s.mu.Unlock()

	items, err := s.client.ListProducts(ctx)
	if err != nil {
		s.mu.Lock()
		s.products = rejected(s.products, errMessage(err))
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.products = fulfilledList(s.products, items)
	s.mu.Unlock()
	return nil
}

func (s *Store) FetchProductByID(ctx context.Context, id uint) error {
	s.mu.Lock()
	s.products = pending(s.products)
	s.mu.Unlock()

	product, err := s.client.GetProduct(ctx, id)
	if err != nil {
		s.mu.Lock()
		s.products = rejected(s.products, errMessage(err))
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.products = fulfilledGet(s.products, product)
	s.mu.Unlock()
	return nil
}

func (s *Store) CreateProduct(ctx context.Context, payload models.ProductPayload) error {
	s.mu.Lock()
	s.products = pending(s.products)
	s.mu.Unlock()

	product, err := s.client.CreateProduct(ctx, payload)
	if err != nil {
		s.mu.Lock()
		s.products = rejected(s.products, errMessage(err))
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.products = fulfilledCreate(s.products, product)
	s.mu.Unlock()
	return nil
}

func (s *Store) UpdateProduct(ctx context.Context, id uint, payload models.ProductPayload) error {
	s.mu.Lock()
	s.products = pending(s.products)
	s.mu.Unlock()

	product, err := s.client.UpdateProduct(ctx, id, payload)
	if err != nil {
		s.mu.Lock()
		s.products = rejected(s.products, errMessage(err))
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.products = fulfilledUpdate(s.products, product)
	s.mu.Unlock()
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id uint) error {
	s.mu.Lock()
	s.products = pending(s.products)
	s.mu.Unlock()

	deleted, err := s.client.DeleteProduct(ctx, id)
	if err != nil {
		s.mu.Lock()
		s.products = rejected(s.products, errMessage(err))
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.products = fulfilledDelete(s.products, deleted)
	s.mu.Unlock()
	return nil
}

func (s *Store) ClearProductsError() {
	s.mu.Lock()
	s.products = clearError(s.products)
	s.mu.Unlock()
}

func (s *Store) ClearSelectedProduct() {
	s.mu.Lock()
	s.products = clearSelected(s.products)
	s.mu.Unlock()
}
