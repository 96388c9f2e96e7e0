package state

import (
	"context"

	"github.com/ovenworks/bakeryadmin/internal/models"
)

func (s *Store) FetchUsers(ctx context.Context) error {
	s.mu.Lock()
	s.users = pending(s.users)
	s.mu.Unlock()

	items, err := s.client.ListUsers(ctx)
	if err != nil {
		s.mu.Lock()
		s.users = rejected(s.users, errMessage(err))
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.users = fulfilledList(s.users, items)
	s.mu.Unlock()
	return nil
}

func (s *Store) FetchUserByID(ctx context.Context, id uint) error {
	s.mu.Lock()
	s.users = pending(s.users)
	s.mu.Unlock()

	user, err := s.client.GetUser(ctx, id)
	if err != nil {
		s.mu.Lock()
		s.users = rejected(s.users, errMessage(err))
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.users = fulfilledGet(s.users, user)
	s.mu.Unlock()
	return nil
}

func (s *Store) CreateUser(ctx context.Context, payload models.UserPayload) error {
	s.mu.Lock()
	s.users = pending(s.users)
	s.mu.Unlock()

	user, err := s.client.CreateUser(ctx, payload)
	if err != nil {
		s.mu.Lock()
		s.users = rejected(s.users, errMessage(err))
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.users = fulfilledCreate(s.users, user)
	s.mu.Unlock()
	return nil
}

func (s *Store) UpdateUser(ctx context.Context, id uint, payload models.UserPayload) error {
	s.mu.Lock()
	s.users = pending(s.users)
	s.mu.Unlock()

	user, err := s.client.UpdateUser(ctx, id, payload)
	if err != nil {
		s.mu.Lock()
		s.users = rejected(s.users, errMessage(err))
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.users = fulfilledUpdate(s.users, user)
	s.mu.Unlock()
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	s.mu.Lock()
	s.users = pending(s.users)
	s.mu.Unlock()

	deleted, err := s.client.DeleteUser(ctx, id)
	if err != nil {
		s.mu.Lock()
		s.users = rejected(s.users, errMessage(err))
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.users = fulfilledDelete(s.users, deleted)
	s.mu.Unlock()
	return nil
}

func (s *Store) ClearUsersError() {
	s.mu.Lock()
	s.users = clearError(s.users)
	s.mu.Unlock()
}

func (s *Store) ClearSelectedUser() {
	s.mu.Lock()
	s.users = clearSelected(s.users)
	s.mu.Unlock()
}
