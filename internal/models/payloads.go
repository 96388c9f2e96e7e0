package models

import (
	"errors"
	"strings"
)

// UserPayload carries the writable user fields. Password is optional on
// update: a blank value means "leave unchanged" and is omitted from the
// request body.
type UserPayload struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

func (p *UserPayload) Validate(requirePassword bool) error {
	p.Username = strings.TrimSpace(p.Username)
	if p.Username == "" {
		return errors.New("username is required")
	}
	if requirePassword && p.Password == "" {
		return errors.New("password is required")
	}
	switch p.Role {
	case RoleAdmin, RoleSupervisor, RoleClerk:
	default:
		return errors.New("role must be admin, supervisor or clerk")
	}
	return nil
}

type CategoryPayload struct {
	Title    string `json:"title"`
	IsActive bool   `json:"is_active"`
}

func (p *CategoryPayload) Validate() error {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

// ProductPayload is encoded as a multipart form on the wire. ImagePath
// points at a local file to upload; blank means no image change.
type ProductPayload struct {
	Name        string
	Description string
	Price       float64
	CategoryID  uint
	Stock       int
	IsActive    bool
	ImagePath   string
}

func (p *ProductPayload) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Price <= 0 {
		return errors.New("price must be greater than zero")
	}
	if p.CategoryID == 0 {
		return errors.New("category is required")
	}
	if p.Stock < 0 {
		return errors.New("stock cannot be negative")
	}
	return nil
}
