package models

import (
	"time"
)

const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleClerk      = "clerk"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"unique;not null"          json:"username"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	Role         string    `gorm:"not null"                 json:"role"`
	IsActive     bool      `gorm:"default:true"             json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type Category struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"not null"                 json:"title"`
	IsActive  bool      `gorm:"default:true"             json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null"                 json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null"                 json:"price"`
	CategoryID  uint      `gorm:"index"                    json:"category_id"`
	Stock       int       `gorm:"not null"                 json:"stock"`
	IsActive    bool      `gorm:"default:true"             json:"is_active"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u User) RecordID() uint     { return u.ID }
func (c Category) RecordID() uint { return c.ID }
func (p Product) RecordID() uint  { return p.ID }

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
