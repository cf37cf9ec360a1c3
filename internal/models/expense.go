package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Expense struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Title      string          `gorm:"type:varchar(255);not null" json:"title"`
	Amount     decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	Date       time.Time       `gorm:"not null;index" json:"date"`
	Notes      *string         `gorm:"type:text" json:"notes,omitempty"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`

	User     User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}

	return e.Validate()
}

func (e *Expense) Validate() error {
	if e.Title == "" {
		return errors.New("title is required")
	}

	if !e.Amount.IsPositive() {
		return errors.New("amount must be positive")
	}

	if e.UserID == uuid.Nil {
		return errors.New("user reference is required")
	}

	if e.CategoryID == uuid.Nil {
		return errors.New("category reference is required")
	}

	return nil
}

func (e *Expense) TableName() string {
	return "expenses"
}
