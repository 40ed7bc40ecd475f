package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlatformFee is a fee schedule definition. Service offerings hold a weak
// reference to a fee; deleting or deactivating a fee never touches the
// offerings pointing at it.
type PlatformFee struct {
	ID             uuid.UUID        `json:"id" db:"id"`
	FeeName        string           `json:"fee_name" db:"fee_name"`
	FeePercentage  *decimal.Decimal `json:"fee_percentage,omitempty" db:"fee_percentage"`
	FeeFixedAmount *decimal.Decimal `json:"fee_fixed_amount,omitempty" db:"fee_fixed_amount"`
	IsActive       bool             `json:"is_active" db:"is_active"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at" db:"updated_at"`
}
