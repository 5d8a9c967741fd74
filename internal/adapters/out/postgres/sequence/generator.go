// Package sequence implements named monotonically increasing counters on top
// of a single PostgreSQL table.
package sequence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// CounterDTO is one named counter. Sequence holds the last value handed out.
type CounterDTO struct {
	Name     string `gorm:"primaryKey;size:64"`
	Sequence int64  `gorm:"not null"`
}

func (CounterDTO) TableName() string {
	return "counters"
}

// nextValueSQL creates the counter at 1 or increments it in one statement, so
// concurrent first calls cannot both observe a missing row.
const nextValueSQL = `
	INSERT INTO counters (name, sequence)
	VALUES (?, 1)
	ON CONFLICT (name) DO UPDATE SET sequence = counters.sequence + 1
	RETURNING sequence
`

// GormSequenceGenerator implements SequenceGenerator. When constructed with a
// transaction handle the increment is rolled back together with it.
type GormSequenceGenerator struct {
	db *gorm.DB
}

func NewGormSequenceGenerator(db *gorm.DB) *GormSequenceGenerator {
	return &GormSequenceGenerator{db: db}
}

func (g *GormSequenceGenerator) NextValue(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, errs.NewValueIsRequiredError("sequence name")
	}

	var value int64
	err := g.db.WithContext(ctx).Raw(nextValueSQL, name).Row().Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, errs.NewInvariantViolationError(fmt.Sprintf("counter %q returned no value", name))
	}
	if err != nil {
		return 0, err
	}

	if value < 1 {
		return 0, errs.NewInvariantViolationError(fmt.Sprintf("counter %q returned %d", name, value))
	}

	return value, nil
}
