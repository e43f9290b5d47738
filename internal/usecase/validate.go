package usecase

import (
	"fmt"

	"github.com/matchday-app/matchday/internal/domain/fixture"
)

func validateDate(date string) error {
	if !fixture.ValidDate(date) {
		return fmt.Errorf("%w: date must be formatted YYYY-MM-DD", ErrInvalidInput)
	}
	return nil
}
