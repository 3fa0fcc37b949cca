package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrStatementNotFound = fmt.Errorf("statement %w", ErrNotFound)
	ErrPositionNotFound  = fmt.Errorf("position %w", ErrNotFound)
	ErrBookingNotFound   = fmt.Errorf("booking %w", ErrNotFound)
	ErrCompanyNotFound   = fmt.Errorf("company %w", ErrNotFound)
	ErrNothingToExport   = fmt.Errorf("no bookings to export: %w", ErrNotFound)

	ErrUnsupportedFormat = errors.New("unsupported statement format")
	ErrInvalidFile       = errors.New("invalid statement file")
	ErrNoValidRows       = errors.New("no valid rows in file")
	ErrInvalidDatevFile  = errors.New("not a DATEV file")

	ErrPositionLocked = errors.New("position is already matched")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrInvalidInput   = errors.New("invalid input")
)
