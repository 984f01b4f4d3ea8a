package submit_booking

import (
	"regexp"
	"strings"

	"github.com/avkotov/KNS-SeatService/internal/domain"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// validateRequest проверяет контактные данные клиента.
// Выполняется до любых сетевых вызовов.
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" || len(name) > domain.MaxCustomerNameLength {
		return ErrInvalidName
	}

	if !emailPattern.MatchString(strings.TrimSpace(req.CustomerEmail)) {
		return ErrInvalidEmail
	}

	if !phonePattern.MatchString(strings.TrimSpace(req.CustomerPhone)) {
		return ErrInvalidPhone
	}

	return nil
}
