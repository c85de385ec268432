package checkout

import (
	"strings"

	"github.com/fjod/foodbay/internal/domain"
)

// FieldErrors maps a delivery form field to a message.
type FieldErrors map[string]string

// ValidateDeliveryInfo reports every required field that is blank.
// Instructions are optional.
func ValidateDeliveryInfo(info domain.DeliveryInfo) FieldErrors {
	errs := FieldErrors{}
	required := []struct {
		field, value, message string
	}{
		{"full_name", info.FullName, "Name is required"},
		{"address", info.Address, "Address is required"},
		{"city", info.City, "City is required"},
		{"zip_code", info.ZipCode, "ZIP code is required"},
		{"phone", info.Phone, "Phone is required"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs[r.field] = r.message
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
