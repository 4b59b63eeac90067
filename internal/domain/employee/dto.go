package employee

import "github.com/worklane/hrms-backend-go/internal/pkg/validator"

// UpdateProfileRequest carries the editable master-record details. A nil
// LocationID leaves the location untouched, matching PUT semantics on the
// fields we expose.
type UpdateProfileRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	LocationID *string `json:"location_id"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid address",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DirectoryEntryResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	CompanyEmail string   `json:"company_email"`
	Role         string   `json:"role"`
	Managers     []string `json:"managers"`
	HRs          []string `json:"hrs"`
}

type NameRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProfileResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	CompanyEmail string   `json:"company_email"`
	Role         string   `json:"role"`
	Location     string   `json:"location,omitempty"`
	Managers     []string `json:"managers"`
	HRs          []string `json:"hrs"`
}
