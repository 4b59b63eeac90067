package auth

import "github.com/worklane/hrms-backend-go/internal/pkg/validator"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var ve validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		ve = append(ve, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		ve = append(ve, validator.ValidationError{Field: "email", Message: "email is not valid"})
	}
	if validator.IsEmpty(r.Password) {
		ve = append(ve, validator.ValidationError{Field: "password", Message: "password is required"})
	}

	if len(ve) > 0 {
		return ve
	}

	return nil
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	EmployeeID  string `json:"employee_id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func (r ForgotPasswordRequest) Validate() error {
	var ve validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		ve = append(ve, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		ve = append(ve, validator.ValidationError{Field: "email", Message: "email is not valid"})
	}

	if len(ve) > 0 {
		return ve
	}

	return nil
}

type ChangePasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

func (r ChangePasswordRequest) Validate() error {
	var ve validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		ve = append(ve, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		ve = append(ve, validator.ValidationError{Field: "email", Message: "email is not valid"})
	}
	if validator.IsEmpty(r.OTP) {
		ve = append(ve, validator.ValidationError{Field: "otp", Message: "otp is required"})
	}
	if validator.IsEmpty(r.NewPassword) {
		ve = append(ve, validator.ValidationError{Field: "new_password", Message: "new_password is required"})
	} else if len(r.NewPassword) < 8 {
		ve = append(ve, validator.ValidationError{Field: "new_password", Message: "new_password must be at least 8 characters"})
	}

	if len(ve) > 0 {
		return ve
	}

	return nil
}
