package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// ForgotPassword issues a one-time code to the employee's email.
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error

	// ChangePassword consumes the one-time code and sets a new password.
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
}
