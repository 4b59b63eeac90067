package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/worklane/hrms-backend-go/internal/domain/auth"
	"github.com/worklane/hrms-backend-go/internal/domain/employee"
	"github.com/worklane/hrms-backend-go/internal/pkg/email"
	"github.com/worklane/hrms-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	employee.EmployeeRepository
	jwtService   jwt.Service
	emailService email.EmailService
}

func NewService(employeeRepository employee.EmployeeRepository, jwtService jwt.Service, emailService email.EmailService) *Service {
	return &Service{
		EmployeeRepository: employeeRepository,
		jwtService:         jwtService,
		emailService:       emailService,
	}
}

// Login authenticates against the company email. Unknown emails and bad
// passwords return the same error.
func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	emp, err := s.EmployeeRepository.GetByCompanyEmail(ctx, req.Email)
	if err != nil {
		if err == employee.ErrEmailNotFound {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateAccessToken(emp.ID, emp.CompanyEmail, emp.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		EmployeeID:  emp.ID,
		Name:        emp.Name,
		Role:        string(emp.Role),
	}, nil
}

// ForgotPassword issues a six digit one-time code and emails it to the
// employee's personal address.
func (s *Service) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	emp, err := s.EmployeeRepository.GetByCompanyEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	otp, err := generateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	if err := s.EmployeeRepository.SetResetOTP(ctx, emp.ID, &otp); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}

	if err := s.emailService.SendPasswordResetOTP(emp.Email, emp.Name, otp); err != nil {
		return fmt.Errorf("failed to send otp email: %w", err)
	}

	return nil
}

// ChangePassword consumes the one-time code and replaces the password.
func (s *Service) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	emp, err := s.EmployeeRepository.GetByCompanyEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	if emp.ResetOTP == nil || *emp.ResetOTP != req.OTP {
		return auth.ErrInvalidOTP
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.EmployeeRepository.UpdatePassword(ctx, emp.ID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	// The code is single use.
	if err := s.EmployeeRepository.SetResetOTP(ctx, emp.ID, nil); err != nil {
		return fmt.Errorf("failed to clear otp: %w", err)
	}

	return nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
