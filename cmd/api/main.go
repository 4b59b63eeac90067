package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/worklane/hrms-backend-go/internal/config"
	appHTTP "github.com/worklane/hrms-backend-go/internal/handler/http"
	"github.com/worklane/hrms-backend-go/internal/pkg/database"
	"github.com/worklane/hrms-backend-go/internal/pkg/email"
	"github.com/worklane/hrms-backend-go/internal/pkg/jwt"
	"github.com/worklane/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/worklane/hrms-backend-go/internal/service/attendance"
	authService "github.com/worklane/hrms-backend-go/internal/service/auth"
	employeeService "github.com/worklane/hrms-backend-go/internal/service/employee"
	leaveService "github.com/worklane/hrms-backend-go/internal/service/leave"
	orgService "github.com/worklane/hrms-backend-go/internal/service/org"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	txManager := postgresql.NewTxManager(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	orgSvc := orgService.NewService(assignmentRepo)
	leaveSvc := leaveService.NewService(txManager, orgSvc, leaveRequestRepo, leaveBalanceRepo)
	attendanceSvc := attendanceService.NewService(txManager, orgSvc, attendanceRepo, projectRepo)
	employeeSvc := employeeService.NewService(employeeRepo, assignmentRepo)
	authSvc := authService.NewService(employeeRepo, jwtService, emailService)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, orgSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		leaveHandler,
		attendanceHandler,
		employeeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
