package main

import (
	"fmt"
	"net/http"

	"github.com/frd-security/attendance-backend-go/internal/config"
	appHTTP "github.com/frd-security/attendance-backend-go/internal/handler/http"
	"github.com/frd-security/attendance-backend-go/internal/pkg/database"
	"github.com/frd-security/attendance-backend-go/internal/pkg/jwt"
	"github.com/frd-security/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/frd-security/attendance-backend-go/internal/service/attendance"
	authService "github.com/frd-security/attendance-backend-go/internal/service/auth"
	companyService "github.com/frd-security/attendance-backend-go/internal/service/company"
	staffService "github.com/frd-security/attendance-backend-go/internal/service/staff"
	userService "github.com/frd-security/attendance-backend-go/internal/service/user"
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
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	companySvc := companyService.NewCompanyService(companyRepo)
	staffSvc := staffService.NewStaffService(staffRepo, companyRepo)
	userSvc := userService.NewUserService(userRepo, companyRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, staffRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	staffHandler := appHTTP.NewStaffHandler(staffSvc)
	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	userHandler := appHTTP.NewUserHandler(userSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		attendanceHandler,
		staffHandler,
		companyHandler,
		userHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
