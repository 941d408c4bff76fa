package server

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/attendance"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/auth"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/catalog"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/config"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/dashboard"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/member"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/membership"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/onboarding"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/payment"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/paymentplan"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/session"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/staff"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/user"
)

func registerRoutes(router *gin.Engine, cfg *config.Config, db *sqlx.DB, svcs *Services) {
	userHandler := user.NewHandler(svcs.Users)
	memberHandler := member.NewHandler(svcs.Members)
	catalogHandler := catalog.NewHandler(svcs.Catalog)
	membershipHandler := membership.NewHandler(svcs.Memberships)
	planHandler := paymentplan.NewHandler(svcs.Plans)
	paymentHandler := payment.NewHandler(svcs.Payments)
	onboardingHandler := onboarding.NewHandler(svcs.Onboarding)
	staffHandler := staff.NewHandler(svcs.Staff)
	sessionHandler := session.NewHandler(svcs.Sessions)
	attendanceHandler := attendance.NewHandler(svcs.Attendance)
	dashboardHandler := dashboard.NewHandler(svcs.Dashboard)

	router.GET("/health", Health(db))
	router.GET("/metrics", Metrics())

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)

		protected.POST("/members", memberHandler.CreateMember)
		protected.GET("/members", memberHandler.ListMembers)
		protected.GET("/members/:id", memberHandler.GetMember)
		protected.PATCH("/members/:id", memberHandler.UpdateMember)
		protected.POST("/members/:id/deactivate", memberHandler.DeactivateMember)
		protected.POST("/members/:id/reactivate", memberHandler.ReactivateMember)
		protected.POST("/members/:id/checkin-code", memberHandler.RegenerateCheckinCode)
		protected.GET("/members/:id/memberships", membershipHandler.ListMemberMemberships)
		protected.GET("/members/:id/attendance", attendanceHandler.ListByMember)
		protected.GET("/members/:id/sessions", sessionHandler.ListByMember)

		protected.GET("/packages", catalogHandler.ListPackages)
		protected.GET("/packages/:id", catalogHandler.GetPackage)

		protected.POST("/onboarding", onboardingHandler.Onboard)

		protected.POST("/memberships", membershipHandler.CreateMembership)
		protected.GET("/memberships", membershipHandler.ListMemberships)
		protected.GET("/memberships/expiring", membershipHandler.ListExpiring)
		protected.GET("/memberships/:id", membershipHandler.GetMembership)
		protected.POST("/memberships/:id/freeze", membershipHandler.Freeze)
		protected.POST("/memberships/:id/unfreeze", membershipHandler.Unfreeze)
		protected.POST("/memberships/:id/cancel", membershipHandler.Cancel)
		protected.POST("/memberships/:id/renew", membershipHandler.Renew)
		protected.POST("/memberships/:id/plan", planHandler.CreatePlan)
		protected.GET("/memberships/:id/plan", planHandler.GetMembershipPlan)

		protected.GET("/plans/:id", planHandler.GetPlan)
		protected.GET("/installments/overdue", planHandler.ListOverdue)
		protected.GET("/installments/upcoming", planHandler.ListUpcoming)

		protected.POST("/payments", paymentHandler.RecordPayment)
		protected.GET("/payments", paymentHandler.ListPayments)
		protected.GET("/payments/:id", paymentHandler.GetPayment)

		protected.POST("/attendance/scan", attendanceHandler.Scan)
		protected.POST("/attendance/manual", attendanceHandler.ManualCheckIn)
		protected.POST("/attendance/:id/checkout", attendanceHandler.CheckOut)
		protected.GET("/attendance", attendanceHandler.ListByDay)
		protected.GET("/attendance/daily", attendanceHandler.CountByDay)

		protected.POST("/sessions", sessionHandler.Schedule)
		protected.GET("/sessions/:id", sessionHandler.GetSession)
		protected.POST("/sessions/:id/complete", sessionHandler.Complete)
		protected.POST("/sessions/:id/cancel", sessionHandler.Cancel)
		protected.POST("/sessions/:id/no-show", sessionHandler.MarkNoShow)
		protected.GET("/trainers/:id/sessions", sessionHandler.ListByTrainer)
		protected.GET("/trainers/:id/clients", staffHandler.ListClients)
	}

	adminMiddleware := auth.RequireRole(auth.RoleOwner, auth.RoleAdmin)
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/users", userHandler.CreateUser)
		admin.GET("/users", userHandler.ListUsers)

		admin.POST("/packages", catalogHandler.CreatePackage)
		admin.PATCH("/packages/:id", catalogHandler.UpdatePackage)
		admin.PUT("/packages/:id/active", catalogHandler.SetActive)

		admin.POST("/payments/:id/refund", paymentHandler.RefundPayment)
		admin.GET("/payments/summary", paymentHandler.Summary)
		admin.POST("/installments/:id/waive", planHandler.Waive)

		admin.POST("/staff", staffHandler.CreateStaff)
		admin.GET("/staff", staffHandler.ListStaff)
		admin.GET("/staff/:id", staffHandler.GetStaff)
		admin.PATCH("/staff/:id", staffHandler.UpdateStaff)
		admin.POST("/staff/:id/deactivate", staffHandler.DeactivateStaff)
		admin.PUT("/staff/:id/schedule", staffHandler.SetSchedule)
		admin.GET("/staff/:id/schedule", staffHandler.GetSchedule)
		admin.POST("/staff/:id/clients", staffHandler.AssignClient)
		admin.DELETE("/staff/:id/clients/:memberId", staffHandler.UnassignClient)
		admin.GET("/staff/:id/commission", staffHandler.CommissionReport)

		admin.GET("/dashboard/summary", dashboardHandler.GetSummary)
		admin.GET("/dashboard/revenue", dashboardHandler.RevenueByMonth)
		admin.GET("/dashboard/attendance", dashboardHandler.AttendanceByDay)
		admin.GET("/dashboard/packages", dashboardHandler.PackagePopularity)
	}
}
