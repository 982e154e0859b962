package router

import (
	"SiteExer/internal/config"
	"SiteExer/internal/handler"
	"SiteExer/internal/middleware"
	"SiteExer/internal/pkg"
	"SiteExer/internal/service"

	"github.com/gin-gonic/gin"
)

func InitRouter(cfg config.Config) *gin.Engine {
	r := gin.Default()

	emailSvc := service.NewEmailService(pkg.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})

	user := handler.NewUserHandler(service.NewUserService(emailSvc))
	email := handler.NewEmailHandler(emailSvc)
	question := handler.NewQuestionHandler()
	answer := handler.NewAnswerHandler()
	vote := handler.NewVoteHandler()

	emailGroup := r.Group("/api/email")
	{
		emailGroup.POST("/code", email.SendCode)
	}

	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.POST("/reset", user.ResetPassword)
	}

	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.TokenRefresh)
	}

	authGroup := r.Group("/api/auth")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.POST("/logout", user.Logout)
		authGroup.POST("/change-password", user.ChangePassword)
	}

	// Listing and detail are public; every mutation requires a login.
	questionGroup := r.Group("/api/questions")
	{
		questionGroup.GET("", question.List)
		questionGroup.GET("/:id", question.Detail)
	}
	questionAuth := r.Group("/api/questions")
	questionAuth.Use(middleware.AuthMiddleware())
	{
		questionAuth.POST("", question.Create)
		questionAuth.PUT("/:id", question.Modify)
		questionAuth.DELETE("/:id", question.Delete)
		questionAuth.POST("/:id/vote", vote.VoteQuestion)
		questionAuth.POST("/:id/answers", answer.Create)
	}

	answerGroup := r.Group("/api/answers")
	answerGroup.Use(middleware.AuthMiddleware())
	{
		answerGroup.PUT("/:id", answer.Modify)
		answerGroup.DELETE("/:id", answer.Delete)
		answerGroup.POST("/:id/vote", vote.VoteAnswer)
	}

	return r
}
