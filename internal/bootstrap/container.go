package bootstrap

import (
	"notehive-be/internal/config"
	"notehive-be/internal/controller"
	"notehive-be/internal/pkg/blob"
	"notehive-be/internal/pkg/logger"
	"notehive-be/internal/pkg/mailer"
	"notehive-be/internal/pkg/serverutils"
	"notehive-be/internal/pkg/token"
	"notehive-be/internal/repository/implementation"
	"notehive-be/internal/repository/unitofwork"
	"notehive-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	UserController     controller.IUserController
	NotebookController controller.INotebookController
	SectionController  controller.ISectionController
	PageController     controller.IPageController

	// Background services, run from main.go
	MailConsumer service.IMailConsumer

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	mailPublisher := service.NewMailPublisher(pubSub, sysLogger)
	mailConsumer := service.NewMailConsumer(pubSub, emailService, sysLogger)

	// Auth plumbing
	issuer := token.NewIssuer(cfg.Auth)
	rotationLocks := service.NewRotationLockRegistry()
	blobStore := blob.NewLocalStore(cfg.App, cfg.Blob)
	sessionGuard := serverutils.SessionGuard(issuer, implementation.NewUserRepository(db))

	// Services
	authService := service.NewAuthService(uowFactory, issuer, mailPublisher, rotationLocks, cfg.App, cfg.Auth)
	userService := service.NewUserService(uowFactory, blobStore, sysLogger)
	notebookService := service.NewNotebookService(uowFactory)
	sectionService := service.NewSectionService(uowFactory)
	pageService := service.NewPageService(uowFactory)

	cookieSecure := cfg.App.Environment == "production"

	return &Container{
		AuthController:     controller.NewAuthController(authService, sessionGuard, cookieSecure, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL),
		UserController:     controller.NewUserController(userService, sessionGuard),
		NotebookController: controller.NewNotebookController(notebookService, sessionGuard),
		SectionController:  controller.NewSectionController(sectionService, sessionGuard),
		PageController:     controller.NewPageController(pageService, sessionGuard),
		MailConsumer:       mailConsumer,
		Logger:             sysLogger,
	}
}
