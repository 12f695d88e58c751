package ioc

import (
	"caterfind/internal/handler/auth"
	"caterfind/internal/handler/calendar"
	"caterfind/internal/handler/contact"
	"caterfind/internal/handler/dashboard"
	"caterfind/internal/handler/inventory"
	"caterfind/internal/handler/message"
	"caterfind/internal/handler/profile"
	"caterfind/internal/handler/twiml"
	"caterfind/internal/handler/upload"
	"caterfind/internal/repository"
	"caterfind/internal/repository/dao"
	authsvc "caterfind/internal/service/auth"
	calendarsvc "caterfind/internal/service/calendar"
	calendartask "caterfind/internal/service/calendar/task"
	contactsvc "caterfind/internal/service/contact"
	dashboardsvc "caterfind/internal/service/dashboard"
	inventorysvc "caterfind/internal/service/inventory"
	messagesvc "caterfind/internal/service/message"
	profilesvc "caterfind/internal/service/profile"
	uploadsvc "caterfind/internal/service/upload"
	"github.com/ecodeclub/ginx"
	"github.com/gotomicro/ego/core/econf"
)

// InitApp 手工组装整个应用
func InitApp() *App {
	db := InitDB()
	redisClient := InitRedis()

	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	contactRepo := repository.NewContactRepository(
		dao.NewContactDAO(db),
		InitLocalContactCache(),
		InitRedisContactCache(redisClient),
	)
	inventoryRepo := repository.NewInventoryRepository(dao.NewInventoryDAO(db))
	eventRepo := repository.NewCalendarEventRepository(dao.NewCalendarEventDAO(db))
	availabilityRepo := repository.NewAvailabilityRepository(dao.NewAvailabilityDAO(db))
	profileRepo := repository.NewCateringProfileRepository(dao.NewCateringProfileDAO(db))
	messageRepo := repository.NewMessageRepository(dao.NewMessageDAO(db))

	authService := authsvc.NewService(userRepo, profileRepo, econf.GetString("jwt.key"))
	contactService := contactsvc.NewService(contactRepo)
	inventoryService := inventorysvc.NewService(inventoryRepo, contactRepo)
	calendarService := calendarsvc.NewService(eventRepo, availabilityRepo)
	profileService := profilesvc.NewService(profileRepo)
	dashboardService := dashboardsvc.NewService(contactRepo, inventoryRepo, messageRepo)
	uploadService, err := uploadsvc.NewService(
		econf.GetString("upload.dir"),
		econf.GetString("upload.urlPrefix"),
	)
	if err != nil {
		panic(err)
	}

	dispatcher := InitChannelDispatcher()
	resolver := messagesvc.NewContactResolver(contactRepo)
	messageService := messagesvc.NewService(resolver, dispatcher, messageRepo, contactRepo)

	handlers := []ginx.Handler{
		auth.NewHandler(authService),
		contact.NewHandler(contactService),
		inventory.NewHandler(inventoryService),
		calendar.NewHandler(calendarService),
		profile.NewHandler(profileService),
		dashboard.NewHandler(dashboardService),
		message.NewHandler(messageService),
		upload.NewHandler(uploadService),
		twiml.NewHandler(),
	}

	return &App{
		WebServer: InitWebServer(authService, handlers),
		Crons:     Crons(calendartask.NewCalendarCleanupCron(calendarService)),
	}
}
