//go:build wireinject

package ioc

import (
	"gitee.com/flycash/subscription-notification/internal/ioc"
	"gitee.com/flycash/subscription-notification/internal/repository"
	"gitee.com/flycash/subscription-notification/internal/repository/dao"
	"gitee.com/flycash/subscription-notification/internal/service/channel"
	"gitee.com/flycash/subscription-notification/internal/service/channel/telegram"
	configsvc "gitee.com/flycash/subscription-notification/internal/service/config"
	"gitee.com/flycash/subscription-notification/internal/service/history"
	"gitee.com/flycash/subscription-notification/internal/service/notification"
	"gitee.com/flycash/subscription-notification/internal/service/scheduler"
	"gitee.com/flycash/subscription-notification/internal/service/selector"
	"gitee.com/flycash/subscription-notification/internal/web"
	"github.com/google/wire"
)

var (
	BaseSet = wire.NewSet(
		ioc.InitDB,
		ioc.InitIDGenerator,
		ioc.InitLockConfig,
		ioc.InitDistributedLock,
		ioc.InitZipkinTracer,
	)
	repositorySet = wire.NewSet(
		dao.NewNotificationSettingDAO,
		dao.NewNotificationChannelDAO,
		dao.NewNotificationHistoryDAO,
		dao.NewSchedulerSettingsDAO,
		dao.NewSubscriptionDAO,
		repository.NewNotificationSettingRepository,
		repository.NewChannelConfigRepository,
		repository.NewHistoryRepository,
		repository.NewSchedulerSettingsRepository,
		repository.NewSubscriptionRepository,
		repository.NewPreferenceRepository,
	)
	channelSet = wire.NewSet(
		ioc.InitTelegram,
		ioc.InitEmail,
		ioc.InitChannels,
		channel.NewDispatcher,
	)
	schedulerSet = wire.NewSet(
		ioc.InitPairLocker,
		scheduler.NewChecker,
		scheduler.NewManager,
		ioc.Crons,
	)
	webSet = wire.NewSet(
		web.NewSchedulerHandler,
		web.NewNotificationHandler,
		web.NewTemplateHandler,
		wire.Bind(new(web.TelegramBot), new(*telegram.Channel)),
		ioc.InitHandlers,
		ioc.InitHTTPServer,
		ioc.InitGovernor,
	)
)

func InitApp() *ioc.App {
	wire.Build(
		BaseSet,
		repositorySet,
		channelSet,

		ioc.InitTemplateResolver,
		history.NewService,
		selector.NewSelector,
		notification.NewService,
		configsvc.NewService,

		schedulerSet,
		webSet,
		wire.Struct(new(ioc.App), "*"),
	)
	return new(ioc.App)
}
