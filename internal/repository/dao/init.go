package dao

import (
	"errors"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
)

// InitTables 创建通知相关的表，发送记录外键依赖订阅表，gorm 会一并迁移
func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(
		&NotificationSetting{},
		&NotificationChannel{},
		&SchedulerSettings{},
		&NotificationHistory{},
	)
}

// InitSubscriptionTables 订阅相关的表由订阅管理模块维护，测试和本地开发时用这个创建
func InitSubscriptionTables(db *egorm.Component) error {
	return db.AutoMigrate(
		&PaymentMethod{},
		&Subscription{},
		&UserSettings{},
	)
}

// isUniqueConstraintError 检查是否是唯一索引冲突错误
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	me := new(mysql.MySQLError)
	if ok := errors.As(err, &me); ok {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}
