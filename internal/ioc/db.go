package ioc

import (
	"gitee.com/flycash/subscription-notification/internal/repository/dao"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func InitDB() *egorm.Component {
	db := egorm.Load("mysql").Build()
	if econf.GetBool("mysql.migrateSubscriptionTables") {
		// 订阅相关的表归订阅管理模块，本地开发时才需要一起建
		if err := dao.InitSubscriptionTables(db); err != nil {
			panic(err)
		}
	}
	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return db
}
