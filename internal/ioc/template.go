package ioc

import (
	"gitee.com/flycash/subscription-notification/internal/service/template"
)

// InitTemplateResolver 内置的模板目录解析失败说明打包有问题，直接 panic
func InitTemplateResolver() template.Resolver {
	resolver, err := template.NewResolver()
	if err != nil {
		panic(err)
	}
	return resolver
}
