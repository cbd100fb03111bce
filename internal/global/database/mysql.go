package database

import (
	"fmt"
	"strings"
	"thesis-proposal-system/config"
	"thesis-proposal-system/internal/model"
	"thesis-proposal-system/tools"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var DB *gorm.DB

// autoMigrateModels 定义需要自动迁移的模型列表
var autoMigrateModels = []any{
	&model.User{},
	&model.ThesisProposal{},
	// 在这里添加其他模型
}

func Init() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.Get().Mysql.Username,
		config.Get().Mysql.Password,
		config.Get().Mysql.Host,
		config.Get().Mysql.Port,
		config.Get().Mysql.DBName,
	)
	gormConfig := &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true}, // 还是单数表名好
	}

	switch config.Get().Mode {
	case config.ModeDebug:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	case config.ModeRelease:
		gormConfig.Logger = logger.Discard
	}

	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	tools.PanicOnErr(err)
	DB = db

	// 使用模型列表进行自动迁移
	// username/email 的唯一性由唯一索引保证，并发注册同一邮箱只会有一个成功
	tools.PanicOnErr(DB.AutoMigrate(autoMigrateModels...))
}

// IsDuplicateKeyError 判断写入是否触发了唯一索引冲突
// keyHint 非空时要求冲突的索引名包含该关键字，用于区分是哪个唯一键冲突
func IsDuplicateKeyError(err error, keyHint string) bool {
	var mysqlErr *gomysql.MySQLError
	if errors.As(err, &mysqlErr) {
		if mysqlErr.Number != 1062 {
			return false
		}
		if keyHint == "" {
			return true
		}
		// 1062 消息形如 Duplicate entry 'xxx' for key 'user.idx_user_email'
		// 只在索引名部分匹配关键字，重复的值本身可能恰好包含该关键字
		idx := strings.LastIndex(mysqlErr.Message, "for key ")
		if idx < 0 {
			return false
		}
		return strings.Contains(mysqlErr.Message[idx+len("for key "):], keyHint)
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
