package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/securities_account/internal/models"
)

var gormDB *gorm.DB

// InitDB 初始化全局 GORM 数据库连接并自动迁移表结构
func InitDB(dbPath string, log *zap.Logger) error {
	// 确保数据库文件所在的目录存在
	dbDir := filepath.Dir(dbPath)
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		log.Info("数据库目录不存在，正在创建", zap.String("dir", dbDir))
		if mkErr := os.MkdirAll(dbDir, 0755); mkErr != nil {
			return fmt.Errorf("创建数据库目录 %s 失败: %w", dbDir, mkErr)
		}
	}

	conn, err := Open(dbPath, log, logger.Warn)
	if err != nil {
		return err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}
	// SQLite 同一时刻只允许一个写入者
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info("数据库连接成功", zap.String("path", dbPath))

	if err := Migrate(conn); err != nil {
		return err
	}
	log.Info("数据库表结构迁移完成")

	gormDB = conn
	return nil
}

// Open 打开 SQLite 数据库，GORM 日志通过 zap 输出
func Open(dsn string, log *zap.Logger, level logger.LogLevel) (*gorm.DB, error) {
	gormLogger := logger.New(
		zap.NewStdLog(log.Named("gorm")),
		logger.Config{
			SlowThreshold:             time.Second, // 慢 SQL 阈值
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true, // 忽略ErrRecordNotFound（记录未找到）错误
			Colorful:                  false,
		},
	)

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库 %s 失败: %w", dsn, err)
	}
	return conn, nil
}

// Migrate 自动迁移所有表结构
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&models.User{},
		&models.Application{},
	); err != nil {
		return fmt.Errorf("自动迁移数据库表失败: %w", err)
	}
	return nil
}

// OpenInMemory 打开一个已迁移的内存数据库，主要供测试使用
func OpenInMemory() (*gorm.DB, error) {
	conn, err := Open("file::memory:", zap.NewNop(), logger.Silent)
	if err != nil {
		return nil, err
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	// 内存库按连接隔离，必须固定为单连接
	sqlDB.SetMaxOpenConns(1)
	if err := Migrate(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// GetDB 返回 GORM 数据库实例
func GetDB() *gorm.DB {
	if gormDB == nil {
		panic("Database not initialized. Call InitDB first.")
	}
	return gormDB
}

// CloseDB 关闭 GORM 数据库连接 (通常在应用退出时调用)
func CloseDB(log *zap.Logger) {
	if gormDB != nil {
		sqlDB, err := gormDB.DB()
		if err != nil {
			log.Error("获取底层 sql.DB 失败", zap.Error(err))
			return
		}
		if err := sqlDB.Close(); err != nil {
			log.Error("关闭数据库失败", zap.Error(err))
		}
		log.Info("数据库连接已关闭")
	}
}
