package db

import (
	"context"
	"database/sql"
	"time"

	"lawwork/config"

	_ "github.com/go-sql-driver/mysql"
)

var (
	DB *sql.DB // 线索库连接，未配置时为nil
)

// schema 线索表，payload保存评估JSON原文
const schema = `CREATE TABLE IF NOT EXISTS assessment_submissions (
	id           CHAR(36)     NOT NULL PRIMARY KEY,
	session_id   CHAR(36)     NOT NULL,
	firm_name    VARCHAR(255) NOT NULL DEFAULT '',
	payload      JSON         NOT NULL,
	created_at   DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
	KEY idx_created_at (created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// InitMySQLWithConfig 使用配置初始化数据库连接池并建表
func InitMySQLWithConfig(ctx context.Context, cfg *config.Config) error {
	conn, err := sql.Open("mysql", cfg.DB.DSN)
	if err != nil {
		return err
	}

	// 从配置读取连接池参数，提供默认值保护
	maxOpenConns := cfg.DB.MaxOpenConns
	if maxOpenConns <= 0 {
		maxOpenConns = 10 // 默认最大连接数
	}

	maxIdleConns := cfg.DB.MaxIdleConns
	if maxIdleConns <= 0 {
		maxIdleConns = 2 // 默认最大空闲连接数
	}

	connMaxLifetime := cfg.DB.ConnMaxLifetime
	if connMaxLifetime <= 0 {
		connMaxLifetime = 60 // 默认连接最大生命周期（分钟）
	}

	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)
	conn.SetConnMaxLifetime(time.Duration(connMaxLifetime) * time.Minute)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return err
	}
	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return err
	}

	DB = conn
	return nil
}

// Close 关闭连接池
func Close() error {
	if DB == nil {
		return nil
	}
	err := DB.Close()
	DB = nil
	return err
}
