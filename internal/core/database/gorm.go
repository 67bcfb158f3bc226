package database

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-gin-result-starter/internal/core/config"
)

var ErrUnsupportedDriver = errors.New("database: unsupported driver")

// Dialector 按 driver 选择方言；mysql 的 DSN 兼容 JDBC/URL 写法
func Dialector(c config.DB) (gorm.Dialector, string, error) {
	switch c.Driver {
	case "postgres":
		return postgres.Open(c.DSN), maskDSN(c.DSN), nil
	case "mysql", "":
		dsn := normalizeMySQLDSN(c.DSN, c.Username, c.Password)
		return mysql.Open(dsn), maskDSN(dsn), nil
	default:
		return nil, "", errors.Wrap(ErrUnsupportedDriver, c.Driver)
	}
}

func NewGorm(c config.DB, l *zap.Logger) (*gorm.DB, error) {
	dial, masked, err := Dialector(c)
	if err != nil {
		return nil, err
	}
	l.Info("opening database", zap.String("driver", c.Driver), zap.String("dsn", masked))

	db, err := gorm.Open(dial, &gorm.Config{
		Logger:                 logger.Default.LogMode(gormLogLevel(c.LogLevel)),
		PrepareStmt:            true,
		CreateBatchSize:        200,
		SkipDefaultTransaction: true, // 单条写入不额外包事务
	})
	if err != nil {
		return nil, errors.Wrap(err, "gorm open")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "gorm sql.DB")
	}
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(c.ConnMaxLifetimeMin) * time.Minute)
	return db, nil
}

func gormLogLevel(s string) logger.LogLevel {
	switch s {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	}
	return logger.Warn
}

// maskDSN 隐去 user:pass@ 或 password=xxx 中的密码
func maskDSN(dsn string) string {
	if i := strings.Index(dsn, "password="); i >= 0 {
		v := i + len("password=")
		end := strings.IndexAny(dsn[v:], " &")
		if end < 0 {
			return dsn[:v] + "****"
		}
		return dsn[:v] + "****" + dsn[v+end:]
	}
	at := strings.LastIndex(dsn, "@")
	if at <= 0 {
		return dsn
	}
	userinfo := dsn[:at]
	if i := strings.Index(userinfo, "://"); i >= 0 {
		userinfo = userinfo[i+3:]
	}
	colon := strings.Index(userinfo, ":")
	if colon < 0 {
		return dsn
	}
	start := at - len(userinfo) + colon + 1
	return dsn[:start] + "****" + dsn[at:]
}

// normalizeMySQLDSN 把 mysql:// 或 jdbc:mysql:// 形式的 URL 转成 go-sql-driver 的
// user:pass@tcp(host:port)/db?... 格式；原生 DSN 原样返回。
func normalizeMySQLDSN(input, userOverride, passOverride string) string {
	in := strings.TrimPrefix(strings.TrimSpace(input), "jdbc:")
	if !strings.HasPrefix(in, "mysql://") {
		return strings.TrimSpace(input)
	}
	u, err := url.Parse(in)
	if err != nil {
		return in // 交给驱动报错
	}

	var user, pass string
	if u.User != nil {
		user = u.User.Username()
		pass, _ = u.User.Password()
	}
	q := u.Query()
	user = firstNonEmpty(userOverride, q.Get("user"), user)
	pass = firstNonEmpty(passOverride, q.Get("password"), pass)
	q.Del("user")
	q.Del("password")

	// JDBC 专有参数：能映射的映射，其余丢弃
	if enc := q.Get("characterEncoding"); enc != "" && q.Get("charset") == "" {
		q.Set("charset", enc)
	}
	if tz := q.Get("serverTimezone"); tz != "" {
		q.Set("loc", tz)
	}
	if v := strings.ToLower(q.Get("useSSL")); v != "" {
		switch v {
		case "true", "1":
			q.Set("tls", "true")
		case "skip-verify", "preferred":
			q.Set("tls", v)
		default:
			q.Set("tls", "false")
		}
	}
	for _, k := range []string{"characterEncoding", "serverTimezone", "useSSL", "useUnicode", "zeroDateTimeBehavior"} {
		q.Del(k)
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "true")
	}
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}

	cred := user
	if pass != "" {
		cred += ":" + pass
	}
	if cred != "" {
		cred += "@"
	}
	dsn := fmt.Sprintf("%stcp(%s)/%s", cred, u.Host, strings.TrimPrefix(u.Path, "/"))
	if enc := q.Encode(); enc != "" {
		dsn += "?" + enc
	}
	return dsn
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}
