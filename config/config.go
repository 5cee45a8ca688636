package config

import (
	"os"
	"path/filepath"
	"strings"

	"VidTube.com/pkg/constants"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

func setDefaults() {
	viper.SetDefault("server.addr", "0.0.0.0:8888")
	viper.SetDefault("server.max_body_size", 1<<30)
	viper.SetDefault("server.temp_dir", constants.DefaultTempDir)
	viper.SetDefault("storage.driver", "mysql")
	viper.SetDefault("mysql.charset", "utf8mb4")
	viper.SetDefault("redis.lock_expiry", constants.DefaultLockExpiry.String())
	viper.SetDefault("jwt.token_lookup", "header: Authorization, cookie: accessToken")
	viper.SetDefault("playlist.owner_only_membership", true)
	viper.SetDefault("snowflake.node", 1)
}

// Init loads config.yml and lets VIDTUBE_* environment variables override it.
// A missing file is not fatal: defaults plus environment still apply.
func Init() {
	wd, _ := os.Getwd()
	logrus.Infof("Current working directory: %s", wd)

	viper.SetConfigType("yaml")
	viper.SetConfigName("config.yml")
	viper.SetEnvPrefix("VIDTUBE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	configPaths := []string{
		"../../config",
		"./config",
		"../config",
		".",
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
		absPath, _ := filepath.Abs(path)
		logrus.Debugf("Added config path: %s (absolute: %s)", path, absPath)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Warnf("config file not found, using defaults: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
	} else {
		logrus.Infof("Successfully read config file: %s", viper.ConfigFileUsed())
	}

	ConfigInfo.Server.Addr = viper.GetString("server.addr")
	ConfigInfo.Server.MaxBodySize = viper.GetInt("server.max_body_size")
	ConfigInfo.Server.TempDir = viper.GetString("server.temp_dir")

	ConfigInfo.Storage.Driver = viper.GetString("storage.driver")

	ConfigInfo.Mysql.Addr = viper.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = viper.GetString("mysql.database")
	ConfigInfo.Mysql.Username = viper.GetString("mysql.username")
	ConfigInfo.Mysql.Password = viper.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = viper.GetString("mysql.charset")

	ConfigInfo.Redis.Addr = viper.GetString("redis.addr")
	ConfigInfo.Redis.Password = viper.GetString("redis.password")
	ConfigInfo.Redis.DB = viper.GetInt("redis.db")
	ConfigInfo.Redis.LockExpiry = viper.GetString("redis.lock_expiry")

	ConfigInfo.Minio.Endpoint = viper.GetString("minio.endpoint")
	ConfigInfo.Minio.AccessKey = viper.GetString("minio.access_key")
	ConfigInfo.Minio.SecretKey = viper.GetString("minio.secret_key")
	ConfigInfo.Minio.UseSSL = viper.GetBool("minio.use_ssl")
	ConfigInfo.Minio.PublicURL = viper.GetString("minio.public_url")

	ConfigInfo.Jwt.Secret = viper.GetString("jwt.secret")
	ConfigInfo.Jwt.TokenLookup = viper.GetString("jwt.token_lookup")

	ConfigInfo.Jaeger.Enabled = viper.GetBool("jaeger.enabled")
	ConfigInfo.Playlist.OwnerOnlyMembership = viper.GetBool("playlist.owner_only_membership")
	ConfigInfo.Snowflake.Node = viper.GetInt64("snowflake.node")

	logrus.Infof("Config loaded - storage: %s, MySQL: %s:%s@%s/%s, Redis: %s, MinIO: %s",
		ConfigInfo.Storage.Driver, ConfigInfo.Mysql.Username, "***", ConfigInfo.Mysql.Addr,
		ConfigInfo.Mysql.Database, ConfigInfo.Redis.Addr, ConfigInfo.Minio.Endpoint)

	if ConfigInfo.Jwt.Secret == "" {
		logrus.Warn("No jwt secret configured, every authenticated request will be rejected!")
	}
}
