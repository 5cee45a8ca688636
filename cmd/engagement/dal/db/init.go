package db

import (
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	gormopentracing "gorm.io/plugin/opentracing"
)

var DB *gorm.DB

// Store implements dal.Store on top of MySQL.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Init opens the MySQL connection, installs the tracing plugin and migrates the schema.
func Init() (*Store, error) {
	var err error
	DB, err = gorm.Open(mysql.Open(utils.GetMysqlDsn()),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
			TranslateError:         true,
			Logger:                 logger.Default.LogMode(logger.Warn),
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "open mysql failed")
	}
	if err = DB.Use(gormopentracing.New()); err != nil {
		return nil, errors.Wrap(err, "install gorm tracing plugin failed")
	}
	if err = migrate(DB); err != nil {
		return nil, err
	}
	return New(DB), nil
}

func migrate(db *gorm.DB) error {
	hlog.Info("Starting engagement tables migration...")
	if err := db.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Comment{},
		&model.Tweet{},
		&model.Like{},
		&model.Subscription{},
		&model.Playlist{},
		&model.PlaylistVideo{},
	); err != nil {
		hlog.Errorf("Failed to migrate engagement tables: %v", err)
		return errors.Wrap(err, "migrate failed")
	}
	hlog.Info("Engagement tables migration completed successfully")
	return nil
}
