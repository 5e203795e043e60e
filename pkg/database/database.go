package database

import (
	"errors"
	"fmt"
	"log"
	"trivia_quiz_backend/internal/config"
	"trivia_quiz_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dbCfg := cfg.Database
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.DBName,
		dbCfg.Charset,
		dbCfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Question{},
		&model.AnswerOption{},
		&model.QuizSettings{},
		&model.GameState{},
		&model.AdminUser{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := seedDefaults(db, cfg); err != nil {
		return nil, err
	}

	return db, nil
}

// seedDefaults creates the singleton settings and game-state rows plus the
// default admin account when they are missing.
func seedDefaults(db *gorm.DB, cfg *config.Config) error {
	var settings model.QuizSettings
	if err := db.First(&settings, model.SettingsRowID).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		settings = model.QuizSettings{
			ID:           model.SettingsRowID,
			FinalMessage: cfg.Quiz.DefaultFinalMessage,
		}
		if err := db.Create(&settings).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	var state model.GameState
	if err := db.First(&state, model.GameStateRowID).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		state = model.GameState{ID: model.GameStateRowID, CurrentIndex: 0}
		if err := db.Create(&state).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&model.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := model.AdminUser{Username: cfg.Admin.Username, Password: string(hashed)}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Printf("Default admin account %q created", cfg.Admin.Username)
	}

	return nil
}
