package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/KhanhKH069/icnlab-website-fixed/config"
	"github.com/KhanhKH069/icnlab-website-fixed/internal/model"
	"github.com/KhanhKH069/icnlab-website-fixed/internal/repository"
	"github.com/KhanhKH069/icnlab-website-fixed/pkg/database"
	"github.com/KhanhKH069/icnlab-website-fixed/pkg/logger"
)

// seed provisions the initial admin account plus a small demo dataset. It is
// idempotent: records that already exist are left alone.
func main() {
	configPath := flag.String("config", "", "path to config file")
	adminEmail := flag.String("admin-email", "admin@icnlab.edu", "initial admin email")
	adminPassword := flag.String("admin-password", "", "initial admin password (required)")
	withDemo := flag.Bool("demo", false, "also insert demo content")
	flag.Parse()

	if *adminPassword == "" {
		fmt.Fprintln(os.Stderr, "usage: seed -admin-password <password> [-admin-email <email>] [-demo]")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.NewDB(&cfg.Database, log)
	if err != nil {
		log.Fatal("connect database", zap.Error(err))
	}

	sqlDB, _ := db.DB()
	if err := database.RunMigrations(sqlDB, log); err != nil {
		log.Fatal("run migrations", zap.Error(err))
	}

	repo := repository.NewRepository(db)
	ctx := context.Background()

	if err := seedAdmin(ctx, repo, log, *adminEmail, *adminPassword); err != nil {
		log.Fatal("seed admin", zap.Error(err))
	}

	if *withDemo {
		if err := seedDemo(ctx, repo, log); err != nil {
			log.Fatal("seed demo data", zap.Error(err))
		}
	}

	log.Info("seed complete")
}

func seedAdmin(ctx context.Context, repo *repository.Repository, log *zap.Logger, email, password string) error {
	if _, err := repo.User.GetByEmail(ctx, email); err == nil {
		log.Info("admin already exists", zap.String("email", email))
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Administrator",
		Role:         model.RoleAdmin,
		IsActive:     true,
	}
	if err := repo.User.Create(ctx, admin); err != nil {
		return err
	}

	log.Info("admin created", zap.String("email", email))
	return nil
}

func seedDemo(ctx context.Context, repo *repository.Repository, log *zap.Logger) error {
	members := []*model.Member{
		{
			Name:              "Nguyen Van An",
			Email:             "an.nguyen@icnlab.edu",
			Position:          "professor",
			AcademicTitle:     "Prof. Dr.",
			Bio:               "Lab director. Research on edge computing and network security.",
			ResearchInterests: model.StringArray{"edge computing", "network security"},
			Education: datatypes.NewJSONSlice([]model.Education{
				{Degree: "PhD", Institution: "KAIST", Year: 2008, Field: "Computer Science"},
			}),
			JoinDate: time.Date(2015, 3, 1, 0, 0, 0, 0, time.UTC),
			IsActive: true,
			Order:    1,
		},
		{
			Name:              "Tran Thi Binh",
			Email:             "binh.tran@icnlab.edu",
			Position:          "phd_student",
			Bio:               "Working on intrusion detection for IoT networks.",
			ResearchInterests: model.StringArray{"iot security", "machine learning"},
			Education:         datatypes.NewJSONSlice([]model.Education{}),
			JoinDate:          time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC),
			IsActive:          true,
			Order:             2,
		},
	}
	for _, m := range members {
		if _, err := repo.Member.GetByEmail(ctx, m.Email); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := repo.Member.Create(ctx, m); err != nil {
			return err
		}
		log.Info("member created", zap.String("email", m.Email))
	}

	pubDate := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	pubs := []*model.Publication{
		{
			Title:         "Latency-Aware Task Offloading for Edge Networks",
			Authors:       model.StringArray{"Nguyen Van An", "Tran Thi Binh"},
			Venue:         "IEEE INFOCOM",
			Year:          2024,
			Type:          "conference",
			Keywords:      model.StringArray{"edge computing", "offloading"},
			Citations:     12,
			IsPublished:   true,
			PublishedDate: &pubDate,
		},
	}
	for _, p := range pubs {
		if err := repo.Publication.Create(ctx, p); err != nil {
			return err
		}
		log.Info("publication created", zap.String("title", p.Title))
	}

	return nil
}
