// File: cmd/seed/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/logging"
	"storefront/internal/model"
	"storefront/internal/service"
	"storefront/internal/worker"

	"github.com/sirupsen/logrus"
)

type productCreator interface {
	CreateProduct(ctx context.Context, requesterRole model.Role, in service.ProductInput) (*model.Product, error)
}

type userPromoter interface {
	PromoteToAdmin(ctx context.Context, requesterRole model.Role, targetEmail string) (*model.User, error)
}

var (
	loadConfig      = config.Load
	newLogger       = logging.New
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	newWorkerPool   = worker.NewPool
	newCatalog      = func(db database.DB) productCreator { return service.NewCatalogService(db) }
	newPromoter     = func(db database.DB, cfg *config.Config) userPromoter {
		return service.NewAuthService(db, service.NewTokenService(cfg.JWTSecret, cfg.SessionTTL), cfg.BcryptCost)
	}
	exitFunc = os.Exit
)

func run(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	adminEmail := fs.String("admin-email", "", "將既有使用者提升為管理員")
	skipProducts := fs.Bool("skip-products", false, "不寫入範例商品")
	workers := fs.Int("workers", 4, "同時寫入商品的 worker 數量")
	reset := fs.Bool("reset", false, "先退回所有 migration 再重建資料表（會清除所有資料）")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	logger := newLogger(cfg.LogLevel)

	ctx := context.Background()
	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	if *reset {
		if err := rollbackAllFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Migration 退回失敗: %w", err)
		}
		logger.Warn("database reset: all migrations rolled back")
	}
	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	if !*skipProducts {
		if err := seedProducts(ctx, newCatalog(db), newWorkerPool(ctx, *workers), logger); err != nil {
			return fmt.Errorf("寫入範例商品失敗: %w", err)
		}
	}

	if *adminEmail != "" {
		if err := promoteAdmin(ctx, newPromoter(db, cfg), *adminEmail, logger); err != nil {
			return fmt.Errorf("提升管理員失敗: %w", err)
		}
	}
	return nil
}

// seedProducts 以管理員身分寫入範例商品，不清除既有資料
func seedProducts(ctx context.Context, catalog productCreator, pool worker.Pool, log logrus.FieldLogger) error {
	for i, in := range sampleProducts {
		pool.Submit(func(ctx context.Context) error {
			p, err := catalog.CreateProduct(ctx, model.RoleAdmin, in)
			if err != nil {
				return fmt.Errorf("%s: %w", in.Title, err)
			}
			log.WithFields(logrus.Fields{
				"n":        i + 1,
				"title":    p.Title,
				"category": p.Category,
				"id":       p.ID,
			}).Info("product seeded")
			return nil
		})
	}
	if err := pool.Stop(); err != nil {
		return err
	}
	log.WithField("count", len(sampleProducts)).Info("sample products seeded")
	return nil
}

// promoteAdmin 已是管理員時視為成功
func promoteAdmin(ctx context.Context, users userPromoter, email string, log logrus.FieldLogger) error {
	u, err := users.PromoteToAdmin(ctx, model.RoleAdmin, email)
	if errors.Is(err, service.AlreadyAdmin) {
		log.WithField("email", email).Info("user is already an admin")
		return nil
	}
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"email": u.Email, "id": u.ID}).Info("user promoted to admin")
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		logrus.WithError(err).Error("seed failed")
		exitFunc(1)
	}
}
