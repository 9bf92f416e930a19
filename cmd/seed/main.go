package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/carelink-dev/shift-market/backend/internal/config"
	"github.com/carelink-dev/shift-market/backend/internal/domain"
	"github.com/carelink-dev/shift-market/backend/internal/repository"
	"github.com/carelink-dev/shift-market/backend/internal/seed"
	"github.com/carelink-dev/shift-market/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operation (1: insert random users, 2: insert random shifts, 3: insert random applications, 4: insert demo dataset)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database connection pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open only builds the pool, it does not connect; ping explicitly
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no operation specified")
	case 1:
		if n <= 0 {
			slog.Error("invalid user count")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				user := utils.GenerateRandomUser(cfg.Seed.EmailDomain)
				if err := repo.CreateUser(user); err != nil {
					slog.Error("unable to insert user", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("inserted users", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 {
			slog.Error("invalid shift count")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				shift := utils.GenerateRandomShift()
				if err := repo.CreateShift(shift); err != nil {
					slog.Error("unable to insert shift", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("inserted shifts", slog.Int("count", n-cnt))
		}
	case 3:
		if n <= 0 {
			slog.Error("invalid application count")
			return
		}

		users, err := repo.GetAllUsers()
		if err != nil {
			slog.Error("unable to load users", slog.String("error", err.Error()))
			return
		}
		shifts, err := repo.GetAllShifts(string(domain.ShiftStatusOpen), "")
		if err != nil {
			slog.Error("unable to load open shifts", slog.String("error", err.Error()))
			return
		}
		if len(users) == 0 || len(shifts) == 0 {
			slog.Error("need at least one user and one open shift, seed those first")
			return
		}

		cnt := 0
		for i := 0; i < n; i++ {
			application := &domain.Application{
				UserID:  users[rand.Intn(len(users))].ID,
				ShiftID: shifts[rand.Intn(len(shifts))].ID,
			}
			// random pairs collide with the unique constraint now and then,
			// skip and move on
			if err := repo.CreateApplication(application); err != nil {
				slog.Warn("unable to insert application", slog.String("error", err.Error()))
				continue
			}

			cnt++
		}

		slog.Info("inserted applications", slog.Int("count", cnt))
	case 4:
		seed.SeedDemoData(repo)
	default:
		slog.Error("invalid operation")
	}
}
