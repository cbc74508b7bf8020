package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"log/slog"

	"github.com/outingclub/trip-lottery/config"
	"github.com/outingclub/trip-lottery/internal/auth/jwt"
	"github.com/outingclub/trip-lottery/internal/dependency"
	"github.com/outingclub/trip-lottery/internal/engine"
	"github.com/outingclub/trip-lottery/internal/store"
	"github.com/outingclub/trip-lottery/internal/triplock"
	"github.com/outingclub/trip-lottery/log"
	"github.com/spf13/cobra"
)

var (
	lotteryCmd = &cobra.Command{
		Use:   "lottery",
		Short: "Lottery cycle operations",
	}

	lotteryRunCmd = &cobra.Command{
		Use:   "run <cycle-id>",
		Short: "Run the lottery of a cycle and print its log",
		Args:  cobra.ExactArgs(1),
		RunE:  runLottery,
	}

	tokenCmd = &cobra.Command{
		Use:   "token <leader>",
		Short: "Issue a leader token for the leader API",
		Args:  cobra.ExactArgs(1),
		RunE:  issueToken,
	}

	tokenTTL time.Duration
)

func init() {
	lotteryCmd.AddCommand(lotteryRunCmd)
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime, defaults to auth.jwt_ttl")
}

func runLottery(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}
	slog.SetDefault(log.New(os.Stderr, cfg.Logger))

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
	defer cancel()

	db, err := store.New(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("couldn't connect to mysql: %w", err)
	}
	defer db.Close()

	var locker dependency.TripLocker = triplock.NewLocal()
	if cfg.Lock.URL != "" {
		rl, err := triplock.NewRedis(ctx, cfg.Lock)
		if err != nil {
			return fmt.Errorf("couldn't connect to redis: %w", err)
		}
		defer rl.Close()
		locker = rl
	}

	svc, err := engine.New(&cfg.Lottery, db, locker)
	if err != nil {
		return err
	}
	run, err := svc.RunLottery(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), run.Log)
	return nil
}

func issueToken(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is not set")
	}
	ttl := tokenTTL
	if ttl == 0 {
		ttl = cfg.Auth.JWTTTL
	}
	token, err := jwt.NewLeaderToken(jwt.New(cfg.Auth.JWTSecret), ttl, args[0])
	if err != nil {
		return fmt.Errorf("can't issue token: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
