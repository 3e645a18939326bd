package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/storefront-catalog/internal/config"
	"github.com/donaldgifford/storefront-catalog/internal/jobs"
	"github.com/donaldgifford/storefront-catalog/pkg/logger"
)

var expireCmd = &cobra.Command{
	Use:   "expire-promotions",
	Short: "Clear category promotions past their expiry date",
	Long: "Run the promotion expiry job once. The server runs the same job on the\n" +
		"schedule.promotion_expiry_interval; use this from an external cron instead.",
	RunE: runExpire,
}

func init() {
	rootCmd.AddCommand(expireCmd)
}

func runExpire(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	s, closeStore, err := openStore(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer closeStore()

	n, err := jobs.ExpirePromotions(ctx, s, time.Now(), log)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Expired %d promotion(s).\n", n)
	return nil
}
