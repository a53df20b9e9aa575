package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mreyes/campus-match/internal/config"
	"github.com/mreyes/campus-match/internal/db"
	"github.com/mreyes/campus-match/internal/logger"
	"github.com/mreyes/campus-match/internal/matching"
)

var (
	runRequisitionID string
	runCompanyID     string
	runMinPercentage float64
)

var runMatchingCmd = &cobra.Command{
	Use:   "run-matching",
	Short: "Run bulk matching for one requisition",
	Long:  `Evaluate every eligible candidate against a requisition and persist a match record for each pair at or above the threshold. Re-running skips pairs that already have a record.`,
	RunE:  runMatching,
}

func init() {
	runMatchingCmd.Flags().StringVar(&runRequisitionID, "requisition", "", "Requisition UUID (required)")
	runMatchingCmd.Flags().StringVar(&runCompanyID, "company", "", "Owning company UUID (required)")
	runMatchingCmd.Flags().Float64Var(&runMinPercentage, "min-percentage", matching.DefaultMinPercentage, "Persistence threshold in [0,100]")
	_ = runMatchingCmd.MarkFlagRequired("requisition")
	_ = runMatchingCmd.MarkFlagRequired("company")
	rootCmd.AddCommand(runMatchingCmd)
}

func runMatching(_ *cobra.Command, _ []string) error {
	requisitionID, err := uuid.Parse(runRequisitionID)
	if err != nil {
		return fmt.Errorf("invalid requisition ID: %w", err)
	}
	companyID, err := uuid.Parse(runCompanyID)
	if err != nil {
		return fmt.Errorf("invalid company ID: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	weights, err := config.LoadWeights(cfg.WeightsFile)
	if err != nil {
		return err
	}

	// Interrupts cancel the run; already-created records stay valid.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()
	database.SetEligiblePoolCap(cfg.EligiblePoolCap)

	evaluator := matching.NewEvaluator(database, database, weights)
	runner := matching.NewRunner(evaluator, database, database, database, log, cfg.Workers)

	summary, err := runner.Run(ctx, companyID, requisitionID, runMinPercentage)
	if err != nil {
		return err
	}

	log.Info("run-matching finished",
		zap.Int("evaluated", summary.Evaluated),
		zap.Int("met_threshold", summary.MetThreshold),
		zap.Int("created", summary.Created),
		zap.Int("failed", summary.Failed))
	return nil
}
