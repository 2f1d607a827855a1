package commands

import (
	"fmt"
	"time"

	"github.com/Pranay-Bhilare/op-atlas/database"
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/database/repositories"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewRoundCommand() *cobra.Command {
	roundCmd := cobra.Command{
		Use:   "round",
		Short: "Manage funding rounds",
		Long:  "Funding rounds are administered out-of-band: create them before opening applications.",
	}

	roundCmd.AddCommand(newRoundCreateCommand())
	roundCmd.AddCommand(newRoundListCommand())
	return &roundCmd
}

func newRoundCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <id>",
		Short: "Create a funding round",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startsAt, err := time.Parse(time.RFC3339, viper.GetString("starts-at"))
			if err != nil {
				return fmt.Errorf("invalid starts-at: %w", err)
			}
			endsAt, err := time.Parse(time.RFC3339, viper.GetString("ends-at"))
			if err != nil {
				return fmt.Errorf("invalid ends-at: %w", err)
			}

			pool := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
			defer pool.Close()

			roundRepository := repositories.NewFundingRoundRepository(database.NewGormDB(pool))
			round := models.FundingRound{
				ID:          args[0],
				Name:        viper.GetString("name"),
				Description: viper.GetString("description"),
				StartsAt:    startsAt,
				EndsAt:      endsAt,
			}
			if err := roundRepository.Create(nil, &round); err != nil {
				return err
			}

			cmd.Printf("created round %s\n", round.ID)
			return nil
		},
	}

	cmd.Flags().String("name", "", "display name of the round")
	cmd.Flags().String("description", "", "description of the round")
	cmd.Flags().String("starts-at", "", "application window start (RFC3339)")
	cmd.Flags().String("ends-at", "", "application window end (RFC3339)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("starts-at")
	_ = cmd.MarkFlagRequired("ends-at")

	return cmd
}

func newRoundListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all funding rounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
			defer pool.Close()

			roundRepository := repositories.NewFundingRoundRepository(database.NewGormDB(pool))
			rounds, err := roundRepository.All()
			if err != nil {
				return err
			}

			for _, round := range rounds {
				cmd.Printf("%s\t%s\t%s - %s\n", round.ID, round.Name, round.StartsAt.Format(time.RFC3339), round.EndsAt.Format(time.RFC3339))
			}
			return nil
		},
	}
}
