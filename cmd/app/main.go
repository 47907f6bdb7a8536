package main

import (
	"fmt"
	"log/slog"
	"os"

	"parcels/cmd"
	"parcels/internal/adapters/in/cli"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "parcels",
		Short: "Interactive parcel registry with priority loading, undo, and delivery audit",
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			return run(cobraCmd, getConfigs())
		},
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cobraCmd *cobra.Command, configs cmd.Config) error {
	app := cmd.NewCompositionRoot(configs)

	handlers := cli.Handlers{
		RegisterParcel:     app.CreateRegisterParcelCommandHandler(),
		UpdateParcelWeight: app.CreateUpdateParcelWeightCommandHandler(),
		LoadParcel:         app.CreateLoadParcelCommandHandler(),
		DispatchParcel:     app.CreateDispatchParcelCommandHandler(),
		CompleteDelivery:   app.CreateCompleteDeliveryCommandHandler(),
		UndoAction:         app.CreateUndoActionCommandHandler(),
		GetSummaryReport:   app.CreateGetSummaryReportQueryHandler(),
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	menu := cli.NewMenu(
		os.Stdin,
		os.Stdout,
		logger,
		cli.NewStyles(configs.ColorEnabled),
		configs.Prompt,
		handlers,
	)

	return menu.Run(cobraCmd.Context())
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Warnf("Error loading .env file: %v", err)
	}

	return cmd.Config{
		ColorEnabled: goDotEnvVariable("COLOR", "true") != "false",
		Prompt:       goDotEnvVariable("PROMPT", "Enter choice: "),
	}
}

func goDotEnvVariable(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
