// Package cfg provides configuration and command-line setup for vidfetch.
package cfg

import (
	"context"
	"errors"
	"os"
	"time"

	"vidfetch/internal/command/execute"
	"vidfetch/internal/domain/consts"
	"vidfetch/internal/models"
	"vidfetch/internal/process"
	"vidfetch/internal/utils/logging"
	"vidfetch/internal/validation"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd builds the root command. A nil engine means the yt-dlp binary from settings.
func NewRootCmd(v *viper.Viper, engine models.Downloader) *cobra.Command {
	return &cobra.Command{
		Use:           consts.ProgramName,
		Short:         "Download a fixed video with yt-dlp, using a cookie file when one is provided.",
		Long:          "Reads the cookie file path from " + consts.DefaultCookieEnvVar + " and falls back to a cookie-less download when it is unset or missing.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := LoadSettings(v)
			logging.Setup(cmd.OutOrStdout(), s.DebugLevel)
			if err := validation.ValidateSettingsModel(&s); err != nil {
				return err
			}

			dl := engine
			if dl == nil {
				dl = execute.NewYTDLP(s.YTDLPPath)
			}
			logging.D(1, "Settings: %+v", s)

			return process.NewOrchestrator(s, dl).Run(cmd.Context())
		},
	}
}

// Execute runs the root command and returns the result of the download.
func Execute(ctx context.Context) error {
	startTime := time.Now()
	logging.I("%s started at: %v", consts.ProgramName, startTime.Format("2006-01-02 15:04:05.00 MST"))

	root := NewRootCmd(NewViper(), nil)
	root.SetArgs(os.Args[1:])

	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, process.ErrDownloadFailed) {
		// Download failures are already logged in full by the orchestrator
		logging.E(0, "Error: %v", err)
	}

	logging.I("Time elapsed: %.2f seconds", time.Since(startTime).Seconds())
	return err
}
