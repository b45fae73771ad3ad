package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/contaflow/contaflow/cmd/account"
	"github.com/contaflow/contaflow/cmd/crm"
	"github.com/contaflow/contaflow/cmd/entry"
	"github.com/contaflow/contaflow/cmd/report"
	"github.com/contaflow/contaflow/internal/app"
	"github.com/contaflow/contaflow/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	application := app.NewApp(cfg)

	rootCmd := &cobra.Command{
		Use:           "contaflow",
		Short:         "contaflow is a CLI client for the ContaFlow ERP backend",
		Long:          `contaflow is a CLI client for the ContaFlow ERP backend: chart of accounts, journal entries (pólizas), financial reports and CRM.`,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(account.NewAccountCmd(application.Service))
	rootCmd.AddCommand(entry.NewEntryCmd(application.Service))
	rootCmd.AddCommand(report.NewReportCmd(application.Service))
	rootCmd.AddCommand(crm.NewCRMCmd(application.Service))

	if err := rootCmd.Execute(); err != nil {
		errMsg := err.Error()
		displayMsg := capitalize(errMsg)

		pterm.Error.Println(displayMsg)
		os.Exit(1)
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("api.base_url", "http://localhost:3000")
	viper.SetDefault("api.timeout", "30s")
	viper.SetDefault("defaults.currency", "MXN")
	viper.SetDefault("defaults.page_size", 25)

	viper.SetEnvPrefix("CONTAFLOW")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".contaflow"), nil
	}

	return filepath.Join(configDir, "contaflow"), nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
