package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/t-tkm/rcon-resolver/internal/app"
	apperrors "github.com/t-tkm/rcon-resolver/internal/errors"
)

var (
	cfgFile     string
	logLevel    string
	logFormat   string
	projectName string
	environment string
	region      string
	mode        string
	reporter    string
)

var rootCmd = &cobra.Command{
	Use:   "rcon-resolver",
	Short: "Resolves the live AWS identities of a deployed game server.",
	Long: `rcon-resolver discovers which ECS cluster, service, task and container
(and optionally EC2 proxy instance and network load balancer) currently host a
deployed server, using resource tags, explicit overrides and naming conventions,
and reports the resolved identities.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.BuildApplicationFromViper(cmd.Context(), viper.GetViper())
		if err != nil {
			printError(err, "Application initialization failed")
			return err
		}
		if runErr := application.Run(cmd.Context()); runErr != nil {
			printError(runErr, "Resolution failed")
			return runErr
		}
		return nil
	},
}

var execCmd = &cobra.Command{
	Use:   "exec <command>",
	Short: "Resolves the deployed resources and runs a command in the server container.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.BuildApplicationFromViper(cmd.Context(), viper.GetViper())
		if err != nil {
			printError(err, "Application initialization failed")
			return err
		}
		if execErr := application.Exec(cmd.Context(), strings.Join(args, " ")); execErr != nil {
			printError(execErr, "Command dispatch failed")
			return execErr
		}
		return nil
	},
}

func printError(err error, header string) {
	fmt.Fprintf(os.Stderr, "ERROR: %s: %v\n", header, err)
	if appErr := (*apperrors.AppError)(nil); errors.As(err, &appErr) && appErr.IsUserFacing {
		fmt.Fprintf(os.Stderr, "Error Details: %s\n", appErr.Message)
		if appErr.SuggestedAction != "" {
			fmt.Fprintf(os.Stderr, "Suggestion: %s\n", appErr.SuggestedAction)
		}
	}
}

func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(execCmd)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path (default is .rcon-resolver.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Override log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&projectName, "project", "", "Project name the deployed resources belong to")
	rootCmd.PersistentFlags().StringVar(&environment, "environment", "", "Deployment environment (e.g. dev, prod)")
	rootCmd.PersistentFlags().StringVar(&region, "region", "", "AWS region override")
	rootCmd.PersistentFlags().StringVar(&mode, "mode", "", "Detection mode (auto, env, tags, naming)")
	rootCmd.PersistentFlags().StringVar(&reporter, "reporter", "", "Report format (text, json)")

	viper.BindPFlag("settings.log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("settings.log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("settings.reporter", rootCmd.PersistentFlags().Lookup("reporter"))
	viper.BindPFlag("project.name", rootCmd.PersistentFlags().Lookup("project"))
	viper.BindPFlag("project.environment", rootCmd.PersistentFlags().Lookup("environment"))
	viper.BindPFlag("project.region", rootCmd.PersistentFlags().Lookup("region"))
	viper.BindPFlag("project.detection_mode", rootCmd.PersistentFlags().Lookup("mode"))

	viper.SetEnvPrefix("RCON")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func initializeConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(".rcon-resolver")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using configuration file:", viper.ConfigFileUsed())
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Fprintln(os.Stderr, "Config file not found, using defaults and environment variables.")
		} else {
			return apperrors.Wrap(err, apperrors.CodeConfigReadError, "failed to read config file")
		}
	}

	return nil
}
