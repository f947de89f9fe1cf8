package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/example/inhalebay/internal/config"
)

var Version = "dev"

func main() {
	v := config.LoadEnv()

	rootCmd := &cobra.Command{
		Use:           "loyaltyctl",
		Short:         "Administration tool for the Inhale Bay loyalty back office",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("database-url", "", "database DSN (overrides DATABASE_URL)")
	rootCmd.PersistentFlags().Int("store-code", 0, "store code (overrides STORE_CODE)")
	bindFlag(v, rootCmd, "DATABASE_URL", "database-url")
	bindFlag(v, rootCmd, "STORE_CODE", "store-code")

	rootCmd.AddCommand(migrateCmd(v))
	rootCmd.AddCommand(seedCmd(v))
	rootCmd.AddCommand(hashPasswordCmd())
	rootCmd.AddCommand(deviceCodeCmd(v))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bindFlag lets an explicitly set flag win over the environment.
func bindFlag(v *viper.Viper, cmd *cobra.Command, key, flag string) {
	if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}
