package main

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/example/inhalebay/internal/config"
	"github.com/example/inhalebay/internal/database"
	"github.com/example/inhalebay/internal/kiosk"
	"github.com/example/inhalebay/internal/repository"
	"github.com/example/inhalebay/internal/utils"
)

var codePattern = regexp.MustCompile(`^[0-9]{4}$`)

func connect(v *viper.Viper) (*config.Config, *gorm.DB) {
	cfg := config.FromViper(v)
	return cfg, database.Connect(cfg.DatabaseURL, cfg.DBLogSQL)
}

func migrateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Connect migrates on open
			connect(v)
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			return nil
		},
	}
}

func seedCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the store row, default device codes and member tiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db := connect(v)
			store, err := database.Seed(db, cfg.StoreCode, cfg.StoreName)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Store %d (%s) ready: %s\n", store.StoreCode, store.Name, store.ID)
			return nil
		},
	}
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := utils.HashPassword(args[0])
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func deviceCodeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "device-code",
		Short: "Show or change kiosk device codes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show [device]",
		Short: "Print the code of one or all device classes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db := connect(v)
			devices := kiosk.Devices
			if len(args) == 1 {
				devices = []string{args[0]}
			}
			return showDeviceCodes(cmd.Context(), db, devices, cmd.OutOrStdout())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <device> <code>",
		Short: "Change the code of a device class",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db := connect(v)
			return setDeviceCode(cmd.Context(), db, cfg.StoreCode, args[0], args[1], cmd.OutOrStdout())
		},
	})

	return cmd
}

func showDeviceCodes(ctx context.Context, db *gorm.DB, devices []string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	repo := repository.NewDeviceCodeRepository(db)
	for _, device := range devices {
		if !kiosk.ValidDevice(device) {
			return kiosk.ErrUnknownDevice
		}
		res := repo.CodeFor(ctx, device)
		if !res.Success() {
			fmt.Fprintf(out, "%s: %s\n", device, res.Message)
			continue
		}
		fmt.Fprintf(out, "%s: %04d\n", device, res.Data)
	}
	return nil
}

func setDeviceCode(ctx context.Context, db *gorm.DB, storeCode int, device, code string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !kiosk.ValidDevice(device) {
		return kiosk.ErrUnknownDevice
	}
	if !codePattern.MatchString(code) {
		return kiosk.ErrMalformedCode
	}
	n, _ := strconv.Atoi(code)

	store := repository.NewStoreRepository(db).StoreIDByCode(ctx, storeCode)
	if !store.Success() {
		return fmt.Errorf("store %d: %s", storeCode, store.Message)
	}

	res := repository.NewDeviceCodeRepository(db).SetCode(ctx, store.Data, device, n)
	if !res.Success() {
		return fmt.Errorf("%s", res.Message)
	}
	fmt.Fprintf(out, "%s code set to %s\n", device, code)
	return nil
}
