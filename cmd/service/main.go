// File: cmd/service/main.go
// @title        Planeta Projeto API
// @version      1.0
// @description  社群專案展示：專案、留言與附件上傳
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exitFunc = os.Exit
	// rootArgs 非 nil 時取代 os.Args[1:]
	rootArgs []string
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "planeta",
		Short:         "Planeta Projeto API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "YAML 設定檔路徑")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "啟動 HTTP 服務",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configPath)
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "資料庫 migration",
	}
	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "套用全部 migration",
			RunE: func(*cobra.Command, []string) error {
				return migrate(configPath, runMigrationsFn)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "退回全部 migration",
			RunE: func(*cobra.Command, []string) error {
				return migrate(configPath, rollbackFn)
			},
		},
	)

	root.AddCommand(serve, migrateCmd)
	return root
}

func main() {
	root := newRootCmd()
	if rootArgs != nil {
		root.SetArgs(rootArgs)
	}
	if err := root.Execute(); err != nil {
		logger, lerr := newLogger(false)
		if lerr != nil {
			logger = zap.NewExample()
		}
		logger.Error("planeta exited", zap.Error(err))
		_ = logger.Sync()
		exitFunc(1)
	}
}
