package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rish12345678/DeskManager/app"
	"github.com/rish12345678/DeskManager/config"
	"github.com/rish12345678/DeskManager/logger"
	"github.com/rish12345678/DeskManager/pkg/rules"
	"github.com/rish12345678/DeskManager/tui"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "交互式构建一条规则并立即执行",
	Long: `打开交互式规则构建器，逐项填写动作、扩展名集合和时间范围。
构建出的单条规则会整组替换规则文件，随后按正常流程整理目标目录。`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dir, _ := cmd.Flags().GetString("dir")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	yes, _ := cmd.Flags().GetBool("yes")
	verbose, _ := cmd.Flags().GetBool("verbose")

	logLevel := cfg.Logging.Level
	if verbose {
		logLevel = "debug"
	}
	if err := logger.Init(logLevel, cfg.Logging.File); err != nil {
		return err
	}

	rule, err := tui.RunBuilder()
	if err != nil {
		return err
	}

	opts := &app.RunOptions{
		Dir:         dir,
		Rules:       []rules.Rule{rule},
		DryRun:      dryRun,
		AutoConfirm: yes || cfg.Organizer.AutoConfirm,
		Verbose:     verbose,
		LogLevel:    logLevel,
		LogFile:     cfg.Logging.File,
	}

	summary, err := app.Run(opts)
	if err != nil {
		return err
	}

	fmt.Println(summary.String())

	return nil
}

func init() {
	buildCmd.Flags().StringP("dir", "d", "", "目标目录 (必需)")
	buildCmd.Flags().Bool("dry-run", false, "预览模式，不实际修改文件")
	buildCmd.Flags().BoolP("yes", "y", false, "跳过删除确认")
	buildCmd.Flags().BoolP("verbose", "v", false, "显示详细日志")

	if err := buildCmd.MarkFlagRequired("dir"); err != nil {
		fmt.Println("目标目录需要给出")
	}

	rootCmd.AddCommand(buildCmd)
}
