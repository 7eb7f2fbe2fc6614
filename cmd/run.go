package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rish12345678/DeskManager/app"
	"github.com/rish12345678/DeskManager/config"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "按规则文件整理目标目录",
	Long: `按规则文件整理目标目录:
1. 加载 JSON 规则文件并校验
2. 扫描目标目录中的顶层文件
3. 按顺序匹配规则，首条命中即生效
4. 执行 move / delete / compress 动作并输出统计`,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dir, _ := cmd.Flags().GetString("dir")
	rulesPath, _ := cmd.Flags().GetString("rules")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	yes, _ := cmd.Flags().GetBool("yes")
	verbose, _ := cmd.Flags().GetBool("verbose")
	logFile, _ := cmd.Flags().GetString("log-file")

	if rulesPath == "" {
		rulesPath = cfg.Rules.Path
	}
	if logFile == "" {
		logFile = cfg.Logging.File
	}

	opts := &app.RunOptions{
		Dir:         dir,
		RulesPath:   rulesPath,
		DryRun:      dryRun,
		AutoConfirm: yes || cfg.Organizer.AutoConfirm,
		Verbose:     verbose,
		LogLevel:    cfg.Logging.Level,
		LogFile:     logFile,
	}

	summary, err := app.Run(opts)
	if err != nil {
		return err
	}

	fmt.Println(summary.String())

	return nil
}

func init() {
	runCmd.Flags().StringP("dir", "d", "", "目标目录 (必需)")
	runCmd.Flags().StringP("rules", "r", "", "规则文件路径（默认: rules.json）")
	runCmd.Flags().Bool("dry-run", false, "预览模式，不实际修改文件")
	runCmd.Flags().BoolP("yes", "y", false, "跳过删除确认")
	runCmd.Flags().BoolP("verbose", "v", false, "显示详细日志")
	runCmd.Flags().String("log-file", "", "日志文件路径")

	if err := runCmd.MarkFlagRequired("dir"); err != nil {
		fmt.Println("目标目录需要给出")
	}

	rootCmd.AddCommand(runCmd)
}
