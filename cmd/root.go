package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "deskmanager",
	Short: "一个按规则整理单个目录的工具",
	Long: `DeskManager 是一个命令行工具，按声明式规则整理目录中的顶层文件。

主要功能:
- 读取目标目录中的顶层文件（不递归）
- 按顺序对每个文件求值规则，首条命中即生效
- 规则条件支持扩展名集合与修改/创建时间范围
- 执行 move / delete / compress 动作，删除前整批确认
- 预览模式只报告将要发生的动作，不修改任何文件`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
