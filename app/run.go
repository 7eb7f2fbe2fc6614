package app

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/rish12345678/DeskManager/logger"
	"github.com/rish12345678/DeskManager/pkg/executor"
	"github.com/rish12345678/DeskManager/pkg/report"
	"github.com/rish12345678/DeskManager/pkg/rules"
	"github.com/rish12345678/DeskManager/pkg/scanner"
)

// RunOptions 一次整理运行的全部显式上下文，
// 状态不藏在长生命周期对象里，计数器由引擎返回
type RunOptions struct {
	Dir         string
	RulesPath   string
	Rules       []rules.Rule // 非空时整组替换规则文件（交互式构建器路径）
	DryRun      bool
	AutoConfirm bool
	Verbose     bool
	LogLevel    string
	LogFile     string
}

// Run CLI 入口：初始化日志后在真实文件系统上跑引擎
func Run(opts *RunOptions) (*report.Summary, error) {
	logLevel := opts.LogLevel
	if opts.Verbose {
		logLevel = "debug"
	}

	if err := logger.Init(logLevel, opts.LogFile); err != nil {
		return nil, err
	}

	confirmer := &executor.TerminalConfirmer{In: os.Stdin, Out: os.Stdout}
	return Execute(afero.NewOsFs(), confirmer, opts, logger.Component("engine"))
}

// Execute 引擎主流程：扫描 → 匹配 → 执行/预览 → 汇总。
// 文件系统、确认通道和日志出口都由调用方注入。
func Execute(fs afero.Fs, confirmer executor.Confirmer, opts *RunOptions, log zerolog.Logger) (*report.Summary, error) {
	runID := uuid.NewString()[:8]
	log = log.With().Str("run_id", runID).Logger()

	startTime := time.Now()
	log.Info().Str("dir", opts.Dir).Bool("dry_run", opts.DryRun).Msg("开始整理")

	ruleList := opts.Rules
	if ruleList == nil {
		var err error
		ruleList, err = rules.Load(fs, opts.RulesPath)
		if err != nil {
			return nil, err
		}
		log.Info().Int("count", len(ruleList)).Str("path", opts.RulesPath).Msg("规则加载完成")
	}

	if len(ruleList) == 0 {
		return nil, fmt.Errorf("规则列表为空，没有可执行的整理动作")
	}

	files, err := scanner.New(fs, log).Scan(opts.Dir)
	if err != nil {
		return nil, err
	}

	matches := rules.NewMatcher(ruleList, log).Match(files)
	log.Info().Int("files", len(files)).Int("matched", len(matches)).Msg("规则匹配完成")

	exec := executor.New(fs, opts.Dir, confirmer, opts.AutoConfirm, log)

	var summary *report.Summary
	if opts.DryRun {
		log.Info().Msg("=== 预览模式，不会实际修改文件 ===")
		summary = exec.Plan(matches)
	} else {
		summary = exec.Execute(matches)
	}

	log.Info().Dur("duration", time.Since(startTime).Round(time.Millisecond)).
		Int("moved", summary.Moved).
		Int("deleted", summary.Deleted).
		Int("compressed", summary.Compressed).
		Str("total_size", report.FormatBytes(summary.TotalSize)).
		Msg("整理完成")

	return summary, nil
}
