package executor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/rish12345678/DeskManager/internal"
	"github.com/rish12345678/DeskManager/pkg/hasher"
	"github.com/rish12345678/DeskManager/pkg/report"
	"github.com/rish12345678/DeskManager/pkg/rules"
	"github.com/rish12345678/DeskManager/pkg/scanner"
)

// Executor 对命中规则的文件执行动作。
// baseDir 是本次运行的目标目录，move 的 destination 相对它解析。
type Executor struct {
	fs          afero.Fs
	log         zerolog.Logger
	baseDir     string
	autoConfirm bool
	confirmer   Confirmer
}

func New(fs afero.Fs, baseDir string, confirmer Confirmer, autoConfirm bool, log zerolog.Logger) *Executor {
	return &Executor{
		fs:          fs,
		log:         log,
		baseDir:     baseDir,
		autoConfirm: autoConfirm,
		confirmer:   confirmer,
	}
}

// Plan 预览模式：只从匹配列表推导将要发生的动作，不触碰文件系统写路径，
// 也不弹出任何确认。统计口径与 Execute 完全一致。
func (e *Executor) Plan(matches []rules.Match) *report.Summary {
	summary := &report.Summary{}

	for _, m := range matches {
		switch m.Rule.Action {
		case internal.ActionMove:
			if m.Rule.Destination == "" {
				e.log.Warn().Str("file", m.File.Name).Msg("规则缺少 destination，跳过移动")
				continue
			}
			size, ok := e.sizeOf(m.File)
			if !ok {
				continue
			}
			e.log.Info().Str("file", m.File.Name).
				Str("dest", filepath.Join(e.baseDir, m.Rule.Destination)).
				Msg("[预览] 移动")
			summary.Record(internal.ActionMove, size)

		case internal.ActionDelete:
			size, ok := e.sizeOf(m.File)
			if !ok {
				continue
			}
			e.log.Info().Str("file", m.File.Name).Msg("[预览] 删除")
			summary.Record(internal.ActionDelete, size)

		case internal.ActionCompress:
			e.log.Info().Str("file", m.File.Name).Msg("[预览] 压缩（暂未实现）")
		}
	}

	return summary
}

// Execute 实际执行动作。
// 删除动作整批经过一次确认门；单个文件的失败只影响自己，
// 计数只在动作真正成功之后累加，大小在文件被移走或删除前读取。
func (e *Executor) Execute(matches []rules.Match) *report.Summary {
	summary := &report.Summary{}

	deletesApproved := e.confirmDeletes(matches)

	for _, m := range matches {
		switch m.Rule.Action {
		case internal.ActionMove:
			if size, err := e.move(m.File, m.Rule); err != nil {
				e.log.Error().Err(err).Str("file", m.File.Name).Msg("移动文件失败")
			} else if size >= 0 {
				summary.Record(internal.ActionMove, size)
			}

		case internal.ActionDelete:
			if !deletesApproved {
				e.log.Warn().Str("file", m.File.Name).Msg("删除未获确认，跳过")
				continue
			}
			size, ok := e.sizeOf(m.File)
			if !ok {
				continue
			}
			if err := e.fs.Remove(m.File.Path); err != nil {
				e.log.Error().Err(err).Str("file", m.File.Name).Msg("删除文件失败")
				continue
			}
			e.log.Info().Str("file", m.File.Name).Msg("已删除")
			summary.Record(internal.ActionDelete, size)

		case internal.ActionCompress:
			e.log.Info().Str("file", m.File.Name).Msg("压缩动作暂未实现，跳过")
		}
	}

	return summary
}

// confirmDeletes 实际执行前的整批删除确认门。
// 没有待删除文件或已预先授权时直接放行；
// 拒绝或输入中断会取消本次运行的全部删除，move/compress 不受影响。
func (e *Executor) confirmDeletes(matches []rules.Match) bool {
	pending := 0
	for _, m := range matches {
		if m.Rule.Action == internal.ActionDelete {
			pending++
		}
	}

	if pending == 0 || e.autoConfirm {
		return true
	}

	if e.confirmer != nil && e.confirmer.Confirm(pending) {
		return true
	}

	e.log.Warn().Int("pending", pending).Msg("用户取消删除，本次运行不会删除任何文件")
	return false
}

// move 移动一个文件，返回文件大小
// 返回 (-1, nil) 表示主动跳过：规则缺少 destination、文件已消失、
// 或目标位置已有内容相同的文件
func (e *Executor) move(file scanner.FileEntry, rule rules.Rule) (int64, error) {
	if rule.Destination == "" {
		e.log.Warn().Str("file", file.Name).Msg("规则缺少 destination，跳过移动")
		return -1, nil
	}

	size, ok := e.sizeOf(file)
	if !ok {
		return -1, nil
	}

	destDir := filepath.Join(e.baseDir, rule.Destination)
	if err := e.fs.MkdirAll(destDir, 0755); err != nil {
		return -1, fmt.Errorf("创建目标目录 %s: %w", destDir, err)
	}

	target, duplicate, err := e.resolveCollision(file.Path, filepath.Join(destDir, file.Name))
	if err != nil {
		return -1, err
	}
	if duplicate {
		e.log.Warn().Str("file", file.Name).Str("dest", destDir).
			Msg("目标位置已存在内容相同的文件，跳过移动")
		return -1, nil
	}

	if err := e.fs.Rename(file.Path, target); err != nil {
		return -1, err
	}

	e.log.Info().Str("file", file.Name).Str("dest", target).Msg("已移动")
	return size, nil
}

// resolveCollision 处理目标位置的重名。
// 内容哈希一致视为同一文件（第二个返回值为 true）；
// 内容不同则沿用自增后缀重命名，直到找到空位。
func (e *Executor) resolveCollision(src, target string) (string, bool, error) {
	exists, err := afero.Exists(e.fs, target)
	if err != nil {
		return "", false, err
	}
	if !exists {
		return target, false, nil
	}

	if same, err := hasher.Equal(e.fs, src, target); err == nil && same {
		return "", true, nil
	}

	ext := filepath.Ext(target)
	base := strings.TrimSuffix(target, ext)

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
		exists, err := afero.Exists(e.fs, candidate)
		if err != nil {
			return "", false, err
		}
		if !exists {
			return candidate, false, nil
		}
	}
}

// sizeOf 在动作发生前读取文件大小，文件已消失时告警并示意跳过
func (e *Executor) sizeOf(file scanner.FileEntry) (int64, bool) {
	info, err := e.fs.Stat(file.Path)
	if err != nil {
		e.log.Warn().Err(err).Str("file", file.Name).Msg("文件已不存在，跳过")
		return 0, false
	}
	return info.Size(), true
}
