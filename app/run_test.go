package app

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/rish12345678/DeskManager/internal"
	"github.com/rish12345678/DeskManager/pkg/executor"
	"github.com/rish12345678/DeskManager/pkg/rules"
	"github.com/rish12345678/DeskManager/pkg/scanner"
)

func alwaysYes() executor.Confirmer {
	return executor.ConfirmFunc(func(int) bool { return true })
}

func alwaysNo() executor.Confirmer {
	return executor.ConfirmFunc(func(int) bool { return false })
}

func TestExecute_MoveByTypeAndDateRange(t *testing.T) {
	fs := afero.NewMemMapFs()

	if err := fs.MkdirAll("/desk", 0755); err != nil {
		t.Fatal(err)
	}
	afero.WriteFile(fs, "/desk/a.jpg", []byte("jpeg data"), 0644)
	mod := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
	fs.Chtimes("/desk/a.jpg", mod, mod)

	opts := &RunOptions{
		Dir: "/desk",
		Rules: []rules.Rule{{
			Action:      internal.ActionMove,
			Destination: "images",
			Types:       []string{"jpg"},
			DateRange: &rules.DateRange{Modified: &rules.Bounds{
				Start: "2024-01-01T00:00:00",
				End:   "2024-01-31T23:59:59",
			}},
		}},
	}

	summary, err := Execute(fs, alwaysYes(), opts, zerolog.Nop())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if moved, _ := afero.Exists(fs, "/desk/images/a.jpg"); !moved {
		t.Error("文件应被移动到 images/a.jpg")
	}
	if summary.Moved != 1 {
		t.Errorf("Moved = %d, want 1", summary.Moved)
	}
}

func TestExecute_RulesLoadedFromFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	fs.MkdirAll("/desk", 0755)
	afero.WriteFile(fs, "/desk/notes.txt", []byte("text"), 0644)
	afero.WriteFile(fs, "/rules.json",
		[]byte(`[{"action": "move", "destination": "docs", "types": ["txt"]}]`), 0644)

	opts := &RunOptions{Dir: "/desk", RulesPath: "/rules.json"}

	summary, err := Execute(fs, alwaysYes(), opts, zerolog.Nop())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if summary.Moved != 1 {
		t.Errorf("Moved = %d, want 1", summary.Moved)
	}
}

func TestExecute_DeclinedDeleteKeepsMoves(t *testing.T) {
	fs := afero.NewMemMapFs()

	fs.MkdirAll("/desk", 0755)
	afero.WriteFile(fs, "/desk/old.log", []byte("log"), 0644)
	afero.WriteFile(fs, "/desk/a.jpg", []byte("jpeg"), 0644)

	opts := &RunOptions{
		Dir: "/desk",
		Rules: []rules.Rule{
			{Action: internal.ActionDelete, Types: []string{"log"}},
			{Action: internal.ActionMove, Destination: "images", Types: []string{"jpg"}},
		},
	}

	summary, err := Execute(fs, alwaysNo(), opts, zerolog.Nop())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if kept, _ := afero.Exists(fs, "/desk/old.log"); !kept {
		t.Error("拒绝确认后文件不应被删除")
	}
	if summary.Deleted != 0 {
		t.Errorf("Deleted = %d, want 0", summary.Deleted)
	}
	if summary.Moved != 1 {
		t.Errorf("拒绝删除不应影响 move, Moved = %d", summary.Moved)
	}
}

func TestExecute_EmptyDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	fs.MkdirAll("/desk", 0755)

	opts := &RunOptions{
		Dir:   "/desk",
		Rules: []rules.Rule{{Action: internal.ActionDelete}},
	}

	summary, err := Execute(fs, alwaysYes(), opts, zerolog.Nop())
	if err != nil {
		t.Fatalf("空目录不应报错: %v", err)
	}
	if summary.Total() != 0 || summary.TotalSize != 0 {
		t.Errorf("空目录应得到全零统计: %+v", summary)
	}
}

func TestExecute_MissingDirIsFatal(t *testing.T) {
	fs := afero.NewMemMapFs()

	opts := &RunOptions{
		Dir:   "/nope",
		Rules: []rules.Rule{{Action: internal.ActionDelete}},
	}

	_, err := Execute(fs, alwaysYes(), opts, zerolog.Nop())
	if !errors.Is(err, scanner.ErrNotDirectory) {
		t.Errorf("目录缺失应是致命错误, got %v", err)
	}
}

func TestExecute_BadRulesFileIsFatal(t *testing.T) {
	fs := afero.NewMemMapFs()
	fs.MkdirAll("/desk", 0755)
	afero.WriteFile(fs, "/rules.json", []byte(`not json`), 0644)

	opts := &RunOptions{Dir: "/desk", RulesPath: "/rules.json"}

	if _, err := Execute(fs, alwaysYes(), opts, zerolog.Nop()); err == nil {
		t.Error("规则文件解析失败应是致命错误")
	}
}

func TestExecute_DryRunMatchesLive(t *testing.T) {
	build := func() afero.Fs {
		fs := afero.NewMemMapFs()
		fs.MkdirAll("/desk", 0755)
		afero.WriteFile(fs, "/desk/a.jpg", []byte("jpeg data"), 0644)
		afero.WriteFile(fs, "/desk/b.png", []byte("png data"), 0644)
		afero.WriteFile(fs, "/desk/old.log", []byte("log data"), 0644)
		return fs
	}

	ruleSet := []rules.Rule{
		{Action: internal.ActionMove, Destination: "images", Types: []string{"jpg", "png"}},
		{Action: internal.ActionDelete, Types: []string{"log"}},
	}

	dryFs := build()
	dry, err := Execute(dryFs, alwaysYes(), &RunOptions{Dir: "/desk", Rules: ruleSet, DryRun: true}, zerolog.Nop())
	if err != nil {
		t.Fatalf("dry-run error = %v", err)
	}

	// 预览不触碰文件系统
	for _, path := range []string{"/desk/a.jpg", "/desk/b.png", "/desk/old.log"} {
		if ok, _ := afero.Exists(dryFs, path); !ok {
			t.Errorf("预览模式不应改动 %s", path)
		}
	}

	live, err := Execute(build(), alwaysYes(), &RunOptions{Dir: "/desk", Rules: ruleSet, AutoConfirm: true}, zerolog.Nop())
	if err != nil {
		t.Fatalf("live error = %v", err)
	}

	// 同一快照上预览与实际执行的统计一致
	if dry.Moved != live.Moved || dry.Deleted != live.Deleted || dry.TotalSize != live.TotalSize {
		t.Errorf("预览与实际执行统计不一致: dry=%+v live=%+v", dry, live)
	}
}
