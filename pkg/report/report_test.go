package report

import (
	"strings"
	"testing"

	"github.com/rish12345678/DeskManager/internal"
)

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{0, "0B"},
		{1, "1.00B"},
		{512, "512.00B"},
		{1024, "1.00KB"},
		{1536, "1.50KB"},
		{1024 * 1024, "1.00MB"},
		{5 * 1024 * 1024 * 1024, "5.00GB"},
		{1024 * 1024 * 1024 * 1024, "1.00TB"},
		{3 * 1024 * 1024 * 1024 * 1024, "3.00TB"},
	}

	for _, c := range cases {
		got := FormatBytes(c.size)
		if got != c.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", c.size, got, c.want)
		}
	}
}

func TestSummary_Record(t *testing.T) {
	s := &Summary{}

	s.Record(internal.ActionMove, 100)
	s.Record(internal.ActionMove, 200)
	s.Record(internal.ActionDelete, 50)
	s.Record(internal.ActionCompress, 999)

	if s.Moved != 2 {
		t.Errorf("Moved = %d, want 2", s.Moved)
	}
	if s.Deleted != 1 {
		t.Errorf("Deleted = %d, want 1", s.Deleted)
	}
	if s.Compressed != 0 {
		t.Errorf("compress 未实现，不应计数，got %d", s.Compressed)
	}
	if s.TotalSize != 350 {
		t.Errorf("TotalSize = %d, want 350（compress 不计大小）", s.TotalSize)
	}
	if s.Total() != 3 {
		t.Errorf("Total() = %d, want 3", s.Total())
	}
}

func TestSummary_String(t *testing.T) {
	s := &Summary{Moved: 3, Deleted: 1, TotalSize: 2048}

	out := s.String()

	for _, want := range []string{"已移动: 3", "已删除: 1", "已压缩: 0", "2.00KB"} {
		if !strings.Contains(out, want) {
			t.Errorf("String() 缺少 %q:\n%s", want, out)
		}
	}
}
