package rules

import (
	"sort"

	"github.com/h2non/filetype/matchers"
)

// 交互式规则构建器里可选的文件大类
var categoryMaps = map[string]matchers.Map{
	"image":    matchers.Image,
	"video":    matchers.Video,
	"audio":    matchers.Audio,
	"document": matchers.Document,
	"archive":  matchers.Archive,
}

// CategoryNames 返回固定顺序的大类名称
func CategoryNames() []string {
	return []string{"image", "video", "audio", "document", "archive"}
}

// TypesForCategory 把大类展开为具体的扩展名集合，未知大类返回 nil
func TypesForCategory(category string) []string {
	m, ok := categoryMaps[category]
	if !ok {
		return nil
	}

	exts := make([]string, 0, len(m))
	for t := range m {
		exts = append(exts, t.Extension)
	}

	sort.Strings(exts)
	return exts
}
