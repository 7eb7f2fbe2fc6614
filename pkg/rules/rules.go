package rules

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/rish12345678/DeskManager/internal"
)

// Rule 一条声明式整理规则。规则按列表顺序求值，加载后不再修改。
type Rule struct {
	Action      internal.Action `json:"action"`
	Destination string          `json:"destination,omitempty"`
	Types       []string        `json:"types,omitempty"`
	DateRange   *DateRange      `json:"date_range,omitempty"`
}

// DateRange 按时间戳过滤的可选条件，modified 和 created 相互独立
type DateRange struct {
	Modified *Bounds `json:"modified,omitempty"`
	Created  *Bounds `json:"created,omitempty"`
}

// Bounds ISO-8601 时间上下界，UTC，两端包含，缺省一侧表示不限制
type Bounds struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Load 从 JSON 文件加载规则列表
// 文件缺失、JSON 语法错误和未知动作都是致命错误，在引擎运行前报告
func Load(fs afero.Fs, path string) ([]Rule, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("读取规则文件失败 %s: %w", path, err)
	}

	var list []Rule
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("规则文件不是合法的 JSON %s: %w", path, err)
	}

	for i := range list {
		if err := list[i].normalize(); err != nil {
			return nil, fmt.Errorf("规则 [%d]: %w", i, err)
		}
	}

	return list, nil
}

// normalize 做加载期的形状校验并统一扩展名写法
func (r *Rule) normalize() error {
	if r.Action == "" {
		return fmt.Errorf("缺少 action 字段")
	}
	if !r.Action.Valid() {
		return fmt.Errorf("未知动作 %q", r.Action)
	}

	for i, t := range r.Types {
		r.Types[i] = strings.ToLower(strings.TrimPrefix(t, "."))
	}

	// move 缺少 destination 不在这里拦截：
	// 执行器对这种规则逐文件告警并跳过
	return nil
}
