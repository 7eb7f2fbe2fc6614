package rules

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rish12345678/DeskManager/pkg/scanner"
)

// Match 一个文件与它命中的第一条规则的配对，每个文件最多出现一次
type Match struct {
	File scanner.FileEntry
	Rule Rule
}

// 支持的 ISO-8601 写法，不带时区的按 UTC 解析
var timeLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type timeRange struct {
	start *time.Time
	end   *time.Time
}

// contains 两端都是包含关系
func (r *timeRange) contains(t time.Time) bool {
	if r == nil {
		return true
	}
	if r.start != nil && t.Before(*r.start) {
		return false
	}
	if r.end != nil && t.After(*r.end) {
		return false
	}
	return true
}

type compiledRule struct {
	rule     Rule
	types    map[string]struct{}
	modified *timeRange
	created  *timeRange
}

// Matcher 按列表顺序对文件求值规则，首条全部条件满足的规则即命中
type Matcher struct {
	log   zerolog.Logger
	rules []compiledRule
}

// NewMatcher 编译规则列表
// 日期写法不合法的规则整条跳过并告警一次，对本次运行的所有文件都不再生效；
// 其余规则照常参与匹配
func NewMatcher(list []Rule, log zerolog.Logger) *Matcher {
	m := &Matcher{log: log}

	for i, r := range list {
		cr, err := compile(r)
		if err != nil {
			log.Warn().Err(err).Int("rule", i).Str("action", string(r.Action)).
				Msg("规则日期范围无法解析，整条规则跳过")
			continue
		}
		m.rules = append(m.rules, cr)
	}

	return m
}

func compile(r Rule) (compiledRule, error) {
	cr := compiledRule{rule: r}

	if len(r.Types) > 0 {
		cr.types = make(map[string]struct{}, len(r.Types))
		for _, t := range r.Types {
			cr.types[t] = struct{}{}
		}
	}

	if r.DateRange != nil {
		var err error
		if cr.modified, err = compileBounds(r.DateRange.Modified); err != nil {
			return cr, fmt.Errorf("modified: %w", err)
		}
		if cr.created, err = compileBounds(r.DateRange.Created); err != nil {
			return cr, fmt.Errorf("created: %w", err)
		}
	}

	return cr, nil
}

func compileBounds(b *Bounds) (*timeRange, error) {
	if b == nil {
		return nil, nil
	}

	tr := &timeRange{}

	if b.Start != "" {
		t, err := parseTime(b.Start)
		if err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
		tr.start = &t
	}

	if b.End != "" {
		t, err := parseTime(b.End)
		if err != nil {
			return nil, fmt.Errorf("end: %w", err)
		}
		tr.end = &t
	}

	return tr, nil
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("无法解析的时间 %q", s)
}

// Validate 检查一条规则能否参与匹配：动作已知且日期范围可解析
func Validate(r Rule) error {
	if !r.Action.Valid() {
		return fmt.Errorf("未知动作 %q", r.Action)
	}
	_, err := compile(r)
	return err
}

// Match 对每个文件按顺序求值规则，首次命中即停止（first-match-wins）。
// 没有命中任何规则的文件直接排除，不是错误。
func (m *Matcher) Match(files []scanner.FileEntry) []Match {
	var matches []Match

	for i := range files {
		file := &files[i]
		for _, cr := range m.rules {
			if !cr.matches(file) {
				continue
			}
			m.log.Debug().Str("file", file.Name).Str("action", string(cr.rule.Action)).
				Msg("文件命中规则")
			matches = append(matches, Match{File: files[i], Rule: cr.rule})
			break
		}
	}

	return matches
}

// matches 所有给出的条件都满足才算命中；没有条件的规则匹配一切
func (cr *compiledRule) matches(file *scanner.FileEntry) bool {
	if cr.types != nil {
		if _, ok := cr.types[file.Ext()]; !ok {
			return false
		}
	}

	if !cr.modified.contains(file.ModTime()) {
		return false
	}

	if cr.created != nil {
		created, _ := file.Created()
		if !cr.created.contains(created) {
			return false
		}
	}

	return true
}
