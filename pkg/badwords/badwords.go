package badwords

import (
	"strings"
	"unicode"
)

// 默认屏蔽词表（土耳其语社区版本沿用的词表）
var defaultBlockList = []string{
	"amk", "aq", "oç", "piç", "sik", "yarrak", "amcık", "göt",
	"kaşar", "orospu", "salak", "gerizekalı", "aptal", "mal",
	"ananı", "sikerim", "şerefsiz",
}

// 高危子集：这些词即使作为子串出现也直接命中
var severeSubset = []string{"amk", "aq", "oç", "sik", "piç"}

// Filter 屏蔽词过滤器，词表在构造时固定
type Filter struct {
	words  map[string]struct{}
	severe []string
}

// New 创建过滤器，extra 为配置追加的屏蔽词
func New(extra ...string) *Filter {
	f := &Filter{
		words:  make(map[string]struct{}, len(defaultBlockList)+len(extra)),
		severe: severeSubset,
	}
	for _, w := range defaultBlockList {
		f.words[normalize(w)] = struct{}{}
	}
	for _, w := range extra {
		if w = strings.TrimSpace(w); w != "" {
			f.words[normalize(w)] = struct{}{}
		}
	}
	return f
}

// Contains 判断文本是否包含屏蔽词
// 普通词按完整单词匹配，高危子集按子串匹配
func (f *Filter) Contains(text string) bool {
	if text == "" {
		return false
	}
	normalized := normalize(text)

	for _, word := range fields(normalized) {
		if _, ok := f.words[word]; ok {
			return true
		}
	}

	for _, w := range f.severe {
		if strings.Contains(normalized, w) {
			return true
		}
	}
	return false
}

// normalize 土耳其语大小写归一化：İ→i、I→ı，再整体转小写
// 直接用 strings.ToLower 会把 I 错误地变成 i
func normalize(s string) string {
	s = strings.ReplaceAll(s, "İ", "i")
	s = strings.ReplaceAll(s, "I", "ı")
	return strings.ToLower(s)
}

// fields 按非字母数字字符切分出单词
func fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
