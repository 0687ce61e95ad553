package chapter

import "testing"

func TestIsTitle(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"第十章 归来", true},
		{"第10章", true},
		{"第一百二十三章 决战", true},
		{"第〇章", true},
		{"番外一", true},
		{"番外", true},
		{"序章", true},
		{"序章 缘起", true},
		// No numerals between 第 and 章 is not a match, and the indent
		// marker blocks the prefix entirely.
		{"第章", false},
		{"普通段落", false},
		{"十章", false},
		{"　　第一章", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := IsTitle(tt.line); got != tt.want {
				t.Errorf("IsTitle(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestSplitPrefix(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		prefix string
		rest   string
		ok     bool
	}{
		{name: "numbered chinese", line: "第十章 归来", prefix: "第十章", rest: " 归来", ok: true},
		{name: "numbered ascii", line: "第10章", prefix: "第10章", rest: "", ok: true},
		{name: "extra", line: "番外一", prefix: "番外", rest: "一", ok: true},
		{name: "prologue", line: "序章：缘起", prefix: "序章", rest: "：缘起", ok: true},
		{name: "no match", line: "归来", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, rest, ok := SplitPrefix(tt.line)
			if ok != tt.ok || prefix != tt.prefix || rest != tt.rest {
				t.Errorf("SplitPrefix(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.line, prefix, rest, ok, tt.prefix, tt.rest, tt.ok)
			}
		})
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "space inserted", in: "第一章标题", want: "第一章 标题"},
		{name: "noise stripped", in: "第一章　　：　标题", want: "第一章 标题"},
		{name: "ascii colon stripped", in: "第二章: 标题", want: "第二章 标题"},
		{name: "repeated noise", in: "第三章 ： ： 标题", want: "第三章 标题"},
		{name: "bare prefix", in: "第10章", want: "第10章"},
		{name: "prefix plus noise only", in: "第10章：　", want: "第10章"},
		{name: "non-title unchanged", in: "普通段落", want: "普通段落"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTitle(tt.in); got != tt.want {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
