package chapter

import (
	"reflect"
	"testing"
)

func TestFormatSpacing(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "two blanks before title one after",
			in:   []string{"　　正文", "第一章标题", "　　内容"},
			want: []string{"　　正文", "", "", "第一章 标题", "", "　　内容"},
		},
		{
			name: "title at document start gets no leading blanks",
			in:   []string{"第一章标题", "　　内容"},
			want: []string{"第一章 标题", "", "　　内容"},
		},
		{
			name: "leading blanks before initial title removed",
			in:   []string{"", "", "第一章", "　　内容"},
			want: []string{"第一章", "", "　　内容"},
		},
		{
			name: "excess blanks around title squeezed",
			in:   []string{"　　正文", "", "", "", "", "第二章", "", "", "", "　　内容"},
			want: []string{"　　正文", "", "", "第二章", "", "　　内容"},
		},
		{
			name: "missing blanks inserted",
			in:   []string{"　　正文", "第二章", "　　内容"},
			want: []string{"　　正文", "", "", "第二章", "", "　　内容"},
		},
		{
			name: "trailing blanks removed",
			in:   []string{"第一章", "　　内容", "", ""},
			want: []string{"第一章", "", "　　内容"},
		},
		{
			name: "title as last line keeps no trailing blank",
			in:   []string{"　　正文", "第三章"},
			want: []string{"　　正文", "", "", "第三章"},
		},
		{
			name: "non-title blanks pass through",
			in:   []string{"　　一", "", "　　二"},
			want: []string{"　　一", "", "　　二"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSpacing(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FormatSpacing(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
