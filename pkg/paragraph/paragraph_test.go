package paragraph

import (
	"reflect"
	"testing"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "wrapped lines merge into one paragraph",
			in:   "第一行\n第二行\n",
			want: []string{"　　第一行第二行"},
		},
		{
			name: "blank line separates paragraphs",
			in:   "一\n\n二\n",
			want: []string{"　　一", "　　二"},
		},
		{
			name: "indented line starts a new paragraph",
			in:   "aaa\n　　bbb\n",
			want: []string{"　　aaa", "　　bbb"},
		},
		{
			name: "separator emitted verbatim",
			in:   "一\n------\n二\n",
			want: []string{"　　一", "　　------", "　　二"},
		},
		{
			name: "chapter title stands alone without prefix",
			in:   "正文\n第一章标题\n内容\n",
			want: []string{"　　正文", "第一章标题", "　　内容"},
		},
		{
			name: "indented title recognized after normalization",
			in:   "　　第10章\n",
			want: []string{"第10章"},
		},
		{
			name: "english wrap keeps exactly one space",
			in:   "It was a dark\nand stormy night\n",
			want: []string{"　　It was a dark and stormy night"},
		},
		{
			name: "cjk wrap joins tightly",
			in:   "他说\n再见\n",
			want: []string{"　　他说再见"},
		},
		{
			name: "final paragraph flushed without trailing newline",
			in:   "结尾",
			want: []string{"　　结尾"},
		},
		{
			name: "whitespace-only line acts as blank",
			in:   "一\n 　\t\n二\n",
			want: []string{"　　一", "　　二"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assemble(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Assemble(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAssembleNoWordFusion(t *testing.T) {
	// A forced wrap between two English words must neither fuse them
	// nor double the space.
	got := Assemble("one two\nthree four\n")
	want := []string{"　　one two three four"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Assemble = %q, want %q", got, want)
	}
}
