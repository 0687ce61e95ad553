package paragraph

import "testing"

func TestNormalizeLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "whitespace between words collapses to one space",
			in:   "hello   world",
			want: "hello world",
		},
		{
			name: "whitespace not between words removed",
			in:   "hello , world",
			want: "hello,world",
		},
		{
			name: "fullwidth space around cjk removed",
			in:   "　　你好　世界",
			want: "你好世界",
		},
		{
			name: "tab between words collapses",
			in:   "foo\tbar",
			want: "foo bar",
		},
		{
			name: "fullwidth letters and digits fold",
			in:   "ｈｅｌｌｏ１２３",
			want: "hello123",
		},
		{
			name: "punctuation after cjk goes fullwidth",
			in:   "你好,世界",
			want: "你好，世界",
		},
		{
			name: "punctuation after ascii word folds to ascii",
			in:   "hello，world",
			want: "hello,world",
		},
		{
			name: "word state resets after punctuation",
			in:   "abc!?",
			want: "abc!？",
		},
		{
			name: "word state carries across space",
			in:   "hello ！",
			want: "hello!",
		},
		{
			name: "paired brackets follow context",
			in:   "他说(注)",
			want: "他说（注）",
		},
		{
			name: "folded fullwidth feeds punctuation context",
			in:   "ＡＢＣ！",
			want: "ABC!",
		},
		{
			name: "semicolon and tilde pairs",
			in:   "你好;再见~",
			want: "你好；再见～",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeLine(tt.in); got != tt.want {
				t.Errorf("normalizeLine(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
