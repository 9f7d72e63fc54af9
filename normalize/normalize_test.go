package normalize

import "testing"

func TestText_JoinsHyphenatedLineBreaks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"word split", "infor-\nmation", "information"},
		{"digits join too", "COVID-\n19", "COVID19"},
		{"dash before blank line survives", "trailing-\n\nnext", "trailing-\n\nnext"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.input); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestText_CapsBlankRuns(t *testing.T) {
	got := Text("first\n\n\n\n\nsecond")
	want := "first\n\n\nsecond"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	// Two blank lines between blocks are left alone.
	got = Text("first\n\n\nsecond")
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestText_CollapsesSpaceRuns(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"double space to single", "a  b", "a b"},
		{"long run to column gap", "a          b", "a    b"},
		{"tabs count as spaces", "a\t\t\tb", "a    b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.input); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestText_BlanksNoiseLines(t *testing.T) {
	got := Text("text\n-\nmore")
	want := "text\n\nmore"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	// A single letter or digit on its own line is content, not noise.
	got = Text("list\na\n1")
	want = "list\na\n1"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestText_RemovesDecorativeRules(t *testing.T) {
	got := Text("Jane Doe\n----------\nEngineer")
	want := "Jane Doe\n\nEngineer"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	got = Text("a\n==========\nb\n..........\nc")
	want = "a\n\nb\n\nc"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestText_FixesCommonMisreads(t *testing.T) {
	got := Text("|ike {this} and |egib|e")
	want := "like (this) and legible"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestText_TrimsLineEdgesAndOuterBlankLines(t *testing.T) {
	got := Text("\n\n   hello   \n   world\n\n")
	want := "hello\nworld"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestText_NormalizesLineEndingsAndUnicode(t *testing.T) {
	got := Text("first\r\nsecond")
	want := "first\nsecond"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	// Combining acute accent composes to the precomposed form.
	got = Text("José")
	want = "José"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestText_InsertsSectionBreaks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"english header",
			"Jane Doe, engineer\nExperience\nAcme Corp",
			"Jane Doe, engineer\n\nExperience\nAcme Corp",
		},
		{
			"case insensitive",
			"intro\nEDUCATION\nMIT",
			"intro\n\nEDUCATION\nMIT",
		},
		{
			"spanish header",
			"perfil breve\nEducación\nUNAM",
			"perfil breve\n\nEducación\nUNAM",
		},
		{
			"already separated",
			"intro\n\nSkills\nGo",
			"intro\n\nSkills\nGo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.input); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestText_CustomKeywords(t *testing.T) {
	n := NewWithConfig(Config{SectionKeywords: []string{"publications"}})

	got := n.Text("bio\nPublications\npaper one")
	want := "bio\n\nPublications\npaper one"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	// Default keywords no longer apply.
	got = n.Text("bio\nExperience\nAcme")
	want = "bio\nExperience\nAcme"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestText_Idempotent(t *testing.T) {
	input := "  Jane  Doe  \n----------\nExperience\nbuilt distributed sys-\ntems on |inux\n\n\n\n\nEducación\nUNAM"

	once := Text(input)
	twice := Text(once)
	if once != twice {
		t.Errorf("expected idempotent cleanup, got\nfirst:  %q\nsecond: %q", once, twice)
	}
}
