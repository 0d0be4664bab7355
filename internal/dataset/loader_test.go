package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSchemas(t *testing.T) {
	tests := []struct {
		name      string
		csv       string
		wantCount int
		wantFirst int
	}{
		{
			name:      "label text columns",
			csv:       "label,text\nspam,win a free prize now\nham,see you at lunch today\n",
			wantCount: 2,
			wantFirst: 1,
		},
		{
			name:      "v1 v2 columns",
			csv:       "v1,v2\nham,are we still meeting later\nspam,claim your reward immediately\n",
			wantCount: 2,
			wantFirst: 0,
		},
		{
			name:      "positional fallback",
			csv:       "category,message\nspam,cheap pills online order today\nham,thanks for the notes\n",
			wantCount: 2,
			wantFirst: 1,
		},
		{
			name:      "extra columns ignored",
			csv:       "label,text,unused\nspam,free lottery entry,x\n" + "ham,meeting room booked,y\n",
			wantCount: 2,
			wantFirst: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewLoader(zap.NewNop())
			got, err := loader.Load(writeCSV(t, tt.csv))
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if len(got) != tt.wantCount {
				t.Fatalf("got %d examples, want %d", len(got), tt.wantCount)
			}
			if got[0].Label != tt.wantFirst {
				t.Errorf("first label = %d, want %d", got[0].Label, tt.wantFirst)
			}
		})
	}
}

func TestLoadDropsBadRows(t *testing.T) {
	csv := "label,text\n" +
		"spam,free prize inside\n" +
		"maybe,this label is unknown\n" +
		"ham,\n" +
		"spam,12345 678\n" + // cleans to empty
		"ham,ok lunch at noon\n"
	loader := NewLoader(zap.NewNop())
	got, err := loader.Load(writeCSV(t, csv))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d examples, want 2", len(got))
	}
}

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		raw    string
		strict bool
		want   int
		ok     bool
	}{
		{"spam", true, 1, true},
		{"SPAM ", true, 1, true},
		{" Spam", true, 1, true},
		{"ham", true, 0, true},
		{"HAM", true, 0, true},
		{"non-spam", false, 0, true},
		{"nonspam", false, 0, true},
		{"non-spam", true, 0, false},
		{"other", false, 0, false},
		{"", true, 0, false},
	}
	for _, tt := range tests {
		got, ok := normalizeLabel(tt.raw, tt.strict)
		if got != tt.want || ok != tt.ok {
			t.Errorf("normalizeLabel(%q, strict=%v) = (%d, %v), want (%d, %v)",
				tt.raw, tt.strict, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewLoader(zap.NewNop())
	if _, err := loader.Load(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadLatin1(t *testing.T) {
	// 0xE9 is é in Latin-1 and invalid as a standalone UTF-8 byte.
	csv := "label,text\nspam,caf\xe9 discount voucher waiting\n" +
		"ham,normal message text here\nham,another plain message\n"
	loader := NewLoader(zap.NewNop())
	got, err := loader.Load(writeCSV(t, csv))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d examples, want 3", len(got))
	}
}
