package service

import (
	"fmt"
	"testing"

	"bayaaz-server/internal/model"
)

func TestStripMarkup(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"<p>Ya Hussain</p>", "Ya Hussain"},
		{"<div><b>line one</b></div>\n<div>line two</div>", "line one line two"},
		{"plain   text\t\twith   gaps", "plain text with gaps"},
		{"  <br/>  ", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := StripMarkup(tc.in); got != tc.want {
			t.Errorf("StripMarkup(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuildSearchIndex(t *testing.T) {
	lyric := &model.Lyric{
		Title:     "Shab-e-Ashur",
		Poet:      "Mir Anees",
		Tags:      []string{"Karbala", "Muharram"},
		PlainText: "The Night of Ashura",
	}
	got := BuildSearchIndex(lyric)
	want := "shab-e-ashur mir anees karbala muharram the night of ashura"
	if got != want {
		t.Errorf("BuildSearchIndex = %q, want %q", got, want)
	}
}

func TestPrepareForSaveDerivesPlainText(t *testing.T) {
	lyric := &model.Lyric{Title: "T", Content: "<p>Salaam  ya</p> <i>Hussain</i>"}
	PrepareForSave(lyric, "", true, true)

	if lyric.PlainText != "Salaam ya Hussain" {
		t.Errorf("PlainText = %q", lyric.PlainText)
	}
	if lyric.SearchIndex == "" {
		t.Error("SearchIndex not derived")
	}
	if lyric.LastViewedAt == nil {
		t.Error("LastViewedAt not stamped")
	}
	if len(lyric.Versions) != 0 {
		t.Errorf("new lyric must not get a version entry, got %d", len(lyric.Versions))
	}
}

func TestPrepareForSavePushesPreviousContent(t *testing.T) {
	lyric := &model.Lyric{Title: "T", Content: "second"}
	PrepareForSave(lyric, "first", false, true)

	if len(lyric.Versions) != 1 {
		t.Fatalf("versions = %d, want 1", len(lyric.Versions))
	}
	if lyric.Versions[0].Content != "first" {
		t.Errorf("version content = %q, want previous content", lyric.Versions[0].Content)
	}
	if lyric.Versions[0].Reason != "auto-save" {
		t.Errorf("version reason = %q", lyric.Versions[0].Reason)
	}
}

func TestPrepareForSaveCapsVersionHistory(t *testing.T) {
	lyric := &model.Lyric{Title: "T"}
	for i := 0; i < model.VersionHistoryLimit+5; i++ {
		previous := lyric.Content
		lyric.Content = fmt.Sprintf("revision %d", i)
		PrepareForSave(lyric, previous, i == 0, true)
	}

	if len(lyric.Versions) != model.VersionHistoryLimit {
		t.Fatalf("versions = %d, want %d", len(lyric.Versions), model.VersionHistoryLimit)
	}
	// Newest superseded content first.
	if lyric.Versions[0].Content != fmt.Sprintf("revision %d", model.VersionHistoryLimit+3) {
		t.Errorf("versions[0] = %q, want most recently superseded", lyric.Versions[0].Content)
	}
}

func TestPrepareForSaveNoVersionWithoutContentChange(t *testing.T) {
	lyric := &model.Lyric{Title: "T", Content: "same"}
	PrepareForSave(lyric, "same", false, false)

	if len(lyric.Versions) != 0 {
		t.Errorf("versions = %d, want 0 when content unchanged", len(lyric.Versions))
	}
	if lyric.LastViewedAt == nil {
		t.Error("LastViewedAt must be stamped on every save")
	}
}

func TestAuthorizeMutation(t *testing.T) {
	unlocked := &model.Lyric{IsLocked: false}
	if !AuthorizeMutation(unlocked, "") {
		t.Error("unlocked lyric must always authorize")
	}

	locked := &model.Lyric{IsLocked: true, LockPin: "1234"}
	if AuthorizeMutation(locked, "0000") {
		t.Error("wrong PIN must not authorize")
	}
	if !AuthorizeMutation(locked, "1234") {
		t.Error("matching PIN must authorize")
	}
}
