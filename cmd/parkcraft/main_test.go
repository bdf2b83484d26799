package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/zappabad/parkcraft/internal/script"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("%v failed: %v\n%s", args, err, buf.String())
	}
	return buf.String()
}

func TestVersionCmd(t *testing.T) {
	out := run(t, "version")
	if !strings.Contains(out, "parkcraft dev") {
		t.Errorf("expected output to contain 'parkcraft dev', got: %s", out)
	}
	if !strings.Contains(out, "commit: none") {
		t.Errorf("expected output to contain 'commit: none', got: %s", out)
	}
}

func TestSimCmd(t *testing.T) {
	out := run(t, "--seed", "7", "sim", "-n", "3000")
	if !strings.Contains(out, "sim: 3000 ticks") {
		t.Errorf("expected summary line, got: %s", out)
	}
	if strings.Count(out, "\n") < 2 {
		t.Errorf("expected some messages to be logged, got: %s", out)
	}
}

func TestSimCmdRejectsBadConfig(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--tick=-1s", "sim", "-n", "1"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected validation error for negative tick")
	}
}

func TestMessagesImportExport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "saves.db")
	in := []script.MessageDesc{
		{Month: 3, Day: 14, TickCount: 20, Type: "attraction", Subject: 2, Text: "Log Flume has broken down"},
		{IsArchived: true, Month: 1, Day: 2, TickCount: 320, Type: "award", Subject: 1, Text: "Tidiest park award"},
	}
	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	file := filepath.Join(dir, "log.yaml")
	if err := os.WriteFile(file, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := run(t, "--save-path", dbPath, "messages", "import", file, "--name", "imported")
	if !strings.Contains(out, "Imported 2 messages") {
		t.Fatalf("unexpected import output: %s", out)
	}
	fields := strings.Fields(out)
	id := fields[len(fields)-1]

	list := run(t, "--save-path", dbPath, "messages", "list")
	if !strings.Contains(list, id) || !strings.Contains(list, "imported") {
		t.Errorf("slot missing from list: %s", list)
	}

	exported := run(t, "--save-path", dbPath, "messages", "export", id)
	var got []script.MessageDesc
	if err := yaml.Unmarshal([]byte(exported), &got); err != nil {
		t.Fatalf("unmarshal export: %v\n%s", err, exported)
	}
	if len(got) != len(in) {
		t.Fatalf("expected %d messages, got %d", len(in), len(got))
	}
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("message %d: expected %+v, got %+v", i, in[i], got[i])
		}
	}

	run(t, "--save-path", dbPath, "messages", "delete", id)
	if list := run(t, "--save-path", dbPath, "messages", "list"); !strings.Contains(list, "No save slots") {
		t.Errorf("expected no slots after delete, got: %s", list)
	}
}
