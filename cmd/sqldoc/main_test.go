// Package main provides tests for the sqldoc CLI.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/sqldoc/internal/cli"
)

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("version command error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "sqldoc") {
		t.Errorf("version output should contain 'sqldoc', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	output := buf.String()
	expectedCommands := []string{"generate", "check", "dialects", "version"}
	for _, expected := range expectedCommands {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "schema.sql")
	sql := `CREATE TABLE users (id INT PRIMARY KEY, email VARCHAR(255) UNIQUE);
CREATE TABLE posts (id INT PRIMARY KEY, user_id INT, FOREIGN KEY(user_id) REFERENCES users(id));`
	if err := os.WriteFile(schema, []byte(sql), 0600); err != nil {
		t.Fatalf("failed to write schema: %v", err)
	}

	outDir := filepath.Join(dir, "docs")
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"generate", "--output-dir", outDir, "--format", "all", schema})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate command error = %v", err)
	}

	for _, name := range []string{"schema.md", "schema.mmd", "schema.json"} {
		path := filepath.Join(outDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("expected artifact %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Errorf("artifact %s is empty", name)
		}
	}

	md, _ := os.ReadFile(filepath.Join(outDir, "schema.md"))
	if !strings.Contains(string(md), "## users") {
		t.Errorf("markdown should document the users table, got: %s", md)
	}
}

func TestCheckCommandReportsProblems(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "schema.sql")
	sql := `CREATE TABLE posts (id INT PRIMARY KEY, user_id INT REFERENCES users(id));`
	if err := os.WriteFile(schema, []byte(sql), 0600); err != nil {
		t.Fatalf("failed to write schema: %v", err)
	}

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"check", schema})

	if err := cmd.Execute(); err == nil {
		t.Error("check should fail for an unresolved foreign key")
	}
	if !strings.Contains(buf.String(), "unresolved reference") {
		t.Errorf("check output should mention the unresolved reference, got: %s", buf.String())
	}
}
