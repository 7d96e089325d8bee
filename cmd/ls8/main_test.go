package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeProgram(t *testing.T, lines ...string) (path string) {
	path = filepath.Join(t.TempDir(), "prog.ls8")
	err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
	assert.NoError(t, err)
	return
}

func TestRun_Usage(t *testing.T) {
	assert := assert.New(t)

	for _, args := range [][]string{
		{"ls8"},
		{"ls8", "a.ls8", "b.ls8"},
		{"ls8", "--", "prog.ls8"},
	} {
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		assert.Equal(EXIT_USAGE, run(args, stdout, stderr), args)
		assert.Contains(stderr.String(), "usage: ls8 <filename>")
		assert.Empty(stdout.String())
	}
}

func TestRun_DashName(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "-prog.ls8")
	err := os.WriteFile(path, []byte("00000001 # HLT\n"), 0o644)
	assert.NoError(err)

	t.Chdir(filepath.Dir(path))

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	assert.Equal(EXIT_OK, run([]string{"ls8", "-prog.ls8"}, stdout, stderr))
	assert.Equal("Exiting...\n", stdout.String())
	assert.Empty(stderr.String())
}

func TestRun_NotFound(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "missing.ls8")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	assert.Equal(EXIT_NOT_FOUND, run([]string{"ls8", path}, stdout, stderr))
	assert.Equal("ls8: "+path+" not found\n", stderr.String())
	assert.Empty(stdout.String())
}

func TestRun_Print8(t *testing.T) {
	assert := assert.New(t)

	path := writeProgram(t,
		"# print8.ls8",
		"10000010 # LDI R0,8",
		"00000000",
		"00001000",
		"01000111 # PRN R0",
		"00000000",
		"00000001 # HLT",
	)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	assert.Equal(EXIT_OK, run([]string{"ls8", path}, stdout, stderr))
	assert.Equal("8\nExiting...\n", stdout.String())
	assert.Empty(stderr.String())
}

func TestRun_Mult(t *testing.T) {
	assert := assert.New(t)

	path := writeProgram(t,
		"10000010 # LDI R0,9",
		"00000000",
		"00001001",
		"10000010 # LDI R1,5",
		"00000001",
		"00000101",
		"10100010 # MUL R0,R1",
		"00000000",
		"00000001",
		"01000111 # PRN R0",
		"00000000",
		"00000001 # HLT",
	)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	assert.Equal(EXIT_OK, run([]string{"ls8", path}, stdout, stderr))
	assert.Equal("45\nExiting...\n", stdout.String())
}

func TestRun_Fault(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		lines []string
		text  string
	}){
		{"syntax", []string{"10000010", "2"}, "line 2"},
		{"register", []string{"01000111 # PRN R9", "00001001"}, "register index out of range"},
	}

	for _, entry := range table {
		path := writeProgram(t, entry.lines...)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		assert.Equal(EXIT_FAULT, run([]string{"ls8", path}, stdout, stderr), entry.name)
		assert.Contains(stderr.String(), entry.text, entry.name)
		assert.Empty(stdout.String(), entry.name)
	}
}
