package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestMain ensures a run leaves no goroutines behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const (
	blue  = "\x1B[34m"
	red   = "\x1B[31m"
	reset = "\x1B[0m"
)

var greetings = filepath.Join("testdata", "greetings.txt")

// runFind runs the command in-process and captures both streams
func runFind(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(append([]string{"find"}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_CaseSensitive(t *testing.T) {
	code, stdout, stderr := runFind(greetings, "hello")

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
	assert.Equal(t, blue+" 1 "+reset+red+"hello"+reset+" world\n", stdout)
}

func TestRun_IgnoreCase(t *testing.T) {
	want := blue + " 1 " + reset + red + "hello" + reset + " world\n" +
		blue + " 2 " + reset + red + "Hello" + reset + " There\n"

	for _, flag := range []string{"-i", "--ignore-case"} {
		t.Run(flag, func(t *testing.T) {
			code, stdout, stderr := runFind(greetings, "hello", flag)
			assert.Equal(t, 0, code)
			assert.Empty(t, stderr)
			assert.Equal(t, want, stdout)
		})
	}
}

func TestRun_UnknownFlagsIgnored(t *testing.T) {
	code, stdout, stderr := runFind(greetings, "hello", "--color", "-x", "--help", "--version")

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
	assert.Equal(t, blue+" 1 "+reset+red+"hello"+reset+" world\n", stdout)
}

func TestRun_MatchInMiddleOfLine(t *testing.T) {
	code, stdout, _ := runFind(greetings, "There")

	assert.Equal(t, 0, code)
	assert.Equal(t, blue+" 2 "+reset+"Hello "+red+"There"+reset+"\n", stdout)
}

func TestRun_LastLineWithoutNewline(t *testing.T) {
	code, stdout, _ := runFind(filepath.Join("testdata", "no_trailing_newline.txt"), "match")

	assert.Equal(t, 0, code)
	assert.Equal(t,
		blue+" 1 "+reset+"first "+red+"match"+reset+" here\n"+
			blue+" 3 "+reset+"last "+red+"match"+reset+" without newline",
		stdout)
}

func TestRun_EmptyTermMatchesEveryLine(t *testing.T) {
	code, stdout, _ := runFind(greetings, "")

	assert.Equal(t, 0, code)
	lines := strings.SplitAfter(stdout, "\n")
	require.Len(t, lines, 4) // three lines plus the empty tail
	assert.Equal(t, blue+" 1 "+reset+red+reset+"hello world\n", lines[0])
	assert.Equal(t, blue+" 2 "+reset+red+reset+"Hello There\n", lines[1])
	assert.Equal(t, blue+" 3 "+reset+red+reset+"nothing\n", lines[2])
}

func TestRun_NoMatchesIsSuccess(t *testing.T) {
	code, stdout, stderr := runFind(greetings, "a term far longer than any line in the file", "-i")

	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestRun_MissingArguments(t *testing.T) {
	tests := map[string][]string{
		"no_arguments":   nil,
		"only_file_path": {greetings},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			code, stdout, stderr := runFind(args...)

			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Equal(t, HelpMessage+"\n", stderr)
		})
	}
}

func TestRun_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")

	code, stdout, stderr := runFind(path, "hello")

	assert.Equal(t, 1, code)
	assert.Empty(t, stderr, "open failures are reported on stdout")
	assert.True(t, strings.HasPrefix(stdout, "Exit with error: "))
	assert.Contains(t, stdout, "no such file or directory")
	assert.Contains(t, stdout, path)
}

func TestRun_ArgumentsArePositional(t *testing.T) {
	// A leading flag is taken as the file path.
	code, stdout, _ := runFind("-i", "hello")

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "Exit with error: ")
	assert.Contains(t, stdout, "-i")
}

func TestRun_HelpIsNotACommand(t *testing.T) {
	code, stdout, stderr := runFind("help")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, HelpMessage+"\n", stderr)
}

func TestRun_Idempotent(t *testing.T) {
	code1, out1, err1 := runFind(greetings, "o", "-i")
	code2, out2, err2 := runFind(greetings, "o", "-i")

	assert.Equal(t, code1, code2)
	assert.Equal(t, out1, out2)
	assert.Equal(t, err1, err2)
	assert.NotEmpty(t, out1)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("stdout closed") }

func TestRun_OutputFailureIsFatal(t *testing.T) {
	var errOut bytes.Buffer
	code := run([]string{"find", greetings, "hello"}, failingWriter{}, &errOut)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "stdout closed")
	assert.Contains(t, errOut.String(), "line 1")
}
