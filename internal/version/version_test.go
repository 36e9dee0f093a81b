package version

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

// fakeGit answers git lookups from this test binary. Each describe mode
// ("always" for the commit, "tags" for the version) takes its reply from
// the matching entry: "fail" exits non-zero, "hang" never returns, anything
// else is printed followed by a newline.
func fakeGit(t *testing.T, replies map[string]string) {
	t.Helper()

	origExec, origTimeout := execCommand, gitTimeout
	t.Cleanup(func() {
		execCommand, gitTimeout = origExec, origTimeout
		Reset()
	})
	Reset()

	env := []string{"VERSION_GIT_HELPER=1"}
	for mode, reply := range replies {
		env = append(env, "FAKE_GIT_"+strings.ToUpper(mode)+"="+reply)
	}
	execCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cs := append([]string{"-test.run=^TestGitHelper$", "--", name}, args...)
		cmd := exec.CommandContext(ctx, os.Args[0], cs...)
		cmd.Env = env
		return cmd
	}
}

// TestGitHelper is the process behind fakeGit; it does nothing in a normal run.
func TestGitHelper(t *testing.T) {
	if os.Getenv("VERSION_GIT_HELPER") != "1" {
		return
	}

	var args []string
	for i, a := range os.Args {
		if a == "--" {
			args = os.Args[i+1:]
			break
		}
	}
	if len(args) < 3 || args[0] != "git" || args[1] != "describe" {
		os.Exit(2)
	}

	switch reply := os.Getenv("FAKE_GIT_" + strings.ToUpper(strings.TrimPrefix(args[2], "--"))); reply {
	case "fail":
		os.Exit(1)
	case "hang":
		time.Sleep(time.Minute)
	default:
		os.Stdout.WriteString(reply + "\n")
	}
	os.Exit(0)
}

func TestGit_TrimsOutput(t *testing.T) {
	fakeGit(t, map[string]string{"tags": "  v2.0.1  "})

	got, err := git("describe", "--tags", "--abbrev=0")
	if err != nil {
		t.Fatalf("git() error = %v", err)
	}
	if got != "v2.0.1" {
		t.Errorf("git() = %q, want %q", got, "v2.0.1")
	}
}

func TestGit_Timeout(t *testing.T) {
	fakeGit(t, map[string]string{"tags": "hang"})
	gitTimeout = 50 * time.Millisecond

	start := time.Now()
	if _, err := git("describe", "--tags", "--abbrev=0"); err == nil {
		t.Fatal("git() should fail when the command outlives its timeout")
	}
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Errorf("git() took %v, timeout was not enforced", elapsed)
	}
}

func TestGitFallbacks(t *testing.T) {
	tests := []struct {
		name       string
		replies    map[string]string
		timeout    time.Duration
		wantVer    string
		wantCommit string
	}{
		{
			name:       "Tagged",
			replies:    map[string]string{"tags": "v1.4.0", "always": "1a2b3c4"},
			wantVer:    "v1.4.0",
			wantCommit: "1a2b3c4",
		},
		{
			name:       "DirtyTree",
			replies:    map[string]string{"tags": "v1.4.0", "always": "1a2b3c4-dirty"},
			wantVer:    "v1.4.0",
			wantCommit: "1a2b3c4-dirty",
		},
		{
			name:       "NoTags",
			replies:    map[string]string{"tags": "fail", "always": "1a2b3c4"},
			wantVer:    "dev",
			wantCommit: "1a2b3c4",
		},
		{
			name:       "EmptyTag",
			replies:    map[string]string{"tags": "", "always": "1a2b3c4"},
			wantVer:    "dev",
			wantCommit: "1a2b3c4",
		},
		{
			name:       "NoRepository",
			replies:    map[string]string{"tags": "fail", "always": "fail"},
			wantVer:    "dev",
			wantCommit: "unknown",
		},
		{
			name:       "GitHangs",
			replies:    map[string]string{"tags": "hang", "always": "hang"},
			timeout:    50 * time.Millisecond,
			wantVer:    "dev",
			wantCommit: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakeGit(t, tt.replies)
			if tt.timeout > 0 {
				gitTimeout = tt.timeout
			}

			if got := GetVersion(); got != tt.wantVer {
				t.Errorf("GetVersion() = %q, want %q", got, tt.wantVer)
			}
			if got := GetCommit(); got != tt.wantCommit {
				t.Errorf("GetCommit() = %q, want %q", got, tt.wantCommit)
			}
			if GetDate() == "" {
				t.Error("GetDate() returned empty string")
			}
		})
	}
}

func TestLdflagsWinOverGit(t *testing.T) {
	fakeGit(t, map[string]string{"tags": "v9.9.9", "always": "ffffff"})
	Version, Commit, Date = "v1.0.0", "abc1234", "2020-03-15"

	want := "covid-tracker v1.0.0 (commit: abc1234, built: 2020-03-15"
	if info := Info(); !strings.HasPrefix(info, want) {
		t.Errorf("Info() = %q, want prefix %q", info, want)
	}
}

func TestUserAgent(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want string
	}{
		{"PrefixedTag", "v1.4.0", "covid-tracker/1.4.0"},
		{"BareTag", "2.0.0", "covid-tracker/2.0.0"},
		{"Untagged", "fail", "covid-tracker/dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakeGit(t, map[string]string{"tags": tt.tag, "always": "1a2b3c4"})

			if got := UserAgent("covid-tracker"); got != tt.want {
				t.Errorf("UserAgent() = %q, want %q", got, tt.want)
			}
		})
	}
}
