package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/oauth2"

	"todoview/internal/commands"
	"todoview/internal/config"
	"todoview/internal/exitcode"
)

func newEnv(t *testing.T, quiet bool) (*commands.Env, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	env := &commands.Env{
		Config: &config.Config{Dir: t.TempDir(), Quiet: quiet},
		Out:    &outBuf,
		ErrOut: &errBuf,
	}
	return env, &outBuf, &errBuf
}

func TestLoginCommand_SavesToken(t *testing.T) {
	t.Setenv(commands.EnvToken, "")
	env, out, errOut := newEnv(t, false)

	cmd := &commands.LoginCmd{}
	cmd.SetToken("  secret  ")
	code := cmd.Run(context.Background(), env, nil)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, errOut.String())
	}
	if out.String() != "ok\n" {
		t.Errorf("expected ok, got %q", out.String())
	}

	tok, err := env.Config.LoadToken()
	if err != nil {
		t.Fatalf("LoadToken: %v", err)
	}
	if tok.AccessToken != "secret" || tok.TokenType != "Bearer" {
		t.Errorf("unexpected token: %+v", tok)
	}

	info, err := os.Stat(env.Config.TokenPath())
	if err != nil {
		t.Fatalf("stat token: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected mode 0600, got %o", info.Mode().Perm())
	}
}

func TestLoginCommand_TokenFromEnv(t *testing.T) {
	t.Setenv(commands.EnvToken, "from-env")
	env, out, _ := newEnv(t, true)

	code := (&commands.LoginCmd{}).Run(context.Background(), env, nil)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if out.String() != "" {
		t.Errorf("expected no stdout in quiet mode, got %q", out.String())
	}
	tok, err := env.Config.LoadToken()
	if err != nil {
		t.Fatalf("LoadToken: %v", err)
	}
	if tok.AccessToken != "from-env" {
		t.Errorf("expected env token, got %q", tok.AccessToken)
	}
}

func TestLoginCommand_NoToken(t *testing.T) {
	t.Setenv(commands.EnvToken, "")
	env, out, errOut := newEnv(t, false)

	code := (&commands.LoginCmd{}).Run(context.Background(), env, nil)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if out.String() != "" {
		t.Errorf("expected no stdout, got %q", out.String())
	}
	if errOut.String() == "" {
		t.Error("expected error message about missing token")
	}
	if env.Config.HasToken() {
		t.Error("token file should not be written")
	}
}

func TestLoginCommand_ReplacesExistingToken(t *testing.T) {
	t.Setenv(commands.EnvToken, "")
	env, _, _ := newEnv(t, true)
	if err := env.Config.SaveToken(&oauth2.Token{AccessToken: "old"}); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}

	cmd := &commands.LoginCmd{}
	cmd.SetToken("new")
	if code := cmd.Run(context.Background(), env, nil); code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}

	tok, err := env.Config.LoadToken()
	if err != nil {
		t.Fatalf("LoadToken: %v", err)
	}
	if tok.AccessToken != "new" {
		t.Errorf("expected new token, got %q", tok.AccessToken)
	}
}

func TestLogoutCommand_RemovesToken(t *testing.T) {
	env, out, _ := newEnv(t, false)
	if err := os.WriteFile(filepath.Join(env.Config.Dir, config.TokenFile), []byte(`{"access_token":"x"}`), 0600); err != nil {
		t.Fatalf("write token: %v", err)
	}

	code := (&commands.LogoutCmd{}).Run(context.Background(), env, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if out.String() != "ok\n" {
		t.Errorf("expected ok, got %q", out.String())
	}
	if env.Config.HasToken() {
		t.Error("token file should be removed")
	}
}

func TestLogoutCommand_NotLoggedIn(t *testing.T) {
	env, out, errOut := newEnv(t, false)

	code := (&commands.LogoutCmd{}).Run(context.Background(), env, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if out.String() != "not logged in\n" {
		t.Errorf("expected 'not logged in', got %q", out.String())
	}
	if errOut.String() != "" {
		t.Errorf("expected no stderr, got %q", errOut.String())
	}
}

func TestLogoutCommand_QuietNotLoggedIn(t *testing.T) {
	env, out, _ := newEnv(t, true)

	code := (&commands.LogoutCmd{}).Run(context.Background(), env, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if out.String() != "" {
		t.Errorf("expected no stdout, got %q", out.String())
	}
}
