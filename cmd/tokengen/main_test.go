package main

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestMintAndVerify(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("AUTH_JWT_SECRET", "cli-secret")

	token, err := run(t, "mint", "--user", "user-7", "--role", "admin", "--ttl", "5")
	if err != nil {
		t.Fatalf("mint error = %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("mint output %q is not a JWT", token)
	}

	got, err := run(t, "verify", token)
	if err != nil {
		t.Fatalf("verify error = %v", err)
	}
	if !strings.HasPrefix(got, "id=user-7 role=admin ") {
		t.Errorf("verify output = %q", got)
	}

	t.Setenv("AUTH_JWT_SECRET", "rotated")
	if _, err := run(t, "verify", token); err == nil {
		t.Error("verify with another secret succeeded")
	}
}

func TestMintRejectsUnknownRole(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "cli-secret")

	if _, err := run(t, "mint", "--user", "u", "--role", "root"); err == nil {
		t.Fatal("mint accepted unknown role")
	}
	if _, err := run(t, "mint", "--role", "user"); err == nil {
		t.Fatal("mint accepted missing --user")
	}
}

func TestMintRequiresSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_JWT_SECRET", "")

	if _, err := run(t, "mint", "--user", "u"); err == nil {
		t.Fatal("mint succeeded in production without a secret")
	}
}
