package cli

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "crowdfund/internal/adapter/http"
	"crowdfund/internal/core/domain"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(Environment{Stdout: &stdout, Stderr: &stderr}, args)
	return code, stdout.String(), stderr.String()
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "cli-secret")
	t.Setenv("AUTH_JWT_ISSUER", "crowdfund-dev")

	code, out, errOut := run(t, "token", "alice", "--ttl=1h")
	require.Equal(t, 0, code, errOut)

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+strings.TrimSpace(out))
	p, err := httpadapter.NewAuthenticator("cli-secret", "crowdfund-dev").Principal(r)
	require.NoError(t, err)
	assert.Equal(t, domain.Principal("alice"), p)
}

func TestTokenCommandWithoutSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	code, out, _ := run(t, "token", "alice")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
}

func TestSeedNeedsPostgres(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	code, _, errOut := run(t, "seed")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "STORE_DRIVER")
}

func TestWatchNeedsRedis(t *testing.T) {
	t.Setenv("REDIS_ADDRESS", "")
	code, _, _ := run(t, "watch")
	assert.Equal(t, 1, code)
}

func TestBadConfig(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	code, _, errOut := run(t, "token", "alice")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown store driver")
}

func TestUnknownCommand(t *testing.T) {
	code, _, _ := run(t, "frobnicate", "--nope")
	assert.Equal(t, 2, code)
}
