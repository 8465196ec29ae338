package testing

import (
	"os"
	"testing"
)

// IntegrationEnv gates tests that need Docker.
const IntegrationEnv = "INTEGRATION"

// RequireIntegration skips tb unless INTEGRATION is set.
func RequireIntegration(tb testing.TB, backend string) {
	tb.Helper()
	if os.Getenv(IntegrationEnv) == "" {
		tb.Skipf("set %s=1 to run %s integration tests", IntegrationEnv, backend)
	}
}

func terminateOnCleanup(tb testing.TB, name string, terminate func() error) {
	tb.Cleanup(func() {
		if err := terminate(); err != nil {
			tb.Logf("failed to terminate %s container: %v", name, err)
		}
	})
}
