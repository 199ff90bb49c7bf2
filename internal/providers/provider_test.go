package providers

import (
	"github.com/preston-bernstein/nba-shotchart-service/internal/teststubs"
)

var (
	_ DataProvider = (*teststubs.StubProvider)(nil)
	_ DataProvider = (*rateLimitedProvider)(nil)
	_ DataProvider = (*retryingProvider)(nil)
	_ DataProvider = (*cachingProvider)(nil)
)
