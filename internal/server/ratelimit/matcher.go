package ratelimit

import "strings"

// matchEndpoint resolves the configuration for a request path and method.
// Exact path matches win; configs whose path ends in "/" also match by
// prefix, so "/matches/" covers "/matches/{id}". The health check is
// always unlimited. Returns nil when nothing matches.
func matchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		cfg := &configs[i]
		if cfg.Method == method && strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			return cfg
		}
	}

	return nil
}
