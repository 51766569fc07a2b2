package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// TenantID records the tenant identifier under the key "tenant_id".
// If id is empty, it returns an empty Attr.
func TenantID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("tenant_id", id)
}

// Operation records the name of the operation being performed under the key
// "operation".
func Operation(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("operation", name)
}

// Component records the component emitting the record under the key
// "component".
func Component(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("component", name)
}

// ConfigVersion records a configuration snapshot version under the key
// "config_version".
func ConfigVersion(version string) slog.Attr {
	if version == "" {
		return slog.Attr{}
	}
	return slog.String("config_version", version)
}
