package navigation

// Default context values used when the caller supplies none
const (
	DefaultBaseURL     = ""
	DefaultCurrentPath = "/"
	DefaultUserRole    = "visitor"
	DefaultLocale      = "en"
)

// RoleAdmin sees hidden items and may trigger reloads
const RoleAdmin = "admin"

// Context describes the request a hierarchy is built for
type Context struct {
	BaseURL     string `json:"baseUrl"`
	CurrentPath string `json:"currentPath"`
	UserRole    string `json:"userRole,omitempty"`
	Locale      string `json:"locale,omitempty"`
}

// DefaultContext returns a context holding only default values
func DefaultContext() Context {
	return Context{
		BaseURL:     DefaultBaseURL,
		CurrentPath: DefaultCurrentPath,
		UserRole:    DefaultUserRole,
		Locale:      DefaultLocale,
	}
}

// WithDefaults returns a copy of ctx with empty fields filled in.
// A nil ctx yields DefaultContext().
func (ctx *Context) WithDefaults() Context {
	if ctx == nil {
		return DefaultContext()
	}
	out := *ctx
	if out.CurrentPath == "" {
		out.CurrentPath = DefaultCurrentPath
	}
	if out.UserRole == "" {
		out.UserRole = DefaultUserRole
	}
	if out.Locale == "" {
		out.Locale = DefaultLocale
	}
	return out
}

// IsAdmin reports whether the context belongs to an administrator
func (ctx Context) IsAdmin() bool {
	return ctx.UserRole == RoleAdmin
}
