package edge

import "testing"

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want Class
	}{
		{path: "/", want: ClassPublic},
		{path: "/login", want: ClassAuthEntry},
		{path: "/register", want: ClassAuthEntry},
		{path: "/login/help", want: ClassNone},
		{path: "/admin", want: ClassAdmin},
		{path: "/admin/users/42", want: ClassAdmin},
		{path: "/administrator", want: ClassAdmin},
		{path: "/user", want: ClassUser},
		{path: "/user/profile", want: ClassUser},
		{path: "/pricing", want: ClassNone},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.path); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDecide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		path      string
		hasCookie bool
		want      Decision
	}{
		{name: "admin without cookie", path: "/admin/anything", want: Decision{Action: ActionRedirect, Location: "/login?from=/admin/anything", Reason: "redirect_login"}},
		{name: "admin with cookie", path: "/admin/anything", hasCookie: true, want: Decision{Action: ActionPass, Reason: "pass"}},
		{name: "user without cookie", path: "/user/profile", want: Decision{Action: ActionRedirect, Location: "/login?from=/user/profile", Reason: "redirect_login"}},
		{name: "user with cookie", path: "/user/profile", hasCookie: true, want: Decision{Action: ActionPass, Reason: "pass"}},
		{name: "login with cookie", path: "/login", hasCookie: true, want: Decision{Action: ActionRedirect, Location: "/user", Reason: "redirect_user"}},
		{name: "register with cookie", path: "/register", hasCookie: true, want: Decision{Action: ActionRedirect, Location: "/user", Reason: "redirect_user"}},
		{name: "login without cookie", path: "/login", want: Decision{Action: ActionPass, Reason: "pass"}},
		{name: "root without cookie", path: "/", want: Decision{Action: ActionPass, Reason: "pass"}},
		{name: "root with cookie", path: "/", hasCookie: true, want: Decision{Action: ActionPass, Reason: "pass"}},
		{name: "unclassified without cookie", path: "/about", want: Decision{Action: ActionPass, Reason: "pass"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Decide(tt.path, tt.hasCookie); got != tt.want {
				t.Errorf("Decide(%q, %v) = %+v, want %+v", tt.path, tt.hasCookie, got, tt.want)
			}
		})
	}
}

func TestLoginRedirectEscaping(t *testing.T) {
	t.Parallel()

	if got, want := LoginRedirect("/admin/a b&c"), "/login?from=/admin/a+b%26c"; got != want {
		t.Errorf("LoginRedirect() = %q, want %q", got, want)
	}
}

func TestExcluded(t *testing.T) {
	t.Parallel()

	excluded := []string{"/api", "/api/users", "/_next/static/chunks/app.js", "/_next/image", "/favicon.ico"}
	for _, p := range excluded {
		if !Excluded(p) {
			t.Errorf("Excluded(%q) = false, want true", p)
		}
	}
	included := []string{"/", "/admin", "/user/profile", "/login", "/_next/data/x.json"}
	for _, p := range included {
		if Excluded(p) {
			t.Errorf("Excluded(%q) = true, want false", p)
		}
	}
}
