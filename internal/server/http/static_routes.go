package httpserver

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

const viewCookieName = "chess_view"

// registerStaticRoutes mounts:
// - /web/*        -> desktop assets
// - /web_mobile/* -> mobile assets
// - /             -> redirect by view override/cookie/User-Agent
func registerStaticRoutes(r *mux.Router, desktopDir, mobileDir string) {
	if mobileDir == "" {
		mobileDir = desktopDir
	}

	r.PathPrefix("/web/").Handler(http.StripPrefix("/web/", http.FileServer(http.Dir(desktopDir))))
	r.PathPrefix("/web_mobile/").Handler(http.StripPrefix("/web_mobile/", http.FileServer(http.Dir(mobileDir))))

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		target := "/web/"
		if pickView(w, r) == "mobile" {
			target = "/web_mobile/"
		}
		w.Header().Set("Vary", "User-Agent, Cookie")
		http.Redirect(w, r, target, http.StatusFound)
	})
	r.Handle("/web", http.RedirectHandler("/web/", http.StatusFound))
	r.Handle("/web_mobile", http.RedirectHandler("/web_mobile/", http.StatusFound))
}

func pickView(w http.ResponseWriter, r *http.Request) string {
	if v, ok := normalizeView(r.URL.Query().Get("view")); ok {
		rememberView(w, v)
		return v
	}
	if c, err := r.Cookie(viewCookieName); err == nil {
		if v, ok := normalizeView(c.Value); ok {
			return v
		}
	}
	if isMobileUA(r.UserAgent()) {
		return "mobile"
	}
	return "web"
}

func rememberView(w http.ResponseWriter, view string) {
	http.SetCookie(w, &http.Cookie{
		Name:     viewCookieName,
		Value:    view,
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		SameSite: http.SameSiteLaxMode,
	})
}

func normalizeView(v string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "web", "desktop":
		return "web", true
	case "mobile", "phone":
		return "mobile", true
	}
	return "", false
}

var mobileUANeedles = []string{"android", "iphone", "ipad", "mobile"}

func isMobileUA(ua string) bool {
	s := strings.ToLower(ua)
	for _, n := range mobileUANeedles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
