package httpapi

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/zsaab/linkboard/internal/common"
	"github.com/zsaab/linkboard/internal/server/models"
	"github.com/zsaab/linkboard/internal/server/services"
)

type homeItem struct {
	*models.RankedContent
	MyDirection int32
}

type homeData struct {
	Identity services.Identity
	Items    []homeItem
}

func (s *HTTPServer) home(w http.ResponseWriter, r *http.Request, ident services.Identity) {
	ranked, err := s.ranking.TopContent(r.Context(), s.pageSize)
	if err != nil {
		s.logger.Error(r.Context(), "front page query failed", "error", err.Error())
		http.Error(w, "Something went wrong. Try again later.", http.StatusInternalServerError)
		return
	}

	items := make([]homeItem, 0, len(ranked))
	for _, rc := range ranked {
		item := homeItem{RankedContent: rc}
		if ident.Authenticated {
			// best-effort: an unreadable vote just renders no active control
			if d, ok, err := s.votes.DirectionFor(r.Context(), ident.UserID, rc.ID); err == nil && ok {
				item.MyDirection = d
			}
		}
		items = append(items, item)
	}

	s.render(w, r, "home.html", homeData{Identity: ident, Items: items})
}

type formPageData struct {
	Identity services.Identity
	Error    string
	Message  string
	Form     map[string]string
}

func (s *HTTPServer) loginPage(w http.ResponseWriter, r *http.Request, ident services.Identity) {
	if ident.Authenticated {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.render(w, r, "login.html", formPageData{
		Error:   r.URL.Query().Get("error"),
		Message: r.URL.Query().Get("message"),
		Form:    map[string]string{"username": r.URL.Query().Get("username")},
	})
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request, ident services.Identity) {
	if ident.Authenticated {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := s.users.Authenticate(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			redirectWithQuery(w, r, "/login", url.Values{"error": {"Invalid username or password"}, "username": {username}})
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err.Error())
		redirectWithQuery(w, r, "/login", url.Values{"error": {"Unknown error. Please try again later"}})
		return
	}

	token, err := s.sessions.Create(r.Context(), user.ID)
	if err != nil {
		s.logger.Error(r.Context(), "session creation failed", "error", err.Error())
		redirectWithQuery(w, r, "/login", url.Values{"error": {"Unknown error. Please try again later"}})
		return
	}

	setSessionCookie(w, token, s.validity)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *HTTPServer) signupPage(w http.ResponseWriter, r *http.Request, ident services.Identity) {
	if ident.Authenticated {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.render(w, r, "signup.html", formPageData{
		Error: r.URL.Query().Get("error"),
		Form:  map[string]string{"username": r.URL.Query().Get("username")},
	})
}

func (s *HTTPServer) signup(w http.ResponseWriter, r *http.Request, ident services.Identity) {
	if ident.Authenticated {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	_, err := s.users.Register(r.Context(), username, password)
	switch {
	case err == nil:
		redirectWithQuery(w, r, "/login", url.Values{"message": {"User has been created. Please login."}})
	case errors.Is(err, common.ErrorAlreadyExists):
		redirectWithQuery(w, r, "/signup", url.Values{"error": {"Username already exists"}, "username": {username}})
	case errors.Is(err, common.ErrorValidation):
		redirectWithQuery(w, r, "/signup", url.Values{"error": {"Username and password must be provided"}})
	default:
		s.logger.Error(r.Context(), "signup failed", "error", err.Error())
		redirectWithQuery(w, r, "/signup", url.Values{"error": {"Unexpected server error. Please try again later"}})
	}
}

func (s *HTTPServer) submitPage(w http.ResponseWriter, r *http.Request, ident services.Identity) {
	if !ident.Authenticated {
		redirectWithQuery(w, r, "/login", url.Values{"error": {"Login to add a post"}})
		return
	}
	s.render(w, r, "submit.html", formPageData{
		Identity: ident,
		Error:    r.URL.Query().Get("error"),
	})
}

func (s *HTTPServer) submit(w http.ResponseWriter, r *http.Request, ident services.Identity) {
	if !ident.Authenticated {
		redirectWithQuery(w, r, "/login", url.Values{"error": {"Login to add a post"}})
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	_, err := s.contents.Create(r.Context(), ident.UserID, r.FormValue("url"), r.FormValue("title"))
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.Is(err, common.ErrorValidation):
		redirectWithQuery(w, r, "/submit", url.Values{"error": {"URL and title required; URL must be absolute http(s)"}})
	default:
		s.logger.Error(r.Context(), "content creation failed", "error", err.Error())
		redirectWithQuery(w, r, "/submit", url.Values{"error": {"Unknown error. Try again later"}})
	}
}

func (s *HTTPServer) vote(w http.ResponseWriter, r *http.Request, ident services.Identity) {
	if !ident.Authenticated {
		redirectWithQuery(w, r, "/login", url.Values{"message": {"Login to vote"}})
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	contentID, err := strconv.ParseInt(r.FormValue("contentId"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	direction := models.VoteDown
	if r.FormValue("direction") == "1" {
		direction = models.VoteUp
	}

	if _, err := s.votes.Cast(r.Context(), ident.UserID, contentID, direction); err != nil {
		if !errors.Is(err, common.ErrContentNotFound) {
			s.logger.Error(r.Context(), "vote failed", "error", err.Error())
		}
		// either way the front page is the only sensible place to land
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *HTTPServer) logout(w http.ResponseWriter, r *http.Request, ident services.Identity) {
	if c, err := r.Cookie(sessionCookieName); err == nil {
		if err := s.sessions.Revoke(r.Context(), c.Value); err != nil {
			s.logger.Error(r.Context(), "session revocation failed", "error", err.Error())
		}
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *HTTPServer) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error(r.Context(), "template render failed", "template", name, "error", err.Error())
	}
}

func redirectWithQuery(w http.ResponseWriter, r *http.Request, path string, q url.Values) {
	http.Redirect(w, r, path+"?"+q.Encode(), http.StatusSeeOther)
}
