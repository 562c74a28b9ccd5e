package website

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"git.radiohub.fm/hub/hub/src/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogContextErrors(t *testing.T) {
	err1 := errors.New("test error 1")
	err2 := errors.New("test error 2")

	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logger.Print("sanity check")

	assert.Contains(t, buf.String(), "sanity check")

	router := &Router{}
	routes := RouteBuilder{
		Router: router,
		Middlewares: []Middleware{
			func(h Handler) Handler {
				return func(c *RequestContext) (res ResponseData) {
					c.Logger = &logger
					return logContextErrorsMiddleware(h)(c)
				}
			},
		},
	}

	routes.GET(regexp.MustCompile("^/test$"), func(c *RequestContext) ResponseData {
		return c.ErrorResponse(http.StatusInternalServerError, err1, err2)
	})
	routes.AnyMethod(regexp.MustCompile("^"), FourOhFour)

	srv := httptest.NewServer(router)
	defer srv.Close()

	res, err := http.Get(srv.URL + "/test")
	if assert.Nil(t, err) {
		defer res.Body.Close()

		t.Logf("Log contents: %s", buf.String())

		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)

		assert.Contains(t, buf.String(), err1.Error())
		assert.Contains(t, buf.String(), err2.Error())
	}
}

func TestRouting(t *testing.T) {
	router := &Router{}
	routes := RouteBuilder{Router: router}

	routes.GET(regexp.MustCompile(`^/api/scripts/(?P<id>\d+)$`), func(c *RequestContext) ResponseData {
		var res ResponseData
		res.Write([]byte("script " + c.PathParams["id"]))
		return res
	})
	routes.POST(regexp.MustCompile(`^/api/scripts$`), func(c *RequestContext) ResponseData {
		return ResponseData{StatusCode: http.StatusCreated}
	})
	routes.AnyMethod(regexp.MustCompile("^"), FourOhFour)

	srv := httptest.NewServer(router)
	defer srv.Close()

	t.Run("path params", func(t *testing.T) {
		res, err := http.Get(srv.URL + "/api/scripts/42")
		if assert.Nil(t, err) {
			defer res.Body.Close()
			assert.Equal(t, http.StatusOK, res.StatusCode)
			var buf bytes.Buffer
			buf.ReadFrom(res.Body)
			assert.Equal(t, "script 42", buf.String())
		}
	})

	t.Run("method matters", func(t *testing.T) {
		res, err := http.Post(srv.URL+"/api/scripts/42", "application/json", bytes.NewReader(nil))
		if assert.Nil(t, err) {
			defer res.Body.Close()
			assert.Equal(t, http.StatusNotFound, res.StatusCode)
		}
	})

	t.Run("trailing slashes are fine", func(t *testing.T) {
		res, err := http.Get(srv.URL + "/api/scripts/42/")
		if assert.Nil(t, err) {
			defer res.Body.Close()
			assert.Equal(t, http.StatusOK, res.StatusCode)
		}
	})

	t.Run("wildcard 404 returns json for GET", func(t *testing.T) {
		res, err := http.Get(srv.URL + "/nope")
		if assert.Nil(t, err) {
			defer res.Body.Close()
			assert.Equal(t, http.StatusNotFound, res.StatusCode)
			assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
		}
	})
}

func TestRequireUser(t *testing.T) {
	router := &Router{}
	routes := RouteBuilder{Router: router}

	userOnly := routes.WithMiddleware(requireUser)
	userOnly.GET(regexp.MustCompile("^/mine$"), func(c *RequestContext) ResponseData {
		return ResponseData{StatusCode: http.StatusOK}
	})
	withUser := routes.WithMiddleware(func(h Handler) Handler {
		return func(c *RequestContext) ResponseData {
			c.CurrentUser = &models.User{ID: 1, Name: "Sam"}
			return requireUser(h)(c)
		}
	})
	withUser.GET(regexp.MustCompile("^/mine-with-user$"), func(c *RequestContext) ResponseData {
		return ResponseData{StatusCode: http.StatusOK}
	})
	routes.AnyMethod(regexp.MustCompile("^"), FourOhFour)

	srv := httptest.NewServer(router)
	defer srv.Close()

	t.Run("no user", func(t *testing.T) {
		res, err := http.Get(srv.URL + "/mine")
		if assert.Nil(t, err) {
			defer res.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		}
	})

	t.Run("with user", func(t *testing.T) {
		res, err := http.Get(srv.URL + "/mine-with-user")
		if assert.Nil(t, err) {
			defer res.Body.Close()
			assert.Equal(t, http.StatusOK, res.StatusCode)
		}
	})
}

func TestPanicCatcher(t *testing.T) {
	router := &Router{}
	routes := RouteBuilder{
		Router:      router,
		Middlewares: []Middleware{panicCatcherMiddleware},
	}

	routes.GET(regexp.MustCompile("^/boom$"), func(c *RequestContext) ResponseData {
		panic("oh no")
	})
	routes.AnyMethod(regexp.MustCompile("^"), FourOhFour)

	srv := httptest.NewServer(router)
	defer srv.Close()

	res, err := http.Get(srv.URL + "/boom")
	if assert.Nil(t, err) {
		defer res.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	}
}
