package website

import (
	"net/http"
	"strconv"
	"time"

	"git.radiohub.fm/hub/hub/src/hubdata"
	"git.radiohub.fm/hub/hub/src/oops"
	"github.com/jackc/pgx/v5/pgxpool"
)

func panicCatcherMiddleware(h Handler) Handler {
	return func(c *RequestContext) (res ResponseData) {
		defer func() {
			if recovered := recover(); recovered != nil {
				maybeError, ok := recovered.(*error)
				var err error
				if ok {
					err = *maybeError
				} else {
					err = oops.New(nil, "panic recovered in middleware: %v", recovered)
				}
				res = c.ErrorResponse(http.StatusInternalServerError, err)
			}
		}()

		return h(c)
	}
}

func trackRequestMiddleware(h Handler) Handler {
	return func(c *RequestContext) ResponseData {
		start := time.Now()
		res := h(c)
		c.Logger.Debug().
			Str("method", c.Req.Method).
			Str("path", c.Req.URL.Path).
			Int("status", res.StatusCode).
			Dur("duration", time.Since(start)).
			Msg("handled request")
		return res
	}
}

func storeDBConnMiddleware(conn *pgxpool.Pool) Middleware {
	return func(h Handler) Handler {
		return func(c *RequestContext) ResponseData {
			c.Conn = conn
			return h(c)
		}
	}
}

// identifyUser resolves the acting user from the X-Hub-User header (or a
// "user" query param as a fallback for quick curl testing). There is no
// session or credential check behind it; it exists so that handlers and
// dashboards can scope their output to a user. Requests with no user are
// allowed through with CurrentUser == nil.
func identifyUser(h Handler) Handler {
	return func(c *RequestContext) ResponseData {
		raw := c.Req.Header.Get("X-Hub-User")
		if raw == "" {
			raw = c.URL().Query().Get("user")
		}
		if raw != "" {
			userID, err := strconv.Atoi(raw)
			if err != nil {
				return c.RejectRequest("user must be a numeric id")
			}
			user, err := hubdata.FetchUser(c, c.Conn, userID)
			if err == nil {
				c.CurrentUser = user
			}
		}
		return h(c)
	}
}

// requireUser gates endpoints that are meaningless without an identity,
// like the contributor dashboard. This is identification, not authorization;
// roles are never checked.
func requireUser(h Handler) Handler {
	return func(c *RequestContext) ResponseData {
		if c.CurrentUser == nil {
			return c.ErrorResponse(http.StatusUnauthorized, NewSafeError(nil, "a user id is required for this endpoint"))
		}
		return h(c)
	}
}

func logContextErrors(c *RequestContext, errs ...error) {
	for _, err := range errs {
		c.Logger.Error().Timestamp().Stack().Str("Requested", c.FullUrl()).Err(err).Msg("error occurred during request")
	}
}

func logContextErrorsMiddleware(h Handler) Handler {
	return func(c *RequestContext) ResponseData {
		res := h(c)
		logContextErrors(c, res.Errors...)
		return res
	}
}
