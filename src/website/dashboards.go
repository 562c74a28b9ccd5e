package website

import (
	"net/http"
	"time"

	"git.radiohub.fm/hub/hub/src/aggregate"
	"git.radiohub.fm/hub/hub/src/hubdata"
)

func ContributorDashboard(c *RequestContext) ResponseData {
	snapshot, err := hubdata.FetchSnapshot(c, c.Conn)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	var res ResponseData
	res.WriteJson(aggregate.Contributor(snapshot, c.CurrentUser, time.Now()))
	return res
}

func EditorDashboard(c *RequestContext) ResponseData {
	snapshot, err := hubdata.FetchSnapshot(c, c.Conn)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	var res ResponseData
	res.WriteJson(aggregate.Editor(snapshot))
	return res
}

func AdminDashboard(c *RequestContext) ResponseData {
	snapshot, err := hubdata.FetchSnapshot(c, c.Conn)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	var res ResponseData
	res.WriteJson(aggregate.Admin(snapshot))
	return res
}
