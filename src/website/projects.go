package website

import (
	"errors"
	"net/http"

	"git.radiohub.fm/hub/hub/src/db"
	"git.radiohub.fm/hub/hub/src/hubdata"
	"git.radiohub.fm/hub/hub/src/oops"
)

const projectsPerPage = 20

func ListProjects(c *RequestContext) ResponseData {
	q := hubdata.ProjectsQuery{}
	if pageParam := c.URL().Query().Get("page"); pageParam != "" {
		count, err := hubdata.CountProjects(c, c.Conn)
		if err != nil {
			return c.ErrorResponse(http.StatusInternalServerError, err)
		}
		page, _, ok := getPageInfo(pageParam, count, projectsPerPage)
		if !ok {
			return c.RejectRequest("bad page number")
		}
		q.Limit = projectsPerPage
		q.Offset = (page - 1) * projectsPerPage
	}

	projects, err := hubdata.FetchProjects(c, c.Conn, q)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	var res ResponseData
	res.WriteJson(projects)
	return res
}

func GetProject(c *RequestContext) ResponseData {
	project, err := hubdata.FetchProject(c, c.Conn, pathParamInt(c, "id"))
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return FourOhFour(c)
		}
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	var res ResponseData
	res.WriteJson(project)
	return res
}

type ProjectInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ThemeID     *int    `json:"themeId"`
}

func CreateProject(c *RequestContext) ResponseData {
	var input ProjectInput
	if err := readJsonBody(c, &input); err != nil {
		return c.ErrorResponse(http.StatusBadRequest, err)
	}
	if input.Name == "" {
		return c.RejectRequest("a project needs a name")
	}

	projectID, err := db.QueryOneScalar[int](c, c.Conn,
		`
		INSERT INTO project (name, description, theme_id)
		VALUES ($1, $2, $3)
		RETURNING id
		`,
		input.Name, input.Description, input.ThemeID,
	)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to create project"))
	}

	project, err := hubdata.FetchProject(c, c.Conn, projectID)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	var res ResponseData
	res.StatusCode = http.StatusCreated
	res.WriteJson(project)
	return res
}

type ProjectUpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ThemeID     *int    `json:"themeId"`
}

func UpdateProject(c *RequestContext) ResponseData {
	projectID := pathParamInt(c, "id")

	var input ProjectUpdateInput
	if err := readJsonBody(c, &input); err != nil {
		return c.ErrorResponse(http.StatusBadRequest, err)
	}

	project, err := hubdata.FetchProject(c, c.Conn, projectID)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return FourOhFour(c)
		}
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return c.RejectRequest("a project needs a name")
		}
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = input.Description
	}
	if input.ThemeID != nil {
		project.ThemeID = input.ThemeID
	}

	_, err = c.Conn.Exec(c,
		`UPDATE project SET name = $2, description = $3, theme_id = $4 WHERE id = $1`,
		projectID, project.Name, project.Description, project.ThemeID,
	)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to update project"))
	}

	var res ResponseData
	res.WriteJson(project)
	return res
}

func DeleteProject(c *RequestContext) ResponseData {
	tag, err := c.Conn.Exec(c, `DELETE FROM project WHERE id = $1`, pathParamInt(c, "id"))
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to delete project"))
	}
	if tag.RowsAffected() == 0 {
		return FourOhFour(c)
	}

	return ResponseData{StatusCode: http.StatusNoContent}
}
