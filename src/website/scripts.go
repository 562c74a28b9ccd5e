package website

import (
	"errors"
	"net/http"
	"strconv"

	"git.radiohub.fm/hub/hub/src/db"
	"git.radiohub.fm/hub/hub/src/hubdata"
	"git.radiohub.fm/hub/hub/src/models"
	"git.radiohub.fm/hub/hub/src/oops"
	"git.radiohub.fm/hub/hub/src/parsing"
)

func ListScripts(c *RequestContext) ResponseData {
	q := hubdata.ScriptsQuery{}
	if projectStr := c.URL().Query().Get("project"); projectStr != "" {
		projectID, err := strconv.Atoi(projectStr)
		if err != nil {
			return c.RejectRequest("project must be a numeric id")
		}
		q.ProjectIDs = []int{projectID}
	}
	if authorStr := c.URL().Query().Get("author"); authorStr != "" {
		authorID, err := strconv.Atoi(authorStr)
		if err != nil {
			return c.RejectRequest("author must be a numeric id")
		}
		q.AuthorIDs = []int{authorID}
	}
	if statusStr := c.URL().Query().Get("status"); statusStr != "" {
		status, err := models.ParseScriptStatus(statusStr)
		if err != nil {
			return c.RejectRequest(err.Error())
		}
		q.Statuses = []models.ScriptStatus{status}
	}

	scripts, err := hubdata.FetchScripts(c, c.Conn, q)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	var res ResponseData
	res.WriteJson(scripts)
	return res
}

func GetScript(c *RequestContext) ResponseData {
	script, err := hubdata.FetchScript(c, c.Conn, pathParamInt(c, "id"))
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return FourOhFour(c)
		}
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	var res ResponseData
	res.WriteJson(script)
	return res
}

type ScriptInput struct {
	ProjectID     int                  `json:"projectId"`
	EpisodeID     *int                 `json:"episodeId"`
	AuthorID      int                  `json:"authorId"`
	Title         string               `json:"title"`
	Content       string               `json:"content"`
	Status        *models.ScriptStatus `json:"status"`
	LanguageGroup *string              `json:"languageGroup"`
}

func CreateScript(c *RequestContext) ResponseData {
	var input ScriptInput
	if err := readJsonBody(c, &input); err != nil {
		return c.ErrorResponse(http.StatusBadRequest, err)
	}
	if input.Title == "" {
		return c.RejectRequest("a script needs a title")
	}
	status := models.ScriptStatusDraft
	if input.Status != nil {
		status = *input.Status
	}

	if _, err := hubdata.FetchProject(c, c.Conn, input.ProjectID); err != nil {
		if errors.Is(err, db.NotFound) {
			return c.RejectRequest("no such project")
		}
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}
	if _, err := hubdata.FetchUser(c, c.Conn, input.AuthorID); err != nil {
		if errors.Is(err, db.NotFound) {
			return c.RejectRequest("no such author")
		}
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	scriptID, err := db.QueryOneScalar[int](c, c.Conn,
		`
		INSERT INTO script (project_id, episode_id, author_id, title, content, status, language_group)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
		`,
		input.ProjectID, input.EpisodeID, input.AuthorID, input.Title, input.Content, status, input.LanguageGroup,
	)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to create script"))
	}

	script, err := hubdata.FetchScript(c, c.Conn, scriptID)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	var res ResponseData
	res.StatusCode = http.StatusCreated
	res.WriteJson(script)
	return res
}

type ScriptUpdateInput struct {
	Title         *string              `json:"title"`
	Content       *string              `json:"content"`
	Status        *models.ScriptStatus `json:"status"`
	EpisodeID     *int                 `json:"episodeId"`
	LanguageGroup *string              `json:"languageGroup"`
}

func UpdateScript(c *RequestContext) ResponseData {
	scriptID := pathParamInt(c, "id")

	var input ScriptUpdateInput
	if err := readJsonBody(c, &input); err != nil {
		return c.ErrorResponse(http.StatusBadRequest, err)
	}

	script, err := hubdata.FetchScript(c, c.Conn, scriptID)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return FourOhFour(c)
		}
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	if input.Title != nil {
		script.Title = *input.Title
	}
	if input.Content != nil {
		script.Content = *input.Content
	}
	if input.Status != nil {
		script.Status = *input.Status
	}
	if input.EpisodeID != nil {
		script.EpisodeID = input.EpisodeID
	}
	if input.LanguageGroup != nil {
		script.LanguageGroup = input.LanguageGroup
	}

	_, err = c.Conn.Exec(c,
		`
		UPDATE script
		SET title = $2, content = $3, status = $4, episode_id = $5, language_group = $6, updated_at = NOW()
		WHERE id = $1
		`,
		scriptID, script.Title, script.Content, script.Status, script.EpisodeID, script.LanguageGroup,
	)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to update script"))
	}

	script, err = hubdata.FetchScript(c, c.Conn, scriptID)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	var res ResponseData
	res.WriteJson(script)
	return res
}

func DeleteScript(c *RequestContext) ResponseData {
	tag, err := c.Conn.Exec(c, `DELETE FROM script WHERE id = $1`, pathParamInt(c, "id"))
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to delete script"))
	}
	if tag.RowsAffected() == 0 {
		return FourOhFour(c)
	}

	return ResponseData{StatusCode: http.StatusNoContent}
}

type ScriptPreviewResult struct {
	ScriptID int    `json:"scriptId"`
	HTML     string `json:"html"`
}

func ScriptPreview(c *RequestContext) ResponseData {
	script, err := hubdata.FetchScript(c, c.Conn, pathParamInt(c, "id"))
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return FourOhFour(c)
		}
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	var res ResponseData
	res.WriteJson(ScriptPreviewResult{
		ScriptID: script.ID,
		HTML:     parsing.ParseScriptContent(script.Content, parsing.ScriptMarkdown),
	})
	return res
}
