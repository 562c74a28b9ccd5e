package website

import (
	"errors"
	"net/http"

	"git.radiohub.fm/hub/hub/src/db"
	"git.radiohub.fm/hub/hub/src/hubdata"
	"git.radiohub.fm/hub/hub/src/models"
	"git.radiohub.fm/hub/hub/src/oops"
)

func ListUsers(c *RequestContext) ResponseData {
	q := hubdata.UsersQuery{}
	if roleStr := c.URL().Query().Get("role"); roleStr != "" {
		role, err := models.ParseUserRole(roleStr)
		if err != nil {
			return c.RejectRequest(err.Error())
		}
		q.Roles = []models.UserRole{role}
	}

	users, err := hubdata.FetchUsers(c, c.Conn, q)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	var res ResponseData
	res.WriteJson(users)
	return res
}

func GetUser(c *RequestContext) ResponseData {
	user, err := hubdata.FetchUser(c, c.Conn, pathParamInt(c, "id"))
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return FourOhFour(c)
		}
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	var res ResponseData
	res.WriteJson(user)
	return res
}

func DeleteUser(c *RequestContext) ResponseData {
	tag, err := c.Conn.Exec(c, `DELETE FROM hub_user WHERE id = $1`, pathParamInt(c, "id"))
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to delete user"))
	}
	if tag.RowsAffected() == 0 {
		return FourOhFour(c)
	}

	return ResponseData{StatusCode: http.StatusNoContent}
}

type UserUpdateInput struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

func UpdateUser(c *RequestContext) ResponseData {
	userID := pathParamInt(c, "id")

	var input UserUpdateInput
	if err := readJsonBody(c, &input); err != nil {
		return c.ErrorResponse(http.StatusBadRequest, err)
	}

	user, err := hubdata.FetchUser(c, c.Conn, userID)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return FourOhFour(c)
		}
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Role != nil {
		role, err := models.ParseUserRole(*input.Role)
		if err != nil {
			return c.RejectRequest(err.Error())
		}
		user.Role = role
	}
	if input.Status != nil {
		status, err := models.ParseUserStatus(*input.Status)
		if err != nil {
			return c.RejectRequest(err.Error())
		}
		user.Status = status
	}

	_, err = c.Conn.Exec(c,
		`UPDATE hub_user SET name = $2, email = $3, role = $4, status = $5 WHERE id = $1`,
		userID, user.Name, user.Email, user.Role, user.Status,
	)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to update user"))
	}

	var res ResponseData
	res.WriteJson(user)
	return res
}

type UserInput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

func CreateUser(c *RequestContext) ResponseData {
	var input UserInput
	if err := readJsonBody(c, &input); err != nil {
		return c.ErrorResponse(http.StatusBadRequest, err)
	}
	if input.Name == "" || input.Email == "" {
		return c.RejectRequest("a user needs a name and an email")
	}

	role := models.UserRoleMember
	if input.Role != "" {
		var err error
		role, err = models.ParseUserRole(input.Role)
		if err != nil {
			return c.RejectRequest(err.Error())
		}
	}
	status := models.UserStatusPending
	if input.Status != "" {
		var err error
		status, err = models.ParseUserStatus(input.Status)
		if err != nil {
			return c.RejectRequest(err.Error())
		}
	}

	userID, err := db.QueryOneScalar[int](c, c.Conn,
		`
		INSERT INTO hub_user (name, email, role, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
		`,
		input.Name, input.Email, role, status,
	)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to create user"))
	}

	user, err := hubdata.FetchUser(c, c.Conn, userID)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	var res ResponseData
	res.StatusCode = http.StatusCreated
	res.WriteJson(user)
	return res
}
