package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/oksasatya/user-registry/internal/application"
	"github.com/oksasatya/user-registry/pkg/response"
	"github.com/oksasatya/user-registry/pkg/validation"
)

type UserHandler struct {
	Create *userapp.CreateUserUseCase
	Get    *userapp.GetUserByIdUseCase
	Update *userapp.UpdateUserUseCase
	Delete *userapp.DeleteUserUseCase
	Search *userapp.SearchUsersUseCase
	Logger *logrus.Logger
}

func NewUserHandler(
	create *userapp.CreateUserUseCase,
	get *userapp.GetUserByIdUseCase,
	update *userapp.UpdateUserUseCase,
	del *userapp.DeleteUserUseCase,
	search *userapp.SearchUsersUseCase,
	logger *logrus.Logger,
) *UserHandler {
	return &UserHandler{Create: create, Get: get, Update: update, Delete: del, Search: search, Logger: logger}
}

type addressRequest struct {
	Street   string `json:"street" binding:"required,notblank,max=150"`
	Number   string `json:"number" binding:"required,streetnumber,max=20"`
	Province string `json:"province" binding:"required,notblank,max=100"`
	City     string `json:"city" binding:"required,notblank,max=100"`
}

type userRequest struct {
	Name    string          `json:"name" binding:"required,personname,max=100"`
	Email   string          `json:"email" binding:"required,email,max=200"`
	Address *addressRequest `json:"address"`
}

type searchRequest struct {
	Name     *string `form:"name" binding:"omitempty,max=100"`
	Province *string `form:"province" binding:"omitempty,max=100"`
	City     *string `form:"city" binding:"omitempty,max=100"`
}

func (r *addressRequest) toInput() *userapp.AddressInput {
	if r == nil {
		return nil
	}
	return &userapp.AddressInput{Street: r.Street, Number: r.Number, Province: r.Province, City: r.City}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	res, err := h.Create.Execute(c.Request.Context(), &userapp.CreateUserInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address.toInput(),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, res, "user created", nil)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := h.Get.Execute(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res, "user retrieved", nil)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	res, err := h.Update.Execute(c.Request.Context(), id, &userapp.UpdateUserInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address.toInput(),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res, "user updated", nil)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Delete.Execute(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) SearchUsers(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}
	res, err := h.Search.Execute(c.Request.Context(), &userapp.SearchUsersInput{
		Name:     req.Name,
		Province: req.Province,
		City:     req.City,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res, "users retrieved", response.ListMeta{Count: len(res)})
}

func bindError(c *gin.Context, err error) {
	if errors.Is(err, io.EOF) {
		response.Abort(c, http.StatusBadRequest, "request body is required", nil)
		return
	}
	response.Abort(c, http.StatusBadRequest, "invalid data", validation.ToDetails(err))
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Abort(c, http.StatusBadRequest, "invalid data", map[string]string{"id": "must be a positive integer"})
		return 0, false
	}
	return id, true
}

// respondError is the single place application errors become HTTP statuses.
func (h *UserHandler) respondError(c *gin.Context, err error) {
	switch userapp.KindOf(err) {
	case userapp.KindInvalidInput:
		response.Abort(c, http.StatusBadRequest, "request body is required", nil)
	case userapp.KindInvalidData:
		response.Abort(c, http.StatusBadRequest, "invalid data", err.Error())
	case userapp.KindNotFound:
		response.Abort(c, http.StatusNotFound, "resource not found", err.Error())
	case userapp.KindAlreadyExists:
		response.Abort(c, http.StatusConflict, "resource already exists", err.Error())
	case userapp.KindInvalidSearch:
		response.Abort(c, http.StatusBadRequest, "at least one search criterion is required", nil)
	default:
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("request failed")
		response.Abort(c, http.StatusInternalServerError, "internal server error", nil)
	}
}
