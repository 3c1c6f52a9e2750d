package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/meeting-scheduler/internal/dto"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httpresp"
	ucUser "github.com/BruksfildServices01/meeting-scheduler/internal/usecase/user"
)

type UserHandler struct {
	get *ucUser.GetUserByPhone
	add *ucUser.AddUser
	log *zap.Logger
}

func NewUserHandler(
	get *ucUser.GetUserByPhone,
	add *ucUser.AddUser,
	log *zap.Logger,
) *UserHandler {
	return &UserHandler{
		get: get,
		add: add,
		log: log,
	}
}

// GET /api/user/get?phone=...
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.get.Execute(c.Request.Context(), c.Query("phone"))
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.GetUserResponse{
		Exists: u != nil,
		Data:   dto.NewUserDTO(u),
	})
}

// POST /api/user/add
func (h *UserHandler) Add(c *gin.Context) {
	var req dto.AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "phone and first_name are required.")
		return
	}

	id, err := h.add.Execute(c.Request.Context(), ucUser.AddUserInput{
		Phone:     req.Phone,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Created(c, dto.AddUserResponse{
		Success: true,
		UserID:  id,
		Message: "User added successfully",
	})
}
