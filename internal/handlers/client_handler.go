package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/slot-booker/internal/dto"
	"github.com/BruksfildServices01/slot-booker/internal/httperr"
	"github.com/BruksfildServices01/slot-booker/internal/httpresp"
	ucClient "github.com/BruksfildServices01/slot-booker/internal/usecase/client"
)

type ClientHandler struct {
	createUC *ucClient.CreateClient
	listUC   *ucClient.ListClients
}

func NewClientHandler(
	createUC *ucClient.CreateClient,
	listUC *ucClient.ListClients,
) *ClientHandler {
	return &ClientHandler{
		createUC: createUC,
		listUC:   listUC,
	}
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, httperr.Message(httperr.CodeInvalidRequest))
		return
	}

	client, err := h.createUC.Execute(c.Request.Context(), ucClient.CreateClientInput{
		Actor: actor(c),
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.FromClient(client))
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.FromClients(clients))
}
