package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"socialmedia/internal/apperr"
	"socialmedia/internal/models"
)

type AccountServicer interface {
	Register(ctx context.Context, account *models.Account) (*models.Account, error)
	Login(ctx context.Context, account *models.Account) (*models.Account, error)
}

type MessageServicer interface {
	CreateMessage(ctx context.Context, message *models.Message) (*models.Message, error)
	GetMessageByID(ctx context.Context, id int) (*models.Message, error)
	GetMessages(ctx context.Context) ([]models.Message, error)
	DeleteMessage(ctx context.Context, id int) (int, error)
	PatchMessage(ctx context.Context, id int, message *models.Message) error
	GetMessagesByAccountID(ctx context.Context, accountID int) ([]models.Message, error)
}

type Handler struct {
	Accounts AccountServicer
	Messages MessageServicer
	log      zerolog.Logger
}

func NewAPIHandler(accounts AccountServicer, messages MessageServicer, log zerolog.Logger) *Handler {
	return &Handler{
		Accounts: accounts,
		Messages: messages,
		log:      log,
	}
}

// Path ids are limited to the range of the integer columns they address.
type messagePath struct {
	MessageID int `uri:"messageId" binding:"min=-2147483648,max=2147483647"`
}

type accountPath struct {
	AccountID int `uri:"accountId" binding:"min=-2147483648,max=2147483647"`
}

// Register godoc
// @Summary  Register a new account
// @Tags     accounts
// @Accept   json
// @Produce  json
// @Param    account body models.Account true "username and password"
// @Success  200 {object} models.Account
// @Failure  400 {string} string "blank username or short password"
// @Failure  409 {string} string "username already taken"
// @Router   /register [post]
func (h *Handler) Register(c *gin.Context) {
	var account models.Account
	if !h.bindJSON(c, &account) {
		return
	}
	registered, err := h.Accounts.Register(c.Request.Context(), &account)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, registered)
}

// Login godoc
// @Summary  Log in with username and password
// @Tags     accounts
// @Accept   json
// @Produce  json
// @Param    account body models.Account true "username and password"
// @Success  200 {object} models.Account
// @Failure  401 {string} string "no matching account"
// @Router   /login [post]
func (h *Handler) Login(c *gin.Context) {
	var account models.Account
	if !h.bindJSON(c, &account) {
		return
	}
	found, err := h.Accounts.Login(c.Request.Context(), &account)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// CreateMessage godoc
// @Summary  Post a message
// @Tags     messages
// @Accept   json
// @Produce  json
// @Param    message body models.Message true "postedBy and messageText"
// @Success  200 {object} models.Message
// @Failure  400 {string} string "unknown author or invalid text"
// @Router   /messages [post]
func (h *Handler) CreateMessage(c *gin.Context) {
	var message models.Message
	if !h.bindJSON(c, &message) {
		return
	}
	created, err := h.Messages.CreateMessage(c.Request.Context(), &message)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// ListMessages godoc
// @Summary  List all messages
// @Tags     messages
// @Produce  json
// @Success  200 {array} models.Message
// @Router   /messages [get]
func (h *Handler) ListMessages(c *gin.Context) {
	messages, err := h.Messages.GetMessages(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(messages))
}

// GetMessage godoc
// @Summary      Get a message by id
// @Description  An unknown id yields 200 with an empty body.
// @Tags         messages
// @Produce      json
// @Param        messageId path int true "message id"
// @Success      200 {object} models.Message
// @Router       /messages/{messageId} [get]
func (h *Handler) GetMessage(c *gin.Context) {
	var path messagePath
	if !h.bindURI(c, &path) {
		return
	}
	message, err := h.Messages.GetMessageByID(c.Request.Context(), path.MessageID)
	if apperr.IsKind(err, apperr.KindResourceNotFound) {
		c.Status(http.StatusOK)
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

// DeleteMessage godoc
// @Summary      Delete a message by id
// @Description  Returns 1 when a message was removed, otherwise an empty body.
// @Tags         messages
// @Produce      json
// @Param        messageId path int true "message id"
// @Success      200 {integer} integer
// @Router       /messages/{messageId} [delete]
func (h *Handler) DeleteMessage(c *gin.Context) {
	var path messagePath
	if !h.bindURI(c, &path) {
		return
	}
	deleted, err := h.Messages.DeleteMessage(c.Request.Context(), path.MessageID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if deleted != 1 {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, deleted)
}

// PatchMessage godoc
// @Summary  Replace the text of a message
// @Tags     messages
// @Accept   json
// @Produce  json
// @Param    messageId path int true "message id"
// @Param    message body models.Message true "messageText"
// @Success  200 {integer} integer
// @Failure  400 {string} string "unknown id or invalid text"
// @Router   /messages/{messageId} [patch]
func (h *Handler) PatchMessage(c *gin.Context) {
	var path messagePath
	if !h.bindURI(c, &path) {
		return
	}
	var message models.Message
	if !h.bindJSON(c, &message) {
		return
	}
	if err := h.Messages.PatchMessage(c.Request.Context(), path.MessageID, &message); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, 1)
}

// ListAccountMessages godoc
// @Summary  List the messages posted by an account
// @Tags     messages
// @Produce  json
// @Param    accountId path int true "account id"
// @Success  200 {array} models.Message
// @Router   /accounts/{accountId}/messages [get]
func (h *Handler) ListAccountMessages(c *gin.Context) {
	var path accountPath
	if !h.bindURI(c, &path) {
		return
	}
	messages, err := h.Messages.GetMessagesByAccountID(c.Request.Context(), path.AccountID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(messages))
}

func nonNil(messages []models.Message) []models.Message {
	if messages == nil {
		return []models.Message{}
	}
	return messages
}
