package gateway

import (
	"encoding/base64"
	"net/http"

	"github.com/orderdesk/internal/dialogue"
	"github.com/orderdesk/internal/logger"
	"github.com/orderdesk/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler owns the webhook surface.
type Handler struct {
	engine *dialogue.Engine
}

// NewHandler creates the webhook handler.
func NewHandler(engine *dialogue.Engine) *Handler {
	return &Handler{engine: engine}
}

// WebhookRequest is one inbound chat update. Either Text or CallbackData is
// set; CallbackData wins when both are present.
type WebhookRequest struct {
	UserID       int64  `json:"user_id" binding:"required"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Text         string `json:"text"`
	CallbackData string `json:"callback_data"`
}

// ReplyPayload is one outbound message in the webhook response.
type ReplyPayload struct {
	Text       string             `json:"text,omitempty"`
	Choices    []dialogue.Choice  `json:"choices,omitempty"`
	Attachment *AttachmentPayload `json:"attachment,omitempty"`
}

// AttachmentPayload carries a file as base64 so the response stays JSON.
type AttachmentPayload struct {
	Filename string `json:"filename"`
	Caption  string `json:"caption,omitempty"`
	Data     string `json:"data"`
}

// WebhookResponse is the ordered list of replies for one update.
type WebhookResponse struct {
	Replies []ReplyPayload `json:"replies"`
}

// HandleWebhook decodes the update, runs it through the dialogue engine and
// returns the replies.
func (h *Handler) HandleWebhook(c *gin.Context) {
	var req WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile := service.UserProfile{
		ID:        req.UserID,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	event := DecodeEvent(req.Text, req.CallbackData)

	replies, err := h.engine.Handle(c.Request.Context(), profile, event)
	if err != nil {
		logger.Errorw("webhook_handle_failed",
			"request_id", getRequestID(c),
			"user_id", req.UserID,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	resp := WebhookResponse{Replies: make([]ReplyPayload, 0, len(replies))}
	for _, reply := range replies {
		payload := ReplyPayload{Text: reply.Text, Choices: reply.Choices}
		if reply.Attachment != nil {
			payload.Attachment = &AttachmentPayload{
				Filename: reply.Attachment.Filename,
				Caption:  reply.Attachment.Caption,
				Data:     base64.StdEncoding.EncodeToString(reply.Attachment.Data),
			}
		}
		resp.Replies = append(resp.Replies, payload)
	}
	c.JSON(http.StatusOK, resp)
}

// HandleHealthz reports process liveness.
func (h *Handler) HandleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
