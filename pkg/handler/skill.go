package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-santa-skill/pkg/common"
	"github.com/AccelByte/extend-santa-skill/pkg/metrics"
	"github.com/AccelByte/extend-santa-skill/pkg/skill"
)

// Dispatcher answers one conversation turn.
type Dispatcher interface {
	Dispatch(ctx context.Context, env *skill.RequestEnvelope) *skill.ResponseEnvelope
}

// Skill receives voice platform webhook calls.
type Skill struct {
	dispatcher Dispatcher
	skillID    string
}

// NewSkill creates the webhook handler. An empty skillID accepts calls
// from any application.
func NewSkill(dispatcher Dispatcher, skillID string) *Skill {
	return &Skill{
		dispatcher: dispatcher,
		skillID:    skillID,
	}
}

// Handle processes POST /skill.
func (s *Skill) Handle(c *gin.Context) {
	scope := common.GetScopeFromContext(c.Request.Context(), "Skill.Handle")
	defer scope.Finish()

	requestID := c.GetHeader(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header(RequestIDHeader, requestID)
	scope.WithField("request_id", requestID)

	var env skill.RequestEnvelope
	if err := c.ShouldBindJSON(&env); err != nil {
		scope.Log.Warnf("invalid skill request: %v", err)
		respondError(c, http.StatusBadRequest, CodeInvalidRequest, err)
		return
	}
	if env.Request.Type == "" {
		respondError(c, http.StatusBadRequest, CodeInvalidRequest, errors.New("request type is required"))
		return
	}

	if s.skillID != "" && env.ApplicationID() != s.skillID {
		scope.Log.Warnf("rejected request for application %q", env.ApplicationID())
		respondError(c, http.StatusForbidden, CodeForbidden, errors.New("unknown application"))
		return
	}

	metrics.RequestsTotal.WithLabelValues(env.Request.Type).Inc()
	scope.Log.WithFields(logrus.Fields{
		"request_type": env.Request.Type,
		"intent":       env.IntentName(),
	}).Debug("received skill request")

	c.JSON(http.StatusOK, s.dispatcher.Dispatch(scope.Ctx, &env))
}

// Health processes GET /healthz.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func respondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}
